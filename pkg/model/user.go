package model

// User represents a registry account
type User struct {
	ID       string `gorm:"column:id;primaryKey"`
	Username string `gorm:"column:username"`
}

func (User) TableName() string {
	return "users"
}
