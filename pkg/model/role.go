package model

// Role links a user to a project as a maintainer or owner
type Role struct {
	ID        string `gorm:"column:id;primaryKey"`
	ProjectID string `gorm:"column:project_id"`
	UserID    string `gorm:"column:user_id"`
	RoleName  string `gorm:"column:role_name"`
}

func (Role) TableName() string {
	return "roles"
}
