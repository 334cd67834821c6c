package model

import "time"

// Release represents a single published version of a project.
// Ordering is the registry-internal sort key maintained on upload so that
// versions list in semantic order rather than lexical order.
type Release struct {
	ID        string    `gorm:"column:id;primaryKey"`
	ProjectID string    `gorm:"column:project_id"`
	Version   string    `gorm:"column:version"`
	Ordering  int       `gorm:"column:ordering"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Release) TableName() string {
	return "releases"
}
