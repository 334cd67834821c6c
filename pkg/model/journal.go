package model

import "time"

// JournalEntry is an audit-log record of a package action (create,
// upload, remove, yank). Entries are keyed by project name rather than
// project ID so history survives project deletion.
type JournalEntry struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Version       *string   `gorm:"column:version"`
	Action        string    `gorm:"column:action"`
	SubmittedBy   *string   `gorm:"column:submitted_by"`
	SubmittedDate time.Time `gorm:"column:submitted_date"`
}

func (JournalEntry) TableName() string {
	return "journals"
}
