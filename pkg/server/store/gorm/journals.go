package gorm

import (
	"gorm.io/gorm"

	"github.com/depothq/depot/pkg/model"
	"github.com/depothq/depot/pkg/server/store"
)

// Ensure JournalsStore implements store.JournalsStore
var _ store.JournalsStore = (*JournalsStore)(nil)

// JournalsStore implements store.JournalsStore using GORM
type JournalsStore struct {
	db *gorm.DB
}

// NewJournalsStore creates a new JournalsStore
func NewJournalsStore(db *gorm.DB) *JournalsStore {
	return &JournalsStore{db: db}
}

// ListJournals returns a project's journal entries, submission date descending
func (s *JournalsStore) ListJournals(projectName string, versions []string, limit, offset int) ([]model.JournalEntry, error) {
	query := `
		SELECT id, name, version, action, submitted_by, submitted_date
		FROM journals
		WHERE name = ?
	`
	args := []interface{}{projectName}

	query += versionFilter(versions, &args)
	query += ` ORDER BY submitted_date DESC`

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	var entries []model.JournalEntry
	if result := s.db.Raw(query, args...).Scan(&entries); result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

// CountJournals returns the count of entries matching the criteria
func (s *JournalsStore) CountJournals(projectName string, versions []string) (int64, error) {
	query := `SELECT COUNT(*) FROM journals WHERE name = ?`
	args := []interface{}{projectName}

	query += versionFilter(versions, &args)

	var count int64
	if result := s.db.Raw(query, args...).Scan(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// RecentJournals returns the newest entries for a project, capped at limit
func (s *JournalsStore) RecentJournals(projectName string, limit int) ([]model.JournalEntry, error) {
	return s.ListJournals(projectName, nil, limit, 0)
}
