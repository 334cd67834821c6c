package gorm

import (
	"gorm.io/gorm"

	"github.com/depothq/depot/pkg/model"
	"github.com/depothq/depot/pkg/server/store"
)

// Ensure ReleasesStore implements store.ReleasesStore
var _ store.ReleasesStore = (*ReleasesStore)(nil)

// ReleasesStore implements store.ReleasesStore using GORM
type ReleasesStore struct {
	db *gorm.DB
}

// NewReleasesStore creates a new ReleasesStore
func NewReleasesStore(db *gorm.DB) *ReleasesStore {
	return &ReleasesStore{db: db}
}

// ListReleases returns a project's releases, internal ordering key descending
func (s *ReleasesStore) ListReleases(projectID string, versions []string, limit, offset int) ([]model.Release, error) {
	query := `
		SELECT id, project_id, version, ordering, created_at
		FROM releases
		WHERE project_id = ?
	`
	args := []interface{}{projectID}

	query += versionFilter(versions, &args)
	query += ` ORDER BY ordering DESC`

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	var releases []model.Release
	if result := s.db.Raw(query, args...).Scan(&releases); result.Error != nil {
		return nil, result.Error
	}
	return releases, nil
}

// CountReleases returns the count of releases matching the criteria
func (s *ReleasesStore) CountReleases(projectID string, versions []string) (int64, error) {
	query := `SELECT COUNT(*) FROM releases WHERE project_id = ?`
	args := []interface{}{projectID}

	query += versionFilter(versions, &args)

	var count int64
	if result := s.db.Raw(query, args...).Scan(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
