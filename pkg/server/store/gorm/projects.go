package gorm

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/depothq/depot/pkg/model"
	"github.com/depothq/depot/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// ListProjects returns projects matching any of the search terms, ordered by name
func (s *ProjectsStore) ListProjects(terms []string, limit, offset int) ([]model.Project, error) {
	query := `
		SELECT id, name, normalized_name, description, created_at
		FROM projects
	`
	var args []interface{}

	query += nameFilter(terms, &args)
	query += ` ORDER BY name`

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	var projects []model.Project
	if result := s.db.Raw(query, args...).Scan(&projects); result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// CountProjects returns the count of projects matching the search terms
func (s *ProjectsStore) CountProjects(terms []string) (int64, error) {
	query := `SELECT COUNT(*) FROM projects`
	var args []interface{}

	query += nameFilter(terms, &args)

	var count int64
	if result := s.db.Raw(query, args...).Scan(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// FindByNormalizedName retrieves a project by its canonical slug.
// Returns nil, nil when the project does not exist.
func (s *ProjectsStore) FindByNormalizedName(normalized string) (*model.Project, error) {
	var project model.Project
	result := s.db.Where(&model.Project{NormalizedName: normalized}).First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &project, nil
}

// Maintainers returns the project's maintainers, one row per username,
// sorted by (role name, username)
func (s *ProjectsStore) Maintainers(projectID string) ([]store.Maintainer, error) {
	type maintainerRow struct {
		RoleName string
		Username string
	}

	var rows []maintainerRow
	result := s.db.Raw(`
		SELECT DISTINCT ON (users.username) roles.role_name, users.username
		FROM roles
		JOIN users ON users.id = roles.user_id
		WHERE roles.project_id = ?
		ORDER BY users.username
	`, projectID).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	maintainers := make([]store.Maintainer, 0, len(rows))
	for _, row := range rows {
		maintainers = append(maintainers, store.Maintainer{
			RoleName: row.RoleName,
			Username: row.Username,
		})
	}

	sort.Slice(maintainers, func(i, j int) bool {
		if maintainers[i].RoleName != maintainers[j].RoleName {
			return maintainers[i].RoleName < maintainers[j].RoleName
		}
		return maintainers[i].Username < maintainers[j].Username
	})

	return maintainers, nil
}
