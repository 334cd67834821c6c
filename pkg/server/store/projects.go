package store

import "github.com/depothq/depot/pkg/model"

// Maintainer is a joined role+user row for a project's maintainer list
type Maintainer struct {
	RoleName string
	Username string
}

// ProjectsStore abstracts project lookup and listing
type ProjectsStore interface {
	// ListProjects returns projects whose name matches any of the given
	// search terms (case-insensitive substring), ordered by name. With no
	// terms, all projects are returned.
	ListProjects(terms []string, limit, offset int) ([]model.Project, error)

	// CountProjects returns the count of projects matching the terms
	CountProjects(terms []string) (int64, error)

	// FindByNormalizedName retrieves a project by its canonical slug.
	// Returns nil when no such project exists.
	FindByNormalizedName(normalized string) (*model.Project, error)

	// Maintainers returns the project's maintainers, distinct by
	// username, sorted by (role name, username)
	Maintainers(projectID string) ([]Maintainer, error)
}
