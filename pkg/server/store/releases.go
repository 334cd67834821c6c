package store

import "github.com/depothq/depot/pkg/model"

// ReleasesStore abstracts release listing for a project
type ReleasesStore interface {
	// ListReleases returns a project's releases ordered by the internal
	// release-ordering key, newest first. When version terms are given,
	// a release matches if its version contains any of them
	// (case-insensitive).
	ListReleases(projectID string, versions []string, limit, offset int) ([]model.Release, error)

	// CountReleases returns the count of releases matching the criteria
	CountReleases(projectID string, versions []string) (int64, error)
}
