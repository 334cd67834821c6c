package store

import "github.com/depothq/depot/pkg/model"

// JournalsStore abstracts the audit log of package actions
type JournalsStore interface {
	// ListJournals returns a project's journal entries, submission date
	// descending. Version terms filter like ReleasesStore.ListReleases.
	ListJournals(projectName string, versions []string, limit, offset int) ([]model.JournalEntry, error)

	// CountJournals returns the count of entries matching the criteria
	CountJournals(projectName string, versions []string) (int64, error)

	// RecentJournals returns the most recent entries for a project,
	// submission date descending, capped at limit
	RecentJournals(projectName string, limit int) ([]model.JournalEntry, error)
}
