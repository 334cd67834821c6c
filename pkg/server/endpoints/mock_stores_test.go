package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/depothq/depot/pkg/model"
	"github.com/depothq/depot/pkg/server/store"
)

// MockProjectsStore implements store.ProjectsStore for testing using testify/mock
type MockProjectsStore struct {
	mock.Mock
}

func NewMockProjectsStore() *MockProjectsStore {
	return &MockProjectsStore{}
}

func (m *MockProjectsStore) ListProjects(terms []string, limit, offset int) ([]model.Project, error) {
	args := m.Called(terms, limit, offset)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectsStore) CountProjects(terms []string) (int64, error) {
	args := m.Called(terms)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectsStore) FindByNormalizedName(normalized string) (*model.Project, error) {
	args := m.Called(normalized)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectsStore) Maintainers(projectID string) ([]store.Maintainer, error) {
	args := m.Called(projectID)
	return args.Get(0).([]store.Maintainer), args.Error(1)
}

// MockReleasesStore implements store.ReleasesStore for testing using testify/mock
type MockReleasesStore struct {
	mock.Mock
}

func NewMockReleasesStore() *MockReleasesStore {
	return &MockReleasesStore{}
}

func (m *MockReleasesStore) ListReleases(projectID string, versions []string, limit, offset int) ([]model.Release, error) {
	args := m.Called(projectID, versions, limit, offset)
	return args.Get(0).([]model.Release), args.Error(1)
}

func (m *MockReleasesStore) CountReleases(projectID string, versions []string) (int64, error) {
	args := m.Called(projectID, versions)
	return args.Get(0).(int64), args.Error(1)
}

// MockJournalsStore implements store.JournalsStore for testing using testify/mock
type MockJournalsStore struct {
	mock.Mock
}

func NewMockJournalsStore() *MockJournalsStore {
	return &MockJournalsStore{}
}

func (m *MockJournalsStore) ListJournals(projectName string, versions []string, limit, offset int) ([]model.JournalEntry, error) {
	args := m.Called(projectName, versions, limit, offset)
	return args.Get(0).([]model.JournalEntry), args.Error(1)
}

func (m *MockJournalsStore) CountJournals(projectName string, versions []string) (int64, error) {
	args := m.Called(projectName, versions)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalsStore) RecentJournals(projectName string, limit int) ([]model.JournalEntry, error) {
	args := m.Called(projectName, limit)
	return args.Get(0).([]model.JournalEntry), args.Error(1)
}
