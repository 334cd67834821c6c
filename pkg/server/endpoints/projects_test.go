package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depothq/depot/pkg/model"
	"github.com/depothq/depot/pkg/server/store"
)

func TestHandleProjectList(t *testing.T) {
	t.Run("non-integer page is a bad request", func(t *testing.T) {
		projects := NewMockProjectsStore()
		router := newTestRouter(projects, NewMockReleasesStore(), NewMockJournalsStore())

		req := httptest.NewRequest("GET", "/admin/projects?page=abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "'page' must be an integer.")
		projects.AssertNotCalled(t, "ListProjects")
	})

	t.Run("query terms filter and are echoed back", func(t *testing.T) {
		projects := NewMockProjectsStore()
		terms := []string{"foo bar", "baz"}
		projects.On("CountProjects", terms).Return(int64(1), nil)
		projects.On("ListProjects", terms, 25, 0).Return([]model.Project{
			{ID: "p1", Name: "foo barlib", NormalizedName: "foo-barlib", CreatedAt: time.Now()},
		}, nil)

		router := newTestRouter(projects, NewMockReleasesStore(), NewMockJournalsStore())

		req := httptest.NewRequest("GET", `/admin/projects?q=%22foo+bar%22+baz`, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp ProjectListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, `"foo bar" baz`, resp.Query)
		require.Len(t, resp.Projects, 1)
		assert.Equal(t, "foo barlib", resp.Projects[0].Name)
		assert.Equal(t, int64(1), resp.Pagination.TotalItems)

		projects.AssertExpectations(t)
	})

	t.Run("page 2 offsets by the page size", func(t *testing.T) {
		projects := NewMockProjectsStore()
		projects.On("CountProjects", []string(nil)).Return(int64(60), nil)
		projects.On("ListProjects", []string(nil), 25, 25).Return([]model.Project{}, nil)

		router := newTestRouter(projects, NewMockReleasesStore(), NewMockJournalsStore())

		req := httptest.NewRequest("GET", "/admin/projects?page=2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp ProjectListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Pagination.Page)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		assert.True(t, resp.Pagination.HasNext)
		assert.True(t, resp.Pagination.HasPrev)

		projects.AssertExpectations(t)
	})
}

func TestHandleProjectDetail(t *testing.T) {
	project := &model.Project{
		ID:             "p1",
		Name:           "Foo.Lib",
		NormalizedName: "foo-lib",
		Description:    "# Foo\n\nA *fine* library.",
		CreatedAt:      time.Now(),
	}

	t.Run("non-canonical name redirects permanently", func(t *testing.T) {
		projects := NewMockProjectsStore()
		journals := NewMockJournalsStore()
		projects.On("FindByNormalizedName", "foo-lib").Return(project, nil)

		router := newTestRouter(projects, NewMockReleasesStore(), journals)

		req := httptest.NewRequest("GET", "/admin/projects/Foo.Lib", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "/admin/projects/foo-lib", w.Header().Get("Location"))

		// Redirect happens before any aggregation queries
		projects.AssertNotCalled(t, "Maintainers")
		journals.AssertNotCalled(t, "RecentJournals")
	})

	t.Run("canonical name renders the detail view", func(t *testing.T) {
		projects := NewMockProjectsStore()
		journals := NewMockJournalsStore()
		projects.On("FindByNormalizedName", "foo-lib").Return(project, nil)
		projects.On("Maintainers", "p1").Return([]store.Maintainer{
			{RoleName: "Maintainer", Username: "bob"},
			{RoleName: "Owner", Username: "alice"},
		}, nil)
		version := "1.0.0"
		journals.On("RecentJournals", "Foo.Lib", 50).Return([]model.JournalEntry{
			{ID: 1, Name: "Foo.Lib", Version: &version, Action: "new release", SubmittedDate: time.Now()},
		}, nil)

		router := newTestRouter(projects, NewMockReleasesStore(), journals)

		req := httptest.NewRequest("GET", "/admin/projects/foo-lib", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp ProjectDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Foo.Lib", resp.Project.Name)
		require.Len(t, resp.Maintainers, 2)
		assert.Equal(t, "bob", resp.Maintainers[0].Username)
		require.Len(t, resp.Journal, 1)
		assert.Equal(t, "new release", resp.Journal[0].Action)
		assert.Contains(t, resp.DescriptionHTML, "<em>fine</em>")

		projects.AssertExpectations(t)
		journals.AssertExpectations(t)
	})

	t.Run("unknown project is a 404", func(t *testing.T) {
		projects := NewMockProjectsStore()
		projects.On("FindByNormalizedName", "missing").Return(nil, nil)

		router := newTestRouter(projects, NewMockReleasesStore(), NewMockJournalsStore())

		req := httptest.NewRequest("GET", "/admin/projects/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
