package endpoints

import (
	"net/http"
	"time"

	"github.com/depothq/depot/pkg/describe"
	"github.com/depothq/depot/pkg/model"
	"github.com/depothq/depot/pkg/paginate"
	"github.com/depothq/depot/pkg/search"
	"github.com/depothq/depot/pkg/server"
	"github.com/depothq/depot/pkg/server/middleware"
	"github.com/depothq/depot/pkg/server/store"
)

// journalDetailLimit caps the audit history shown on the detail page
const journalDetailLimit = 50

// ProjectResponse represents a project in the API response
type ProjectResponse struct {
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalized_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// MaintainerResponse represents a maintainer row on the detail page
type MaintainerResponse struct {
	RoleName string `json:"role_name"`
	Username string `json:"username"`
}

// JournalEntryResponse represents a journal entry in the API response
type JournalEntryResponse struct {
	Name          string    `json:"name"`
	Version       *string   `json:"version"`
	Action        string    `json:"action"`
	SubmittedBy   *string   `json:"submitted_by"`
	SubmittedDate time.Time `json:"submitted_date"`
}

// ProjectListResponse is the view model for the project listing
type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination paginate.Meta     `json:"pagination"`
	Query      string            `json:"query"`
}

// ProjectDetailResponse is the view model for the project detail page
type ProjectDetailResponse struct {
	Project         ProjectResponse        `json:"project"`
	Maintainers     []MaintainerResponse   `json:"maintainers"`
	Journal         []JournalEntryResponse `json:"journal"`
	DescriptionHTML string                 `json:"description_html"`
}

// RegisterProjectsEndpoints registers the admin project endpoints
func RegisterProjectsEndpoints(s *server.Server) {
	auth := middleware.NewAdminAuthenticator(nil)

	adminRouter := s.Router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(auth.Middleware)

	adminRouter.HandleFunc("/projects", handleProjectList(s.ProjectsStore)).Methods("GET")
	adminRouter.HandleFunc("/projects/{project_name}", handleProjectDetail(s.ProjectsStore, s.JournalsStore)).Methods("GET")
	adminRouter.HandleFunc("/projects/{project_name}/releases", handleReleaseList(s.ProjectsStore, s.ReleasesStore)).Methods("GET")
	adminRouter.HandleFunc("/projects/{project_name}/journals", handleJournalList(s.ProjectsStore, s.JournalsStore)).Methods("GET")
}

func handleProjectList(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		pageNum, err := pageParam(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "'page' must be an integer.")
			return
		}
		params := paginate.NewParams(pageNum)

		terms := search.Terms(q)

		total, err := projects.CountProjects(terms)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list projects")
			return
		}

		matches, err := projects.ListProjects(terms, params.Limit(), params.Offset())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list projects")
			return
		}

		responses := make([]ProjectResponse, 0, len(matches))
		for _, project := range matches {
			responses = append(responses, newProjectResponse(project))
		}

		respondWithJSON(w, http.StatusOK, ProjectListResponse{
			Projects:   responses,
			Pagination: paginate.NewMeta(params, total),
			Query:      q,
		})
	}
}

func handleProjectDetail(projects store.ProjectsStore, journals store.JournalsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, done := resolveProject(projects, w, r, "")
		if done {
			return
		}

		maintainers, err := projects.Maintainers(project.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to load maintainers")
			return
		}

		entries, err := journals.RecentJournals(project.Name, journalDetailLimit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to load journal")
			return
		}

		descriptionHTML, err := describe.Render(project.Description)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to render description")
			return
		}

		maintainerResponses := make([]MaintainerResponse, 0, len(maintainers))
		for _, m := range maintainers {
			maintainerResponses = append(maintainerResponses, MaintainerResponse{
				RoleName: m.RoleName,
				Username: m.Username,
			})
		}

		respondWithJSON(w, http.StatusOK, ProjectDetailResponse{
			Project:         newProjectResponse(*project),
			Maintainers:     maintainerResponses,
			Journal:         newJournalResponses(entries),
			DescriptionHTML: descriptionHTML,
		})
	}
}

func newProjectResponse(project model.Project) ProjectResponse {
	return ProjectResponse{
		Name:           project.Name,
		NormalizedName: project.NormalizedName,
		CreatedAt:      project.CreatedAt,
	}
}

func newJournalResponses(entries []model.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, JournalEntryResponse{
			Name:          entry.Name,
			Version:       entry.Version,
			Action:        entry.Action,
			SubmittedBy:   entry.SubmittedBy,
			SubmittedDate: entry.SubmittedDate,
		})
	}
	return responses
}
