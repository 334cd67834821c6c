package endpoints

import (
	"net/http"
	"time"

	"github.com/depothq/depot/pkg/paginate"
	"github.com/depothq/depot/pkg/search"
	"github.com/depothq/depot/pkg/server/store"
)

// ReleaseResponse represents a release in the API response
type ReleaseResponse struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// ReleaseListResponse is the view model for the release listing
type ReleaseListResponse struct {
	Project    ProjectResponse   `json:"project"`
	Releases   []ReleaseResponse `json:"releases"`
	Pagination paginate.Meta     `json:"pagination"`
	Query      string            `json:"query"`
}

func handleReleaseList(projects store.ProjectsStore, releases store.ReleasesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		// Canonical redirect wins over page validation
		project, done := resolveProject(projects, w, r, "/releases")
		if done {
			return
		}

		pageNum, err := pageParam(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "'page' must be an integer.")
			return
		}
		params := paginate.NewParams(pageNum)

		versions := search.VersionTerms(q)

		total, err := releases.CountReleases(project.ID, versions)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list releases")
			return
		}

		matches, err := releases.ListReleases(project.ID, versions, params.Limit(), params.Offset())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list releases")
			return
		}

		responses := make([]ReleaseResponse, 0, len(matches))
		for _, release := range matches {
			responses = append(responses, ReleaseResponse{
				Version:   release.Version,
				CreatedAt: release.CreatedAt,
			})
		}

		respondWithJSON(w, http.StatusOK, ReleaseListResponse{
			Project:    newProjectResponse(*project),
			Releases:   responses,
			Pagination: paginate.NewMeta(params, total),
			Query:      q,
		})
	}
}
