package endpoints

import (
	"net/http"

	"github.com/depothq/depot/pkg/paginate"
	"github.com/depothq/depot/pkg/search"
	"github.com/depothq/depot/pkg/server/store"
)

// JournalListResponse is the view model for the journal listing
type JournalListResponse struct {
	Project    ProjectResponse        `json:"project"`
	Journals   []JournalEntryResponse `json:"journals"`
	Pagination paginate.Meta          `json:"pagination"`
	Query      string                 `json:"query"`
}

func handleJournalList(projects store.ProjectsStore, journals store.JournalsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		// Canonical redirect wins over page validation
		project, done := resolveProject(projects, w, r, "/journals")
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

		total, err := journals.CountJournals(project.Name, versions)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list journal entries")
			return
		}

		entries, err := journals.ListJournals(project.Name, versions, params.Limit(), params.Offset())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list journal entries")
			return
		}

		respondWithJSON(w, http.StatusOK, JournalListResponse{
			Project:    newProjectResponse(*project),
			Journals:   newJournalResponses(entries),
			Pagination: paginate.NewMeta(params, total),
			Query:      q,
		})
	}
}
