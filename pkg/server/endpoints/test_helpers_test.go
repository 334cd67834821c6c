package endpoints

import (
	"github.com/gorilla/mux"

	"github.com/depothq/depot/pkg/server/store"
)

// newTestRouter registers the admin handlers without auth middleware so
// handler behavior can be tested in isolation.
func newTestRouter(projects store.ProjectsStore, releases store.ReleasesStore, journals store.JournalsStore) *mux.Router {
	router := mux.NewRouter().UseEncodedPath()
	router.HandleFunc("/admin/projects", handleProjectList(projects)).Methods("GET")
	router.HandleFunc("/admin/projects/{project_name}", handleProjectDetail(projects, journals)).Methods("GET")
	router.HandleFunc("/admin/projects/{project_name}/releases", handleReleaseList(projects, releases)).Methods("GET")
	router.HandleFunc("/admin/projects/{project_name}/journals", handleJournalList(projects, journals)).Methods("GET")
	return router
}
