package endpoints

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/depothq/depot/pkg/model"
	"github.com/depothq/depot/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// pageParam parses the "page" query parameter, defaulting to 1
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	return strconv.Atoi(raw)
}

// resolveProject loads the project addressed by the request's
// project_name path segment. When the segment is not the project's
// canonical slug, a 301 to the canonical path (with the given suffix and
// the original query string) is written instead. The bool result reports
// whether a response has already been written.
func resolveProject(projects store.ProjectsStore, w http.ResponseWriter, r *http.Request, suffix string) (*model.Project, bool) {
	vars := mux.Vars(r)
	projectName, err := url.PathUnescape(vars["project_name"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid project name")
		return nil, true
	}

	project, err := projects.FindByNormalizedName(model.NormalizeName(projectName))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load project")
		return nil, true
	}
	if project == nil {
		respondWithError(w, http.StatusNotFound, "Project not found")
		return nil, true
	}

	if projectName != project.NormalizedName {
		location := "/admin/projects/" + url.PathEscape(project.NormalizedName) + suffix
		if r.URL.RawQuery != "" {
			location += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, location, http.StatusMovedPermanently)
		return nil, true
	}

	return project, false
}
