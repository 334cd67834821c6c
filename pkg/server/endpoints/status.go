package endpoints

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/depothq/depot/pkg/server"
)

// RegisterStatusEndpoint registers the status endpoint
func RegisterStatusEndpoint(s *server.Server) {
	// GET / - Status page (no auth required)
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("DEPOT_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		// Check if JSON is requested via Accept header or format query param
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"version": version})
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>Depot Status</title>
  </head>
  <body>
    <main>
      <h1>Status</h1>
      <p class="status-text">Your Depot server is running!</p>
      <dl>
        <dt>Details:</dt>
        <dd>Version ` + version + `</dd>
      </dl>
    </main>
  </body>
</html>`

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}
