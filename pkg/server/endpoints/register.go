package endpoints

import (
	"github.com/depothq/depot/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterProjectsEndpoints(srv)
	RegisterStatusEndpoint(srv)
}
