// Package server provides the HTTP server for the Depot admin API.
//
// This package implements the core HTTP server that handles the admin
// REST API requests. It uses gorilla/mux for routing and provides
// middleware for authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - /admin/projects - Project listing with search and pagination
//   - /admin/projects/{project_name} - Project detail
//   - /admin/projects/{project_name}/releases - Release listing
//   - /admin/projects/{project_name}/journals - Journal listing
//   - / - Status page
package server
