// Package main implements depotctl, the CLI for the Depot package registry
// admin server.
//
// Depot serves the administrative read surface of a package registry:
// project listing with search, project detail pages, and per-project
// release and journal history.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Storage interfaces and their gorm implementations
//   - pkg/server/middleware: Admin session authentication
//   - pkg/model: Database models
//   - pkg/search: Query tokenization and field filters
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Run database migrations
//	depotctl db migrate
//
//	# Start the server
//	depotctl server
//
//	# Mint an admin session token
//	depotctl token generate --username admin
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - DEPOT_SESSION_KEY: HMAC key for admin session tokens
//   - DEPOT_CONFIG_PATH: Configuration directory (default: /etc/depot/config)
//   - DEPOT_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8000)
package main
