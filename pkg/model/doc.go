// Package model defines the database models for Depot.
//
// This package contains GORM models that map to the registry's PostgreSQL
// schema (see db/migrations).
//
// # Core Models
//
//   - Project: A hosted package, addressed by its canonical normalized name
//   - Release: A published version of a project
//   - Role: A maintainer/owner assignment linking a user to a project
//   - User: A registry account
//   - JournalEntry: An audit-log record of a package action
package model
