// Package db provides database connection utilities for Depot.
package db
