// Package gorm implements the store interfaces against PostgreSQL using
// GORM. Listing queries are built as raw SQL with an explicit list of
// optional predicates so filters compose without an ORM query DSL.
package gorm
