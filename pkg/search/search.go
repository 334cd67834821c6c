// Package search parses the free-text "q" parameter accepted by the
// admin listing endpoints.
package search

import (
	"strings"

	shellwords "github.com/mattn/go-shellwords"
)

// Filter is a single field:value pair extracted from a query.
type Filter struct {
	Field string
	Value string
}

// Terms splits a query into search terms using shell-word semantics, so
// quoted substrings stay together ("foo bar" is one term). Input that
// cannot be parsed as shell words (an unterminated quote, say) degrades
// to plain whitespace splitting rather than failing.
func Terms(q string) []string {
	if strings.TrimSpace(q) == "" {
		return nil
	}

	terms, err := shellwords.Parse(q)
	if err != nil {
		return strings.Fields(q)
	}
	if len(terms) == 0 {
		return nil
	}
	return terms
}

// Filters extracts the field:value pairs from a query. Terms without a
// ":" are dropped; the caller decides which fields it recognizes. Field
// names are lowercased.
func Filters(q string) []Filter {
	var filters []Filter
	for _, term := range Terms(q) {
		field, value, ok := strings.Cut(term, ":")
		if !ok {
			continue
		}
		filters = append(filters, Filter{
			Field: strings.ToLower(field),
			Value: value,
		})
	}
	return filters
}

// VersionTerms returns the values of all recognized "version" filters in
// a query. Unrecognized fields are silently ignored.
func VersionTerms(q string) []string {
	var versions []string
	for _, f := range Filters(q) {
		if f.Field == "version" {
			versions = append(versions, f.Value)
		}
	}
	return versions
}
