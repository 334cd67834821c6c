package gorm

import "strings"

// nameFilter renders an OR-combined group of case-insensitive substring
// matches on name as a WHERE clause. Empty terms yield no clause.
func nameFilter(terms []string, args *[]interface{}) string {
	if len(terms) == 0 {
		return ""
	}

	clauses := make([]string, 0, len(terms))
	for _, term := range terms {
		clauses = append(clauses, `name ILIKE ?`)
		*args = append(*args, "%"+term+"%")
	}
	return ` WHERE ` + strings.Join(clauses, ` OR `)
}

// versionFilter renders an OR-combined group of case-insensitive
// substring matches on version, ANDed onto an existing WHERE clause.
func versionFilter(versions []string, args *[]interface{}) string {
	if len(versions) == 0 {
		return ""
	}

	clauses := make([]string, 0, len(versions))
	for _, v := range versions {
		clauses = append(clauses, `version ILIKE ?`)
		*args = append(*args, "%"+v+"%")
	}
	return ` AND (` + strings.Join(clauses, ` OR `) + `)`
}
