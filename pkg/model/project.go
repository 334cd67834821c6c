package model

import (
	"regexp"
	"strings"
	"time"
)

// Project represents a package hosted in the registry
type Project struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	NormalizedName string    `gorm:"column:normalized_name"`
	Description    string    `gorm:"column:description"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Project) TableName() string {
	return "projects"
}

var normalizeRgx = regexp.MustCompile(`[-_.]+`)

// NormalizeName returns the canonical slug for a project name:
// lowercase, with runs of "-", "_" and "." collapsed to a single "-".
func NormalizeName(name string) string {
	return strings.ToLower(normalizeRgx.ReplaceAllString(name, "-"))
}
