// Package describe renders project descriptions for the admin detail
// view.
package describe

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	md     = goldmark.New()
	policy = bluemonday.UGCPolicy()
)

// Render converts a Markdown project description to sanitized HTML.
// Descriptions are user-supplied, so the output is stripped of anything
// outside the UGC allowlist before it reaches a template.
func Render(description string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(description), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
