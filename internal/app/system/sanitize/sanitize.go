// internal/app/system/sanitize/sanitize.go
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips all HTML. Workspace and dataset names and descriptions
// are stored and served as plain text, so nothing markup-shaped survives.
var strict = bluemonday.StrictPolicy()

// Text removes any HTML from s and collapses surrounding whitespace.
// bluemonday entity-encodes characters like & and < on the way out;
// those are decoded back so the stored value stays plain text.
func Text(s string) string {
	cleaned := strict.Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
