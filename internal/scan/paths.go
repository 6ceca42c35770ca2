package scan

import "strings"

// IsRecipePath reports whether a source-relative path names a recipe
// document: data/<namespace>/recipes/**/*.json. Backslashes are normalized
// so archive entries produced on any platform match.
func IsRecipePath(rel string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	if !strings.HasSuffix(rp, ".json") {
		return false
	}
	if !strings.Contains("/"+rp, "/data/") {
		return false
	}
	return strings.Contains(rp, "/recipes/")
}
