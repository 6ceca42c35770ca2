package token

import "strings"

// Kind identifies the category of a canonical token.
type Kind string

const (
	KindItem  Kind = "item"
	KindTag   Kind = "tag"
	KindFluid Kind = "fluid"
)

const (
	itemPrefix  = "item:"
	tagPrefix   = "tag:"
	fluidPrefix = "fluid:"
)

// IsItemID reports whether s looks like a namespaced item identifier
// ("namespace:path"). Tag references ("#ns:path") do not qualify.
func IsItemID(s string) bool {
	return strings.Contains(s, ":") && !strings.HasPrefix(s, "#")
}

// TagFromHash strips the "#" marker from a tag reference like "#forge:dough".
// The second return is false when s is not a tag reference.
func TagFromHash(s string) (string, bool) {
	if strings.HasPrefix(s, "#") && strings.Contains(s[1:], ":") {
		return s[1:], true
	}
	return "", false
}

// Item builds the canonical token for an item identifier.
func Item(id string) string { return itemPrefix + id }

// Tag builds the canonical token for a tag identifier (no "#" marker).
func Tag(id string) string { return tagPrefix + id }

// Fluid builds the canonical token for a fluid identifier.
func Fluid(id string) string { return fluidPrefix + id }

// Canonicalize collapses formatting variants of an ingredient reference into
// the canonical "kind:namespace:path" form. Rules, in priority order:
//
//  1. already canonical (item:/tag:/fluid: prefix) -> unchanged
//  2. bare namespaced id -> item token
//  3. "#"-prefixed namespaced id -> tag token, marker stripped
//  4. anything else -> unchanged
//
// It never fails; unrecognized shapes are the caller's problem.
func Canonicalize(raw string) string {
	t := strings.TrimSpace(raw)

	if strings.HasPrefix(t, itemPrefix) || strings.HasPrefix(t, tagPrefix) || strings.HasPrefix(t, fluidPrefix) {
		return t
	}
	if IsItemID(t) {
		return Item(t)
	}
	if id, ok := TagFromHash(t); ok {
		return Tag(id)
	}
	return t
}

// KindOf returns the kind of a canonical token and true, or false when the
// string is not in canonical form.
func KindOf(canonical string) (Kind, bool) {
	switch {
	case strings.HasPrefix(canonical, itemPrefix):
		return KindItem, true
	case strings.HasPrefix(canonical, tagPrefix):
		return KindTag, true
	case strings.HasPrefix(canonical, fluidPrefix):
		return KindFluid, true
	default:
		return "", false
	}
}

// ItemID extracts the "namespace:path" identifier from a canonical item
// token. It returns false for tags, fluids, and non-canonical strings.
func ItemID(canonical string) (string, bool) {
	if strings.HasPrefix(canonical, itemPrefix) {
		return canonical[len(itemPrefix):], true
	}
	return "", false
}
