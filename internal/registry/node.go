package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"tfoods/internal/directmap"
	"tfoods/internal/edible"
)

// Well-known node fields. Everything not listed here and not configured as
// manual is unknown and passes through syncs untouched.
const (
	FieldID                = "id"
	FieldStatus            = "status"
	FieldEdible            = "edible"
	FieldDirectIngredients = "direct_ingredients"
	FieldAssignedBuffs     = "assigned_buffs"
)

// Node status values.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// DefaultManualFields is the baseline operator-owned field set. The boundary
// is configurable; assigned_buffs is always treated as manual.
var DefaultManualFields = []string{FieldAssignedBuffs}

// Node is one persisted registry record. Values stay as raw JSON so unknown
// and manual fields survive load/save cycles byte-for-byte.
type Node map[string]json.RawMessage

// NewNode builds the minimal record for an item seen for the first time:
// identity set, manual fields defaulted to empty lists, status active.
func NewNode(id string, manualFields []string) Node {
	n := Node{}
	n.setString(FieldID, id)
	n.setString(FieldStatus, StatusActive)
	for _, field := range manualFields {
		n[field] = json.RawMessage("[]")
	}
	return n
}

// ID returns the node's item identifier.
func (n Node) ID() (string, bool) {
	return n.getString(FieldID)
}

// Status returns the node's status field, defaulting to active when absent.
func (n Node) Status() string {
	if s, ok := n.getString(FieldStatus); ok {
		return s
	}
	return StatusActive
}

// UpdateStructural overwrites the machine-owned fields from the current
// direct map and edible classification. Manual fields are never written:
// missing ones are defaulted only on nodes that do not yet carry them, and
// existing values are left alone. Unknown fields are untouched.
func (n Node) UpdateStructural(id string, m directmap.Map, edibles edible.Set, manualFields []string) {
	n.setString(FieldID, id)
	n.setString(FieldStatus, StatusActive)
	n.set(FieldEdible, edibles.Contains(id))

	ingredients := m[id]
	if ingredients == nil {
		ingredients = []string{}
	}
	n.set(FieldDirectIngredients, ingredients)

	for _, field := range manualFields {
		if _, exists := n[field]; !exists {
			n[field] = json.RawMessage("[]")
		}
	}
}

// Disable flips the status flag. Structural fields keep their last-known
// values; nothing else changes.
func (n Node) Disable() {
	n.setString(FieldStatus, StatusDisabled)
}

// Encode renders the node deterministically: sorted keys, two-space
// indentation, trailing newline.
func (n Node) Encode() ([]byte, error) {
	keys := make([]string, 0, len(n))
	for k := range n {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := []byte("{\n")
	for i, k := range keys {
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("encode node key %q: %w", k, err)
		}
		value, err := indentValue(n[k])
		if err != nil {
			return nil, fmt.Errorf("encode node field %q: %w", k, err)
		}
		buf = append(buf, "  "...)
		buf = append(buf, keyJSON...)
		buf = append(buf, ": "...)
		buf = append(buf, value...)
		if i < len(keys)-1 {
			buf = append(buf, ',')
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, "}\n"...)
	return buf, nil
}

// indentValue re-renders a raw value with the node's indentation so nested
// structures stay stable regardless of how the source file was formatted.
// The token stream is never decoded: number literals and object key order
// inside unknown or manual values must survive byte-for-byte.
func indentValue(raw json.RawMessage) ([]byte, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "  ", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (n Node) set(field string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		// All structural values are plain strings, bools, and string
		// slices; marshal cannot fail for them.
		panic(fmt.Sprintf("marshal structural field %s: %v", field, err))
	}
	n[field] = json.RawMessage(raw)
}

func (n Node) setString(field, value string) {
	n.set(field, value)
}

func (n Node) getString(field string) (string, bool) {
	raw, ok := n[field]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
