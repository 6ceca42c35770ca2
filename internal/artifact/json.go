package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tfoods/internal/fileutil"
)

// EncodeJSON renders v deterministically: two-space indentation and a
// trailing newline. Map keys are sorted by encoding/json.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON persists v to path through an atomic replace.
func WriteJSON(path string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}
