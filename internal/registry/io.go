package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"tfoods/internal/fileutil"
)

func join(parts ...string) string { return filepath.Join(parts...) }

// LoadNode reads and decodes one node file. Errors distinguish "file does
// not exist" (os.IsNotExist on the wrapped error) from "file exists but is
// not a valid record".
func LoadNode(path string) (Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read node: %w", err)
	}
	var n Node
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("parse node %s: %w", filepath.Base(path), err)
	}
	if n == nil {
		return nil, fmt.Errorf("parse node %s: not an object", filepath.Base(path))
	}
	return n, nil
}

// SaveNode persists a node deterministically through an atomic replace.
func SaveNode(path string, n Node) error {
	data, err := n.Encode()
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}

// Snapshot lists the node identifiers currently on disk, sorted. Files that
// do not follow the node naming convention are ignored.
func Snapshot(nodesDir string) ([]string, error) {
	entries, err := os.ReadDir(nodesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read nodes directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id, ok := NodeID(entry.Name()); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
