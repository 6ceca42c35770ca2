package registry

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"

	"tfoods/internal/directmap"
	"tfoods/internal/edible"
	"tfoods/internal/logging"
)

// Stats counts the state transitions one sync performed (or, in dry-run
// mode, would perform).
type Stats struct {
	Created  int
	Updated  int
	Disabled int
	Corrupt  int
}

// Anomaly reports a node file that exists but could not be parsed as a
// valid record. It is surfaced distinctly from "node absent": the file is
// left exactly as found and the run continues.
type Anomaly struct {
	ID   string
	Path string
	Err  error
}

// SyncOptions configures one reconciliation pass.
type SyncOptions struct {
	// IncludeIngredients widens the expected node set to items referenced
	// only as direct ingredients, so they get a registry presence too.
	IncludeIngredients bool
	// ManualFields overrides the operator-owned field boundary. Empty means
	// DefaultManualFields.
	ManualFields []string
	// DryRun computes every transition without touching the filesystem.
	DryRun bool
	Logger *slog.Logger
}

func (o SyncOptions) manualFields() []string {
	if len(o.ManualFields) == 0 {
		return DefaultManualFields
	}
	return o.ManualFields
}

// ComputeExpected derives the set of node identifiers that should exist:
// every direct map output, plus (optionally) every item referenced as a
// direct ingredient. Returned sorted.
func ComputeExpected(m directmap.Map, includeIngredients bool) []string {
	set := make(map[string]struct{}, len(m))
	for id := range m {
		set[id] = struct{}{}
	}
	if includeIngredients {
		for _, id := range m.ItemIngredients() {
			set[id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sync reconciles the on-disk registry with the expected node set:
//
//   - absent + expected: create with defaults and current structural facts
//   - present + expected: refresh structural fields, keep everything else
//   - present + not expected: disable in place, keep everything else
//
// No file is ever deleted and no manual field is ever overwritten. Nodes
// whose files cannot be parsed are returned as anomalies and skipped. An
// unchanged node is not rewritten, so a second run against unchanged input
// performs zero transitions.
func Sync(layout Layout, expected []string, m directmap.Map, edibles edible.Set, opts SyncOptions) (Stats, []Anomaly, error) {
	logger := logging.WithComponent(opts.Logger, "registry")
	manual := opts.manualFields()

	onDisk, err := Snapshot(layout.NodesDir())
	if err != nil {
		return Stats{}, nil, err
	}
	onDiskSet := make(map[string]struct{}, len(onDisk))
	for _, id := range onDisk {
		onDiskSet[id] = struct{}{}
	}
	expectedSet := make(map[string]struct{}, len(expected))
	for _, id := range expected {
		expectedSet[id] = struct{}{}
	}

	var stats Stats
	var anomalies []Anomaly

	for _, id := range expected {
		path := layout.NodePath(id)

		if _, exists := onDiskSet[id]; !exists {
			node := NewNode(id, manual)
			node.UpdateStructural(id, m, edibles, manual)
			if !opts.DryRun {
				if err := SaveNode(path, node); err != nil {
					return stats, anomalies, fmt.Errorf("create node %s: %w", id, err)
				}
			}
			stats.Created++
			logger.Debug("node created", logging.String(logging.FieldNode, id))
			continue
		}

		node, loadErr := LoadNode(path)
		if loadErr != nil {
			stats.Corrupt++
			anomalies = append(anomalies, Anomaly{ID: id, Path: path, Err: loadErr})
			logger.Warn("corrupt node record left untouched",
				logging.String(logging.FieldNode, id), logging.Error(loadErr))
			continue
		}

		before, err := node.Encode()
		if err != nil {
			return stats, anomalies, fmt.Errorf("encode node %s: %w", id, err)
		}
		node.UpdateStructural(id, m, edibles, manual)
		after, err := node.Encode()
		if err != nil {
			return stats, anomalies, fmt.Errorf("encode node %s: %w", id, err)
		}
		if bytes.Equal(before, after) {
			continue
		}
		if !opts.DryRun {
			if err := SaveNode(path, node); err != nil {
				return stats, anomalies, fmt.Errorf("update node %s: %w", id, err)
			}
		}
		stats.Updated++
		logger.Debug("node updated", logging.String(logging.FieldNode, id))
	}

	for _, id := range onDisk {
		if _, expectedStill := expectedSet[id]; expectedStill {
			continue
		}
		path := layout.NodePath(id)
		node, loadErr := LoadNode(path)
		if loadErr != nil {
			stats.Corrupt++
			anomalies = append(anomalies, Anomaly{ID: id, Path: path, Err: loadErr})
			logger.Warn("corrupt node record left untouched",
				logging.String(logging.FieldNode, id), logging.Error(loadErr))
			continue
		}
		if node.Status() == StatusDisabled {
			continue
		}
		node.Disable()
		if !opts.DryRun {
			if err := SaveNode(path, node); err != nil {
				return stats, anomalies, fmt.Errorf("disable node %s: %w", id, err)
			}
		}
		stats.Disabled++
		logger.Debug("node disabled", logging.String(logging.FieldNode, id))
	}

	return stats, anomalies, nil
}
