// Package registry persists per-item nodes and reconciles them against the
// derived direct ingredient map.
//
// A node file mixes three field categories: identity (the item id),
// structural fields the reconciler owns and overwrites on every sync, and
// manual fields an operator curates. The reconciler's contract is strictly
// non-destructive: manual fields are never written once they exist, unknown
// fields pass through verbatim, and node files are never deleted — an item
// that drops out of the expected set is disabled in place.
//
// Node writes are atomic (temp file + rename) and byte-deterministic, so an
// unchanged node is never rewritten and repeated runs against unchanged
// input are no-ops. A flock on the registry root keeps two syncs from
// racing on the same tree.
package registry
