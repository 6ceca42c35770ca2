// Package directmap aggregates per-recipe extraction results into the
// direct ingredient map: output item identifier -> sorted, deduplicated
// canonical token list.
//
// The merge is associative and commutative, so the finalized map is a pure
// function of the document set regardless of stream order. Accumulation runs
// on a single-writer Builder fed through a channel; no locking is needed
// even when extraction happens on a worker pool.
package directmap
