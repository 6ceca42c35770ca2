// Package artifact renders and persists the machine-owned summary files a
// sync run produces: the direct ingredient map, the generated food list, and
// the run statistics.
//
// Every artifact is serialized deterministically — sorted keys, two-space
// indentation, trailing newline — so identical input yields byte-identical
// files across runs, and every write goes through an atomic replace.
package artifact
