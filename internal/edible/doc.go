// Package edible loads the externally generated edible item masterlist.
//
// The list is produced at game runtime and is treated as ground truth, not
// derived knowledge. Its format is a fixed interface: a JSON object with an
// "items" array of item identifier strings. Entries that are not namespaced
// strings are ignored; a missing file or a missing "items" field is a fatal
// precondition for the whole run.
package edible
