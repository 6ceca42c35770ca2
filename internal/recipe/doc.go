// Package recipe extracts outputs and direct ingredient tokens from raw
// recipe documents.
//
// Recipe JSON in the wild is schema-inconsistent: every mod loader and data
// generator invents its own field names and nesting. The extractors here are
// deliberately total — they recognize a family of known shapes, contribute
// nothing for shapes they do not recognize, and never return an error. A
// document that yields no outputs or no tokens is simply skipped upstream.
//
// Extraction is shallow by design: only the inputs a recipe declares
// literally are collected, with no expansion through other recipes.
package recipe
