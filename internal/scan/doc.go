// Package scan discovers recipe sources and streams recipe documents out of
// them.
//
// User inputs expand into concrete sources: mod jars (zip archives) and
// datapack-style directory trees. Only paths matching the namespaced recipe
// convention data/<namespace>/recipes/**/*.json are considered. Extraction
// across sources runs on a bounded errgroup worker pool feeding a
// single-writer direct map reducer; per-document failures skip only that
// document and unreadable archives skip only that archive, with both counted
// but never failing the run.
package scan
