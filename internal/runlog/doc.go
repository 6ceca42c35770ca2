// Package runlog persists sync run history in SQLite.
//
// Each completed run is appended as one immutable row: identity, timing,
// the dry-run flag, and the counters the run produced. The history backs
// the runs command and makes registry churn auditable over time. The
// schema is versioned; bump schemaVersion and update schema.sql together
// when columns change.
package runlog
