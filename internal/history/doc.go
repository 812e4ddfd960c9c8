// Package history persists a log of pipeline runs in a local SQLite
// database. Each run stores its source, method, counts, and the user and
// session that produced it. The schema carries a version marker; a mismatch
// is surfaced as an actionable error rather than silently migrated, since
// the history is advisory and cheap to clear.
package history
