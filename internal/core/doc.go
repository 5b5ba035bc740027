// Package core implements the applicant record store and the logic around
// it: validation, duplicate detection, identifier generation, CSV row
// parsing, and filtered queries. It has no UI or HTTP dependencies and can
// be driven by any frontend.
//
// # Architecture
//
// The package is organized around a small set of collaborating pieces:
//
//   - Store: the ordered, in-memory collection of applicant records. All
//     mutation goes through its public operations (Add, Update, Delete,
//     BulkAdd); the backing collection is never exposed. A single RWMutex
//     makes every public operation atomic, so duplicate checks and commits
//     for one call always complete before another call is observed.
//
//   - ParseRows: maps raw CSV text into applicant drafts. Field mapping and
//     defaulting happen here; rows that could never become valid records
//     (empty name or email) are dropped before they reach the store.
//
//   - Draft validation and defaulting: a draft is usable when its trimmed
//     name and email are non-empty. Everything else gets a default rather
//     than a rejection (status New, source Website, experience 0).
//
//   - Identifiers: each record gets an opaque UUID plus a human-facing
//     tracking number ("ATS" + integer). Tracking numbers are strictly
//     increasing for the lifetime of the store, including within a single
//     bulk batch.
//
//   - Events: mutations emit domain events (success, error, warning, info)
//     to a Sink. The sink owns display and dismissal; the store never
//     queries it back.
//
// # Error Handling
//
// Nothing in this package is fatal. Duplicate emails abort the operation
// and surface as an error event; invalid bulk rows are skipped and
// aggregated into the batch error list; updates and deletes of unknown ids
// are silent no-ops. BulkAdd always returns a complete accounting (added,
// duplicates, errors) rather than failing partway.
package core
