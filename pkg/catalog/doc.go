// Package catalog provides a reusable library for a media catalog
// (movies, series, anime) with nested download groups and links.
//
// It exposes a single Service interface that orchestrates validated
// creation and replacement of catalog entries, retrieval, in-memory
// type filtering and substring search, and category aggregation for
// dashboards. Store adapters (e.g., memory, Postgres, MongoDB) are
// provided under subpackages; each persists a Content record as one
// self-contained document with its download groups nested inside it,
// so reads and writes are atomic at the record level.
//
// Validation runs once, at the write boundary, before any store
// interaction. The query engine never fails: the worst case for an
// unmatched filter is an empty result set.
package catalog
