// Package sqlite provides a SQLite-backed implementation of the
// project store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory. Projects are kept as a JSON blob next to
// their indexed columns; the serialized format is internal to this
// adapter.
//
// # Data Location
//
// By default, the database is stored at ~/.pluginsmith/data/projects.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
