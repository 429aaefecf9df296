// Package storage persists whole inventory snapshots.
//
// A Gateway loads and saves the complete ordered record list in one call; it
// never writes incrementally. Two backends are provided: a JSON snapshot file
// (the default) and a SQLite database holding the same rows. Both open their
// file, read or write everything, and close it within a single call, so no
// handle outlives an operation.
//
// A location that does not exist yet is reported as ErrNotFound from Load so
// callers can keep whatever inventory they already hold.
package storage
