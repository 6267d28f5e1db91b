// Package storage defines the persistence interfaces for the engine.
//
// It provides the event journal abstraction declared events land in after
// each successful command invocation. Implementations (e.g., SQLite) live
// in subpackages; the archive subpackage handles offline export.
//
// # Error Types
//
// The package defines common error types used across storage implementations:
//   - ErrNotFound: Indicates a requested record is missing.
package storage
