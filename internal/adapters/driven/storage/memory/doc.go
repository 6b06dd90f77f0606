// Package memory provides in-memory implementations of the driven storage
// ports.
//
// DatasetStore holds the latest load of each dataset for the lifetime of
// the process; there is no persistence beyond the fetched CSV snapshots.
// ConfigStore backs tests and runs without a config directory.
package memory
