// Package file stores runoff's configuration as TOML on disk.
//
// Nested tables are flattened to dotted keys on load, so
//
//	[election]
//	runoff_date = 2025-07-01
//
// is read back as "election.runoff_date". Set writes the whole file.
package file
