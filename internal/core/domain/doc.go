// Package domain defines the core entities for the runoff tracker.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - RawRecord: One ingested CSV row, keyed by column name
//   - Transaction: A contribution or independent expenditure
//   - AggregateEntry: A per-entity monetary total
//   - Snapshot: One cumulative ballot-return count
//   - BatchDelta: The change between two consecutive snapshots
//   - Comparison: Two elections aligned on days before election day
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/shopspring/decimal
//   - Cannot Import: Any internal/ package
package domain
