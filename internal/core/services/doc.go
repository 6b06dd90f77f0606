// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The normalisation and derivation functions (NormalizeName, Dedupe,
// Aggregate, BatchDeltas, Align and friends) are pure and read no ambient
// state; the dashboard services only fetch a loaded dataset and apply them.
package services
