// Package scalar defines the scalar domain the quaternion layers are written
// against.
//
// A Domain bundles arithmetic, the elementary functions needed for screw
// motions, canonicalization and equality. Two interchangeable variants are
// provided:
//
//   - Float: float64 arithmetic with tolerance-based equality.
//   - Symbolic: exact expressions from package cas, compared after
//     simplification.
//
// Callers that need derivatives type-assert for Differ.
package scalar
