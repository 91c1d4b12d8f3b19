// Package quaternion implements quaternions over a scalar.Domain: the ring
// element the dual-quaternion layer builds on. Values are immutable and
// carry their domain so that arithmetic reads naturally (p.Mul(q).Add(r)).
package quaternion
