/*
Package chain composes kinematic chains into a single dual quaternion.

A chain is described by a Document, usually read from YAML:

	name: planar-arm
	domain: symbolic
	links:
	  - dh: {theta: theta1, d: 0, a: l1, alpha: 0}
	  - screw: {l: [0, 0, 1], m: [0, -x, 0], theta: theta2, d: 0}
	  - rotate: {axis: [0, 0, 1], angle: phi}
	  - translate: [tx, 0, 0]

Links are multiplied left to right, so the first link is the one closest to
the base frame. Every scalar is an expression string parsed by the target
scalar domain.
*/
package chain
