/*
Package symdq is a dual-quaternion algebra engine for rigid-body kinematics
that works symbolically or numerically.

A dual quaternion P + εQ (ε² = 0) encodes a rotation in P and the coupled
translation in Q. The engine builds them from screw parameters, composes
them, checks unit-ness, transforms points and evaluates whole kinematic
chains, with every scalar either an exact symbolic expression or a float64.

# Architecture

The algebra lives in generic packages under pkg/ and never touches I/O:

  - pkg/cas: the symbolic expression engine (canonical polynomials over
    symbols and sin/cos/sqrt).
  - pkg/scalar: the Domain capability interface with its Symbolic and
    Float implementations.
  - pkg/quaternion and pkg/dualquat: the value types and their operations.
  - pkg/chain: YAML chain documents composed into one dual quaternion.

The Engine in this package is the string-in/string-out facade the CLI, the
HTTP server and the MCP server share. Chain documents are persisted through
ports.ChainStore, with memory, file and Redis adapters.

# Usage

	eng, err := symdq.New(symdq.WithDomain(symdq.DomainSymbolic))
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Screw(ctx, symdq.ScrewParams{
		L:     symdq.Vector3{"0", "0", "1"},
		M:     symdq.Vector3{"0", "-x", "0"},
		Theta: "theta",
		D:     "0",
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Text)

Library users who need typed values can skip the Engine and use
pkg/dualquat directly.
*/
package symdq
