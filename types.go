package symdq

// Vector3 is a point or direction given as three expressions.
type Vector3 [3]string

// Quat is a quaternion a + bi + cj + dk given as four expressions.
type Quat [4]string

// Dual is a dual quaternion given by its real and dual parts.
type Dual struct {
	Real Quat `json:"real"`
	Dual Quat `json:"dual"`
}

// ScrewParams are the arguments of a screw motion: rotation Theta about the
// line with unit direction L and moment M, translation D along L.
type ScrewParams struct {
	L     Vector3 `json:"l"`
	M     Vector3 `json:"m"`
	Theta string  `json:"theta"`
	D     string  `json:"d"`
}

// Motion names a dual quaternion either explicitly or by screw parameters.
// Exactly one field must be set.
type Motion struct {
	Dual  *Dual        `json:"dual,omitempty"`
	Screw *ScrewParams `json:"screw,omitempty"`
}

// Operand is one argument of Add or Multiply. Exactly one field must be set.
type Operand struct {
	Scalar     *string `json:"scalar,omitempty"`
	Quaternion *Quat   `json:"quaternion,omitempty"`
	Dual       *Dual   `json:"dual,omitempty"`
}

// ScalarArg, QuaternionArg and DualArg build operands.
func ScalarArg(s string) Operand { return Operand{Scalar: &s} }

func QuaternionArg(q Quat) Operand { return Operand{Quaternion: &q} }

func DualArg(d Dual) Operand { return Operand{Dual: &d} }

// Result is a dual quaternion rendered in the domain it was computed in.
type Result struct {
	Domain string `json:"domain"`
	Real   Quat   `json:"real"`
	Dual   Quat   `json:"dual"`
	Text   string `json:"text"`
}

// OperandResult is the outcome of Add or Multiply. Kind is "scalar",
// "quaternion" or "dual quaternion" and selects the populated field.
type OperandResult struct {
	Domain     string `json:"domain"`
	Kind       string `json:"kind"`
	Scalar     string `json:"scalar,omitempty"`
	Quaternion *Quat  `json:"quaternion,omitempty"`
	Dual       *Dual  `json:"dual,omitempty"`
	Text       string `json:"text"`
}

// PointResult is a transformed point.
type PointResult struct {
	Domain string  `json:"domain"`
	Point  Vector3 `json:"point"`
}

// UnitResult reports whether a dual quaternion is a unit one.
type UnitResult struct {
	Domain string `json:"domain"`
	Unit   bool   `json:"unit"`
}

// ChainResult is an evaluated chain with its rigid-motion readouts.
type ChainResult struct {
	Name string `json:"name"`
	Result
	Unit        bool       `json:"unit"`
	Translation Vector3    `json:"translation"`
	Rotation    [3]Vector3 `json:"rotation"`
}
