package dualquat

import (
	"fmt"

	"github.com/aretw0/symdq/pkg/scalar"
)

// Diff differentiates every component of d with respect to variable. The
// domain must implement scalar.Differ.
func Diff[S any](d DualQuaternion[S], variable string) (DualQuaternion[S], error) {
	differ, ok := d.dom.(scalar.Differ[S])
	if !ok {
		return DualQuaternion[S]{}, fmt.Errorf("%w: %s", ErrNotDifferentiable, d.dom.Name())
	}
	return d.Map(func(s S) S { return differ.Diff(s, variable) }), nil
}
