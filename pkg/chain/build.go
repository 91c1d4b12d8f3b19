package chain

import (
	"fmt"

	"github.com/aretw0/symdq/pkg/dualquat"
	"github.com/aretw0/symdq/pkg/scalar"
)

// Build multiplies the document's links left to right into one dual
// quaternion over dom. Expression errors and invalid screws are reported
// with the index of the offending link.
func Build[S any](dom scalar.Domain[S], doc *Document) (dualquat.DualQuaternion[S], error) {
	if err := doc.Validate(); err != nil {
		return dualquat.DualQuaternion[S]{}, err
	}
	acc := dualquat.Identity(dom)
	for i, l := range doc.Links {
		d, err := buildLink(dom, l)
		if err != nil {
			return dualquat.DualQuaternion[S]{}, fmt.Errorf("chain: link %d (%s): %w", i, l.Kind(), err)
		}
		acc = acc.Mul(d)
	}
	return acc, nil
}

func buildLink[S any](dom scalar.Domain[S], l Link) (dualquat.DualQuaternion[S], error) {
	p := parser[S]{dom: dom}
	switch l.Kind() {
	case "dh":
		theta, d, a, alpha := p.scalar("theta", l.DH.Theta), p.scalar("d", l.DH.D), p.scalar("a", l.DH.A), p.scalar("alpha", l.DH.Alpha)
		if p.err != nil {
			return dualquat.DualQuaternion[S]{}, p.err
		}
		return DHLink(dom, theta, d, a, alpha), nil
	case "screw":
		lv, mv := p.vector("l", l.Screw.L), p.vector("m", l.Screw.M)
		theta, d := p.scalar("theta", l.Screw.Theta), p.scalar("d", l.Screw.D)
		if p.err != nil {
			return dualquat.DualQuaternion[S]{}, p.err
		}
		return dualquat.FromScrew(dom, lv, mv, theta, d)
	case "rotate":
		axis, angle := p.vector("axis", l.Rotate.Axis), p.scalar("angle", l.Rotate.Angle)
		if p.err != nil {
			return dualquat.DualQuaternion[S]{}, p.err
		}
		return dualquat.Rotation(dom, axis, angle), nil
	case "translate":
		v := p.vector("translate", l.Translate)
		if p.err != nil {
			return dualquat.DualQuaternion[S]{}, p.err
		}
		return dualquat.Translation(dom, v), nil
	}
	return dualquat.DualQuaternion[S]{}, &ValidationError{Link: -1, Field: "kind", Reason: "unknown link"}
}

// DHLink returns Trans(z, d) · Rot(z, theta) · Trans(x, a) · Rot(x, alpha).
func DHLink[S any](dom scalar.Domain[S], theta, d, a, alpha S) dualquat.DualQuaternion[S] {
	zero, one := dom.Zero(), dom.One()
	z := [3]S{zero, zero, one}
	x := [3]S{one, zero, zero}
	return dualquat.Translation(dom, [3]S{zero, zero, d}).
		Mul(dualquat.Rotation(dom, z, theta)).
		Mul(dualquat.Translation(dom, [3]S{a, zero, zero})).
		Mul(dualquat.Rotation(dom, x, alpha))
}

// parser keeps the first parse error so link builders can read every field
// before checking.
type parser[S any] struct {
	dom scalar.Domain[S]
	err error
}

func (p *parser[S]) scalar(field, s string) S {
	if s == "" {
		return p.dom.Zero()
	}
	v, err := p.dom.Parse(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("field %q: %w", field, err)
	}
	return v
}

func (p *parser[S]) vector(field string, ss []string) [3]S {
	var v [3]S
	for i := range v {
		if i < len(ss) {
			v[i] = p.scalar(fmt.Sprintf("%s[%d]", field, i), ss[i])
		} else {
			v[i] = p.dom.Zero()
		}
	}
	return v
}
