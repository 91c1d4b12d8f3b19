package chain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Scalar domains a document may ask for.
const (
	DomainSymbolic = "symbolic"
	DomainNumeric  = "numeric"
)

// Document is a named kinematic chain.
type Document struct {
	Name     string             `yaml:"name" json:"name" mapstructure:"name"`
	Domain   string             `yaml:"domain,omitempty" json:"domain,omitempty" mapstructure:"domain"`
	Bindings map[string]float64 `yaml:"bindings,omitempty" json:"bindings,omitempty" mapstructure:"bindings"`
	Links    []Link             `yaml:"links" json:"links" mapstructure:"links"`
}

// Link is one element of a chain. Exactly one field is set.
type Link struct {
	DH        *DH      `yaml:"dh,omitempty" json:"dh,omitempty" mapstructure:"dh"`
	Screw     *Screw   `yaml:"screw,omitempty" json:"screw,omitempty" mapstructure:"screw"`
	Rotate    *Rotate  `yaml:"rotate,omitempty" json:"rotate,omitempty" mapstructure:"rotate"`
	Translate []string `yaml:"translate,omitempty" json:"translate,omitempty" mapstructure:"translate"`
}

// DH holds Denavit-Hartenberg parameters. Empty fields are zero.
type DH struct {
	Theta string `yaml:"theta,omitempty" json:"theta,omitempty" mapstructure:"theta"`
	D     string `yaml:"d,omitempty" json:"d,omitempty" mapstructure:"d"`
	A     string `yaml:"a,omitempty" json:"a,omitempty" mapstructure:"a"`
	Alpha string `yaml:"alpha,omitempty" json:"alpha,omitempty" mapstructure:"alpha"`
}

// Screw is a screw motion in Plücker form: rotation Theta about the line
// (L, M) and translation D along L.
type Screw struct {
	L     []string `yaml:"l" json:"l" mapstructure:"l"`
	M     []string `yaml:"m" json:"m" mapstructure:"m"`
	Theta string   `yaml:"theta,omitempty" json:"theta,omitempty" mapstructure:"theta"`
	D     string   `yaml:"d,omitempty" json:"d,omitempty" mapstructure:"d"`
}

// Rotate is a rotation by Angle about an axis through the origin.
type Rotate struct {
	Axis  []string `yaml:"axis" json:"axis" mapstructure:"axis"`
	Angle string   `yaml:"angle" json:"angle" mapstructure:"angle"`
}

// Kind names the populated field, or returns "" when none or several are.
func (l Link) Kind() string {
	var kinds []string
	if l.DH != nil {
		kinds = append(kinds, "dh")
	}
	if l.Screw != nil {
		kinds = append(kinds, "screw")
	}
	if l.Rotate != nil {
		kinds = append(kinds, "rotate")
	}
	if l.Translate != nil {
		kinds = append(kinds, "translate")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// ParseDocument decodes a YAML (or JSON) chain document and validates it.
// Numbers are accepted wherever an expression string is expected.
func ParseDocument(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	doc, err := DecodeDocument(raw)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeDocument builds a Document from a generic map, such as the
// arguments of an MCP tool call, and validates it.
func DecodeDocument(raw map[string]any) (*Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Marshal renders the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Validate checks the document shape. Expressions are not parsed here;
// Build reports those errors against the chosen domain.
func (d *Document) Validate() error {
	switch d.Domain {
	case "", DomainSymbolic, DomainNumeric:
	default:
		return &ValidationError{Link: -1, Field: "domain", Reason: fmt.Sprintf("unknown domain %q", d.Domain)}
	}
	if len(d.Links) == 0 {
		return &ValidationError{Link: -1, Field: "links", Reason: "at least one link is required"}
	}
	for i, l := range d.Links {
		switch l.Kind() {
		case "dh":
		case "screw":
			if len(l.Screw.L) != 3 {
				return &ValidationError{Link: i, Field: "screw.l", Reason: "must have 3 components"}
			}
			if len(l.Screw.M) != 3 {
				return &ValidationError{Link: i, Field: "screw.m", Reason: "must have 3 components"}
			}
		case "rotate":
			if len(l.Rotate.Axis) != 3 {
				return &ValidationError{Link: i, Field: "rotate.axis", Reason: "must have 3 components"}
			}
			if l.Rotate.Angle == "" {
				return &ValidationError{Link: i, Field: "rotate.angle", Reason: "required"}
			}
		case "translate":
			if len(l.Translate) != 3 {
				return &ValidationError{Link: i, Field: "translate", Reason: "must have 3 components"}
			}
		default:
			return &ValidationError{Link: i, Field: "kind", Reason: "exactly one of dh, screw, rotate or translate must be set"}
		}
	}
	return nil
}

// MapExpressions returns a copy of d with every expression string replaced
// by fn(field, expr). Field paths look like "links[2].dh.theta". The first
// error from fn is returned.
func (d *Document) MapExpressions(fn func(field, expr string) (string, error)) (*Document, error) {
	c := d.Clone()
	var firstErr error
	apply := func(field string, s *string) {
		if firstErr != nil || *s == "" {
			return
		}
		out, err := fn(field, *s)
		if err != nil {
			firstErr = err
			return
		}
		*s = out
	}
	applyAll := func(field string, ss []string) {
		for i := range ss {
			apply(fmt.Sprintf("%s[%d]", field, i), &ss[i])
		}
	}
	for i := range c.Links {
		l := &c.Links[i]
		base := fmt.Sprintf("links[%d]", i)
		if l.DH != nil {
			apply(base+".dh.theta", &l.DH.Theta)
			apply(base+".dh.d", &l.DH.D)
			apply(base+".dh.a", &l.DH.A)
			apply(base+".dh.alpha", &l.DH.Alpha)
		}
		if l.Screw != nil {
			applyAll(base+".screw.l", l.Screw.L)
			applyAll(base+".screw.m", l.Screw.M)
			apply(base+".screw.theta", &l.Screw.Theta)
			apply(base+".screw.d", &l.Screw.D)
		}
		if l.Rotate != nil {
			applyAll(base+".rotate.axis", l.Rotate.Axis)
			apply(base+".rotate.angle", &l.Rotate.Angle)
		}
		applyAll(base+".translate", l.Translate)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return c, nil
}

// DomainOr returns the document's domain, or fallback when it names none.
func (d *Document) DomainOr(fallback string) string {
	if d.Domain == "" {
		return fallback
	}
	return d.Domain
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := *d
	if d.Bindings != nil {
		c.Bindings = make(map[string]float64, len(d.Bindings))
		for k, v := range d.Bindings {
			c.Bindings[k] = v
		}
	}
	if d.Links != nil {
		c.Links = make([]Link, len(d.Links))
		for i, l := range d.Links {
			c.Links[i] = l.clone()
		}
	}
	return &c
}

func (l Link) clone() Link {
	var c Link
	if l.DH != nil {
		dh := *l.DH
		c.DH = &dh
	}
	if l.Screw != nil {
		s := *l.Screw
		s.L = append([]string(nil), l.Screw.L...)
		s.M = append([]string(nil), l.Screw.M...)
		c.Screw = &s
	}
	if l.Rotate != nil {
		r := *l.Rotate
		r.Axis = append([]string(nil), l.Rotate.Axis...)
		c.Rotate = &r
	}
	if l.Translate != nil {
		c.Translate = append([]string{}, l.Translate...)
	}
	return c
}
