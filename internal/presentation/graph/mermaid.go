package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/symdq/pkg/cas"
	"github.com/aretw0/symdq/pkg/chain"
)

// Overlay marks the links driven by a joint variable.
type Overlay struct {
	Variable string
}

// GenerateMermaid produces a Mermaid flowchart of a kinematic chain: one
// frame per link boundary, one edge per link labelled with its parameters.
// Shapes:
// - Base and tool frames: ((Circle))
// - Intermediate frames: [Rectangle]
// With an overlay, links whose expressions mention the variable are
// styled as joints.
func GenerateMermaid(doc *chain.Document, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	n := len(doc.Links)
	for i := 0; i <= n; i++ {
		opener, closer := "[", "]"
		label := fmt.Sprintf("frame %d", i)
		switch i {
		case 0:
			opener, closer, label = "((", "))", "base"
		case n:
			opener, closer, label = "((", "))", "tool"
		}
		fmt.Fprintf(&sb, "    f%d%s\"%s\"%s\n", i, opener, label, closer)
	}

	var joints []int
	for i, l := range doc.Links {
		fmt.Fprintf(&sb, "    f%d -- \"%s\" --> f%d\n", i, escape(Describe(l)), i+1)
		if overlay != nil && mentions(l, overlay.Variable) {
			joints = append(joints, i)
		}
	}

	if overlay != nil && len(joints) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef joint fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, i := range joints {
			fmt.Fprintf(&sb, "    class f%d joint;\n", i+1)
		}
	}

	return sb.String()
}

// Describe renders one link as a short label.
func Describe(l chain.Link) string {
	switch l.Kind() {
	case "dh":
		return fmt.Sprintf("DH θ=%s d=%s a=%s α=%s", or0(l.DH.Theta), or0(l.DH.D), or0(l.DH.A), or0(l.DH.Alpha))
	case "screw":
		return fmt.Sprintf("screw l=[%s] m=[%s] θ=%s d=%s",
			strings.Join(l.Screw.L, ","), strings.Join(l.Screw.M, ","), or0(l.Screw.Theta), or0(l.Screw.D))
	case "rotate":
		return fmt.Sprintf("rotate %s about [%s]", l.Rotate.Angle, strings.Join(l.Rotate.Axis, ","))
	case "translate":
		return fmt.Sprintf("translate [%s]", strings.Join(l.Translate, ","))
	}
	return "invalid link"
}

func expressions(l chain.Link) []string {
	switch l.Kind() {
	case "dh":
		return []string{l.DH.Theta, l.DH.D, l.DH.A, l.DH.Alpha}
	case "screw":
		return append(append(slices.Clone(l.Screw.L), l.Screw.M...), l.Screw.Theta, l.Screw.D)
	case "rotate":
		return append(slices.Clone(l.Rotate.Axis), l.Rotate.Angle)
	case "translate":
		return l.Translate
	}
	return nil
}

// mentions reports whether any expression of l contains the symbol v.
// Unparsable expressions are ignored.
func mentions(l chain.Link, v string) bool {
	for _, s := range expressions(l) {
		if s == "" {
			continue
		}
		e, err := cas.Parse(s)
		if err != nil {
			continue
		}
		if slices.Contains(cas.FreeSymbols(e), v) {
			return true
		}
	}
	return false
}

func or0(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// escape replaces double quotes, which end a Mermaid label.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
