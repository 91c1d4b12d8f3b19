package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/symdq"
)

var partNames = [4]string{"1", "i", "j", "k"}

// DualMarkdown renders a dual quaternion result as a markdown table.
func DualMarkdown(title string, res *symdq.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	writeDualTable(&b, res.Real, res.Dual)
	fmt.Fprintf(&b, "\n`%s`\n\n_domain: %s_\n", res.Text, res.Domain)
	return b.String()
}

// PointMarkdown renders a transformed point.
func PointMarkdown(res *symdq.PointResult) string {
	var b strings.Builder
	b.WriteString("## Transformed point\n\n| x | y | z |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(res.Point[0]), cell(res.Point[1]), cell(res.Point[2]))
	fmt.Fprintf(&b, "\n_domain: %s_\n", res.Domain)
	return b.String()
}

// OperandMarkdown renders the result of Add or Multiply.
func OperandMarkdown(res *symdq.OperandResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Result (%s)\n\n", res.Kind)
	switch {
	case res.Dual != nil:
		writeDualTable(&b, res.Dual.Real, res.Dual.Dual)
	case res.Quaternion != nil:
		b.WriteString("| part | value |\n|---|---|\n")
		for i, s := range res.Quaternion {
			fmt.Fprintf(&b, "| %s | %s |\n", partNames[i], cell(s))
		}
	default:
		fmt.Fprintf(&b, "`%s`\n", res.Scalar)
	}
	fmt.Fprintf(&b, "\n_domain: %s_\n", res.Domain)
	return b.String()
}

// ChainMarkdown renders an evaluated chain with its rigid-motion readouts.
func ChainMarkdown(res *symdq.ChainResult) string {
	var b strings.Builder
	name := res.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&b, "## Chain %s\n\n", name)
	writeDualTable(&b, res.Real, res.Dual)

	b.WriteString("\n### Rotation\n\n| | | |\n|---|---|---|\n")
	for _, row := range res.Rotation {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(row[0]), cell(row[1]), cell(row[2]))
	}
	b.WriteString("\n### Translation\n\n| x | y | z |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(res.Translation[0]), cell(res.Translation[1]), cell(res.Translation[2]))
	fmt.Fprintf(&b, "\n_domain: %s, unit: %t_\n", res.Domain, res.Unit)
	return b.String()
}

func writeDualTable(b *strings.Builder, p, q symdq.Quat) {
	b.WriteString("| part | real | dual |\n|---|---|---|\n")
	for i := range p {
		fmt.Fprintf(b, "| %s | %s | %s |\n", partNames[i], cell(p[i]), cell(q[i]))
	}
}

// cell escapes characters markdown tables treat specially.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return "`" + s + "`"
}
