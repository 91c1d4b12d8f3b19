package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/symdq"
	"github.com/aretw0/symdq/internal/presentation/tui"
)

// parseOperand reads a comma separated operand: one component is a
// scalar, four a quaternion and eight a dual quaternion (real then dual).
func parseOperand(s string) (symdq.Operand, error) {
	parts := trimAll(strings.Split(s, ","))
	switch len(parts) {
	case 1:
		return symdq.ScalarArg(parts[0]), nil
	case 4:
		var q symdq.Quat
		copy(q[:], parts)
		return symdq.QuaternionArg(q), nil
	case 8:
		var d symdq.Dual
		copy(d.Real[:], parts[:4])
		copy(d.Dual[:], parts[4:])
		return symdq.DualArg(d), nil
	}
	return symdq.Operand{}, fmt.Errorf("operand %q: want 1, 4 or 8 components, got %d", s, len(parts))
}

func newArithCmd(a *app, op string) *cobra.Command {
	use, short := "add", "Sum operands left to right"
	if op == symdq.OpMultiply {
		use, short = "mul", "Multiply operands left to right"
	}
	return &cobra.Command{
		Use:   use + " OPERAND...",
		Short: short,
		Long: short + `. An operand with one component is a scalar, four a
quaternion a,b,c,d and eight a dual quaternion (real part, then dual part).
Put "--" before operands that start with a minus sign.`,
		Example: "  symdq " + use + " 2 0,1,0,0 cos(t),0,0,sin(t),0,0,-x,0",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands := make([]symdq.Operand, len(args))
			for i, s := range args {
				o, err := parseOperand(s)
				if err != nil {
					return err
				}
				operands[i] = o
			}
			eng, err := a.engine()
			if err != nil {
				return err
			}
			var res *symdq.OperandResult
			if op == symdq.OpMultiply {
				res, err = eng.Multiply(cmd.Context(), operands...)
			} else {
				res, err = eng.Add(cmd.Context(), operands...)
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, res, tui.OperandMarkdown(res))
		},
	}
}
