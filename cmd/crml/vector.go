package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karai17/crml/pkg/vector2"
	"github.com/karai17/crml/pkg/vector3"
)

// operation is one vector subcommand. operands documents the arguments and
// fixes their count.
type operation struct {
	operands string
	run      func(args []string) (any, error)
}

func (op operation) arity() int {
	return strings.Count(op.operands, "<")
}

func unaryOp[V, R any](parse func(string) (V, error), f func(V) R) operation {
	return operation{"<a>", func(args []string) (any, error) {
		a, err := parse(args[0])
		if err != nil {
			return nil, err
		}
		return f(a), nil
	}}
}

func binaryOp[V, R any](parse func(string) (V, error), f func(V, V) R) operation {
	return operation{"<a> <b>", func(args []string) (any, error) {
		a, err := parse(args[0])
		if err != nil {
			return nil, err
		}
		b, err := parse(args[1])
		if err != nil {
			return nil, err
		}
		return f(a, b), nil
	}}
}

func scalarOp[V, R any](parse func(string) (V, error), name string, f func(V, float64) R) operation {
	return operation{"<a> <" + name + ">", func(args []string) (any, error) {
		a, err := parse(args[0])
		if err != nil {
			return nil, err
		}
		s, err := parseScalar(args[1])
		if err != nil {
			return nil, err
		}
		return f(a, s), nil
	}}
}

// arithOp applies vec when the second operand is a vector and scalar when it
// is a plain number.
func arithOp[V any](parse func(string) (V, error), vec func(V, V) V, scalar func(V, float64) V) operation {
	bin := binaryOp(parse, vec)
	sc := scalarOp(parse, "scalar", scalar)
	return operation{"<a> <b|scalar>", func(args []string) (any, error) {
		if isScalar(args[1]) {
			return sc.run(args)
		}
		return bin.run(args)
	}}
}

func lerpOp[V any](parse func(string) (V, error), f func(V, V, float64) V) operation {
	return operation{"<a> <b> <step>", func(args []string) (any, error) {
		a, err := parse(args[0])
		if err != nil {
			return nil, err
		}
		b, err := parse(args[1])
		if err != nil {
			return nil, err
		}
		step, err := parseScalar(args[2])
		if err != nil {
			return nil, err
		}
		return f(a, b, step), nil
	}}
}

var vector2Ops = map[string]operation{
	"add":           arithOp(parseVector2, vector2.Vector.Add, vector2.Vector.AddScalar),
	"sub":           arithOp(parseVector2, vector2.Vector.Sub, vector2.Vector.SubScalar),
	"mul":           arithOp(parseVector2, vector2.Vector.Mul, vector2.Vector.MulScalar),
	"div":           arithOp(parseVector2, vector2.Vector.Div, vector2.Vector.DivScalar),
	"dot":           binaryOp(parseVector2, vector2.Vector.Dot),
	"cross":         binaryOp(parseVector2, vector2.Vector.Cross),
	"len":           unaryOp(parseVector2, vector2.Vector.Len),
	"len2":          unaryOp(parseVector2, vector2.Vector.Len2),
	"normalize":     unaryOp(parseVector2, vector2.Vector.Normalize),
	"dist":          binaryOp(parseVector2, vector2.Vector.Dist),
	"dist2":         binaryOp(parseVector2, vector2.Vector.Dist2),
	"perp":          unaryOp(parseVector2, vector2.Vector.Perpendicular),
	"lerp":          lerpOp(parseVector2, vector2.Vector.Lerp),
	"trim":          scalarOp(parseVector2, "max", vector2.Vector.Trim),
	"rotate":        scalarOp(parseVector2, "angle", vector2.Vector.Rotate),
	"angle-to":      binaryOp(parseVector2, vector2.Vector.AngleTo),
	"angle-between": binaryOp(parseVector2, vector2.Vector.AngleBetween),
}

var vector3Ops = map[string]operation{
	"add":       arithOp(parseVector3, vector3.Vector.Add, vector3.Vector.AddScalar),
	"sub":       arithOp(parseVector3, vector3.Vector.Sub, vector3.Vector.SubScalar),
	"mul":       arithOp(parseVector3, vector3.Vector.Mul, vector3.Vector.MulScalar),
	"div":       arithOp(parseVector3, vector3.Vector.Div, vector3.Vector.DivScalar),
	"dot":       binaryOp(parseVector3, vector3.Vector.Dot),
	"cross":     binaryOp(parseVector3, vector3.Vector.Cross),
	"len":       unaryOp(parseVector3, vector3.Vector.Len),
	"len2":      unaryOp(parseVector3, vector3.Vector.Len2),
	"normalize": unaryOp(parseVector3, vector3.Vector.Normalize),
	"dist":      binaryOp(parseVector3, vector3.Vector.Dist),
	"dist2":     binaryOp(parseVector3, vector3.Vector.Dist2),
	"perp":      unaryOp(parseVector3, vector3.Vector.Perpendicular),
	"lerp":      lerpOp(parseVector3, vector3.Vector.Lerp),
	"trim":      scalarOp(parseVector3, "max", vector3.Vector.Trim),
	"rotate": {"<a> <angle> <axis>", func(args []string) (any, error) {
		a, err := parseVector3(args[0])
		if err != nil {
			return nil, err
		}
		angle, err := parseScalar(args[1])
		if err != nil {
			return nil, err
		}
		axis, err := parseVector3(args[2])
		if err != nil {
			return nil, err
		}
		return a.Rotate(angle, axis), nil
	}},
}

func newVectorCmd(name, short string, ops map[string]operation) *cobra.Command {
	names := slices.Sorted(maps.Keys(ops))

	var help strings.Builder
	fmt.Fprintf(&help, "%s\n\nOperations:\n", short)
	for _, n := range names {
		fmt.Fprintf(&help, "  %-14s %s\n", n, ops[n].operands)
	}

	cmd := &cobra.Command{
		Use:       name + " <op> <operands...>",
		Short:     short,
		Long:      help.String(),
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := ops[args[0]]
			if !ok {
				return fmt.Errorf("unknown %s operation %q (one of: %s)", name, args[0], strings.Join(names, ", "))
			}
			if got := len(args) - 1; got != op.arity() {
				return fmt.Errorf("%s %s takes %s, got %d arguments", name, args[0], op.operands, got)
			}
			result, err := op.run(args[1:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), format(result))
			return err
		},
	}
	// Operands may start with '-'
	cmd.Flags().SetInterspersed(false)
	return cmd
}
