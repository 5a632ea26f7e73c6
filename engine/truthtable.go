package engine

import (
	"fmt"
	"strings"

	"github.com/ashgrove/proplogic/formula"
)

// TruthTableRow is a single row: a full assignment over a formula's
// free variables and the formula's value under it.
type TruthTableRow struct {
	Inputs map[int]bool
	Output bool
}

// TruthTable is the complete enumeration of a formula's free
// variables, adapted from the teacher's classical.TruthTable to the
// signed-integer variable model (§4.4 of SPEC_FULL.md). It is a
// ground-truth oracle distinct from the CNF+DPLL satisfiability
// path: it evaluates f directly, with no CNF conversion.
type TruthTable struct {
	Variables []int
	Rows      []TruthTableRow
}

// GenerateTruthTable enumerates all 2^n assignments over f's free
// variables (sorted ascending by id) and evaluates f against each.
func GenerateTruthTable(f *formula.Node) *TruthTable {
	vars := f.FreeVariables()
	n := len(vars)
	numRows := 1 << n

	table := &TruthTable{
		Variables: vars,
		Rows:      make([]TruthTableRow, numRows),
	}

	for i := 0; i < numRows; i++ {
		inputs := make(map[int]bool, n)
		for j, v := range vars {
			inputs[v] = (i>>(n-1-j))&1 == 1
		}
		table.Rows[i] = TruthTableRow{
			Inputs: inputs,
			Output: evaluate(f, inputs),
		}
	}

	return table
}

func evaluate(f *formula.Node, env map[int]bool) bool {
	switch f.Kind {
	case formula.KindVariable:
		return env[f.Var]
	case formula.KindTrue:
		return true
	case formula.KindFalse:
		return false
	case formula.KindNot:
		return !evaluate(f.Children[0], env)
	case formula.KindAnd:
		for _, c := range f.Children {
			if !evaluate(c, env) {
				return false
			}
		}
		return true
	case formula.KindOr:
		for _, c := range f.Children {
			if evaluate(c, env) {
				return true
			}
		}
		return false
	case formula.KindXor:
		return evaluate(f.Children[0], env) != evaluate(f.Children[1], env)
	case formula.KindIff:
		return evaluate(f.Children[0], env) == evaluate(f.Children[1], env)
	case formula.KindImplies:
		return !evaluate(f.Children[0], env) || evaluate(f.Children[1], env)
	case formula.KindIsImpliedBy:
		return !evaluate(f.Children[1], env) || evaluate(f.Children[0], env)
	case formula.KindExists:
		withTrue, withFalse := withBoundVar(env, f.Var)
		return evaluate(f.Children[0], withTrue) || evaluate(f.Children[0], withFalse)
	case formula.KindForEach:
		withTrue, withFalse := withBoundVar(env, f.Var)
		return evaluate(f.Children[0], withTrue) && evaluate(f.Children[0], withFalse)
	default:
		panic("engine: evaluate: unknown kind")
	}
}

// withBoundVar returns two copies of env with v forced to true and
// to false, respectively, implementing quantifier evaluation by
// environment extension rather than AST substitution.
func withBoundVar(env map[int]bool, v int) (withTrue, withFalse map[int]bool) {
	withTrue = make(map[int]bool, len(env)+1)
	withFalse = make(map[int]bool, len(env)+1)
	for k, val := range env {
		withTrue[k] = val
		withFalse[k] = val
	}
	withTrue[v] = true
	withFalse[v] = false
	return withTrue, withFalse
}

func (tt *TruthTable) String() string {
	if len(tt.Rows) == 0 {
		return "Empty truth table\n"
	}

	var b strings.Builder
	for _, v := range tt.Variables {
		fmt.Fprintf(&b, "%-8s", varLabel(v))
	}
	b.WriteString("Output\n")

	totalWidth := len(tt.Variables)*8 + 6
	b.WriteString(strings.Repeat("-", totalWidth))
	b.WriteString("\n")

	for _, row := range tt.Rows {
		for _, v := range tt.Variables {
			if row.Inputs[v] {
				b.WriteString("T       ")
			} else {
				b.WriteString("F       ")
			}
		}
		if row.Output {
			b.WriteString("T")
		} else {
			b.WriteString("F")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func varLabel(v int) string {
	if v < 0 {
		return fmt.Sprintf("f%d", -v)
	}
	return fmt.Sprintf("%d", v)
}
