package sat

import "github.com/ashgrove/proplogic/formula"

// Result is the outcome of a satisfiability query: whether the
// formula is satisfiable and, if so, the assignment the search
// constrained.
type Result struct {
	Satisfiable bool
	Assignment  Assignment
}

// CheckSAT decides the satisfiability of f, short-circuiting on a
// literal True/False root before any CNF conversion, per
// SPEC_FULL.md §4.2.
func CheckSAT(f *formula.Node) Result {
	switch f.Kind {
	case formula.KindTrue:
		return Result{Satisfiable: true, Assignment: Assignment{}}
	case formula.KindFalse:
		return Result{Satisfiable: false}
	}

	cnf := FromCNFShapedFormula(f)
	solver := NewDPLLSolver()
	sat, assignment, ok := solver.Solve(cnf)
	if !ok || !sat {
		return Result{Satisfiable: false}
	}
	return Result{Satisfiable: true, Assignment: assignment}
}

// CheckValidity decides whether f is valid (true under every
// assignment): check_validity(f) = not check_sat(not f).
func CheckValidity(f *formula.Node) bool {
	return !CheckSAT(formula.Not(f)).Satisfiable
}

// CheckEntails decides whether f entails g: check_entails(f,g) =
// check_validity(f -> g).
func CheckEntails(f, g *formula.Node) bool {
	return CheckValidity(formula.Implies(f, g))
}
