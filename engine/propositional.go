package engine

import (
	"github.com/ashgrove/proplogic/formula"
	"github.com/ashgrove/proplogic/sat"
)

// Formula is the engine-level handle on a parsed formula. It is a
// thin wrapper so callers outside this module need not import
// formula.Node directly; PropositionalSystem unwraps it at each
// boundary.
type Formula struct {
	node *formula.Node
}

// String renders the formula in canonical surface syntax.
func (f *Formula) String() string { return f.node.String() }

// NNF returns the formula's negation normal form, also as a Formula.
func (f *Formula) NNF() *Formula { return &Formula{node: formula.MakeNNF(f.node)} }

// CNF returns the formula's Tseitin-labelled conjunctive normal
// form, also as a Formula.
func (f *Formula) CNF() *Formula { return &Formula{node: formula.MakeCNF(f.node)} }

// QuantifierFree returns the formula with quantifiers eliminated by
// Shannon expansion (the "quantifier-free form" the CLI prints).
func (f *Formula) QuantifierFree() *Formula {
	return &Formula{node: formula.RemoveQuantifiers(f.node)}
}

// SATResult mirrors sat.Result at the engine boundary.
type SATResult struct {
	Satisfiable bool
	Assignment  map[int]bool
}

// PropositionalSystem implements System over the formula/sat
// packages; it is the toolkit's only logic system, adapted from the
// teacher's sat.SATSystemImpl wiring (there, a CDCL solver behind a
// regex-ish expression language; here, the DPLL solver behind the
// spec's symbolic grammar).
type PropositionalSystem struct{}

// NewPropositionalSystem constructs the propositional logic system.
func NewPropositionalSystem() *PropositionalSystem {
	return &PropositionalSystem{}
}

func (s *PropositionalSystem) Name() string { return "propositional" }

func (s *PropositionalSystem) Parse(src string) (*Formula, error) {
	n, err := formula.Parse(src)
	if err != nil {
		return nil, err
	}
	return &Formula{node: n}, nil
}

func (s *PropositionalSystem) CheckSAT(f *Formula) SATResult {
	result := sat.CheckSAT(f.node)
	if !result.Satisfiable {
		return SATResult{Satisfiable: false}
	}
	assignment := make(map[int]bool, len(result.Assignment))
	for k, v := range result.Assignment {
		assignment[k] = v
	}
	return SATResult{Satisfiable: true, Assignment: assignment}
}

func (s *PropositionalSystem) CheckValidity(f *Formula) bool {
	return sat.CheckValidity(f.node)
}

func (s *PropositionalSystem) CheckEntails(f, g *Formula) bool {
	return sat.CheckEntails(f.node, g.node)
}

func (s *PropositionalSystem) TruthTable(f *Formula) *TruthTable {
	return GenerateTruthTable(f.node)
}
