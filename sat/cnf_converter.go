package sat

import (
	"github.com/ashgrove/proplogic/formula"
	"github.com/ashgrove/proplogic/perr"
)

// FromCNFShapedFormula projects a CNF-shaped formula.Node (see
// formula.IsCNF) into the CNF representation, per SPEC_FULL.md
// §4.1.7: one Clause per top-level And child, one Literal per
// disjunct. A bare literal or singleton disjunction is wrapped as a
// one-clause / one-literal CNF. If the AST is not yet CNF-shaped, it
// is cloned and re-normalised through formula.MakeCNF first.
func FromCNFShapedFormula(f *formula.Node) *CNF {
	if !formula.IsCNF(f) {
		f = formula.MakeCNF(f.Clone())
	}

	switch f.Kind {
	case formula.KindTrue:
		return NewCNF()
	case formula.KindFalse:
		return NewCNF(NewClause())
	case formula.KindAnd:
		clauses := make([]*Clause, len(f.Children))
		for i, c := range f.Children {
			clauses[i] = clauseFromDisjunction(c)
		}
		return NewCNF(clauses...)
	default:
		// A bare literal or a single Or, i.e. a one-clause CNF.
		return NewCNF(clauseFromDisjunction(f))
	}
}

func clauseFromDisjunction(f *formula.Node) *Clause {
	switch f.Kind {
	case formula.KindOr:
		lits := make([]Literal, len(f.Children))
		for i, c := range f.Children {
			lits[i] = literalFromAtom(c)
		}
		return NewClause(lits...)
	default:
		return NewClause(literalFromAtom(f))
	}
}

func literalFromAtom(f *formula.Node) Literal {
	switch f.Kind {
	case formula.KindVariable:
		return Lit(f.Var)
	case formula.KindNot:
		return NegLit(f.Children[0].Var)
	default:
		panic(perr.Internal("FromCNFShapedFormula", "non-atom node where a literal was expected"))
	}
}
