package formula

import "github.com/ashgrove/proplogic/perr"

// labeller carries the fresh-variable counter for a single cnf_label
// invocation. It is never package-level state (SPEC_FULL.md §5).
type labeller struct {
	next    int
	clauses []*Node
}

func newLabeller() *labeller {
	return &labeller{next: -1}
}

func (l *labeller) fresh() int {
	v := l.next
	l.next--
	return v
}

// negateLiteral negates a literal i that is known to be an atom in
// NNF: if i is Not(Variable), unwrap it; otherwise wrap it in Not.
func negateLiteral(i *Node) *Node {
	if i.Kind == KindNot {
		return i.Children[0].Clone()
	}
	return Not(i.Clone())
}

// label implements the Tseitin labelling of SPEC_FULL.md §4.1.6:
// bottom-up, for each internal And/Or node, repeatedly pop the last
// two remaining children and replace them with a fresh label,
// emitting three defining clauses per merge. Returns the label (an
// atom referring to the node, or the node itself if it was already
// an atom) that should be used by the node's parent.
func (l *labeller) label(f *Node) *Node {
	switch f.Kind {
	case KindVariable, KindTrue, KindFalse:
		return f.Clone()
	case KindNot:
		// In NNF, Not only ever wraps a Variable.
		return Not(f.Children[0].Clone())
	case KindAnd:
		return l.labelAssoc(f.Children, true)
	case KindOr:
		return l.labelAssoc(f.Children, false)
	default:
		panic(perr.Internal("cnf_label", "non-NNF node encountered; make_nnf must run first"))
	}
}

func (l *labeller) labelAssoc(children []*Node, isAnd bool) *Node {
	labels := make([]*Node, len(children))
	for i, c := range children {
		labels[i] = l.label(c)
	}

	for len(labels) > 1 {
		n := len(labels)
		j := labels[n-1]
		i := labels[n-2]
		labels = labels[:n-2]

		b := Var(l.fresh())
		notB := Not(b.Clone())
		notI := negateLiteral(i)
		notJ := negateLiteral(j)

		if isAnd {
			// b <-> i /\ j
			l.clauses = append(l.clauses,
				Or(notB.Clone(), i.Clone()),
				Or(notB.Clone(), j.Clone()),
				Or(b.Clone(), notI, notJ),
			)
		} else {
			// b <-> i \/ j
			l.clauses = append(l.clauses,
				Or(b.Clone(), notI),
				Or(b.Clone(), notJ),
				Or(notB.Clone(), i.Clone(), j.Clone()),
			)
		}

		labels = append(labels, b)
	}

	return labels[0]
}

// CNFLabel runs Tseitin labelling over f (which must already be in
// NNF) and returns the conjunction of defining clauses plus the
// asserted root-label unit clause.
func CNFLabel(f *Node) *Node {
	l := newLabeller()
	root := l.label(f)

	switch root.Kind {
	case KindTrue, KindFalse:
		return root
	}

	clauses := append([]*Node{}, l.clauses...)
	clauses = append(clauses, root)
	if len(clauses) == 0 {
		return True()
	}
	if len(clauses) == 1 {
		return clauses[0]
	}
	return And(clauses...)
}

// MakeCNF composes: identity if f is already CNF-shaped, else
// make_nnf ; cnf_label ; flatten.
func MakeCNF(f *Node) *Node {
	if IsCNF(f) {
		return f.Clone()
	}
	nnf := MakeNNF(f)
	labelled := CNFLabel(nnf)
	return Flatten(labelled)
}

// IsCNF reports whether f is already CNF-shaped per SPEC_FULL.md §3:
// root And(c1..cm), each ci a Variable, Not(Variable), or an Or
// whose children are all Variable/Not(Variable); degenerate True,
// False, and bare literals are accepted too.
func IsCNF(f *Node) bool {
	switch f.Kind {
	case KindTrue, KindFalse:
		return true
	case KindVariable:
		return true
	case KindNot:
		return f.Children[0].Kind == KindVariable
	case KindOr:
		return isClauseShape(f)
	case KindAnd:
		for _, c := range f.Children {
			if !isClauseShape(c) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isClauseShape(f *Node) bool {
	switch f.Kind {
	case KindVariable:
		return true
	case KindNot:
		return f.Children[0].Kind == KindVariable
	case KindOr:
		for _, c := range f.Children {
			if c.Kind == KindOr || !isClauseShape(c) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsTrue reports whether f is the constant True after normalising
// through MakeCNF. This routes through CNF normalisation rather than
// inspecting the raw AST shape: the reference implementation's
// documented contract ("decide the current AST shape") does not
// match what it actually does, which is normalise first. See
// DESIGN.md for the discussion of this known discrepancy.
func IsTrue(f *Node) bool {
	return MakeCNF(f).Kind == KindTrue
}

// IsFalse reports whether f is the constant False after normalising
// through MakeCNF. See IsTrue.
func IsFalse(f *Node) bool {
	return MakeCNF(f).Kind == KindFalse
}
