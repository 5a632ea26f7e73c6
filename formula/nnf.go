package formula

import "github.com/ashgrove/proplogic/perr"

// RemoveImpl rewrites every implication-family node into And/Or/Not,
// per SPEC_FULL.md §4.1.4. Precondition: no quantifier nodes remain.
func RemoveImpl(f *Node) *Node {
	switch f.Kind {
	case KindVariable, KindTrue, KindFalse:
		return f.Clone()
	case KindNot:
		return Not(RemoveImpl(f.Children[0]))
	case KindAnd:
		return And(removeImplAll(f.Children)...)
	case KindOr:
		return Or(removeImplAll(f.Children)...)
	case KindXor:
		a, b := RemoveImpl(f.Children[0]), RemoveImpl(f.Children[1])
		return And(Or(a.Clone(), b.Clone()), Or(Not(a), Not(b)))
	case KindIff:
		a, b := RemoveImpl(f.Children[0]), RemoveImpl(f.Children[1])
		return And(Or(Not(a.Clone()), b.Clone()), Or(a, Not(b)))
	case KindImplies:
		a, b := RemoveImpl(f.Children[0]), RemoveImpl(f.Children[1])
		return Or(Not(a), b)
	case KindIsImpliedBy:
		a, b := RemoveImpl(f.Children[0]), RemoveImpl(f.Children[1])
		return Or(a, Not(b))
	case KindExists, KindForEach:
		panic(perr.Internal("RemoveImpl", "quantifier node encountered after RemoveQuantifiers"))
	default:
		panic("formula: RemoveImpl: unknown kind")
	}
}

func removeImplAll(fs []*Node) []*Node {
	out := make([]*Node, len(fs))
	for i, f := range fs {
		out[i] = RemoveImpl(f)
	}
	return out
}

// PushNegDown applies De Morgan's laws and double-negation
// elimination so that every Not is applied directly to a Variable,
// per SPEC_FULL.md §4.1.5. Precondition: only Variable, True, False,
// Not, And, Or nodes remain.
func PushNegDown(f *Node) *Node {
	switch f.Kind {
	case KindVariable, KindTrue, KindFalse:
		return f.Clone()
	case KindAnd:
		return And(pushNegDownAll(f.Children)...)
	case KindOr:
		return Or(pushNegDownAll(f.Children)...)
	case KindNot:
		return pushNegDownNot(f.Children[0])
	case KindXor, KindIff, KindImplies, KindIsImpliedBy, KindExists, KindForEach:
		panic(perr.Internal("PushNegDown", "non-NNF-eligible node encountered; RemoveImpl/RemoveQuantifiers must run first"))
	default:
		panic("formula: PushNegDown: unknown kind")
	}
}

func pushNegDownNot(inner *Node) *Node {
	switch inner.Kind {
	case KindTrue:
		return False()
	case KindFalse:
		return True()
	case KindVariable:
		return Not(inner.Clone())
	case KindNot:
		return PushNegDown(inner.Children[0])
	case KindAnd:
		negated := make([]*Node, len(inner.Children))
		for i, c := range inner.Children {
			negated[i] = pushNegDownNot(c)
		}
		return Or(negated...)
	case KindOr:
		negated := make([]*Node, len(inner.Children))
		for i, c := range inner.Children {
			negated[i] = pushNegDownNot(c)
		}
		return And(negated...)
	default:
		panic(perr.Internal("PushNegDown", "invalid node under Not; pipeline ordering bug"))
	}
}

func pushNegDownAll(fs []*Node) []*Node {
	out := make([]*Node, len(fs))
	for i, f := range fs {
		out[i] = PushNegDown(f)
	}
	return out
}

// MakeNNF composes the full negation-normal-form pipeline:
//
//	remove_quantifiers ; simplify_truth ; flatten ;
//	remove_impl        ; flatten ;
//	push_neg_down       ; flatten
func MakeNNF(f *Node) *Node {
	g := RemoveQuantifiers(f)
	g = Flatten(g)
	g = RemoveImpl(g)
	g = Flatten(g)
	g = PushNegDown(g)
	g = Flatten(g)
	return g
}

// IsNNF reports whether f is already in negation normal form: no
// quantifier, no implication/iff/xor node, every Not applied
// directly to a Variable.
func IsNNF(f *Node) bool {
	switch f.Kind {
	case KindVariable, KindTrue, KindFalse:
		return true
	case KindNot:
		return f.Children[0].Kind == KindVariable
	case KindAnd, KindOr:
		for _, c := range f.Children {
			if !IsNNF(c) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
