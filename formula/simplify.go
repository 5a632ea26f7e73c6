package formula

// SimplifyTruth performs bottom-up constant folding to fixpoint on
// every node, per SPEC_FULL.md §4.1.1.
func SimplifyTruth(f *Node) *Node {
	switch f.Kind {
	case KindVariable, KindTrue, KindFalse:
		return f.Clone()

	case KindNot:
		inner := SimplifyTruth(f.Children[0])
		switch inner.Kind {
		case KindTrue:
			return False()
		case KindFalse:
			return True()
		default:
			return Not(inner)
		}

	case KindAnd:
		return simplifyAssoc(f.Children, true)

	case KindOr:
		return simplifyAssoc(f.Children, false)

	case KindXor:
		a, b := SimplifyTruth(f.Children[0]), SimplifyTruth(f.Children[1])
		return simplifyXor(a, b)

	case KindIff:
		a, b := SimplifyTruth(f.Children[0]), SimplifyTruth(f.Children[1])
		return simplifyIff(a, b)

	case KindImplies:
		a, b := SimplifyTruth(f.Children[0]), SimplifyTruth(f.Children[1])
		return simplifyImplies(a, b)

	case KindIsImpliedBy:
		// IsImpliedBy(a,b) == Implies(b,a).
		a, b := SimplifyTruth(f.Children[0]), SimplifyTruth(f.Children[1])
		return simplifyImplies(b, a)

	case KindExists:
		inner := SimplifyTruth(f.Children[0])
		if inner.Kind == KindTrue || inner.Kind == KindFalse {
			return inner
		}
		return Exists(f.Var, inner)

	case KindForEach:
		inner := SimplifyTruth(f.Children[0])
		if inner.Kind == KindTrue || inner.Kind == KindFalse {
			return inner
		}
		return ForEach(f.Var, inner)

	default:
		panic("formula: SimplifyTruth: unknown kind")
	}
}

// simplifyAssoc folds an n-ary And (isAnd=true) or Or (isAnd=false).
func simplifyAssoc(children []*Node, isAnd bool) *Node {
	absorb := KindFalse // for And: a False child collapses to False
	drop := KindTrue    // for And: True children are dropped
	if !isAnd {
		absorb = KindTrue
		drop = KindFalse
	}

	kept := make([]*Node, 0, len(children))
	for _, c := range children {
		sc := SimplifyTruth(c)
		if sc.Kind == absorb {
			if isAnd {
				return False()
			}
			return True()
		}
		if sc.Kind == drop {
			continue
		}
		kept = append(kept, sc)
	}

	switch len(kept) {
	case 0:
		if isAnd {
			return True()
		}
		return False()
	case 1:
		return kept[0]
	default:
		if isAnd {
			return And(kept...)
		}
		return Or(kept...)
	}
}

func simplifyXor(a, b *Node) *Node {
	aConst, aVal := constValue(a)
	bConst, bVal := constValue(b)
	switch {
	case aConst && bConst:
		return boolNode(aVal != bVal)
	case aConst:
		if aVal {
			return Not(b)
		}
		return b
	case bConst:
		if bVal {
			return Not(a)
		}
		return a
	default:
		return Xor(a, b)
	}
}

func simplifyIff(a, b *Node) *Node {
	aConst, aVal := constValue(a)
	bConst, bVal := constValue(b)
	switch {
	case aConst && bConst:
		return boolNode(aVal == bVal)
	case aConst:
		if aVal {
			return b
		}
		return Not(b)
	case bConst:
		if bVal {
			return a
		}
		return Not(a)
	default:
		return Iff(a, b)
	}
}

func simplifyImplies(a, b *Node) *Node {
	aConst, aVal := constValue(a)
	bConst, bVal := constValue(b)
	if aConst && !aVal {
		return True()
	}
	if aConst && aVal {
		return b
	}
	if bConst && bVal {
		return True()
	}
	if bConst && !bVal {
		return Not(a)
	}
	return Implies(a, b)
}

func constValue(f *Node) (isConst bool, value bool) {
	switch f.Kind {
	case KindTrue:
		return true, true
	case KindFalse:
		return true, false
	default:
		return false, false
	}
}

func boolNode(v bool) *Node {
	if v {
		return True()
	}
	return False()
}
