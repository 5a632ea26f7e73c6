package formula

// Flatten splices an And child into an And parent (resp. Or into
// Or) repeatedly until no such child exists, recursively over every
// subterm, per SPEC_FULL.md §4.1.3.
func Flatten(f *Node) *Node {
	switch f.Kind {
	case KindVariable, KindTrue, KindFalse:
		return f.Clone()
	case KindNot:
		return Not(Flatten(f.Children[0]))
	case KindAnd:
		return flattenAssoc(f.Children, KindAnd)
	case KindOr:
		return flattenAssoc(f.Children, KindOr)
	case KindXor:
		return Xor(Flatten(f.Children[0]), Flatten(f.Children[1]))
	case KindIff:
		return Iff(Flatten(f.Children[0]), Flatten(f.Children[1]))
	case KindImplies:
		return Implies(Flatten(f.Children[0]), Flatten(f.Children[1]))
	case KindIsImpliedBy:
		return IsImpliedBy(Flatten(f.Children[0]), Flatten(f.Children[1]))
	case KindExists:
		return Exists(f.Var, Flatten(f.Children[0]))
	case KindForEach:
		return ForEach(f.Var, Flatten(f.Children[0]))
	default:
		panic("formula: Flatten: unknown kind")
	}
}

func flattenAssoc(children []*Node, kind Kind) *Node {
	var out []*Node
	for _, c := range children {
		fc := Flatten(c)
		if fc.Kind == kind {
			out = append(out, fc.Children...)
		} else {
			out = append(out, fc)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	if kind == KindAnd {
		return And(out...)
	}
	return Or(out...)
}
