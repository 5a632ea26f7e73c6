package formula

// RemoveQuantifiers eliminates every Exists/ForEach node by Shannon
// expansion, per SPEC_FULL.md §4.1.2:
//
//	Exists(v, f)  -> Or (f[v:=true], f[v:=false])
//	ForEach(v, f) -> And(f[v:=true], f[v:=false])
//
// simplify_truth is run on the whole result afterward, as the spec
// requires, so the caller does not need to do it separately.
func RemoveQuantifiers(f *Node) *Node {
	expanded := removeQuantifiersRec(f)
	return SimplifyTruth(expanded)
}

func removeQuantifiersRec(f *Node) *Node {
	switch f.Kind {
	case KindVariable, KindTrue, KindFalse:
		return f.Clone()
	case KindNot:
		return Not(removeQuantifiersRec(f.Children[0]))
	case KindAnd:
		return And(removeQuantifiersRecAll(f.Children)...)
	case KindOr:
		return Or(removeQuantifiersRecAll(f.Children)...)
	case KindXor:
		return Xor(removeQuantifiersRec(f.Children[0]), removeQuantifiersRec(f.Children[1]))
	case KindIff:
		return Iff(removeQuantifiersRec(f.Children[0]), removeQuantifiersRec(f.Children[1]))
	case KindImplies:
		return Implies(removeQuantifiersRec(f.Children[0]), removeQuantifiersRec(f.Children[1]))
	case KindIsImpliedBy:
		return IsImpliedBy(removeQuantifiersRec(f.Children[0]), removeQuantifiersRec(f.Children[1]))
	case KindExists:
		body := removeQuantifiersRec(f.Children[0])
		return Or(substitute(body, f.Var, true), substitute(body, f.Var, false))
	case KindForEach:
		body := removeQuantifiersRec(f.Children[0])
		return And(substitute(body, f.Var, true), substitute(body, f.Var, false))
	default:
		panic("formula: RemoveQuantifiers: unknown kind")
	}
}

func removeQuantifiersRecAll(fs []*Node) []*Node {
	out := make([]*Node, len(fs))
	for i, f := range fs {
		out[i] = removeQuantifiersRec(f)
	}
	return out
}
