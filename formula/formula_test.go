package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/proplogic/formula"
)

func mustParse(t *testing.T, src string) *formula.Node {
	t.Helper()
	f, err := formula.Parse(src)
	require.NoError(t, err)
	return f
}

func TestParseBasicAtoms(t *testing.T) {
	assert.Equal(t, formula.Var(1), mustParse(t, "1"))
	assert.Equal(t, formula.True(), mustParse(t, "T"))
	assert.Equal(t, formula.False(), mustParse(t, "F"))
	assert.Equal(t, formula.Not(formula.Var(1)), mustParse(t, "-1"))
	assert.True(t, mustParse(t, "--1").Equals(formula.Not(formula.Not(formula.Var(1)))))
}

func TestParseFreshVariable(t *testing.T) {
	f := mustParse(t, "f3")
	assert.Equal(t, -3, f.Var)
}

func TestParseNAryChains(t *testing.T) {
	f := mustParse(t, "(1+2+3+4)")
	require.Equal(t, formula.KindAnd, f.Kind)
	assert.Len(t, f.Children, 4)
}

func TestParseMixedOperatorsRejected(t *testing.T) {
	_, err := formula.Parse("(1+2*3)")
	assert.Error(t, err)
}

func TestParseBinaryOperatorRejectsChain(t *testing.T) {
	_, err := formula.Parse("(1%2%3)")
	assert.Error(t, err)
}

func TestParseQuantifiers(t *testing.T) {
	e := mustParse(t, "E1.(1+-1)")
	require.Equal(t, formula.KindExists, e.Kind)

	a := mustParse(t, "A1.(1*-1)")
	require.Equal(t, formula.KindForEach, a.Kind)
}

func TestParseUnclosedBracket(t *testing.T) {
	_, err := formula.Parse("(1+2")
	assert.Error(t, err)
}

func TestParseTrailingJunk(t *testing.T) {
	_, err := formula.Parse("(1+2)3")
	assert.Error(t, err)
}

// P1: round-trip.
func TestRoundTrip(t *testing.T) {
	srcs := []string{"1", "(1+2+3)", "(1*2)", "(1%2)", "(1=2)", "(1>2)", "(1<2)", "E1.(1+2)", "A1.(1*2)", "f5"}
	for _, src := range srcs {
		f := mustParse(t, src)
		reparsed, err := formula.Parse(f.String())
		require.NoError(t, err)
		assert.True(t, f.Equals(reparsed), "round-trip mismatch for %q -> %q", src, f.String())
	}
}

// Known bug fix: IsImpliedBy serializes with '<', not '+'.
func TestIsImpliedBySerializesWithLeftAngle(t *testing.T) {
	f := formula.IsImpliedBy(formula.Var(1), formula.Var(2))
	assert.Equal(t, "(1<2)", f.String())
}

// P2: NNF shape.
func TestMakeNNFShape(t *testing.T) {
	srcs := []string{"(1=2)", "(1>2)", "(1%2)", "E1.(1+2)", "A1.(1*-2)", "-(1=2)"}
	for _, src := range srcs {
		f := mustParse(t, src)
		nnf := formula.MakeNNF(f)
		assert.True(t, formula.IsNNF(nnf), "not NNF: %s -> %s", src, nnf.String())
	}
}

// P3: CNF shape.
func TestMakeCNFShape(t *testing.T) {
	srcs := []string{"(1=2)", "(1%2)", "((1*2)+(3*4))", "E1.(1+2)"}
	for _, src := range srcs {
		f := mustParse(t, src)
		cnf := formula.MakeCNF(f)
		assert.True(t, formula.IsCNF(cnf), "not CNF: %s -> %s", src, cnf.String())
	}
}

// P4: semantic preservation of NNF, checked by brute-force truth
// table over the free variables.
func TestMakeNNFPreservesSemantics(t *testing.T) {
	srcs := []string{"(1=2)", "(1>2)", "(1%2)", "-(1=2)", "(1<2)"}
	for _, src := range srcs {
		f := mustParse(t, src)
		nnf := formula.MakeNNF(f)
		assertSemanticallyEqual(t, f, nnf)
	}
}

// P8: idempotence.
func TestMakeNNFIdempotent(t *testing.T) {
	f := mustParse(t, "(1=2)")
	once := formula.MakeNNF(f)
	twice := formula.MakeNNF(once)
	assert.True(t, once.Equals(twice))
}

func TestSimplifyTruthFolding(t *testing.T) {
	assert.Equal(t, formula.KindFalse, formula.SimplifyTruth(mustParse(t, "(1+F)")).Kind)
	assert.Equal(t, formula.KindTrue, formula.SimplifyTruth(mustParse(t, "(1*T)")).Kind)
}

func TestQuantifierEliminationScenarios(t *testing.T) {
	// "A1.(1*-1)" reduces to True via simplify_truth.
	f := mustParse(t, "A1.(1*-1)")
	reduced := formula.RemoveQuantifiers(f)
	assert.Equal(t, formula.KindTrue, reduced.Kind)

	// "E1.(1+-1)" reduces to False.
	g := mustParse(t, "E1.(1+-1)")
	reducedG := formula.RemoveQuantifiers(g)
	assert.Equal(t, formula.KindFalse, reducedG.Kind)
}

func TestIsTrueIsFalseRouteThroughMakeCNF(t *testing.T) {
	// Both inputs are already CNF-shaped, so MakeCNF leaves them as an
	// Or / an And: the check is on shape, not on semantic truth.
	assert.False(t, formula.IsTrue(mustParse(t, "(1*-1)")))
	assert.False(t, formula.IsFalse(mustParse(t, "(1+-1)")))
}

func TestFreeVariables(t *testing.T) {
	f := mustParse(t, "((1+2)*3)")
	assert.Equal(t, []int{1, 2, 3}, f.FreeVariables())
}

func TestCloneIsIndependent(t *testing.T) {
	f := mustParse(t, "(1+2)")
	cp := f.Clone()
	cp.Children[0].Var = 99
	assert.Equal(t, 1, f.Children[0].Var)
}

func TestCloneViaTextMatchesClone(t *testing.T) {
	f := mustParse(t, "(1=2)")
	viaText, err := f.CloneViaText()
	require.NoError(t, err)
	assert.True(t, f.Equals(viaText))
}

// assertSemanticallyEqual brute-forces every assignment over the
// union of both formulas' free variables and checks agreement.
func assertSemanticallyEqual(t *testing.T, a, b *formula.Node) {
	t.Helper()
	varSet := map[int]bool{}
	for _, v := range a.FreeVariables() {
		varSet[v] = true
	}
	for _, v := range b.FreeVariables() {
		varSet[v] = true
	}
	vars := make([]int, 0, len(varSet))
	for v := range varSet {
		vars = append(vars, v)
	}

	n := len(vars)
	for mask := 0; mask < (1 << n); mask++ {
		env := map[int]bool{}
		for i, v := range vars {
			env[v] = mask&(1<<i) != 0
		}
		av := evaluate(a, env)
		bv := evaluate(b, env)
		assert.Equal(t, av, bv, "disagreement under %v", env)
	}
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
	default:
		panic("evaluate: unsupported kind in test oracle")
	}
}
