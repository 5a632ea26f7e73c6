package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/proplogic/engine"
)

func TestRegistryDefault(t *testing.T) {
	r := engine.Default()
	assert.Contains(t, r.List(), "propositional")

	sys, ok := r.Get("propositional")
	require.True(t, ok)
	assert.Equal(t, "propositional", sys.Name())

	_, ok = r.Get("first-order")
	assert.False(t, ok)
}

func TestPropositionalSystemEndToEnd(t *testing.T) {
	sys := engine.NewPropositionalSystem()

	f, err := sys.Parse("(1*-1)")
	require.NoError(t, err)

	assert.True(t, sys.CheckValidity(f))

	result := sys.CheckSAT(f)
	assert.True(t, result.Satisfiable)

	unsat, err := sys.Parse("(1+-1)")
	require.NoError(t, err)
	assert.False(t, sys.CheckSAT(unsat).Satisfiable)
}

func TestPropositionalSystemEntails(t *testing.T) {
	sys := engine.NewPropositionalSystem()
	f, err := sys.Parse("1")
	require.NoError(t, err)
	g, err := sys.Parse("(1*2)")
	require.NoError(t, err)
	assert.True(t, sys.CheckEntails(f, g))
}

func TestPropositionalSystemTruthTable(t *testing.T) {
	sys := engine.NewPropositionalSystem()
	f, err := sys.Parse("(1=2)")
	require.NoError(t, err)

	table := sys.TruthTable(f)
	assert.Len(t, table.Rows, 4)

	trueRows := 0
	for _, row := range table.Rows {
		if row.Output {
			trueRows++
		}
	}
	assert.Equal(t, 2, trueRows)
}

func TestFormulaViews(t *testing.T) {
	sys := engine.NewPropositionalSystem()
	f, err := sys.Parse("(1=2)")
	require.NoError(t, err)

	nnf := f.NNF()
	assert.NotEmpty(t, nnf.String())

	cnf := f.CNF()
	assert.NotEmpty(t, cnf.String())
}
