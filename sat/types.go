// Package sat implements the CNF representation and the DPLL
// satisfiability procedure: unit propagation, pure-literal
// elimination, decision with assignment-recovery backtracking, and
// the validity/entailment wrappers built on top of satisfiability.
package sat

import (
	"fmt"
	"sort"
	"strings"
)

// Literal is a variable id paired with a polarity. Variable ids
// follow the sign convention of the formula package: non-negative
// ids are user variables, negative ids are fresh (Tseitin) ones.
type Literal struct {
	Var      int
	Negative bool
}

// Lit constructs a positive literal for var.
func Lit(v int) Literal { return Literal{Var: v} }

// NegLit constructs a negative literal for var.
func NegLit(v int) Literal { return Literal{Var: v, Negative: true} }

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return Literal{Var: l.Var, Negative: !l.Negative} }

func (l Literal) String() string {
	if l.Negative {
		return fmt.Sprintf("-%d", l.Var)
	}
	return fmt.Sprintf("%d", l.Var)
}

// Clause is an unordered set of literals; duplicates collapse by
// construction. An empty clause denotes false.
type Clause struct {
	lits map[Literal]bool
}

// NewClause builds a Clause from literals, deduplicating.
func NewClause(lits ...Literal) *Clause {
	c := &Clause{lits: make(map[Literal]bool, len(lits))}
	for _, l := range lits {
		c.lits[l] = true
	}
	return c
}

// Literals returns the clause's literals in a deterministic
// (sorted) order, for display and for deterministic decision
// selection in the solver.
func (c *Clause) Literals() []Literal {
	out := make([]Literal, 0, len(c.lits))
	for l := range c.lits {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Var != out[j].Var {
			return out[i].Var < out[j].Var
		}
		return !out[i].Negative && out[j].Negative
	})
	return out
}

// Len reports the number of distinct literals in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// IsEmpty reports whether the clause has no literals (denotes
// false).
func (c *Clause) IsEmpty() bool { return len(c.lits) == 0 }

// IsUnit reports whether the clause has exactly one literal.
func (c *Clause) IsUnit() bool { return len(c.lits) == 1 }

// Contains reports whether l is a literal of the clause.
func (c *Clause) Contains(l Literal) bool { return c.lits[l] }

// Without returns a copy of the clause with l removed.
func (c *Clause) Without(l Literal) *Clause {
	nc := &Clause{lits: make(map[Literal]bool, len(c.lits))}
	for existing := range c.lits {
		if existing != l {
			nc.lits[existing] = true
		}
	}
	return nc
}

func (c *Clause) String() string {
	lits := c.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " ∨ ") + ")"
}

// CNF is an ordered conjunction of clauses. An empty CNF denotes
// true.
type CNF struct {
	Clauses []*Clause
}

// NewCNF builds a CNF from clauses.
func NewCNF(clauses ...*Clause) *CNF {
	return &CNF{Clauses: clauses}
}

// Variables returns the sorted, de-duplicated set of variable ids
// appearing anywhere in the CNF.
func (cnf *CNF) Variables() []int {
	seen := map[int]bool{}
	for _, c := range cnf.Clauses {
		for l := range c.lits {
			seen[l.Var] = true
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (cnf *CNF) String() string {
	if len(cnf.Clauses) == 0 {
		return "T"
	}
	parts := make([]string, len(cnf.Clauses))
	for i, c := range cnf.Clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ∧ ")
}

// Assignment is a partial mapping from variable id to truth value.
// Variables absent from the map are unconstrained.
type Assignment map[int]bool

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	cp := make(Assignment, len(a))
	for k, v := range a {
		cp[k] = v
	}
	return cp
}

// GetOrDefault returns the assigned value for v, defaulting to false
// per SPEC_FULL.md §4.2's get_assignment_or_default.
func (a Assignment) GetOrDefault(v int) bool {
	return a[v]
}
