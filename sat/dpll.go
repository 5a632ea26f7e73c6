package sat

// DPLLSolver implements the Davis-Putnam-Logemann-Loveland
// algorithm: unit propagation to fixpoint, then pure-literal
// elimination, then decision with assignment-recovery backtracking,
// per SPEC_FULL.md §4.2.
type DPLLSolver struct {
	assignment Assignment
}

// NewDPLLSolver constructs an empty DPLL solver.
func NewDPLLSolver() *DPLLSolver {
	return &DPLLSolver{assignment: make(Assignment)}
}

// Solve decides the satisfiability of cnf. On success it returns the
// partial assignment the search actually constrained; variables it
// never touched are absent and default to false via
// Assignment.GetOrDefault.
func (d *DPLLSolver) Solve(cnf *CNF) (sat bool, assignment Assignment, ok bool) {
	d.assignment = make(Assignment)
	result := d.search(cnf.Clauses)
	if !result {
		return false, nil, false
	}
	return true, d.assignment, true
}

// search is the recursive DPLL core. clauses is the current residual
// clause set; d.assignment accumulates the forced and guessed
// values as the search descends.
func (d *DPLLSolver) search(clauses []*Clause) bool {
	if hasEmptyClause(clauses) {
		return false
	}
	clauses, ok := d.propagate(clauses)
	if !ok {
		return false
	}
	if len(clauses) == 0 {
		return true
	}

	clauses, ok = d.eliminatePure(clauses)
	if !ok {
		return false
	}
	if len(clauses) == 0 {
		return true
	}

	decisionVar := firstLiteral(clauses).Var

	for _, value := range [2]bool{true, false} {
		saved := d.assignment.Clone()
		d.assignment[decisionVar] = value
		if d.search(simplify(clauses, decisionVar, value)) {
			return true
		}
		// Backtrack: remove the guess rather than merely overwrite it,
		// so it cannot leak into the other branch's environment.
		d.assignment = saved
	}
	return false
}

// propagate performs unit propagation to fixpoint: while some
// clause is a unit {l}, set l true, drop every clause containing l,
// and strip ¬l from every remaining clause. Returns ok=false if an
// empty clause is produced (conflict).
func (d *DPLLSolver) propagate(clauses []*Clause) ([]*Clause, bool) {
	for {
		unit, found := findUnit(clauses)
		if !found {
			return clauses, true
		}
		d.assignment[unit.Var] = !unit.Negative
		clauses = simplify(clauses, unit.Var, !unit.Negative)
		if hasEmptyClause(clauses) {
			return nil, false
		}
	}
}

// eliminatePure finds variables that appear with only one polarity
// across the remaining clauses, fixes them to that polarity, and
// removes every clause they satisfy.
func (d *DPLLSolver) eliminatePure(clauses []*Clause) ([]*Clause, bool) {
	polarity := map[int]*bool{}
	mixed := map[int]bool{}

	for _, c := range clauses {
		for _, l := range c.Literals() {
			if mixed[l.Var] {
				continue
			}
			want := !l.Negative
			if existing, seen := polarity[l.Var]; seen {
				if *existing != want {
					mixed[l.Var] = true
					delete(polarity, l.Var)
				}
			} else {
				v := want
				polarity[l.Var] = &v
			}
		}
	}

	if len(polarity) == 0 {
		return clauses, true
	}

	for v, val := range polarity {
		d.assignment[v] = *val
		clauses = simplify(clauses, v, *val)
	}
	if hasEmptyClause(clauses) {
		return nil, false
	}
	return clauses, true
}

func findUnit(clauses []*Clause) (Literal, bool) {
	for _, c := range clauses {
		if c.IsUnit() {
			return c.Literals()[0], true
		}
	}
	return Literal{}, false
}

func firstLiteral(clauses []*Clause) Literal {
	return clauses[0].Literals()[0]
}

// simplify returns the clause set that results from fixing v to
// value: clauses satisfied by that assignment are dropped, and the
// complementary literal is removed from every clause that still
// contains it.
func simplify(clauses []*Clause, v int, value bool) []*Clause {
	satisfyingLit := Literal{Var: v, Negative: !value}
	falsifiedLit := satisfyingLit.Negate()

	out := make([]*Clause, 0, len(clauses))
	for _, c := range clauses {
		if c.Contains(satisfyingLit) {
			continue
		}
		if c.Contains(falsifiedLit) {
			out = append(out, c.Without(falsifiedLit))
			continue
		}
		out = append(out, c)
	}
	return out
}

func hasEmptyClause(clauses []*Clause) bool {
	for _, c := range clauses {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}
