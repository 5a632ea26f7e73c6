package sat

// Solver is implemented by DPLLSolver; it is kept as an interface so
// the engine package can depend on the capability rather than the
// concrete type, matching the rest of the toolkit's small-interface
// style.
type Solver interface {
	// Solve attempts to find a satisfying assignment for cnf.
	Solve(cnf *CNF) (sat bool, assignment Assignment, ok bool)
}

var _ Solver = (*DPLLSolver)(nil)
