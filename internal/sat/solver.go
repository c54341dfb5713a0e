// Package sat implements the conflict-driven clause learning (CDCL) engine:
// two-watched-literal propagation, VSIDS branching, first-UIP conflict
// analysis with non-chronological backjumping, and geometric restarts.
package sat

import (
	"fmt"
	"log"
	"time"
)

// restartBase is the conflict count that triggers the first restart. The
// threshold doubles on every restart.
const restartBase = 64

type Solver struct {
	// Clause database. Learnt clauses are never deleted by activity or
	// quality; the only clauses removed, learnt or not, are those that
	// Simplify finds satisfied at the root level.
	constraints []*Clause
	learnts     []*Clause

	// Variable ordering.
	order *VarOrder

	// Propagation and watchers.
	watchers  [][]watcher
	propQueue *LitQueue

	// Value assigned to each literal.
	assigns []LBool

	// Trail.
	trail    []Literal
	trailLim []int
	reason   []*Clause
	level    []int

	// Whether the problem has reached a top level conflict.
	unsat bool

	// Search statistics.
	TotalConflicts  int64
	TotalRestarts   int64
	TotalIterations int64
	startTime       time.Time

	// Stop conditions.
	hasStopCond bool
	maxConflict int64
	timeout     time.Duration

	verbose bool

	// Model holds the satisfying assignment found by the last successful
	// Solve call, indexed by variable ID.
	Model []bool

	// Shared by operations that need to put variables in a set and empty
	// that set efficiently.
	seenVar *ResetSet

	// Temporary slice used in Propagate. The slice is re-used by all
	// Propagate calls to avoid unnecessarily allocating new slices.
	tmpWatchers []watcher

	// Temporary slice used in analyze to accumulate the learnt clause's
	// literals. One shared buffer avoids regrowing on every conflict.
	tmpLearnts []Literal

	// Used by clauses to explain themselves.
	tmpReason []Literal
}

// watcher represents a clause attached to the watch list of a literal.
type watcher struct {
	// The watching clause to be propagated when the watched literal becomes
	// true.
	clause *Clause

	// Guard is one of the clause's literals. If it is true, then there is
	// no need to propagate the clause. The guard literal must be different
	// from the watcher literal.
	guard Literal
}

type Options struct {
	VariableDecay float64
	PhaseSaving   bool
	MaxConflicts  int64
	Timeout       time.Duration
	Verbose       bool
}

var DefaultOptions = Options{
	VariableDecay: 0.95,
	PhaseSaving:   false,
	MaxConflicts:  -1,
	Timeout:       -1,
	Verbose:       false,
}

// NewDefaultSolver returns a solver configured with default options. This is
// equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func NewSolver(ops Options) *Solver {
	s := &Solver{
		order:       NewVarOrder(ops.VariableDecay, ops.PhaseSaving),
		propQueue:   NewLitQueue(128),
		maxConflict: -1,
		timeout:     -1,
		seenVar:     &ResetSet{},
		verbose:     ops.Verbose,
	}

	if ops.MaxConflicts >= 0 {
		s.hasStopCond = true
		s.maxConflict = ops.MaxConflicts
	}
	if ops.Timeout >= 0 {
		s.hasStopCond = true
		s.timeout = ops.Timeout
	}

	return s
}

func (s *Solver) shouldStop() bool {
	if !s.hasStopCond {
		return false
	}
	if s.maxConflict >= 0 && s.maxConflict <= s.TotalConflicts {
		return true
	}
	if s.timeout >= 0 && s.timeout <= time.Since(s.startTime) {
		return true
	}

	return false
}

func (s *Solver) NumVariables() int {
	return len(s.assigns) / 2
}

func (s *Solver) NumAssigns() int {
	return len(s.trail)
}

func (s *Solver) NumConstraints() int {
	return len(s.constraints)
}

func (s *Solver) NumLearnts() int {
	return len(s.learnts)
}

func (s *Solver) VarValue(x int) LBool {
	return s.assigns[PositiveLiteral(x)]
}

func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

// AddVariable declares a new variable and returns its ID. Variables must be
// declared before any clause mentioning them is added.
func (s *Solver) AddVariable() int {
	index := s.NumVariables()
	s.watchers = append(s.watchers, nil, nil)
	s.assigns = append(s.assigns, Unknown, Unknown)
	s.reason = append(s.reason, nil)
	s.level = append(s.level, -1)
	s.seenVar.Expand()
	s.order.AddVar(0, true)
	return index
}

// Watch registers clause c to be awoken when Literal watch is assigned true.
func (s *Solver) Watch(c *Clause, watch Literal, guard Literal) {
	s.watchers[watch] = append(s.watchers[watch], watcher{
		clause: c,
		guard:  guard,
	})
}

// Unwatch removes clause c from the list of watchers.
func (s *Solver) Unwatch(c *Clause, watch Literal) {
	j := 0
	for i := 0; i < len(s.watchers[watch]); i++ {
		if s.watchers[watch][i].clause != c {
			s.watchers[watch][j] = s.watchers[watch][i]
			j++
		}
	}
	s.watchers[watch] = s.watchers[watch][:j]
}

// AddClause adds a problem clause. Unit clauses are enqueued immediately so
// that the first Propagate call performs all top-level propagation. Adding a
// clause that is empty (or false under the root-level assignment) marks the
// problem unsatisfiable.
func (s *Solver) AddClause(clause []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("can only add clauses at the root level")
	}
	c, ok := NewClause(s, clause, false)
	if c != nil {
		s.constraints = append(s.constraints, c)
	}
	if !ok {
		s.unsat = true
	}

	return nil
}

// Simplify simplifies the clause DB according to the root-level assignment.
// Clauses satisfied at the root level are removed. It returns false if the
// problem is unsatisfiable at the root.
func (s *Solver) Simplify() bool {
	if l := s.decisionLevel(); l != 0 {
		log.Fatalf("Simplify called on non root-level: %d", l)
	}
	if s.propQueue.Size() != 0 {
		log.Fatal("propQueue should be empty when calling Simplify")
	}

	if s.unsat || s.Propagate() != nil {
		s.unsat = true
		return false
	}

	s.simplifyPtr(&s.learnts)
	s.simplifyPtr(&s.constraints)

	return true
}

// simplifyPtr simplifies the clauses in the given slice and removes clauses
// that are already satisfied.
func (s *Solver) simplifyPtr(clausesPtr *[]*Clause) {
	clauses := *clausesPtr
	j := 0
	for i := 0; i < len(clauses); i++ {
		if clauses[i].Simplify(s) {
			clauses[i].Remove(s)
		} else {
			clauses[j] = clauses[i]
			j++
		}
	}
	*clausesPtr = clauses[:j]
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// Solve runs the search to completion (or until a stop condition fires) and
// returns True, False, or Unknown. Restarts follow a geometric schedule: the
// first restart happens after restartBase conflicts and the threshold
// doubles each time. Learnt clauses survive restarts.
func (s *Solver) Solve() LBool {
	status := Unknown
	nextRestart := int64(restartBase)
	s.startTime = time.Now()

	if s.verbose {
		s.printSeparator()
		s.printSearchHeader()
		s.printSeparator()
	}

	for status == Unknown {
		status = s.Search(nextRestart)
		nextRestart *= 2

		if s.shouldStop() {
			break
		}
	}

	if s.verbose {
		s.printSearchStats()
		s.printSeparator()
	}

	s.cancelUntil(0)
	return status
}

// Propagate empties the propagation queue and returns the first conflicting
// clause it finds, or nil if propagation reached a quiescent state.
func (s *Solver) Propagate() *Clause {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()

		s.tmpWatchers = s.tmpWatchers[:0]
		s.tmpWatchers = append(s.tmpWatchers, s.watchers[l]...)
		s.watchers[l] = s.watchers[l][:0]

		for i, w := range s.tmpWatchers {
			// No need to propagate the clause if its guard is true. This
			// avoids loading clauses that cannot be unit or conflicting.
			// Note that this alters the order in which clauses are
			// propagated and can thus yield different learnt clauses.
			if s.LitValue(w.guard) == True {
				s.watchers[l] = append(s.watchers[l], w)
				continue
			}

			if w.clause.Propagate(s, l) {
				continue
			}

			// The clause is conflicting: copy the remaining watchers back
			// and report it.
			s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
			s.propQueue.Clear()
			return s.tmpWatchers[i].clause
		}
	}

	return nil
}

// enqueue records the fact that l is true, with the clause that forced it
// (nil for decisions). It returns false if l is already false.
func (s *Solver) enqueue(l Literal, from *Clause) bool {
	switch s.LitValue(l) {
	case False:
		return false // conflicting assignment
	case True:
		return true // already assigned
	default:
		varID := l.VarID()
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.level[varID] = s.decisionLevel()
		s.reason[varID] = from
		s.trail = append(s.trail, l)
		s.propQueue.Push(l)
		return true
	}
}

// explain returns the assignments responsible for the given clause being
// conflicting (l == -1) or for it having assigned l.
func (s *Solver) explain(c *Clause, l Literal) []Literal {
	if l == -1 {
		c.explainConflict(&s.tmpReason)
	} else {
		c.explainAssign(&s.tmpReason)
	}
	return s.tmpReason
}

// analyze derives the first-UIP learnt clause from the given conflict. It
// returns the learnt literals, with the UIP's opposite first, and the level
// to backjump to (the maximum level of the other literals, 0 if none).
func (s *Solver) analyze(confl *Clause) ([]Literal, int) {
	// Number of pending implication nodes at the current decision level. A
	// value of 1 means the exploration reached the unique implication point.
	nImplicationPoints := 0

	// The first slot is reserved for the UIP literal, set at the end.
	s.tmpLearnts = s.tmpLearnts[:0]
	s.tmpLearnts = append(s.tmpLearnts, -1)

	// Next trail entry to look at. The trail is scanned in reverse without
	// actually undoing the assignments.
	nextLiteral := len(s.trail) - 1

	l := Literal(-1) // pseudo literal representing the conflict itself
	s.seenVar.Clear()
	backtrackLevel := 0

	for {
		for _, q := range s.explain(confl, l) {
			v := q.VarID()
			if s.seenVar.Contains(v) {
				continue
			}

			s.seenVar.Add(v)
			s.order.BumpScore(v)
			if s.level[v] == s.decisionLevel() {
				nImplicationPoints++
				continue
			}

			s.tmpLearnts = append(s.tmpLearnts, q.Opposite())
			if level := s.level[v]; level > backtrackLevel {
				backtrackLevel = level
			}
		}

		// Select the next seen literal on the trail.
		for {
			l = s.trail[nextLiteral]
			nextLiteral--
			v := l.VarID()
			confl = s.reason[v]
			if s.seenVar.Contains(v) {
				break
			}
		}

		nImplicationPoints--
		if nImplicationPoints <= 0 {
			break
		}
	}

	// Add the literal corresponding to the first UIP.
	s.tmpLearnts[0] = l.Opposite()

	return s.tmpLearnts, backtrackLevel
}

// record adds the learnt clause and asserts its first literal (the UIP) with
// the clause as antecedent.
func (s *Solver) record(clause []Literal) {
	c, _ := NewClause(s, clause, true)
	s.enqueue(clause[0], c)
	if c != nil {
		s.learnts = append(s.learnts, c)
	}
}

// Search runs the propagate/decide/analyze loop until a verdict is reached
// or the total conflict count hits nextRestart, in which case it undoes all
// assignments above the root level and returns Unknown.
func (s *Solver) Search(nextRestart int64) LBool {
	if s.unsat {
		return False
	}

	for !s.shouldStop() {
		if s.verbose && s.TotalIterations%10000 == 0 {
			s.printSearchStats()
		}
		s.TotalIterations++

		if conflict := s.Propagate(); conflict != nil {
			s.TotalConflicts++

			if s.decisionLevel() == 0 {
				s.unsat = true
				return False
			}

			learntClause, backtrackLevel := s.analyze(conflict)
			s.cancelUntil(backtrackLevel)
			s.record(learntClause)
			s.order.DecayScores()

			if s.TotalConflicts >= nextRestart {
				s.TotalRestarts++
				s.cancelUntil(0)
				return Unknown
			}
			continue
		}

		// No conflict
		// -----------

		if s.decisionLevel() == 0 && !s.Simplify() {
			return False
		}

		if s.NumAssigns() == s.NumVariables() { // solution found
			s.saveModel()
			s.cancelUntil(0)
			return True
		}

		s.assume(s.order.NextDecision(s))
	}

	return Unknown
}

func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.VarID()

	s.order.Reinsert(v, Lift(l.IsPositive()))
	s.assigns[l] = Unknown
	s.assigns[l.Opposite()] = Unknown
	s.reason[v] = nil
	s.level[v] = -1

	s.trail = s.trail[:len(s.trail)-1]
}

// assume opens a new decision level and enqueues l as a decision.
func (s *Solver) assume(l Literal) bool {
	s.trailLim = append(s.trailLim, len(s.trail))
	return s.enqueue(l, nil)
}

// cancel undoes all assignments of the current decision level.
func (s *Solver) cancel() {
	c := len(s.trail) - s.trailLim[len(s.trailLim)-1]
	for ; c != 0; c-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:len(s.trailLim)-1]
}

// cancelUntil undoes all assignments strictly above the given level.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
}

func (s *Solver) saveModel() {
	model := make([]bool, s.NumVariables())
	for i := range model {
		lb := s.VarValue(i)
		if lb == Unknown {
			panic("not a model")
		}
		model[i] = lb == True
	}
	s.Model = model
}

func (s *Solver) printSeparator() {
	fmt.Println("c ---------------------------------------------------------------------------")
}

func (s *Solver) printSearchHeader() {
	fmt.Println("c            time     iterations      conflicts       restarts        learnts")
}

func (s *Solver) printSearchStats() {
	fmt.Printf(
		"c %14.3fs %14d %14d %14d %14d\n",
		time.Since(s.startTime).Seconds(),
		s.TotalIterations,
		s.TotalConflicts,
		s.TotalRestarts,
		len(s.learnts))
}
