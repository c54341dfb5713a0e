package sat

import (
	"log"

	"github.com/rhartert/yagh"
)

// VarOrder maintains the branching order of the solver's variables using
// activity scores (VSIDS). Candidates live in an int-keyed heap ordered by
// negated score so that Pop returns the highest-activity unassigned variable,
// breaking ties by variable index.
type VarOrder struct {
	order *yagh.IntMap[float64]

	scores     []float64 // in [0, 1e100)
	scoreInc   float64   // in (0, 1e100)
	scoreDecay float64   // in (0, 1]

	phases      []LBool
	phaseSaving bool
}

// NewVarOrder returns a new initialized VarOrder.
func NewVarOrder(decay float64, phaseSaving bool) *VarOrder {
	return &VarOrder{
		order:       yagh.New[float64](0),
		scoreInc:    1,
		scoreDecay:  decay,
		phaseSaving: phaseSaving,
	}
}

// AddVar adds a new variable with the given initial score and phase.
func (vo *VarOrder) AddVar(initScore float64, initPhase bool) {
	varID := len(vo.phases)

	vo.scores = append(vo.scores, initScore)
	vo.phases = append(vo.phases, Lift(initPhase))

	vo.order.GrowBy(1)
	vo.order.Put(varID, -initScore)
}

// Reinsert adds variable v back to the set of candidates. This must be
// called by the solver when v is being unassigned (e.g. on a backjump),
// where val is the value the variable was assigned to.
func (vo *VarOrder) Reinsert(v int, val LBool) {
	if vo.phaseSaving {
		vo.phases[v] = val
	}
	vo.order.Put(v, -vo.scores[v])
}

// DecayScores slightly decreases all scores relative to future bumps, giving
// more weight to variables involved in recent conflicts.
func (vo *VarOrder) DecayScores() {
	vo.scoreInc /= vo.scoreDecay // decay activities by bumping the increment
	if vo.scoreInc > 1e100 {
		vo.rescaleScoresAndIncrement()
	}
}

// BumpScore increases the score of the given variable. This might trigger a
// rescaling of all scores; the rescaling conserves the relative importance
// of the variables.
func (vo *VarOrder) BumpScore(v int) {
	vo.scores[v] += vo.scoreInc
	if vo.order.Contains(v) {
		vo.order.Put(v, -vo.scores[v])
	}
	if vo.scores[v] > 1e100 {
		vo.rescaleScoresAndIncrement()
	}
}

// NextDecision returns the next unassigned literal to branch on. The default
// polarity is true; with phase saving enabled, the variable's last value is
// used instead.
func (vo *VarOrder) NextDecision(s *Solver) Literal {
	for {
		next, ok := vo.order.Pop()
		if !ok {
			log.Fatalln("empty variable ordering heap")
		}
		if s.VarValue(next.Elem) != Unknown {
			continue // already assigned
		}

		if vo.phases[next.Elem] == False {
			return NegativeLiteral(next.Elem)
		}
		return PositiveLiteral(next.Elem)
	}
}

func (vo *VarOrder) rescaleScoresAndIncrement() {
	vo.scoreInc *= 1e-100 // important to keep proportions
	for v, sc := range vo.scores {
		vo.scores[v] = sc * 1e-100
		if vo.order.Contains(v) {
			vo.order.Put(v, -vo.scores[v])
		}
	}
}
