// Package psr is the deferred piloting/control roll queue. Rules that demand
// a roll enqueue a request; the phase context flushes the queue once per
// sub-phase and executes the consequences of failed rolls.
package psr

import (
	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// Consequence is what a failed roll does to the unit.
type Consequence int

const (
	ConsequenceNone Consequence = iota
	ConsequenceFall
	ConsequenceCrash
)

func (c Consequence) String() string {
	switch c {
	case ConsequenceFall:
		return "fall"
	case ConsequenceCrash:
		return "crash"
	default:
		return "none"
	}
}

// Request is one queued roll. Cumulative deltas add up across all rolls the
// unit makes in a flush; non-cumulative deltas only count the worst one.
type Request struct {
	UnitID     string
	Delta      int
	Reason     string
	Cumulative bool
	AutoFail   bool
}

// Outcome is the result of one roll.
type Outcome struct {
	UnitID      string
	Passed      bool
	Roll        int
	Target      int
	Consequence Consequence
	Reasons     []string
}

// Queue accumulates requests in arrival order.
type Queue struct {
	pending []Request
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Enqueue(r Request) {
	q.pending = append(q.pending, r)
}

// Len is the number of queued requests.
func (q *Queue) Len() int { return len(q.pending) }

// Pending returns the requests queued for one unit.
func (q *Queue) Pending(unitID string) []Request {
	var out []Request
	for _, r := range q.pending {
		if r.UnitID == unitID {
			out = append(out, r)
		}
	}
	return out
}

// ConsequenceFor returns what failing a roll does to u right now.
func ConsequenceFor(u *unit.Unit) Consequence {
	switch {
	case u.Kind == unit.KindMek && !u.Prone:
		return ConsequenceFall
	case u.Kind == unit.KindVehicle && u.Motive == unit.MotiveVTOL && u.Airborne:
		return ConsequenceCrash
	case u.Kind == unit.KindAerospace && u.Airborne:
		return ConsequenceCrash
	default:
		return ConsequenceNone
	}
}

// Target computes the roll target for u against a set of requests.
func Target(u *unit.Unit, reqs []Request) int {
	target := u.PilotingSkill() + u.PreexistingPSRModifier()
	worst := 0
	for _, r := range reqs {
		if r.Cumulative {
			target += r.Delta
		} else if r.Delta > worst {
			worst = r.Delta
		}
	}
	return target + worst
}

func autoFail(u *unit.Unit, reqs []Request) bool {
	if !u.Crew.CanAct() {
		return true
	}
	if u.Mek != nil && u.Gyro != unit.GyroNone && u.Mek.GyroHits >= u.Gyro.HitsToDestroy() {
		return true
	}
	for _, r := range reqs {
		if r.AutoFail {
			return true
		}
	}
	return false
}

// ResolveAll rolls every queued request and empties the queue. Units are
// handled in the order of their first request; a unit stops rolling at its
// first failure. Requests for units that are gone, or for which a failure
// has no consequence, are dropped.
func (q *Queue) ResolveAll(lookup func(id string) *unit.Unit, r *dice.Roller) ([]Outcome, []report.Report) {
	pending := q.pending
	q.pending = nil

	var order []string
	byUnit := make(map[string][]Request)
	for _, req := range pending {
		if _, ok := byUnit[req.UnitID]; !ok {
			order = append(order, req.UnitID)
		}
		byUnit[req.UnitID] = append(byUnit[req.UnitID], req)
	}

	var outcomes []Outcome
	var reports []report.Report
	for _, id := range order {
		u := lookup(id)
		if u == nil || !u.Alive() {
			continue
		}
		cons := ConsequenceFor(u)
		if cons == ConsequenceNone {
			continue
		}
		reqs := byUnit[id]
		target := Target(u, reqs)
		failed := autoFail(u, reqs)
		for _, req := range reqs {
			o := Outcome{UnitID: id, Target: target, Consequence: cons, Reasons: []string{req.Reason}}
			if !failed {
				o.Roll = r.Roll2d6()
				o.Passed = o.Roll >= target
			}
			outcomes = append(outcomes, o)
			rep := report.New(report.MsgPSRRoll).About(id).AddString(req.Reason).Add(target, o.Roll).Outcome(o.Passed)
			reports = append(reports, *rep)
			if !o.Passed {
				break
			}
		}
	}
	return outcomes, reports
}
