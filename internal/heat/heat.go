// Package heat is the heat subsystem: it accumulates heat generated during a
// phase and, at phase end, turns the resulting heat levels into shutdown,
// startup, ammunition-explosion and pilot-damage events. It never mutates
// units; the damage engine consumes the result.
package heat

import (
	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Heat scale ─────────────────────────────────────────────────────────────

// AutoShutdown is the heat level at which shutdown cannot be avoided.
const AutoShutdown = 30

// ShutdownTN returns the avoid roll needed at a heat level, 0 when no roll
// is required.
func ShutdownTN(heat int) int {
	switch {
	case heat >= 26:
		return 10
	case heat >= 22:
		return 8
	case heat >= 18:
		return 6
	case heat >= 14:
		return 4
	default:
		return 0
	}
}

// AmmoExplosionTN returns the avoid roll for heat-induced ammo explosions.
func AmmoExplosionTN(heat int) int {
	switch {
	case heat >= 28:
		return 8
	case heat >= 23:
		return 6
	case heat >= 19:
		return 4
	default:
		return 0
	}
}

// PilotDamage returns the crew hits taken from heat with damaged life support.
func PilotDamage(heat int) int {
	switch {
	case heat >= 26:
		return 2
	case heat >= 15:
		return 1
	default:
		return 0
	}
}

// ─── Events ─────────────────────────────────────────────────────────────────

type Event struct {
	Unit   *unit.Unit
	Heat   int
	Target int
	Roll   int
}

type AmmoExplosionRequest struct {
	Unit *unit.Unit
	Heat int
}

type PilotDamageRequest struct {
	Unit *unit.Unit
	Hits int
}

// Level is a unit's heat after dissipation.
type Level struct {
	Unit *unit.Unit
	Heat int
}

type Result struct {
	Levels         []Level
	Shutdowns      []Event
	Startups       []Event
	AmmoExplosions []AmmoExplosionRequest
	PilotDamage    []PilotDamageRequest
	Reports        []report.Report
}

// ─── Tracker ────────────────────────────────────────────────────────────────

type Tracker struct {
	order []*unit.Unit
	delta map[*unit.Unit]int
}

func NewTracker() *Tracker {
	return &Tracker{delta: make(map[*unit.Unit]int)}
}

// Accumulate adds heat generated this phase. Accumulating zero registers the
// unit so it still dissipates.
func (t *Tracker) Accumulate(u *unit.Unit, delta int) {
	if u == nil {
		return
	}
	if _, ok := t.delta[u]; !ok {
		t.order = append(t.order, u)
	}
	t.delta[u] += delta
}

// Pending returns the heat accumulated for u so far.
func (t *Tracker) Pending(u *unit.Unit) int { return t.delta[u] }

func tracksHeat(u *unit.Unit) bool {
	return u.Kind == unit.KindMek || u.Kind == unit.KindAerospace
}

func hasExplosiveAmmo(u *unit.Unit) bool {
	for _, m := range u.Equipment {
		if m.Kind == unit.EquipAmmo && m.CanExplode() {
			return true
		}
	}
	return false
}

// Resolve computes end-of-phase heat for every registered unit and clears
// the tracker.
func (t *Tracker) Resolve(r *dice.Roller) Result {
	var res Result
	order := t.order
	deltas := t.delta
	t.order = nil
	t.delta = make(map[*unit.Unit]int)

	for _, u := range order {
		if !u.Alive() || !tracksHeat(u) {
			continue
		}
		h := max(u.Heat+deltas[u]-u.Dissipation, 0)
		res.Levels = append(res.Levels, Level{Unit: u, Heat: h})
		res.Reports = append(res.Reports, *report.New(report.MsgHeatLevel).About(u.ID).Add(h))

		if u.Shutdown {
			tn := ShutdownTN(h)
			ev := Event{Unit: u, Heat: h, Target: tn}
			switch {
			case h >= AutoShutdown:
			case tn == 0:
				res.Startups = append(res.Startups, ev)
			default:
				ev.Roll = r.Roll2d6()
				if ev.Roll >= tn {
					res.Startups = append(res.Startups, ev)
				}
			}
		} else if tn := ShutdownTN(h); tn > 0 {
			ev := Event{Unit: u, Heat: h, Target: tn}
			if h >= AutoShutdown {
				res.Shutdowns = append(res.Shutdowns, ev)
			} else {
				ev.Roll = r.Roll2d6()
				ok := ev.Roll >= tn
				res.Reports = append(res.Reports, *report.New(report.MsgShutdown).About(u.ID).Add(tn, ev.Roll).Outcome(ok))
				if !ok {
					res.Shutdowns = append(res.Shutdowns, ev)
				}
			}
		}

		if tn := AmmoExplosionTN(h); tn > 0 && hasExplosiveAmmo(u) {
			roll := r.Roll2d6()
			ok := roll >= tn
			res.Reports = append(res.Reports, *report.New(report.MsgHeatAmmoAvoid).About(u.ID).Add(tn, roll).Outcome(ok))
			if !ok {
				res.AmmoExplosions = append(res.AmmoExplosions, AmmoExplosionRequest{Unit: u, Heat: h})
			}
		}

		if u.Mek != nil && u.Mek.LifeSupport > 0 {
			if hits := PilotDamage(h); hits > 0 {
				res.PilotDamage = append(res.PilotDamage, PilotDamageRequest{Unit: u, Hits: hits})
			}
		}
	}
	return res
}
