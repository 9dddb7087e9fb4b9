package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Crew damage ────────────────────────────────────────────────────────────

// consciousness roll target by hit count (1-6)
var consciousnessThresholds = [6]int{3, 5, 7, 10, 11, 99}

// DamageCrew inflicts hits on the member at the controls.
func (e *Engine) DamageCrew(u *unit.Unit, hits int, cause string) []report.Report {
	return e.damageCrew(u, hits, cause)
}

func (e *Engine) damageCrew(u *unit.Unit, hits int, cause string) []report.Report {
	c := u.Crew.Current()
	if hits <= 0 || c == nil || !c.Active() || !u.Alive() {
		return nil
	}
	c.Hits += hits
	out := []report.Report{*report.New(report.MsgCrewHit).About(u.ID).Add(hits, c.Hits).AddString(cause).Indented(2)}
	if c.Hits >= unit.CrewDeathHits {
		return append(out, e.killCrew(u, cause)...)
	}
	if c.Unconscious {
		return out
	}

	tn := consciousnessThresholds[c.Hits-1]
	roll := e.dice.Roll2d6()
	ok := roll >= tn
	out = append(out, *report.New(report.MsgConsciousness).About(u.ID).Add(tn, roll).Outcome(ok).Indented(2))
	if !ok && e.opts.EdgeOnConsciousness && u.Crew.SpendEdge() {
		out = append(out, *report.New(report.MsgEdgeUsed).About(u.ID).Add(u.Crew.Edge).Indented(3))
		roll = e.dice.Roll2d6()
		ok = roll >= tn
		out = append(out, *report.New(report.MsgConsciousness).About(u.ID).Add(tn, roll).Outcome(ok).Indented(2))
	}
	if !ok {
		c.Unconscious = true
		out = append(out, *report.New(report.MsgCrewUnconscious).About(u.ID).Indented(2))
	}
	return out
}

// killCrew kills the member at the controls. Another surviving member takes
// over if there is one; otherwise the unit is lost.
func (e *Engine) killCrew(u *unit.Unit, cause string) []report.Report {
	c := u.Crew.Current()
	if c == nil {
		return e.destroy(u, "crew killed", false)
	}
	c.Dead = true
	c.Hits = max(c.Hits, unit.CrewDeathHits)
	out := []report.Report{*report.New(report.MsgCrewKilled).About(u.ID).AddString(c.Name, cause).Indented(2)}
	if u.Crew.Reassign() {
		return append(out, *report.New(report.MsgCrewReassigned).About(u.ID).AddString(u.Crew.Current().Name).Indented(2))
	}
	return append(out, e.destroy(u, "crew killed", false)...)
}
