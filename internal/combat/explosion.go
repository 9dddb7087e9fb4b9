package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/board"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Engine hits and explosions ─────────────────────────────────────────────

// non-fusion engine explosion target by hits taken this phase
var nonFusionExplosionTN = [3]int{10, 7, 4}

const fusionExplosionTN = 10

// engineHits records n engine hits. Hits taken by a critical count toward
// this phase's explosion check.
func (e *Engine) engineHits(u *unit.Unit, n int, critical bool) []report.Report {
	u.EngineHits += n
	out := []report.Report{*report.New(report.MsgEngineHit).About(u.ID).Add(n, u.EngineHits).Indented(2)}
	if critical {
		u.EngineHitsThisPhase += n
		out = append(out, e.checkEngineExplosion(u)...)
	}
	if !u.Alive() || u.Engine.Type == unit.EngineNone {
		return out
	}
	if (u.Kind == unit.KindMek || u.Kind == unit.KindAerospace) && u.EngineHits >= u.Engine.Type.HitsToDestroy() {
		out = append(out, *report.New(report.MsgEngineDestroyed).About(u.ID).Indented(2))
		out = append(out, e.destroy(u, "engine destroyed", false)...)
	}
	return out
}

// checkEngineExplosion is the engine explosion sub-check. Fusion engines roll
// at most once per phase; other engines roll every time they are hit.
func (e *Engine) checkEngineExplosion(u *unit.Unit) []report.Report {
	if !e.opts.EngineExplosions || !u.Alive() || u.Engine.Type == unit.EngineNone || u.EngineHitsThisPhase <= 0 {
		return nil
	}
	fusion := u.Engine.Type.IsFusion()
	tn := fusionExplosionTN
	if fusion {
		if u.EngineExplosionRolled {
			return nil
		}
		u.EngineExplosionRolled = true
	} else {
		tn = nonFusionExplosionTN[min(u.EngineHitsThisPhase, 3)-1]
	}

	roll := e.dice.Roll2d6()
	exploded := roll >= tn
	out := []report.Report{*report.New(report.MsgEngineExplosionRoll).About(u.ID).Add(tn, roll).Outcome(!exploded).Indented(2)}
	if !exploded {
		return out
	}
	e.count(e.explosions, 1, u)
	out = append(out, *report.New(report.MsgEngineExplodes).About(u.ID).Indented(2))
	out = append(out, e.destroy(u, "engine explosion", true)...)
	if fusion && e.board != nil && u.Engine.Rating > 0 {
		e.board.AddExplosion(board.Explosion{
			Origin:      u.Pos,
			Damage:      u.Engine.Rating,
			Degradation: 10,
			Cause:       u.Name + " engine explosion",
		})
		out = append(out, *report.New(report.MsgFusionBlast).About(u.ID).Add(u.Engine.Rating).AddString(u.Pos.String()).Indented(2))
	}
	return out
}

// explode detonates one explosive item back through the damage pipeline.
func (e *Engine) explode(u *unit.Unit, idx int) []report.Report {
	m := u.Equipment[idx]
	amount := m.ExplosionAmount()
	if amount <= 0 || !u.Alive() {
		return nil
	}
	id := report.MsgEquipmentExplosion
	if m.Kind == unit.EquipAmmo {
		id = report.MsgAmmoExplosion
		m.Shots = 0
	}
	m.Destroyed = true
	m.Charged = false
	m.HotLoaded = false
	e.count(e.explosions, 1, u)
	out := []report.Report{*report.New(id).About(u.ID).AddString(m.Name).Add(amount).Indented(2)}

	ev := DamageEvent{
		Hit:           HitSpec{Location: m.Location, Rear: m.Rear},
		Amount:        amount,
		AmmoExplosion: true,
		DamageIS:      true,
	}
	out = append(out, e.ApplyDamage(u, ev)...)
	if u.Kind == unit.KindMek && m.Kind == unit.EquipAmmo {
		out = append(out, e.damageCrew(u, 2, "ammunition explosion")...)
	}
	return out
}

// ExplodeAmmo detonates the most damaging explosive bin on u, as a heat
// overload does. It reports whether anything exploded.
func (e *Engine) ExplodeAmmo(u *unit.Unit) ([]report.Report, bool) {
	best, bestAmount := -1, 0
	for i, m := range u.Equipment {
		if m.Kind != unit.EquipAmmo || !m.CanExplode() {
			continue
		}
		if a := m.ExplosionAmount(); a > bestAmount {
			best, bestAmount = i, a
		}
	}
	if best < 0 {
		return nil, false
	}
	return e.explode(u, best), true
}

// ─── Destruction ────────────────────────────────────────────────────────────

// Destroy removes u from play for an externally decided cause.
func (e *Engine) Destroy(u *unit.Unit, cause string) []report.Report {
	return e.destroy(u, cause, false)
}

func (e *Engine) destroy(u *unit.Unit, cause string, ejectable bool) []report.Report {
	if u == nil || u.Destroyed {
		return nil
	}
	u.Destroyed = true
	u.DestroyedBy = cause
	e.count(e.destroyed, 1, u)
	out := []report.Report{*report.New(report.MsgUnitDestroyed).About(u.ID).AddString(cause).Line()}
	if ejectable && e.opts.AutoEject && u.Kind == unit.KindMek {
		out = append(out, e.eject(u)...)
	}
	if u.Kind == unit.KindAerospace && u.CapitalScale && u.Aero != nil {
		out = append(out, e.launchPods(u)...)
	}
	return out
}

func (e *Engine) eject(u *unit.Unit) []report.Report {
	c := u.Crew.Current()
	if c == nil || !c.Active() || c.Unconscious {
		return nil
	}
	if (u.Mek != nil && u.Mek.CockpitHit) || (u.Cockpit != unit.CockpitTorso && u.Locations[unit.LocHD].IsDestroyed()) {
		return nil
	}
	c.Ejected = true
	return []report.Report{*report.New(report.MsgEjected).About(u.ID).AddString(c.Name).Indented(1)}
}

// launchPods sends off every escape pod still aboard.
func (e *Engine) launchPods(u *unit.Unit) []report.Report {
	left := u.Aero.EscapePods - u.Aero.PodsLaunched
	if left <= 0 {
		return nil
	}
	u.Aero.PodsLaunched += left
	return []report.Report{*report.New(report.MsgEscapePods).About(u.ID).Add(left).Indented(1)}
}
