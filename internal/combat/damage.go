package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Damage pipeline ────────────────────────────────────────────────────────

// ApplyDamage threads one packet of damage through u and returns what
// happened, in order. u is mutated in place. Zero or negative damage, and
// damage to a destroyed unit, change nothing.
func (e *Engine) ApplyDamage(u *unit.Unit, ev DamageEvent) []report.Report {
	if u == nil || ev.Amount <= 0 || !u.Alive() {
		return nil
	}
	if u.Caps().Composite {
		return e.applyToSquadron(u, ev)
	}
	if !u.ValidLocation(ev.Hit.Location) {
		e.unreachable(u, ev.Hit.Location, "damage to a location the unit does not have")
		return nil
	}
	if u.Kind == unit.KindBattleArmor && ev.Hit.Location == unit.BASquad {
		// squad-wide hits land on one live trooper
		live := u.LiveTroopers()
		if len(live) == 0 {
			return nil
		}
		ev.Hit.Location = live[e.dice.IntN(len(live))]
	}

	out := []report.Report{
		*report.New(report.MsgDamageHeader).About(u.ID).Add(ev.Amount).AddString(u.LocationName(ev.Hit.Location), ev.Category.String()),
	}
	dmg, reps := e.capitalScale(u, ev, ev.Amount)
	out = append(out, reps...)
	dmg, reps = e.adjustForCategory(u, ev, dmg)
	out = append(out, reps...)

	if dmg > 0 && !ev.DamageIS && !ev.AmmoExplosion {
		dmg, reps = e.preArmor(u, ev, dmg)
		out = append(out, reps...)
		dmg, reps = e.riders(u, ev, dmg)
		out = append(out, reps...)
	}
	if dmg <= 0 || !u.Alive() {
		return out
	}
	if u.Caps().StructuralIntegrity {
		return append(out, e.applyAero(u, ev, dmg)...)
	}
	return append(out, e.resolveLocations(u, ev, dmg)...)
}

// visit collects what happened at one location for the end-of-location step.
type visit struct {
	loc     int
	rear    bool
	took    int
	crits   int
	barCrit bool
}

// resolveLocations is the armor, structure and transfer loop.
func (e *Engine) resolveLocations(u *unit.Unit, ev DamageEvent, dmg int) []report.Report {
	var out []report.Report
	caps := u.Caps()
	loc := ev.Hit.Location
	rear := ev.Hit.Rear && !ev.ThroughFront
	first := true

	// every transfer moves to a different location, so the chain is bounded
	for steps := 0; dmg > 0 && u.Alive() && steps <= len(u.Locations); steps++ {
		l := &u.Locations[loc]
		v := visit{loc: loc, rear: rear && l.HasRear()}
		if !first {
			out = append(out, *report.New(report.MsgDamageTransfers).About(u.ID).Add(dmg).AddString(u.LocationName(loc)).Indented(1))
		}
		wasDestroyed := l.IsDestroyed()
		contain := 0
		if ev.AmmoExplosion {
			switch {
			case u.HasCASEII(loc):
				contain = report.MsgCASEIIContains
			case u.HasCASE(loc):
				contain = report.MsgCASEContains
			}
		}

		if !wasDestroyed {
			if first && ev.Hit.Has(EffectCritical) {
				v.crits++
			}

			// armor
			if ev.DamageIS || ev.AmmoExplosion {
				out = append(out, *report.New(report.MsgDirectInternal).About(u.ID).Add(dmg).Indented(1))
			} else if armorBefore := l.ArmorFor(v.rear); armorBefore > 0 || (armorBefore == 0 && *l.CarryFor(v.rear)) {
				res := applyArmor(l, v.rear, dmg, ev.Hit.Class, ev.Hit.AreaEffect || ev.AreaSaturation)
				v.took += res.Absorbed
				if res.Effective != dmg {
					out = append(out, *report.New(report.MsgDamageAdjusted).About(u.ID).Add(dmg, res.Effective).AddString(l.ArmorType.String()).Indented(1))
				}
				if res.Exhausted {
					out = append(out, *report.New(report.MsgArmorDestroyed).About(u.ID).AddString(u.LocationName(loc)).Indented(1))
				} else {
					out = append(out, *report.New(report.MsgArmorAbsorbs).About(u.ID).Add(res.Absorbed, res.Remaining).Indented(1))
					if l.ArmorType == unit.ArmorHardened && *l.CarryFor(v.rear) {
						out = append(out, *report.New(report.MsgHardenedCarry).About(u.ID).Indented(2))
					}
				}
				if l.BAR < 10 && dmg > l.BAR {
					v.barCrit = true
					out = append(out, *report.New(report.MsgBARCritical).About(u.ID).Add(l.BAR, dmg).Indented(1))
				}
				dmg = res.Residual
			}

			if dmg > 0 && ev.Category == NonPenetrating {
				out = append(out, *report.New(report.MsgNonPenetrating).About(u.ID).Add(dmg).Indented(1))
				dmg = 0
			}

			// internal structure
			if dmg > 0 {
				res := applyStructure(l, u.Structure, dmg)
				v.took += res.Absorbed
				if res.Effective != dmg {
					out = append(out, *report.New(report.MsgDamageAdjusted).About(u.ID).Add(dmg, res.Effective).AddString("structure").Indented(1))
				}
				if caps.CrewCasualties {
					out = append(out, *report.New(report.MsgInfantryCasualties).About(u.ID).Add(res.Absorbed, max(l.Internal, 0)).Indented(1))
				}
				if res.Exhausted {
					dmg = res.Residual
					out = append(out, e.locationDestroyed(u, loc, ev)...)
				} else {
					dmg = 0
					out = append(out, *report.New(report.MsgStructureDamaged).About(u.ID).Add(res.Absorbed, res.Remaining).Indented(1))
					if l.StructureCarry {
						out = append(out, *report.New(report.MsgStructureCarry).About(u.ID).Indented(2))
					}
					if caps.CritOnStructure {
						v.crits++
					}
				}
			}
		}

		u.DamageThisPhase += v.took
		e.count(e.damage, v.took, u)

		// transfer
		next := -1
		if l.IsDestroyed() && u.Alive() {
			switch target := u.TransferLocation(loc); {
			case target == unit.LocDestroyed:
				out = append(out, e.checkEngineExplosion(u)...)
				if ev.AmmoExplosion {
					out = append(out, e.destroy(u, "ammunition explosion", true)...)
				} else {
					out = append(out, e.destroy(u, "location destroyed", false)...)
				}
				dmg = 0
			case target == unit.LocNone || target == loc:
				if dmg > 0 {
					out = append(out, *report.New(report.MsgDamageWasted).About(u.ID).Add(dmg).Indented(1))
				}
				dmg = 0
			case dmg > 1 && contain == report.MsgCASEIIContains:
				// CASE II vents all but one point
				out = append(out, *report.New(contain).About(u.ID).Add(dmg-1).Indented(1))
				dmg = 1
				next = target
			case dmg > 0 && contain == report.MsgCASEContains:
				out = append(out, *report.New(contain).About(u.ID).Add(dmg).Indented(1))
				dmg = 0
			default:
				next = target
			}
		}

		out = append(out, e.endOfLocation(u, ev, v)...)

		if next < 0 {
			break
		}
		loc = next
		first = false
	}
	return out
}

// ─── Squadrons ──────────────────────────────────────────────────────────────

func (e *Engine) applyToSquadron(u *unit.Unit, ev DamageEvent) []report.Report {
	live := u.LiveMembers()
	if len(live) == 0 {
		return e.destroy(u, "no surviving members", false)
	}
	m := live[e.dice.IntN(len(live))]
	loc, crit := m.RollHitLocation(ev.Hit.Rear, e.dice)
	ev.Hit.Location = loc
	if crit {
		ev.Hit.Effects |= EffectCritical
	}
	out := []report.Report{*report.New(report.MsgSquadronMemberHit).About(u.ID).AddString(m.ID, m.LocationName(loc))}
	out = append(out, e.ApplyDamage(m, ev)...)
	if len(u.LiveMembers()) == 0 {
		out = append(out, e.destroy(u, "no surviving members", false)...)
	}
	return out
}
