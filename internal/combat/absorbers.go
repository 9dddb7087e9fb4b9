package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Pre-armor absorbers ────────────────────────────────────────────────────

// shieldFor returns the active shield covering a front hit on loc, or -1. A
// shield covers its own arm and the torso on the same side.
func shieldFor(u *unit.Unit, loc int, rear bool) int {
	if u.Kind != unit.KindMek || rear {
		return -1
	}
	for i, m := range u.Equipment {
		if m.Misc != unit.MiscShield || !m.Active || m.Destroyed || m.Capacity <= 0 {
			continue
		}
		switch {
		case m.Location == loc:
			return i
		case m.Location == unit.LocLA && loc == unit.LocLT:
			return i
		case m.Location == unit.LocRA && loc == unit.LocRT:
			return i
		}
	}
	return -1
}

// absorb takes up to dmg points from an absorbing item.
func absorb(m *unit.Mounted, dmg int) (took int, gone bool) {
	took = min(dmg, m.Capacity)
	m.Capacity -= took
	if m.Capacity <= 0 {
		m.Destroyed = true
		return took, true
	}
	return took, false
}

func (e *Engine) preArmor(u *unit.Unit, ev DamageEvent, dmg int) (int, []report.Report) {
	var out []report.Report
	loc := ev.Hit.Location

	if i := shieldFor(u, loc, ev.Hit.Rear); i >= 0 {
		s := u.Equipment[i]
		took, gone := absorb(s, dmg)
		dmg -= took
		out = append(out, *report.New(report.MsgShieldAbsorbs).About(u.ID).Add(took, s.Capacity).Indented(1))
		if gone {
			out = append(out, *report.New(report.MsgShieldDestroyed).About(u.ID).AddString(s.Name).Indented(1))
		}
	}

	if dmg > 0 && u.Kind == unit.KindMek && loc == unit.LocHD && u.HasQuirk(unit.QuirkCowl) && u.CowlArmor > 0 {
		took := min(dmg, u.CowlArmor)
		u.CowlArmor -= took
		dmg -= took
		out = append(out, *report.New(report.MsgCowlAbsorbs).About(u.ID).Add(took, u.CowlArmor).Indented(1))
	}

	if dmg > 0 {
		if i := u.FindMisc(loc, unit.MiscModularArmor); i >= 0 && u.Equipment[i].Capacity > 0 {
			m := u.Equipment[i]
			took, gone := absorb(m, dmg)
			dmg -= took
			out = append(out, *report.New(report.MsgModularAbsorbs).About(u.ID).Add(took, m.Capacity).Indented(1))
			if gone {
				out = append(out, *report.New(report.MsgModularDestroyed).About(u.ID).Indented(1))
			}
		}
	}

	if dmg > 0 {
		if i := u.FindMisc(-1, unit.MiscSearchlight); i >= 0 {
			if e.dice.D6() == 6 {
				u.Equipment[i].Destroyed = true
				out = append(out, *report.New(report.MsgSearchlightDestroyed).About(u.ID).Indented(1))
			}
		}
	}
	return dmg, out
}

// ─── Exterior riders ────────────────────────────────────────────────────────

// riders lets passengers and swarmers on the hit location intercept part of
// the damage. Each rider's share is resolved before the carrier's.
func (e *Engine) riders(u *unit.Unit, ev DamageEvent, dmg int) (int, []report.Report) {
	if u.Kind != unit.KindMek && u.Kind != unit.KindVehicle {
		return dmg, nil
	}
	var out []report.Report
	for _, i := range u.RidersAt(ev.Hit.Location) {
		if dmg <= 0 {
			break
		}
		p := u.Riders[i]
		roll := e.dice.D6()
		share := 0
		switch {
		case roll >= 5:
			share = dmg
		case roll >= 3:
			share = (dmg + 1) / 2
		}
		if share == 0 {
			continue
		}
		dmg -= share
		out = append(out, *report.New(report.MsgRiderIntercepts).About(p.Unit.ID).Add(roll, share).Indented(1))

		loc, crit := p.Unit.RollHitLocation(false, e.dice)
		rev := DamageEvent{
			Hit:      HitSpec{Location: loc, Class: ev.Hit.Class, AreaEffect: ev.Hit.AreaEffect, Attacker: ev.Hit.Attacker},
			Amount:   share,
			Category: ev.Category,
		}
		if crit {
			rev.Hit.Effects |= EffectCritical
		}
		out = append(out, e.ApplyDamage(p.Unit, rev)...)
	}
	return dmg, out
}
