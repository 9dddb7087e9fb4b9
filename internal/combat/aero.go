package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Aerospace damage ───────────────────────────────────────────────────────

// applyAero runs damage through one arc's armor into structural integrity.
// Damage beyond the arc's threshold forces a critical check.
func (e *Engine) applyAero(u *unit.Unit, ev DamageEvent, dmg int) []report.Report {
	if u.Aero == nil {
		e.unreachable(u, ev.Hit.Location, "aerospace damage on a unit without aerospace state")
		return nil
	}
	a := u.Aero
	loc := ev.Hit.Location
	l := &u.Locations[loc]
	var out []report.Report

	crit := ev.Hit.Has(EffectCritical)
	if l.Threshold > 0 && dmg > l.Threshold {
		crit = true
		out = append(out, *report.New(report.MsgAeroThreshold).About(u.ID).Add(dmg, l.Threshold).Indented(1))
	}

	took := 0
	if !ev.DamageIS && !ev.AmmoExplosion && l.Armor > 0 {
		res := applyArmor(l, false, dmg, ev.Hit.Class, ev.Hit.AreaEffect || ev.AreaSaturation)
		took += res.Absorbed
		if res.Exhausted {
			out = append(out, *report.New(report.MsgArmorDestroyed).About(u.ID).AddString(u.LocationName(loc)).Indented(1))
		} else {
			out = append(out, *report.New(report.MsgArmorAbsorbs).About(u.ID).Add(res.Absorbed, res.Remaining).Indented(1))
		}
		dmg = res.Residual
	}
	if dmg > 0 && ev.Category == NonPenetrating {
		out = append(out, *report.New(report.MsgNonPenetrating).About(u.ID).Add(dmg).Indented(1))
		dmg = 0
	}
	if dmg > 0 {
		before := a.SI
		a.SI = max(a.SI-dmg, 0)
		took += before - a.SI
		out = append(out, *report.New(report.MsgSIDamaged).About(u.ID).Add(before-a.SI, a.SI).Indented(1))
		if a.SI == 0 {
			out = append(out, e.destroy(u, "structural integrity collapse", false)...)
		}
	}
	u.DamageThisPhase += took
	e.count(e.damage, took, u)

	if crit && u.Alive() && !ev.Hit.Has(EffectNoCritical) {
		out = append(out, e.RollCritical(u, loc, false, 0, took)...)
	}
	return out
}

// ─── Aerospace criticals ────────────────────────────────────────────────────

type aeroEffect int

const (
	aeroNone aeroEffect = iota
	aeroFCS
	aeroSensors
	aeroAvionics
	aeroFuelTank
	aeroCrew
	aeroGear
	aeroBomb
	aeroHeatSink
	aeroWeapon
	aeroEngine
	aeroThrusters
	aeroCargo
	aeroCollar
	aeroDrive
	aeroBridge
)

// effect tables indexed by 2d6 - 2
var (
	aeroNoseCrits = [11]aeroEffect{
		aeroNone, aeroNone, aeroNone, aeroNone, aeroAvionics, aeroWeapon,
		aeroFCS, aeroSensors, aeroCrew, aeroWeapon, aeroFuelTank,
	}
	aeroWingCrits = [11]aeroEffect{
		aeroNone, aeroNone, aeroNone, aeroNone, aeroWeapon, aeroHeatSink,
		aeroGear, aeroAvionics, aeroBomb, aeroWeapon, aeroFuelTank,
	}
	aeroAftCrits = [11]aeroEffect{
		aeroNone, aeroNone, aeroNone, aeroNone, aeroHeatSink, aeroThrusters,
		aeroEngine, aeroFuelTank, aeroEngine, aeroGear, aeroEngine,
	}
	aeroFuselageCrits = [11]aeroEffect{
		aeroNone, aeroNone, aeroNone, aeroNone, aeroCrew, aeroCargo,
		aeroCollar, aeroAvionics, aeroGear, aeroFuelTank, aeroCrew,
	}
)

// aeroEffectFor looks up the effect for a 2d6 roll, substituting the
// capital-scale systems where the craft has them.
func aeroEffectFor(u *unit.Unit, loc, roll int) aeroEffect {
	var eff aeroEffect
	switch loc {
	case unit.AeroNose:
		eff = aeroNoseCrits[roll-2]
		if roll == 12 && u.CapitalScale {
			eff = aeroBridge
		}
	case unit.AeroLeftWing, unit.AeroRightWing:
		eff = aeroWingCrits[roll-2]
	case unit.AeroAft:
		eff = aeroAftCrits[roll-2]
		if eff == aeroEngine && u.CapitalScale {
			eff = aeroDrive
		}
	default:
		eff = aeroFuselageCrits[roll-2]
	}
	if (eff == aeroCargo || eff == aeroCollar) && !u.CapitalScale {
		eff = aeroNone
	}
	return eff
}

func (e *Engine) aeroCritical(u *unit.Unit, loc, n int, locResult bool) []report.Report {
	if u.Aero == nil {
		e.unreachable(u, loc, "aerospace critical on a unit without aerospace state")
		return nil
	}
	if locResult {
		n = 3
	}
	var out []report.Report
	for range n {
		if !u.Alive() {
			break
		}
		out = append(out, e.aeroEffect(u, loc, aeroEffectFor(u, loc, e.dice.Roll2d6()))...)
	}
	return out
}

func (e *Engine) aeroEffect(u *unit.Unit, loc int, eff aeroEffect) []report.Report {
	a := u.Aero
	rep := func(id int, nums ...int) []report.Report {
		return []report.Report{*report.New(id).About(u.ID).Add(nums...).Indented(3)}
	}
	switch eff {
	case aeroNone:
		return rep(report.MsgNoCritical)
	case aeroFCS:
		a.FCSHits++
		return rep(report.MsgAeroFCS, a.FCSHits)
	case aeroSensors:
		a.SensorHits++
		return rep(report.MsgAeroSensors, a.SensorHits)
	case aeroAvionics:
		a.AvionicsHits++
		return append(rep(report.MsgAeroAvionics, a.AvionicsHits), e.enqueue(u, 0, "avionics hit", false))
	case aeroFuelTank:
		return e.fuelTank(u)
	case aeroCrew:
		return append(rep(report.MsgAeroCrew), e.damageCrew(u, 1, "crew hit")...)
	case aeroGear:
		a.GearHit = true
		return rep(report.MsgAeroGear)
	case aeroBomb:
		if i := u.FindMisc(-1, unit.MiscBomb); i >= 0 {
			u.Equipment[i].Hit = true
			u.Equipment[i].Destroyed = true
			return []report.Report{*report.New(report.MsgAeroBomb).About(u.ID).AddString(u.Equipment[i].Name).Indented(3)}
		}
		return rep(report.MsgNoCritical)
	case aeroHeatSink:
		u.Dissipation = max(u.Dissipation-1, 0)
		return rep(report.MsgAeroHeatSink, u.Dissipation)
	case aeroWeapon:
		ws := u.Weapons(loc)
		if len(ws) == 0 {
			return rep(report.MsgNoCritical)
		}
		m := u.Equipment[ws[e.dice.IntN(len(ws))]]
		m.Hit = true
		m.Destroyed = true
		return []report.Report{*report.New(report.MsgAeroWeapon).About(u.ID).AddString(m.Name).Indented(3)}
	case aeroEngine:
		return append(rep(report.MsgAeroEngine), e.engineHits(u, 1, true)...)
	case aeroThrusters:
		a.ThrusterHits++
		return append(rep(report.MsgAeroThrusters, a.ThrusterHits), e.enqueue(u, 0, "thrusters hit", false))
	case aeroCargo:
		a.CargoHit = true
		return rep(report.MsgAeroCargo)
	case aeroCollar:
		a.CollarHit = true
		return rep(report.MsgAeroDockingCollar)
	case aeroDrive:
		a.DriveHits++
		return rep(report.MsgAeroDrive, a.DriveHits)
	case aeroBridge:
		a.BridgeHit = true
		return append(rep(report.MsgAeroBridge), e.enqueue(u, 0, "bridge hit", false))
	}
	return nil
}

// fuelTank rolls for a ruptured tank to explode, with an Edge reroll when
// that option is on.
func (e *Engine) fuelTank(u *unit.Unit) []report.Report {
	u.Aero.FuelTankHit = true
	roll := e.dice.Roll2d6()
	explodes := roll >= 10
	out := []report.Report{*report.New(report.MsgAeroFuelTank).About(u.ID).Add(roll).Outcome(!explodes).Indented(3)}
	if explodes && e.opts.EdgeOnFuelTank && u.Crew.SpendEdge() {
		out = append(out, *report.New(report.MsgEdgeUsed).About(u.ID).Add(u.Crew.Edge).Indented(4))
		roll = e.dice.Roll2d6()
		explodes = roll >= 10
		out = append(out, *report.New(report.MsgAeroFuelTank).About(u.ID).Add(roll).Outcome(!explodes).Indented(3))
	}
	if !explodes {
		u.Aero.Fuel /= 2
		return out
	}
	e.count(e.explosions, 1, u)
	out = append(out, *report.New(report.MsgAeroFuelExplodes).About(u.ID).Indented(3))
	return append(out, e.destroy(u, "fuel tank explosion", false)...)
}
