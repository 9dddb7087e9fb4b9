package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Vehicle criticals ──────────────────────────────────────────────────────

type vehicleEffect int

const (
	vehNone vehicleEffect = iota
	vehDriver
	vehCommander
	vehWeaponJam
	vehWeaponDestroyed
	vehStabilizer
	vehSensors
	vehCrewStunned
	vehCrewKilled
	vehCargo
	vehEngine
	vehFuelTank
	vehAmmo
	vehTurretJam
	vehTurretLock
	vehTurretBlownOff
	vehRotorDamage
	vehRotorDestroyed
)

// effect tables indexed by 2d6 - 2
var (
	vehicleFrontCrits = [11]vehicleEffect{
		vehNone, vehNone, vehNone, vehNone, vehDriver, vehWeaponJam,
		vehStabilizer, vehSensors, vehCommander, vehWeaponDestroyed, vehCrewKilled,
	}
	vehicleSideCrits = [11]vehicleEffect{
		vehNone, vehNone, vehNone, vehNone, vehCargo, vehWeaponJam,
		vehCrewStunned, vehStabilizer, vehWeaponDestroyed, vehEngine, vehFuelTank,
	}
	vehicleRearCrits = [11]vehicleEffect{
		vehNone, vehNone, vehNone, vehNone, vehWeaponJam, vehCargo,
		vehStabilizer, vehWeaponDestroyed, vehEngine, vehAmmo, vehFuelTank,
	}
	vehicleTurretCrits = [11]vehicleEffect{
		vehNone, vehNone, vehNone, vehNone, vehStabilizer, vehTurretJam,
		vehWeaponJam, vehTurretLock, vehWeaponDestroyed, vehAmmo, vehTurretBlownOff,
	}
	vehicleRotorCrits = [11]vehicleEffect{
		vehNone, vehNone, vehNone, vehNone, vehRotorDamage, vehRotorDamage,
		vehRotorDamage, vehRotorDamage, vehStabilizer, vehStabilizer, vehRotorDestroyed,
	}
)

func vehicleTable(u *unit.Unit, loc int) *[11]vehicleEffect {
	switch loc {
	case unit.VehFront:
		return &vehicleFrontCrits
	case unit.VehRear:
		return &vehicleRearCrits
	case unit.VehTurret:
		if u.Motive == unit.MotiveVTOL {
			return &vehicleRotorCrits
		}
		return &vehicleTurretCrits
	}
	return &vehicleSideCrits
}

func (e *Engine) vehicleCritical(u *unit.Unit, loc, n int, locResult bool) []report.Report {
	if u.Vehicle == nil {
		e.unreachable(u, loc, "vehicle critical on a unit without vehicle state")
		return nil
	}
	lowest := n == 1
	if locResult {
		n = 3
	}
	table := vehicleTable(u, loc)
	var out []report.Report
	for range n {
		if !u.Alive() {
			break
		}
		roll := e.dice.Roll2d6()
		out = append(out, e.vehicleEffect(u, loc, table[roll-2], lowest)...)
	}
	return out
}

func (e *Engine) vehicleEffect(u *unit.Unit, loc int, eff vehicleEffect, lowest bool) []report.Report {
	v := u.Vehicle
	rep := func(id int) []report.Report {
		return []report.Report{*report.New(id).About(u.ID).AddString(u.LocationName(loc)).Indented(3)}
	}
	switch eff {
	case vehNone:
		return []report.Report{*report.New(report.MsgNoCritical).About(u.ID).Indented(3)}
	case vehDriver:
		v.DriverHit = true
		return rep(report.MsgVehicleDriverHit)
	case vehCommander:
		v.CommanderHit = true
		return rep(report.MsgVehicleCommanderHit)
	case vehStabilizer:
		if loc < len(v.Stabilizers) {
			v.Stabilizers[loc] = true
		}
		return rep(report.MsgVehicleStabilizer)
	case vehSensors:
		v.SensorHits++
		return rep(report.MsgVehicleSensors)
	case vehCrewStunned:
		v.CrewStunned += 2
		return rep(report.MsgVehicleCrewStunned)
	case vehCrewKilled:
		for i := range u.Crew.Members {
			u.Crew.Members[i].Dead = true
		}
		return append(rep(report.MsgVehicleCrewKilled), e.destroy(u, "crew killed", false)...)
	case vehCargo:
		v.CargoHit = true
		return rep(report.MsgVehicleCargoHit)
	case vehEngine:
		v.EngineHit = true
		v.Immobile = true
		return e.engineHits(u, 1, true)
	case vehFuelTank:
		out := rep(report.MsgVehicleFuelTank)
		if u.Engine.Type.IsFusion() {
			return append(out, e.engineHits(u, 1, true)...)
		}
		e.count(e.explosions, 1, u)
		return append(out, e.destroy(u, "fuel tank explosion", false)...)
	case vehAmmo:
		if out, ok := e.ExplodeAmmo(u); ok {
			return out
		}
		return []report.Report{*report.New(report.MsgNoCritical).About(u.ID).Indented(3)}
	case vehWeaponJam, vehWeaponDestroyed:
		i := e.pickVehicleWeapon(u, loc, lowest)
		if i < 0 {
			return []report.Report{*report.New(report.MsgNoCritical).About(u.ID).Indented(3)}
		}
		m := u.Equipment[i]
		if eff == vehWeaponJam {
			m.Jammed = true
			return []report.Report{*report.New(report.MsgWeaponJammed).About(u.ID).AddString(m.Name).Indented(3)}
		}
		m.Hit = true
		m.Destroyed = true
		return []report.Report{*report.New(report.MsgWeaponDestroyed).About(u.ID).AddString(m.Name).Indented(3)}
	case vehTurretJam:
		v.TurretJammed = true
		return rep(report.MsgTurretJam)
	case vehTurretLock:
		v.TurretLocked = true
		return rep(report.MsgTurretLocked)
	case vehTurretBlownOff:
		out := rep(report.MsgTurretBlownOff)
		out = append(out, e.locationDestroyed(u, loc, DamageEvent{})...)
		u.Locations[loc].BlownOff = true
		return out
	case vehRotorDamage:
		v.RotorHits++
		v.MotivePenalty++
		return rep(report.MsgRotorDamaged)
	case vehRotorDestroyed:
		return e.locationDestroyed(u, loc, DamageEvent{})
	}
	return nil
}

// pickVehicleWeapon chooses the cheapest working weapon at loc for a single
// hit and the most valuable otherwise. It falls back to the whole vehicle
// when loc carries none.
func (e *Engine) pickVehicleWeapon(u *unit.Unit, loc int, lowest bool) int {
	cands := u.Weapons(loc)
	if len(cands) == 0 {
		cands = u.Weapons(-1)
	}
	best := -1
	for _, i := range cands {
		if best < 0 {
			best = i
			continue
		}
		v, b := u.Equipment[i].Value, u.Equipment[best].Value
		if (lowest && v < b) || (!lowest && v > b) {
			best = i
		}
	}
	return best
}
