package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Critical hit resolver ──────────────────────────────────────────────────

// critSlots maps a modified 2d6 total onto the number of slot hits, or a
// location-destroying result.
func critSlots(total int, advanced bool) (n int, locationResult bool) {
	if advanced {
		switch {
		case total >= 15:
			return 0, true
		case total >= 13:
			return 3, false
		case total >= 11:
			return 2, false
		case total >= 9:
			return 1, false
		}
		return 0, false
	}
	switch {
	case total >= 12:
		return 0, true
	case total >= 10:
		return 2, false
	case total >= 8:
		return 1, false
	}
	return 0, false
}

// critModifier sums the standing modifiers of a unit's crit rolls at loc.
func critModifier(u *unit.Unit, loc int) int {
	mod := 0
	for _, q := range u.Quirks {
		mod += q.CritModifier()
	}
	if u.Industrial {
		mod += 2
	}
	if u.Structure == unit.StructReinforced {
		mod--
	}
	if u.ValidLocation(loc) {
		mod += u.Locations[loc].ArmorType.CritModifier()
	}
	return mod
}

// RollCritical rolls for critical hits at loc and applies them. Battle armor
// loses a trooper instead of rolling.
func (e *Engine) RollCritical(u *unit.Unit, loc int, rear bool, mod int, damageCaused int) []report.Report {
	if u == nil || !u.Alive() || !u.ValidLocation(loc) {
		return nil
	}
	switch u.Kind {
	case unit.KindBattleArmor:
		e.count(e.crits, 1, u)
		return e.battleArmorCritical(u)
	case unit.KindInfantry, unit.KindSquadron:
		e.unreachable(u, loc, "critical hit on a unit without critical slots")
		return nil
	}
	e.count(e.crits, 1, u)

	roll := e.dice.Roll2d6()
	mod += critModifier(u, loc)
	n, locResult := critSlots(roll+mod, e.opts.AdvancedCritTable)
	out := []report.Report{*report.New(report.MsgCritRoll).About(u.ID).AddString(u.LocationName(loc)).Add(roll, mod, n, damageCaused).Indented(2)}
	if n == 0 && !locResult {
		return append(out, *report.New(report.MsgNoCritical).About(u.ID).Indented(3))
	}

	switch u.Kind {
	case unit.KindMek:
		out = append(out, e.mekCritical(u, loc, n, locResult)...)
	case unit.KindVehicle:
		out = append(out, e.vehicleCritical(u, loc, n, locResult)...)
	case unit.KindAerospace:
		out = append(out, e.aeroCritical(u, loc, n, locResult)...)
	case unit.KindProtoMech:
		out = append(out, e.protoCritical(u, loc, n, locResult)...)
	default:
		e.unreachable(u, loc, "critical hit on an unknown kind")
	}
	return out
}

// ─── Mek ────────────────────────────────────────────────────────────────────

func (e *Engine) mekCritical(u *unit.Unit, loc, n int, locResult bool) []report.Report {
	if locResult {
		switch {
		case unit.IsLimb(loc):
			return e.blowOffLimb(u, loc)
		case loc == unit.LocHD:
			return e.blowOffHead(u)
		}
		n = 3
		if u.Industrial {
			n = 4
		}
	}
	var out []report.Report
	for range n {
		if !u.Alive() || u.Locations[loc].IsDestroyed() {
			break
		}
		out = append(out, e.critRandomSlot(u, loc)...)
	}
	return out
}

// critRandomSlot picks uniformly among the slots a hit can still land on.
func (e *Engine) critRandomSlot(u *unit.Unit, loc int) []report.Report {
	slots := u.HittableSlots(loc)
	if len(slots) == 0 {
		return []report.Report{*report.New(report.MsgCritAbsorbed).About(u.ID).AddString(u.LocationName(loc)).Indented(3)}
	}
	return e.ApplyCriticalSlot(u, loc, slots[e.dice.IntN(len(slots))], true)
}

func slotName(u *unit.Unit, s *unit.Slot) string {
	if s.Kind == unit.SlotEquipment && s.Mount >= 0 && s.Mount < len(u.Equipment) {
		return u.Equipment[s.Mount].Name
	}
	return s.System.String()
}

// ApplyCriticalSlot applies one critical hit to a specific slot. With
// secondary false (scenario pre-damage) explosive equipment is marked
// destroyed without detonating.
func (e *Engine) ApplyCriticalSlot(u *unit.Unit, loc, idx int, secondary bool) []report.Report {
	if !u.ValidLocation(loc) || idx < 0 || idx >= len(u.Locations[loc].Slots) {
		e.unreachable(u, loc, "critical hit on a missing slot")
		return nil
	}
	s := &u.Locations[loc].Slots[idx]
	if s.Armored {
		s.Armored = false
		return []report.Report{*report.New(report.MsgArmoredSlot).About(u.ID).AddString(slotName(u, s)).Indented(3)}
	}
	if !s.Hittable() {
		return []report.Report{*report.New(report.MsgCritAbsorbed).About(u.ID).AddString(u.LocationName(loc)).Indented(3)}
	}
	s.Hit = true
	out := []report.Report{*report.New(report.MsgCritSlot).About(u.ID).AddString(u.LocationName(loc), slotName(u, s)).Indented(3)}
	switch s.Kind {
	case unit.SlotSystem:
		out = append(out, e.mekSystemHit(u, loc, s.System)...)
	case unit.SlotEquipment:
		out = append(out, e.equipmentHit(u, s.Mount, secondary)...)
	}
	return out
}

func (e *Engine) mekSystemHit(u *unit.Unit, loc int, sys unit.System) []report.Report {
	if u.Mek == nil {
		e.unreachable(u, loc, "mek system hit on a unit without mek state")
		return nil
	}
	m := u.Mek
	rep := func(id int) report.Report {
		return *report.New(id).About(u.ID).AddString(sys.String()).Indented(3)
	}
	switch {
	case sys == unit.SysCockpit:
		m.CockpitHit = true
		return append([]report.Report{rep(report.MsgCockpitHit)}, e.killCrew(u, "cockpit destroyed")...)
	case sys == unit.SysEngine:
		return e.engineHits(u, 1, true)
	case sys == unit.SysGyro:
		m.GyroHits++
		if m.GyroHits >= u.Gyro.HitsToDestroy() {
			return []report.Report{rep(report.MsgGyroDestroyed), e.enqueue(u, 0, "gyro destroyed", true)}
		}
		return []report.Report{
			*report.New(report.MsgGyroHit).About(u.ID).Add(m.GyroHits, u.Gyro.PSRModifier(m.GyroHits)).Indented(3),
			e.enqueue(u, 0, "gyro hit", false),
		}
	case sys == unit.SysLifeSupport:
		m.LifeSupport++
		return []report.Report{rep(report.MsgLifeSupportHit)}
	case sys == unit.SysSensors:
		m.SensorHits++
		return []report.Report{rep(report.MsgSensorHit)}
	case sys == unit.SysHip:
		m.HipHit[loc] = true
		return []report.Report{rep(report.MsgActuatorHit), e.enqueue(u, 0, "hip hit", false)}
	case sys.IsLegActuator(), sys.IsArmActuator():
		m.ActuatorHits[loc]++
		return []report.Report{rep(report.MsgActuatorHit), e.enqueue(u, 0, sys.String()+" hit", false)}
	case sys == unit.SysAvionics:
		m.AvionicsHits++
		out := []report.Report{rep(report.MsgAvionicsHit)}
		if u.Airborne {
			out = append(out, e.enqueue(u, m.AvionicsHits, "avionics hit", false))
		}
		return out
	case sys == unit.SysLandingGear:
		m.LandingGear = true
		return []report.Report{rep(report.MsgLandingGearHit)}
	}
	e.unreachable(u, loc, "hit on an unknown system slot")
	return nil
}

// blowOffLimb is the location-destroying result on an arm or leg.
func (e *Engine) blowOffLimb(u *unit.Unit, loc int) []report.Report {
	out := []report.Report{*report.New(report.MsgLimbBlownOff).About(u.ID).AddString(u.LocationName(loc)).Indented(3)}
	out = append(out, e.locationDestroyed(u, loc, DamageEvent{})...)
	l := &u.Locations[loc]
	l.BlownOff = true
	for i := range l.Slots {
		l.Slots[i].Missing = true
	}
	return out
}

// blowOffHead is the location-destroying result on the head. A torso
// cockpit keeps the crew alive and the unit in play.
func (e *Engine) blowOffHead(u *unit.Unit) []report.Report {
	out := []report.Report{*report.New(report.MsgHeadBlownOff).About(u.ID).Indented(3)}
	out = append(out, e.locationDestroyed(u, unit.LocHD, DamageEvent{})...)
	l := &u.Locations[unit.LocHD]
	l.BlownOff = true
	for i := range l.Slots {
		l.Slots[i].Missing = true
	}
	if u.Cockpit == unit.CockpitTorso {
		return out
	}
	for i := range u.Crew.Members {
		u.Crew.Members[i].Dead = true
	}
	out = append(out, *report.New(report.MsgCrewKilled).About(u.ID).AddString("all", "head blown off").Indented(3))
	return append(out, e.destroy(u, "head blown off", false)...)
}

// ─── Equipment (all kinds) ──────────────────────────────────────────────────

func (e *Engine) equipmentHit(u *unit.Unit, idx int, secondary bool) []report.Report {
	if idx < 0 || idx >= len(u.Equipment) {
		e.unreachable(u, -1, "equipment slot without mounted equipment")
		return nil
	}
	m := u.Equipment[idx]
	if m.Destroyed {
		return []report.Report{*report.New(report.MsgEquipmentHit).About(u.ID).AddString(m.Name).Indented(3)}
	}
	if m.CanExplode() {
		if !secondary {
			m.Hit = true
			m.Destroyed = true
			return []report.Report{*report.New(report.MsgExplosionSkipped).About(u.ID).AddString(m.Name).Indented(3)}
		}
		return e.explode(u, idx)
	}
	m.Hit = true
	m.Destroyed = true

	switch {
	case m.IsWeapon():
		return []report.Report{*report.New(report.MsgWeaponDestroyed).About(u.ID).AddString(m.Name).Indented(3)}
	case m.Misc == unit.MiscHeatSink, m.Misc == unit.MiscDoubleHeatSink:
		lost := 1
		if m.Misc == unit.MiscDoubleHeatSink {
			lost = 2
		}
		u.Dissipation = max(u.Dissipation-lost, 0)
		return []report.Report{*report.New(report.MsgHeatSinkHit).About(u.ID).Add(u.Dissipation).Indented(3)}
	case m.Misc == unit.MiscECM:
		out := []report.Report{*report.New(report.MsgEquipmentHit).About(u.ID).AddString(m.Name).Indented(3)}
		for _, other := range u.Equipment {
			if other.LinkedECM == idx && !other.Disabled {
				other.Disabled = true
				out = append(out, *report.New(report.MsgECMLinkLost).About(u.ID).AddString(other.Name).Indented(4))
			}
		}
		return out
	case m.Misc == unit.MiscShield:
		m.Active = false
	}
	return []report.Report{*report.New(report.MsgEquipmentHit).About(u.ID).AddString(m.Name).Indented(3)}
}

// ─── Battle armor ───────────────────────────────────────────────────────────

// battleArmorCritical kills one randomly chosen trooper outright.
func (e *Engine) battleArmorCritical(u *unit.Unit) []report.Report {
	live := u.LiveTroopers()
	if len(live) == 0 {
		return nil
	}
	t := live[e.dice.IntN(len(live))]
	return e.locationDestroyed(u, t, DamageEvent{})
}
