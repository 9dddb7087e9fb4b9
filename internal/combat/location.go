package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Location destroyed ─────────────────────────────────────────────────────

// wreckLocation marks everything at loc destroyed and returns how many
// intact engine slots were lost.
func wreckLocation(u *unit.Unit, loc int) int {
	l := &u.Locations[loc]
	engineSlots := 0
	for i := range l.Slots {
		s := &l.Slots[i]
		if s.Kind == unit.SlotSystem && s.System == unit.SysEngine && !s.Hit && !s.Destroyed {
			engineSlots++
		}
		s.Destroyed = true
	}
	for _, m := range u.Equipment {
		if m.Location == loc {
			m.Destroyed = true
		}
	}
	if l.Armor > 0 {
		l.Armor = unit.Destroyed
	}
	if l.HasRear() && l.RearArmor > 0 {
		l.RearArmor = unit.Destroyed
	}
	l.Internal = unit.Destroyed
	l.StructureCarry = false
	return engineSlots
}

// locationDestroyed runs the side effects of a location's structure giving
// out.
func (e *Engine) locationDestroyed(u *unit.Unit, loc int, ev DamageEvent) []report.Report {
	out := []report.Report{*report.New(report.MsgLocationDestroyed).About(u.ID).AddString(u.LocationName(loc)).Indented(1)}
	engineSlots := wreckLocation(u, loc)

	for _, i := range u.RidersAt(loc) {
		p := u.Riders[i]
		out = append(out, *report.New(report.MsgRiderKilled).About(p.Unit.ID).AddString(u.LocationName(loc)).Indented(2))
		out = append(out, e.destroy(p.Unit, "carrier location destroyed", false)...)
	}

	switch u.Kind {
	case unit.KindMek:
		if engineSlots > 0 && loc != unit.LocCT {
			out = append(out, e.engineHits(u, engineSlots, false)...)
		}
		if unit.IsLimb(loc) {
			out = append(out, e.limbDebris(u, loc)...)
		}
		if u.IsLeg(loc) && u.Alive() {
			out = append(out, e.enqueue(u, 0, "leg destroyed", true))
		}
	case unit.KindVehicle:
		if u.Motive == unit.MotiveVTOL && loc == unit.VehRotor {
			out = append(out, *report.New(report.MsgRotorDestroyed).About(u.ID).Indented(2))
			out = append(out, e.enqueue(u, 0, "rotor destroyed", true))
		}
	case unit.KindProtoMech:
		if u.Proto != nil {
			u.Proto.Hits[loc] = protoThreshold(loc)
		}
	case unit.KindBattleArmor:
		out = append(out, *report.New(report.MsgTrooperKilled).About(u.ID).AddString(u.LocationName(loc)).Indented(2))
		out = append(out, e.infernoChain(u, loc)...)
		if len(u.LiveTroopers()) == 0 && u.Alive() {
			out = append(out, e.destroy(u, "all troopers killed", false)...)
		}
	}
	return out
}

func (e *Engine) limbDebris(u *unit.Unit, loc int) []report.Report {
	if e.board == nil {
		return nil
	}
	e.board.AddDebris(u.Pos, u.Name+" "+u.LocationName(loc))
	return []report.Report{*report.New(report.MsgLimbDebris).About(u.ID).AddString(u.Pos.String()).Indented(2)}
}

// infernoChain detonates inferno ammunition carried by a dead trooper into
// another member of the squad.
func (e *Engine) infernoChain(u *unit.Unit, loc int) []report.Report {
	var out []report.Report
	for _, m := range u.Equipment {
		if !m.Inferno || m.Trooper != loc || m.Shots <= 0 {
			continue
		}
		amount := m.Shots * max(m.DamagePerShot, 1)
		m.Shots = 0
		live := u.LiveTroopers()
		if len(live) == 0 {
			break
		}
		target := live[e.dice.IntN(len(live))]
		out = append(out, *report.New(report.MsgInfernoChain).About(u.ID).Add(amount).AddString(u.LocationName(target)).Indented(2))
		e.count(e.explosions, 1, u)
		out = append(out, e.ApplyDamage(u, DamageEvent{Hit: HitSpec{Location: target, AreaEffect: true}, Amount: amount, Category: Incendiary})...)
	}
	return out
}

// ─── End of location ────────────────────────────────────────────────────────

// endOfLocation runs once for every location the loop visited.
func (e *Engine) endOfLocation(u *unit.Unit, ev DamageEvent, v visit) []report.Report {
	var out []report.Report
	l := &u.Locations[v.loc]
	intact := !l.IsDestroyed()

	if v.took > 0 && intact && u.Alive() && (u.Environment.Hostile() || ev.Underwater) && !l.Breached {
		out = append(out, e.breachCheck(u, v.loc)...)
	}

	if v.took > 0 && intact {
		if i := u.FindMisc(v.loc, unit.MiscSpikes); i >= 0 && e.dice.D6() == 6 {
			u.Equipment[i].Destroyed = true
			out = append(out, *report.New(report.MsgSpikesDestroyed).About(u.ID).AddString(u.LocationName(v.loc)).Indented(1))
		}
	}

	if !ev.Hit.Has(EffectNoCritical) && intact && u.Alive() {
		n := v.crits
		if v.barCrit {
			n++
		}
		for range n {
			if !u.Alive() || l.IsDestroyed() {
				break
			}
			out = append(out, e.RollCritical(u, v.loc, v.rear, 0, v.took)...)
		}
	}

	if v.took > 0 && u.Caps().HeadCrewInjury && v.loc == unit.LocHD && u.Cockpit != unit.CockpitTorso && u.Alive() {
		out = append(out, *report.New(report.MsgHeadHitCrew).About(u.ID).Indented(1))
		out = append(out, e.damageCrew(u, 1, "head hit")...)
	}
	return out
}

// breachCheck rolls for a hull breach at loc.
func (e *Engine) breachCheck(u *unit.Unit, loc int) []report.Report {
	roll := e.dice.Roll2d6()
	breached := roll >= 10
	out := []report.Report{*report.New(report.MsgBreachRoll).About(u.ID).AddString(u.LocationName(loc)).Add(roll).Outcome(!breached).Indented(1)}
	if !breached {
		return out
	}
	l := &u.Locations[loc]
	l.Breached = true
	for i := range l.Slots {
		l.Slots[i].Breached = true
	}
	for _, m := range u.Equipment {
		if m.Location == loc {
			m.Breached = true
		}
	}
	out = append(out, *report.New(report.MsgBreached).About(u.ID).AddString(u.LocationName(loc)).Indented(2))
	if u.CountSystem(loc, unit.SysCockpit) > 0 {
		out = append(out, e.killCrew(u, "cockpit breached")...)
	}
	return out
}
