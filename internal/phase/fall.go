package phase

import (
	"github.com/JustinWhittecar/battlecore/internal/board"
	"github.com/JustinWhittecar/battlecore/internal/combat"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Falls & crashes ────────────────────────────────────────────────────────

// damage is applied in groups of this size
const clusterSize = 5

// facing rolled on 1d6 that lands the unit on its back
const fallBackward = 4

// impactDamage is the damage a unit of this weight takes from a fall.
func impactDamage(tons int) int {
	return (tons + 9) / 10
}

// clusters spreads total damage over rolled hit locations, clusterSize at a
// time, and resolves each group through the engine.
func (c *Context) clusters(u *unit.Unit, total int, rear bool, mk func(loc, amount int) combat.DamageEvent) []report.Report {
	var out []report.Report
	for remaining := total; remaining > 0 && u.Alive(); {
		grp := min(remaining, clusterSize)
		loc, _ := u.RollHitLocation(rear, c.dice)
		out = append(out, c.Engine.ApplyDamage(u, mk(loc, grp))...)
		remaining -= grp
	}
	return out
}

func (c *Context) waterDepth(h board.HexCoord) int {
	if c.Board == nil {
		return 0
	}
	for _, f := range c.Board.TerrainAt(h) {
		if f.Type == board.TerrainWater {
			return f.Level
		}
	}
	return 0
}

// Fall knocks a Mek over: impact damage in clusters, then a piloting check
// to avoid pilot injury.
func (c *Context) Fall(u *unit.Unit) []report.Report {
	if u == nil || !u.Alive() || u.Kind != unit.KindMek {
		return nil
	}
	u.Prone = true
	dmg := impactDamage(u.Tonnage)
	if c.waterDepth(u.Pos) > 0 {
		dmg = (dmg + 1) / 2
	}
	facing := c.dice.D6()
	rear := facing == fallBackward
	out := []report.Report{*report.New(report.MsgFall).About(u.ID).Add(dmg, facing).Line()}
	out = append(out, c.clusters(u, dmg, rear, func(loc, amount int) combat.DamageEvent {
		ev := combat.Hit(loc, amount)
		ev.Hit.Rear = rear
		return ev
	})...)
	if !u.Alive() {
		return out
	}

	target := u.PilotingSkill() + u.PreexistingPSRModifier()
	roll := 0
	if u.Crew.CanAct() {
		roll = c.dice.Roll2d6()
	}
	ok := roll >= target
	out = append(out, *report.New(report.MsgFallPilotCheck).About(u.ID).Add(target, roll).Outcome(ok).Indented(1))
	if !ok {
		out = append(out, c.Engine.DamageCrew(u, 1, "fall")...)
	}
	return out
}

// Crash brings an airborne unit down. VTOLs take impact damage and are left
// immobile; aerospace craft that lose control over the map are destroyed.
func (c *Context) Crash(u *unit.Unit) []report.Report {
	if u == nil || !u.Alive() || !u.Airborne {
		return nil
	}
	u.Airborne = false
	out := []report.Report{*report.New(report.MsgCrash).About(u.ID).AddString(u.Kind.String()).Line()}
	switch u.Kind {
	case unit.KindVehicle:
		u.Vehicle.Immobile = true
		out = append(out, c.clusters(u, impactDamage(u.Tonnage), false, combat.Hit)...)
	case unit.KindAerospace:
		out = append(out, c.Engine.Destroy(u, "crashed")...)
	default:
		c.logger.Warn().Str("unit", u.ID).Str("kind", u.Kind.String()).Msg("crash for a unit that cannot fly")
	}
	return out
}
