package phase

import (
	"github.com/JustinWhittecar/battlecore/internal/board"
	"github.com/JustinWhittecar/battlecore/internal/combat"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Area explosions ────────────────────────────────────────────────────────

// BlastDamage is what an explosion delivers at a distance, never negative.
func BlastDamage(e board.Explosion, distance int) int {
	return max(e.Damage-distance*e.Degradation, 0)
}

// detonate drains the board's pending explosions. A blast that destroys
// another fusion engine queues a new one, so it keeps draining until the
// board is quiet.
func (c *Context) detonate() []report.Report {
	if c.Board == nil {
		return nil
	}
	var out []report.Report
	for pending := c.Board.TakeExplosions(); len(pending) > 0; pending = c.Board.TakeExplosions() {
		for _, ex := range pending {
			out = append(out, c.Detonate(ex)...)
		}
	}
	return out
}

// Detonate applies one area explosion to every grounded unit and building
// in reach.
func (c *Context) Detonate(ex board.Explosion) []report.Report {
	out := []report.Report{*report.New(report.MsgAreaExplosion).AddString(ex.Origin.String(), ex.Cause).Add(ex.Damage).Line()}
	if c.Board != nil {
		if b := c.Board.BuildingAt(ex.Origin); b != nil && b.CF > 0 {
			b.CF = max(b.CF-ex.Damage, 0)
			out = append(out, *report.New(report.MsgBuildingDamaged).Add(b.ID, ex.Damage, b.CF).Indented(1))
		}
	}
	for _, u := range c.order {
		if !u.Alive() || u.Airborne {
			continue
		}
		dmg := BlastDamage(ex, board.Distance(ex.Origin, u.Pos))
		if dmg == 0 {
			continue
		}
		out = append(out, c.clusters(u, dmg, false, areaHit)...)
	}
	return out
}

func areaHit(loc, amount int) combat.DamageEvent {
	return combat.DamageEvent{
		Hit:    combat.HitSpec{Location: loc, AreaEffect: true, Class: unit.ClassArtillery},
		Amount: amount,
	}
}
