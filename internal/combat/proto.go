package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── ProtoMech criticals ────────────────────────────────────────────────────

// protoThreshold is the number of critical hits that destroys a location.
func protoThreshold(loc int) int {
	switch loc {
	case unit.ProtoMainGun:
		return 1
	case unit.ProtoHead, unit.ProtoRA, unit.ProtoLA:
		return 2
	}
	return 3
}

func (e *Engine) protoCritical(u *unit.Unit, loc, n int, locResult bool) []report.Report {
	if u.Proto == nil {
		e.unreachable(u, loc, "protomech critical on a unit without protomech state")
		return nil
	}
	p := u.Proto
	if locResult {
		n = max(protoThreshold(loc)-p.Hits[loc], 1)
	}
	var out []report.Report
	for range n {
		if !u.Alive() || u.Locations[loc].IsDestroyed() {
			break
		}
		p.Hits[loc]++
		out = append(out, *report.New(report.MsgProtoLocationHit).About(u.ID).AddString(u.LocationName(loc)).Add(p.Hits[loc]).Indented(3))

		if loc == unit.ProtoTorso && e.dice.D6() >= 4 {
			if ws := u.Weapons(loc); len(ws) > 0 {
				m := u.Equipment[ws[e.dice.IntN(len(ws))]]
				m.Hit = true
				m.Destroyed = true
				out = append(out, *report.New(report.MsgProtoTorsoWeapon).About(u.ID).AddString(m.Name).Indented(4))
			}
		}

		if p.Hits[loc] >= protoThreshold(loc) {
			out = append(out, e.locationDestroyed(u, loc, DamageEvent{})...)
			if loc == unit.ProtoTorso {
				out = append(out, e.destroy(u, "torso destroyed", false)...)
			}
		}
	}
	return out
}
