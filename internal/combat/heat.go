package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/heat"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Heat effects ───────────────────────────────────────────────────────────

// shutdownPSR is the piloting modifier for a Mek that shuts down standing.
const shutdownPSR = 3

// ConsumeHeat applies an end-of-phase heat result to the units it names.
func (e *Engine) ConsumeHeat(res heat.Result) []report.Report {
	out := append([]report.Report(nil), res.Reports...)
	for _, l := range res.Levels {
		l.Unit.Heat = l.Heat
	}

	for _, ev := range res.Shutdowns {
		if ev.Unit == nil || !ev.Unit.Alive() {
			continue
		}
		ev.Unit.Shutdown = true
		out = append(out, *report.New(report.MsgShutdown).About(ev.Unit.ID).Add(ev.Heat).AddString("shut down").Line())
		if ev.Unit.Kind == unit.KindMek && !ev.Unit.Prone {
			out = append(out, e.enqueue(ev.Unit, shutdownPSR, "reactor shutdown", false))
		}
	}
	for _, ev := range res.Startups {
		if ev.Unit == nil || !ev.Unit.Alive() {
			continue
		}
		ev.Unit.Shutdown = false
		out = append(out, *report.New(report.MsgStartup).About(ev.Unit.ID).Add(ev.Heat, ev.Target, ev.Roll))
	}
	for _, req := range res.AmmoExplosions {
		if req.Unit == nil || !req.Unit.Alive() {
			continue
		}
		reps, _ := e.ExplodeAmmo(req.Unit)
		out = append(out, reps...)
	}
	for _, req := range res.PilotDamage {
		if req.Unit == nil || !req.Unit.Alive() {
			continue
		}
		out = append(out, *report.New(report.MsgHeatPilotDamage).About(req.Unit.ID).Add(req.Hits))
		out = append(out, e.damageCrew(req.Unit, req.Hits, "heat")...)
	}
	return out
}
