package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Boarding ───────────────────────────────────────────────────────────────

// Mount puts rider on the outside of carrier at loc, as a mechanized
// passenger or a swarming attacker. An illegal load is reported and leaves
// both units untouched.
func (e *Engine) Mount(carrier, rider *unit.Unit, loc int, swarming bool) []report.Report {
	if reason := mountRefusal(carrier, rider, loc); reason != "" {
		e.logger.Debug().Str("unit", rider.ID).Str("carrier", carrier.ID).Str("reason", reason).Msg("illegal mount")
		return []report.Report{*report.New(report.MsgIllegalAction).About(rider.ID).AddString(carrier.ID, reason).Private()}
	}
	carrier.Riders = append(carrier.Riders, unit.Passenger{Unit: rider, Location: loc, Swarming: swarming})
	rider.CarriedBy = carrier
	return []report.Report{*report.New(report.MsgRiderMounted).About(rider.ID).AddString(carrier.ID, carrier.LocationName(loc)).Outcome(swarming)}
}

func mountRefusal(carrier, rider *unit.Unit, loc int) string {
	switch {
	case carrier == rider:
		return "self"
	case rider.Kind != unit.KindBattleArmor && rider.Kind != unit.KindInfantry:
		return "not infantry"
	case !carrier.Alive() || !rider.Alive():
		return "destroyed"
	case rider.CarriedBy != nil:
		return "already mounted"
	case !carrier.ValidLocation(loc) || carrier.Locations[loc].IsDestroyed():
		return "no such location"
	case len(carrier.RidersAt(loc)) > 0:
		return "location full"
	}
	return ""
}

// Dismount takes rider off its carrier.
func Dismount(rider *unit.Unit) {
	c := rider.CarriedBy
	if c == nil {
		return
	}
	for i, p := range c.Riders {
		if p.Unit == rider {
			c.Riders = append(c.Riders[:i], c.Riders[i+1:]...)
			break
		}
	}
	rider.CarriedBy = nil
}
