package combat

import (
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Scale and category adjustments ─────────────────────────────────────────

func (e *Engine) capitalScale(u *unit.Unit, ev DamageEvent, dmg int) (int, []report.Report) {
	switch {
	case ev.Hit.Capital && !u.CapitalScale:
		return dmg * 10, []report.Report{*report.New(report.MsgCapitalScale).About(u.ID).Add(dmg, dmg*10).Indented(1)}
	case !ev.Hit.Capital && u.CapitalScale:
		scaled := (dmg + 5) / 10
		return scaled, []report.Report{*report.New(report.MsgCapitalScale).About(u.ID).Add(dmg, scaled).Indented(1)}
	}
	return dmg, nil
}

func acidResistant(t unit.ArmorType) bool {
	switch t {
	case unit.ArmorFerroLamellor, unit.ArmorReflective, unit.ArmorReactive, unit.ArmorHardened:
		return true
	}
	return false
}

// adjustForCategory applies the damage category rules that depend only on
// the target, before any layer is touched.
func (e *Engine) adjustForCategory(u *unit.Unit, ev DamageEvent, dmg int) (int, []report.Report) {
	var out []report.Report
	l := &u.Locations[ev.Hit.Location]
	infantry := u.Kind == unit.KindInfantry
	orig := dmg

	switch ev.Category {
	case Fragmentation:
		if !infantry {
			return 0, []report.Report{*report.New(report.MsgNoEffect).About(u.ID).AddString(ev.Category.String()).Indented(1)}
		}
	case Flechette:
		if !infantry {
			dmg /= 2
		}
	case Acid:
		if infantry {
			dmg = (3*dmg + 1) / 2
		} else if acidResistant(l.ArmorType) {
			dmg = min(dmg, 3)
		}
	case Incendiary:
		if infantry {
			dmg += 2
		}
	case NailRivet:
		if !infantry && l.BAR >= 5 {
			return 0, []report.Report{*report.New(report.MsgNoEffect).About(u.ID).AddString(ev.Category.String()).Indented(1)}
		}
	case AntiTSM:
		if u.Mek != nil {
			u.Mek.AntiTSMHits++
			out = append(out, *report.New(report.MsgAntiTSM).About(u.ID).Indented(1))
		}
	}
	if dmg != orig {
		out = append(out, *report.New(report.MsgDamageAdjusted).About(u.ID).Add(orig, dmg).AddString(ev.Category.String()).Indented(1))
	}

	exposed := false
	switch u.Kind {
	case unit.KindInfantry:
		exposed = ev.AreaSaturation || u.Environment == unit.EnvVacuum || (u.Infantry != nil && u.Infantry.InOpen)
	case unit.KindBattleArmor:
		exposed = ev.AreaSaturation
	}
	if exposed && dmg > 0 {
		out = append(out, *report.New(report.MsgAreaSaturation).About(u.ID).Add(dmg, dmg*2).Indented(1))
		dmg *= 2
	}
	return dmg, out
}
