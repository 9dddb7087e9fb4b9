// Package bvcalc values equipment: it maps MegaMek equipment names onto the
// stats a mounted item needs (class, damage, heat, slot count, battle value)
// and estimates a unit's battle value from its current record.
package bvcalc

import (
	"strings"

	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// Item is the catalogue entry for one piece of equipment.
type Item struct {
	Name            string
	Kind            unit.EquipKind
	Class           unit.WeaponClass
	Misc            unit.MiscType
	Damage          int
	Heat            int
	Slots           int
	BV              int
	ExplosionDamage int
	Capacity        int
}

// Mounted builds a mount of the item at loc.
func (it Item) Mounted(loc int) *unit.Mounted {
	var m *unit.Mounted
	switch it.Kind {
	case unit.EquipWeapon:
		m = unit.NewWeapon(it.Name, it.Class, loc, it.Damage, it.Heat, it.BV)
		if it.ExplosionDamage > 0 {
			m.Explosive = true
			m.ExplosionDamage = it.ExplosionDamage
		}
	default:
		m = unit.NewMisc(it.Name, it.Misc, loc)
		m.Capacity = it.Capacity
	}
	return m
}

func weapon(name string, class unit.WeaponClass, dmg, heat, slots, bv int) Item {
	return Item{Name: name, Kind: unit.EquipWeapon, Class: class, Damage: dmg, Heat: heat, Slots: slots, BV: bv}
}

func misc(name string, t unit.MiscType, slots int) Item {
	return Item{Name: name, Kind: unit.EquipMisc, Misc: t, Slots: slots}
}

// ─── Weapons ────────────────────────────────────────────────────────────────
// keys are squashed names: lower case, tech prefix and punctuation removed

var isWeapons = map[string]Item{
	"smalllaser":        weapon("Small Laser", unit.ClassEnergy, 3, 1, 1, 9),
	"mediumlaser":       weapon("Medium Laser", unit.ClassEnergy, 5, 3, 1, 46),
	"largelaser":        weapon("Large Laser", unit.ClassEnergy, 8, 8, 2, 123),
	"ersmalllaser":      weapon("ER Small Laser", unit.ClassEnergy, 3, 2, 1, 17),
	"ermediumlaser":     weapon("ER Medium Laser", unit.ClassEnergy, 5, 5, 1, 62),
	"erlargelaser":      weapon("ER Large Laser", unit.ClassEnergy, 8, 12, 2, 163),
	"smallpulselaser":   weapon("Small Pulse Laser", unit.ClassEnergy, 3, 2, 1, 12),
	"mediumpulselaser":  weapon("Medium Pulse Laser", unit.ClassEnergy, 6, 4, 1, 48),
	"largepulselaser":   weapon("Large Pulse Laser", unit.ClassEnergy, 9, 10, 2, 119),
	"ppc":               weapon("PPC", unit.ClassEnergy, 10, 10, 3, 176),
	"particlecannon":    weapon("PPC", unit.ClassEnergy, 10, 10, 3, 176),
	"erppc":             weapon("ER PPC", unit.ClassEnergy, 10, 15, 3, 229),
	"flamer":            weapon("Flamer", unit.ClassEnergy, 2, 3, 1, 6),
	"machinegun":        weapon("Machine Gun", unit.ClassBallistic, 2, 0, 1, 5),
	"ac2":               weapon("AC/2", unit.ClassBallistic, 2, 1, 1, 37),
	"ac5":               weapon("AC/5", unit.ClassBallistic, 5, 1, 4, 70),
	"ac10":              weapon("AC/10", unit.ClassBallistic, 10, 3, 7, 123),
	"ac20":              weapon("AC/20", unit.ClassBallistic, 20, 7, 10, 178),
	"autocannon2":       weapon("AC/2", unit.ClassBallistic, 2, 1, 1, 37),
	"autocannon5":       weapon("AC/5", unit.ClassBallistic, 5, 1, 4, 70),
	"autocannon10":      weapon("AC/10", unit.ClassBallistic, 10, 3, 7, 123),
	"autocannon20":      weapon("AC/20", unit.ClassBallistic, 20, 7, 10, 178),
	"ultraac5":          weapon("Ultra AC/5", unit.ClassBallistic, 5, 1, 5, 112),
	"lb10xac":           weapon("LB 10-X AC", unit.ClassBallistic, 10, 2, 6, 148),
	"gaussrifle":        withExplosion(weapon("Gauss Rifle", unit.ClassBallistic, 15, 1, 7, 320), 20),
	"lightgaussrifle":   withExplosion(weapon("Light Gauss Rifle", unit.ClassBallistic, 8, 1, 5, 159), 16),
	"heavygaussrifle":   withExplosion(weapon("Heavy Gauss Rifle", unit.ClassBallistic, 25, 2, 11, 346), 25),
	"lrm5":              weapon("LRM 5", unit.ClassMissile, 5, 2, 1, 45),
	"lrm10":             weapon("LRM 10", unit.ClassMissile, 10, 4, 2, 90),
	"lrm15":             weapon("LRM 15", unit.ClassMissile, 15, 5, 3, 136),
	"lrm20":             weapon("LRM 20", unit.ClassMissile, 20, 6, 5, 181),
	"srm2":              weapon("SRM 2", unit.ClassMissile, 4, 2, 1, 21),
	"srm4":              weapon("SRM 4", unit.ClassMissile, 8, 3, 1, 39),
	"srm6":              weapon("SRM 6", unit.ClassMissile, 12, 4, 2, 59),
	"streaksrm2":        weapon("Streak SRM 2", unit.ClassMissile, 4, 2, 1, 30),
	"streaksrm4":        weapon("Streak SRM 4", unit.ClassMissile, 8, 3, 1, 59),
	"streaksrm6":        weapon("Streak SRM 6", unit.ClassMissile, 12, 4, 2, 89),
	"arrowiv":           weapon("Arrow IV", unit.ClassArtillery, 20, 10, 15, 240),
	"hatchet":           weapon("Hatchet", unit.ClassPhysical, 0, 0, 4, 0),
	"sword":             weapon("Sword", unit.ClassPhysical, 0, 0, 3, 0),
	"antimissilesystem": weapon("Anti-Missile System", unit.ClassBallistic, 0, 1, 1, 32),
}

// clan entries that differ from the inner sphere version
var clanWeapons = map[string]Item{
	"ersmalllaser":     weapon("ER Small Laser", unit.ClassEnergy, 5, 2, 1, 31),
	"ermediumlaser":    weapon("ER Medium Laser", unit.ClassEnergy, 7, 5, 1, 108),
	"erlargelaser":     weapon("ER Large Laser", unit.ClassEnergy, 10, 12, 1, 248),
	"mediumpulselaser": weapon("Medium Pulse Laser", unit.ClassEnergy, 7, 4, 1, 111),
	"largepulselaser":  weapon("Large Pulse Laser", unit.ClassEnergy, 10, 10, 2, 265),
	"erppc":            weapon("ER PPC", unit.ClassEnergy, 15, 15, 2, 412),
	"ultraac5":         weapon("Ultra AC/5", unit.ClassBallistic, 5, 1, 3, 122),
	"lb10xac":          weapon("LB 10-X AC", unit.ClassBallistic, 10, 2, 5, 148),
	"gaussrifle":       withExplosion(weapon("Gauss Rifle", unit.ClassBallistic, 15, 1, 6, 320), 20),
	"lrm20":            weapon("LRM 20", unit.ClassMissile, 20, 6, 4, 220),
	"srm6":             weapon("SRM 6", unit.ClassMissile, 12, 4, 1, 80),
	"streaksrm6":       weapon("Streak SRM 6", unit.ClassMissile, 12, 4, 2, 118),
}

func withExplosion(it Item, dmg int) Item {
	it.ExplosionDamage = dmg
	return it
}

// ─── Misc ───────────────────────────────────────────────────────────────────

var miscItems = map[string]Item{
	"case":               misc("CASE", unit.MiscCASE, 1),
	"caseii":             misc("CASE II", unit.MiscCASEII, 1),
	"heatsink":           misc("Heat Sink", unit.MiscHeatSink, 1),
	"singleheatsink":     misc("Heat Sink", unit.MiscHeatSink, 1),
	"doubleheatsink":     misc("Double Heat Sink", unit.MiscDoubleHeatSink, 3),
	"jumpjet":            misc("Jump Jet", unit.MiscJumpJet, 1),
	"guardianecmsuite":   misc("Guardian ECM Suite", unit.MiscECM, 2),
	"guardianecm":        misc("Guardian ECM Suite", unit.MiscECM, 2),
	"ecmsuite":           misc("ECM Suite", unit.MiscECM, 1),
	"targetingcomputer":  misc("Targeting Computer", unit.MiscTargetingComputer, 1),
	"searchlight":        misc("Searchlight", unit.MiscSearchlight, 1),
	"spikes":             misc("Spikes", unit.MiscSpikes, 1),
	"smallshield":        shield("Small Shield", 2, 11),
	"mediumshield":       shield("Medium Shield", 4, 18),
	"largeshield":        shield("Large Shield", 7, 25),
	"modulararmor":       Item{Name: "Modular Armor", Kind: unit.EquipMisc, Misc: unit.MiscModularArmor, Slots: 1, Capacity: 10},
	"capacitor":          misc("PPC Capacitor", unit.MiscCapacitor, 1),
	"ppccapacitor":       misc("PPC Capacitor", unit.MiscCapacitor, 1),
	"endosteel":          misc("Endo Steel", unit.MiscNone, 1),
	"ferrofibrous":       misc("Ferro-Fibrous", unit.MiscNone, 1),
	"endocomposite":      misc("Endo-Composite", unit.MiscNone, 1),
	"reactivearmor":      misc("Reactive Armor", unit.MiscNone, 1),
	"reflectivearmor":    misc("Reflective Armor", unit.MiscNone, 1),
	"ferrolamellorarmor": misc("Ferro-Lamellor Armor", unit.MiscNone, 1),
}

func shield(name string, slots, capacity int) Item {
	it := misc(name, unit.MiscShield, slots)
	it.Capacity = capacity
	return it
}

// ─── Lookup ─────────────────────────────────────────────────────────────────

// Squash normalises an equipment name: lower case, tech base prefix and all
// punctuation removed. It reports whether the name carried a clan prefix.
func Squash(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	clan := false
	for _, p := range []string{"clan ", "cl ", "clan", "cl"} {
		if strings.HasPrefix(n, p) {
			n, clan = n[len(p):], true
			break
		}
	}
	if !clan {
		for _, p := range []string{"is ", "is"} {
			if strings.HasPrefix(n, p) {
				n = n[len(p):]
				break
			}
		}
	}
	var b strings.Builder
	for _, r := range n {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String(), clan
}

// Lookup finds a weapon or misc item by its MegaMek name. clanBase picks
// clan stats for names that carry no prefix of their own.
func Lookup(name string, clanBase bool) (Item, bool) {
	key, clan := Squash(name)
	clan = clan || clanBase
	if clan {
		if it, ok := clanWeapons[key]; ok {
			return it, true
		}
	}
	if it, ok := isWeapons[key]; ok {
		return it, true
	}
	if it, ok := miscItems[key]; ok {
		if clan && it.Misc == unit.MiscDoubleHeatSink {
			it.Slots = 2
		}
		return it, true
	}
	return Item{}, false
}
