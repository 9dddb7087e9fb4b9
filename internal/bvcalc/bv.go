package bvcalc

import (
	"math"

	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Battle value estimate ──────────────────────────────────────────────────

// armor type modifiers for defensive BV
var armorModifier = map[unit.ArmorType]float64{
	unit.ArmorCommercial:          0.5,
	unit.ArmorHardened:            2.0,
	unit.ArmorReactive:            1.5,
	unit.ArmorReflective:          1.5,
	unit.ArmorFerroLamellor:       1.2,
	unit.ArmorBallisticReinforced: 1.5,
	unit.ArmorImpactResistant:     1.5,
	unit.ArmorAntiPenetrative:     1.5,
}

// structure type modifiers for defensive BV
var structureModifier = map[unit.StructureType]float64{
	unit.StructComposite:  0.5,
	unit.StructIndustrial: 0.5,
	unit.StructReinforced: 2.0,
}

func modifier[K comparable](m map[K]float64, k K) float64 {
	if v, ok := m[k]; ok {
		return v
	}
	return 1.0
}

// engineModifier scales structure BV for engines that die with a side torso.
func engineModifier(t unit.EngineType) float64 {
	switch t {
	case unit.EngineXL, unit.EngineXXL:
		return 0.5
	case unit.EngineLight:
		return 0.75
	default:
		return 1.0
	}
}

// Estimate is a simplified BV2 of the unit as it stands: surviving armor and
// structure, and the weapons and ammunition still working. It is used to
// summarise a resolution, not to balance forces.
func Estimate(u *unit.Unit) int {
	armor, structure := 0, 0
	armorMod := 1.0
	for i := range u.Locations {
		l := &u.Locations[i]
		if l.IsDestroyed() {
			continue
		}
		armor += max(l.Armor, 0) + max(l.RearArmor, 0)
		structure += max(l.Internal, 0)
		armorMod = math.Max(armorMod, modifier(armorModifier, l.ArmorType))
	}
	if u.Aero != nil {
		structure += max(u.Aero.SI, 0)
	}

	def := float64(armor)*2.5*armorMod +
		float64(structure)*1.5*modifier(structureModifier, u.Structure)*engineModifier(u.Engine.Type)
	if u.Kind == unit.KindMek {
		gyro := 0.5
		if u.Gyro == unit.GyroHeavyDuty {
			gyro = 1.0
		}
		def += float64(u.Tonnage) * gyro
	}

	off := 0.0
	for _, m := range u.Equipment {
		switch {
		case m.IsWeapon() && m.Usable():
			off += float64(m.Value)
		case m.Kind == unit.EquipAmmo && m.Shots > 0:
			off += float64(AmmoBV(m.Name))
		}
	}
	return int(math.Round(def + off))
}
