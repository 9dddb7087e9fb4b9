package combat

import "github.com/JustinWhittecar/battlecore/internal/unit"

// ─── Armor layer ────────────────────────────────────────────────────────────

type layerOutcome struct {
	Effective int  // damage after the layer's transform
	Absorbed  int  // points removed from the pool
	Remaining int  // pool left afterwards
	Residual  int  // damage passed to the next layer
	Exhausted bool // pool is gone
}

// armorTransform returns the effective damage an armor type takes from d,
// and how to convert unabsorbed effective damage back into residual damage.
func armorTransform(t unit.ArmorType, class unit.WeaponClass, area bool, d int) (int, func(r int) int) {
	keep := func(r int) int { return r }
	halvedBack := func(r int) int { return min(d, 2*r) }
	switch t {
	case unit.ArmorFerroLamellor:
		return d - d/5, keep
	case unit.ArmorReflective:
		if class == unit.ClassPhysical || area {
			return 2 * d, func(r int) int { return (r + 1) / 2 }
		}
		if class == unit.ClassEnergy {
			return max(1, d/2), halvedBack
		}
	case unit.ArmorReactive:
		if class == unit.ClassMissile || area {
			return max(1, d/2), halvedBack
		}
	case unit.ArmorBallisticReinforced:
		if class == unit.ClassBallistic || class == unit.ClassMissile {
			return (d + 1) / 2, halvedBack
		}
	case unit.ArmorImpactResistant:
		if class == unit.ClassPhysical {
			return d - d/3, keep
		}
	}
	return d, keep
}

// applyArmor runs d through the armor facing the hit.
func applyArmor(l *unit.Location, rear bool, d int, class unit.WeaponClass, area bool) layerOutcome {
	if l.ArmorType == unit.ArmorHardened {
		return applyHardened(l, rear, d)
	}
	armor := l.ArmorFor(rear)
	if armor <= 0 {
		return layerOutcome{Effective: d, Residual: d, Remaining: armor, Exhausted: true}
	}
	eff, back := armorTransform(l.ArmorType, class, area, d)
	if armor >= eff {
		l.SetArmorFor(rear, armor-eff)
		return layerOutcome{Effective: eff, Absorbed: eff, Remaining: armor - eff}
	}
	l.SetArmorFor(rear, unit.Destroyed)
	return layerOutcome{
		Effective: eff,
		Absorbed:  armor,
		Remaining: unit.Destroyed,
		Residual:  back(eff - armor),
		Exhausted: true,
	}
}

// applyHardened tracks hardened armor in half points: every point of
// damage removes half a point of armor and an odd half is carried.
func applyHardened(l *unit.Location, rear bool, d int) layerOutcome {
	armor := l.ArmorFor(rear)
	carry := l.CarryFor(rear)
	if armor < 0 || (armor == 0 && !*carry) {
		return layerOutcome{Effective: d, Residual: d, Remaining: armor, Exhausted: true}
	}
	halves := 2 * armor
	if *carry {
		halves++
	}
	if halves >= d {
		left := halves - d
		l.SetArmorFor(rear, left/2)
		*carry = left%2 == 1
		return layerOutcome{Effective: d, Absorbed: armor - left/2, Remaining: left / 2}
	}
	l.SetArmorFor(rear, unit.Destroyed)
	*carry = false
	return layerOutcome{
		Effective: d,
		Absorbed:  armor,
		Remaining: unit.Destroyed,
		Residual:  d - halves,
		Exhausted: true,
	}
}

// ─── Structure layer ────────────────────────────────────────────────────────

// applyStructure runs d through internal structure. Exhausted means the
// location is destroyed.
func applyStructure(l *unit.Location, st unit.StructureType, d int) layerOutcome {
	in := l.Internal
	if in < 0 || (in == 0 && !l.StructureCarry) {
		return layerOutcome{Effective: d, Residual: d, Remaining: in, Exhausted: true}
	}
	switch st {
	case unit.StructComposite:
		eff := 2 * d
		if in > eff {
			l.Internal = in - eff
			return layerOutcome{Effective: eff, Absorbed: eff, Remaining: l.Internal}
		}
		l.Internal = unit.Destroyed
		return layerOutcome{
			Effective: eff,
			Absorbed:  in,
			Remaining: unit.Destroyed,
			Residual:  (eff - in + 1) / 2,
			Exhausted: true,
		}
	case unit.StructReinforced:
		halves := 2 * in
		if l.StructureCarry {
			halves++
		}
		if halves > d {
			left := halves - d
			l.Internal = left / 2
			l.StructureCarry = left%2 == 1
			return layerOutcome{Effective: d, Absorbed: in - l.Internal, Remaining: l.Internal}
		}
		l.Internal = unit.Destroyed
		l.StructureCarry = false
		return layerOutcome{
			Effective: d,
			Absorbed:  in,
			Remaining: unit.Destroyed,
			Residual:  d - halves,
			Exhausted: true,
		}
	}
	if in > d {
		l.Internal = in - d
		return layerOutcome{Effective: d, Absorbed: d, Remaining: l.Internal}
	}
	l.Internal = unit.Destroyed
	return layerOutcome{
		Effective: d,
		Absorbed:  in,
		Remaining: unit.Destroyed,
		Residual:  d - in,
		Exhausted: true,
	}
}
