package unit

import "strings"

// ─── Armor ──────────────────────────────────────────────────────────────────

type ArmorType int

const (
	ArmorStandard ArmorType = iota
	ArmorFerroFibrous
	ArmorFerroLamellor
	ArmorReflective
	ArmorReactive
	ArmorBallisticReinforced
	ArmorImpactResistant
	ArmorHardened
	ArmorAntiPenetrative
	ArmorStealth
	ArmorPrimitive
	ArmorIndustrial
	ArmorCommercial
)

var armorNames = map[ArmorType]string{
	ArmorStandard:            "Standard",
	ArmorFerroFibrous:        "Ferro-Fibrous",
	ArmorFerroLamellor:       "Ferro-Lamellor",
	ArmorReflective:          "Reflective",
	ArmorReactive:            "Reactive",
	ArmorBallisticReinforced: "Ballistic-Reinforced",
	ArmorImpactResistant:     "Impact-Resistant",
	ArmorHardened:            "Hardened",
	ArmorAntiPenetrative:     "Anti-Penetrative Ablation",
	ArmorStealth:             "Stealth",
	ArmorPrimitive:           "Primitive",
	ArmorIndustrial:          "Industrial",
	ArmorCommercial:          "Commercial",
}

func (a ArmorType) String() string {
	if n, ok := armorNames[a]; ok {
		return n
	}
	return "Unknown"
}

// ParseArmorType accepts MTF spellings such as "Reactive(Inner Sphere)" or
// "Hardened(Clan)".
func ParseArmorType(s string) ArmorType {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "lamellor"):
		return ArmorFerroLamellor
	case strings.Contains(l, "reflective"), strings.Contains(l, "laser-reflective"):
		return ArmorReflective
	case strings.Contains(l, "reactive"):
		return ArmorReactive
	case strings.Contains(l, "ballistic"):
		return ArmorBallisticReinforced
	case strings.Contains(l, "impact"):
		return ArmorImpactResistant
	case strings.Contains(l, "hardened"):
		return ArmorHardened
	case strings.Contains(l, "anti-penetrative"), strings.Contains(l, "ablation"):
		return ArmorAntiPenetrative
	case strings.Contains(l, "stealth"):
		return ArmorStealth
	case strings.Contains(l, "primitive"):
		return ArmorPrimitive
	case strings.Contains(l, "commercial"):
		return ArmorCommercial
	case strings.Contains(l, "industrial"):
		return ArmorIndustrial
	case strings.Contains(l, "ferro"):
		return ArmorFerroFibrous
	default:
		return ArmorStandard
	}
}

// DefaultBAR is the barrier armor rating of the type.
func (a ArmorType) DefaultBAR() int {
	switch a {
	case ArmorCommercial:
		return 5
	case ArmorIndustrial:
		return 9
	case ArmorPrimitive:
		return 8
	default:
		return 10
	}
}

// CritModifier is added to crit rolls at a location with this armor.
func (a ArmorType) CritModifier() int {
	switch a {
	case ArmorHardened:
		return -2
	case ArmorAntiPenetrative:
		return -1
	default:
		return 0
	}
}

// ─── Structure ──────────────────────────────────────────────────────────────

type StructureType int

const (
	StructStandard StructureType = iota
	StructEndoSteel
	StructEndoComposite
	StructComposite
	StructReinforced
	StructIndustrial
)

func ParseStructureType(s string) StructureType {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "endo-composite"), strings.Contains(l, "endo composite"):
		return StructEndoComposite
	case strings.Contains(l, "endo"):
		return StructEndoSteel
	case strings.Contains(l, "composite"):
		return StructComposite
	case strings.Contains(l, "reinforced"):
		return StructReinforced
	case strings.Contains(l, "industrial"):
		return StructIndustrial
	default:
		return StructStandard
	}
}

// ─── Engine ─────────────────────────────────────────────────────────────────

type EngineType int

const (
	EngineFusion EngineType = iota
	EngineXL
	EngineXXL
	EngineLight
	EngineCompact
	EngineICE
	EngineFuelCell
	EngineFission
	EngineNone
)

func ParseEngineType(s string) EngineType {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "xxl"):
		return EngineXXL
	case strings.Contains(l, "xl"):
		return EngineXL
	case strings.Contains(l, "light"):
		return EngineLight
	case strings.Contains(l, "compact"):
		return EngineCompact
	case strings.Contains(l, "ice"), strings.Contains(l, "combustion"):
		return EngineICE
	case strings.Contains(l, "fuel cell"), strings.Contains(l, "fuel-cell"):
		return EngineFuelCell
	case strings.Contains(l, "fission"):
		return EngineFission
	case l == "" || strings.Contains(l, "none"):
		return EngineNone
	default:
		return EngineFusion
	}
}

// IsFusion reports whether the engine explodes at most once per phase and
// detonates as an area blast.
func (e EngineType) IsFusion() bool {
	switch e {
	case EngineFusion, EngineXL, EngineXXL, EngineLight, EngineCompact:
		return true
	}
	return false
}

// HitsToDestroy is the engine crit count that kills the unit.
func (e EngineType) HitsToDestroy() int {
	if e == EngineCompact {
		return 2
	}
	return 3
}

type Engine struct {
	Type   EngineType
	Rating int
}

// ─── Gyro / cockpit ─────────────────────────────────────────────────────────

type GyroType int

const (
	GyroStandard GyroType = iota
	GyroCompact
	GyroXL
	GyroHeavyDuty
	GyroNone
)

func ParseGyroType(s string) GyroType {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "heavy"):
		return GyroHeavyDuty
	case strings.Contains(l, "compact"):
		return GyroCompact
	case strings.Contains(l, "xl"):
		return GyroXL
	case strings.Contains(l, "none"):
		return GyroNone
	default:
		return GyroStandard
	}
}

// gyro PSR modifiers by hit count, last entry is the destroying hit
var gyroMods = map[GyroType][]int{
	GyroStandard:  {3, 6},
	GyroCompact:   {3, 6},
	GyroXL:        {3, 6},
	GyroHeavyDuty: {1, 3, 6},
}

// HitsToDestroy is the hit count that makes the gyro fail.
func (g GyroType) HitsToDestroy() int {
	return len(gyroMods[g]) + 1
}

// PSRModifier returns the roll modifier after the given number of hits.
func (g GyroType) PSRModifier(hits int) int {
	mods := gyroMods[g]
	if hits <= 0 || len(mods) == 0 {
		return 0
	}
	if hits > len(mods) {
		return mods[len(mods)-1]
	}
	return mods[hits-1]
}

type CockpitType int

const (
	CockpitStandard CockpitType = iota
	CockpitSmall
	CockpitTorso
	CockpitCommandConsole
	CockpitIndustrial
)

func ParseCockpitType(s string) CockpitType {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "torso"):
		return CockpitTorso
	case strings.Contains(l, "command"):
		return CockpitCommandConsole
	case strings.Contains(l, "small"):
		return CockpitSmall
	case strings.Contains(l, "industrial"):
		return CockpitIndustrial
	default:
		return CockpitStandard
	}
}

// ─── Quirks ─────────────────────────────────────────────────────────────────

type Quirk string

const (
	QuirkPrototype       Quirk = "prototype"
	QuirkPoorWorkmanship Quirk = "poor_work"
	QuirkRugged          Quirk = "rugged_1"
	QuirkCowl            Quirk = "cowl"
	QuirkWeakHead        Quirk = "weak_head_1"
	QuirkProtectedActs   Quirk = "protected_actuators"
)

// CritModifier returns the crit roll modifier contributed by a quirk.
func (q Quirk) CritModifier() int {
	switch q {
	case QuirkPrototype, QuirkPoorWorkmanship:
		return 1
	case QuirkRugged:
		return -1
	default:
		return 0
	}
}
