package unit

import "strings"

// ─── Mounted equipment ──────────────────────────────────────────────────────

type EquipKind int

const (
	EquipWeapon EquipKind = iota
	EquipAmmo
	EquipMisc
)

// WeaponClass drives the armor transforms and the crit weapon picks.
type WeaponClass int

const (
	ClassNone WeaponClass = iota
	ClassEnergy
	ClassBallistic
	ClassMissile
	ClassPhysical
	ClassArtillery
)

func (c WeaponClass) String() string {
	switch c {
	case ClassEnergy:
		return "energy"
	case ClassBallistic:
		return "ballistic"
	case ClassMissile:
		return "missile"
	case ClassPhysical:
		return "physical"
	case ClassArtillery:
		return "artillery"
	default:
		return "none"
	}
}

func ParseWeaponClass(s string) WeaponClass {
	switch strings.ToLower(s) {
	case "energy":
		return ClassEnergy
	case "ballistic":
		return ClassBallistic
	case "missile":
		return ClassMissile
	case "physical":
		return ClassPhysical
	case "artillery":
		return ClassArtillery
	default:
		return ClassNone
	}
}

type MiscType int

const (
	MiscNone MiscType = iota
	MiscShield
	MiscModularArmor
	MiscSearchlight
	MiscSpikes
	MiscCASE
	MiscCASEII
	MiscECM
	MiscHeatSink
	MiscDoubleHeatSink
	MiscCapacitor
	MiscBomb
	MiscJumpJet
	MiscTargetingComputer
	MiscCargo
)

var miscNames = map[string]MiscType{
	"shield":             MiscShield,
	"modular armor":      MiscModularArmor,
	"searchlight":        MiscSearchlight,
	"spikes":             MiscSpikes,
	"case":               MiscCASE,
	"case ii":            MiscCASEII,
	"ecm":                MiscECM,
	"heat sink":          MiscHeatSink,
	"double heat sink":   MiscDoubleHeatSink,
	"capacitor":          MiscCapacitor,
	"bomb":               MiscBomb,
	"jump jet":           MiscJumpJet,
	"targeting computer": MiscTargetingComputer,
	"cargo":              MiscCargo,
}

func ParseMiscType(s string) MiscType {
	return miscNames[strings.ToLower(strings.TrimSpace(s))]
}

// Mounted is one piece of equipment on a unit.
type Mounted struct {
	Name     string
	Kind     EquipKind
	Class    WeaponClass
	Misc     MiscType
	Location int
	Rear     bool
	Turret   bool

	Damage int
	Heat   int
	Value  int // battle value, used for crit weapon selection

	// ammunition
	Shots         int
	DamagePerShot int
	Inferno       bool

	// fixed explosion damage for explosive non-ammo items (gauss, capacitors)
	Explosive       bool
	ExplosionDamage int
	Charged         bool
	HotLoaded       bool

	// shield and modular armor points
	Capacity int
	Active   bool

	LinkedECM int // index of the ECM this item depends on, -1 for none
	Trooper   int // battle armor trooper carrying it, 0 for squad-wide

	Hit       bool
	Destroyed bool
	Jammed    bool
	Disabled  bool
	Breached  bool
}

// Usable reports whether the item still works.
func (m *Mounted) Usable() bool {
	return !m.Hit && !m.Destroyed && !m.Jammed && !m.Disabled && !m.Breached
}

func (m *Mounted) IsWeapon() bool { return m.Kind == EquipWeapon }

// CanExplode reports whether hitting the item detonates it.
func (m *Mounted) CanExplode() bool {
	switch {
	case m.Kind == EquipAmmo:
		return m.Explosive && m.Shots > 0 && m.DamagePerShot > 0
	case m.Misc == MiscCapacitor:
		return m.Charged && !m.Destroyed
	case m.HotLoaded:
		return !m.Destroyed
	default:
		return m.Explosive && !m.Destroyed && m.ExplosionDamage > 0
	}
}

// ExplosionAmount is the damage released if the item explodes now.
func (m *Mounted) ExplosionAmount() int {
	if m.Kind == EquipAmmo {
		return m.Shots * m.DamagePerShot
	}
	if m.ExplosionDamage > 0 {
		return m.ExplosionDamage
	}
	return m.Damage
}

// NewWeapon builds a weapon mount.
func NewWeapon(name string, class WeaponClass, loc, damage, heat, value int) *Mounted {
	return &Mounted{
		Name:      name,
		Kind:      EquipWeapon,
		Class:     class,
		Location:  loc,
		Damage:    damage,
		Heat:      heat,
		Value:     value,
		LinkedECM: -1,
	}
}

// NewAmmo builds an ammunition bin.
func NewAmmo(name string, loc, shots, perShot int) *Mounted {
	return &Mounted{
		Name:          name,
		Kind:          EquipAmmo,
		Location:      loc,
		Shots:         shots,
		DamagePerShot: perShot,
		Explosive:     perShot > 0 && !strings.Contains(strings.ToLower(name), "gauss"),
		Inferno:       strings.Contains(strings.ToLower(name), "inferno"),
		LinkedECM:     -1,
	}
}

// NewMisc builds a non-weapon item.
func NewMisc(name string, misc MiscType, loc int) *Mounted {
	m := &Mounted{Name: name, Kind: EquipMisc, Misc: misc, Location: loc, LinkedECM: -1}
	if misc == MiscShield {
		m.Active = true
	}
	return m
}
