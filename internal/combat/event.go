package combat

import "github.com/JustinWhittecar/battlecore/internal/unit"

// Category is the damage category of a packet.
type Category int

const (
	Normal Category = iota
	Fragmentation
	Flechette
	Acid
	Incendiary
	NailRivet
	AntiTSM
	NonPenetrating
)

var categoryNames = [...]string{"normal", "fragmentation", "flechette", "acid", "incendiary", "nail/rivet", "anti-tsm", "non-penetrating"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Effect bits carried by a hit.
type Effect uint8

const (
	EffectCritical   Effect = 1 << iota // roll a critical regardless of damage
	EffectNoCritical                    // suppress every critical roll
)

// HitSpec describes where and how a packet lands.
type HitSpec struct {
	Location   int
	Rear       bool
	Effects    Effect
	Capital    bool
	Grouped    bool
	AreaEffect bool
	Class      unit.WeaponClass
	Attacker   string
}

func (h HitSpec) Has(e Effect) bool { return h.Effects&e != 0 }

// DamageEvent is one packet of damage against a unit.
type DamageEvent struct {
	Hit            HitSpec
	Amount         int
	Category       Category
	AmmoExplosion  bool
	DamageIS       bool // skip armor
	AreaSaturation bool
	ThroughFront   bool // rear hits still consume front armor
	Underwater     bool
}

// Hit is a convenience constructor for a plain front hit.
func Hit(loc, amount int) DamageEvent {
	return DamageEvent{Hit: HitSpec{Location: loc}, Amount: amount}
}
