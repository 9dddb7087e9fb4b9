package unit

// ─── Sentinels ──────────────────────────────────────────────────────────────

const (
	Destroyed = -1 // armor or internal structure is gone
	NoArmor   = -2 // the location has no rear armor at all
)

// Transfer targets returned by TransferLocation.
const (
	LocDestroyed = -1 // the unit is destroyed
	LocNone      = -2 // remaining damage is wasted
)

// ─── Location constants ─────────────────────────────────────────────────────

const (
	LocHD = 0
	LocCT = 1
	LocLT = 2
	LocRT = 3
	LocLA = 4
	LocRA = 5
	LocLL = 6
	LocRL = 7

	NumMekLoc = 8
)

const (
	VehBody   = 0
	VehFront  = 1
	VehRight  = 2
	VehLeft   = 3
	VehRear   = 4
	VehTurret = 5
	VehRotor  = 5 // VTOLs carry a rotor instead of a turret
)

const (
	AeroNose      = 0
	AeroLeftWing  = 1
	AeroRightWing = 2
	AeroAft       = 3
	AeroFuselage  = 4

	NumAeroLoc = 5
)

const (
	ProtoHead    = 0
	ProtoTorso   = 1
	ProtoRA      = 2
	ProtoLA      = 3
	ProtoLegs    = 4
	ProtoMainGun = 5

	NumProtoLoc = 6
)

// BASquad is the squad-wide location; troopers are 1..N.
const BASquad = 0

var mekLocNames = [NumMekLoc]string{"HD", "CT", "LT", "RT", "LA", "RA", "LL", "RL"}

// ─── Location ───────────────────────────────────────────────────────────────

type Location struct {
	Name      string
	Armor     int
	RearArmor int
	Internal  int

	OrigArmor    int
	OrigRear     int
	OrigInternal int

	ArmorType ArmorType
	BAR       int
	Slots     []Slot

	// half-point carries for hardened armor and reinforced structure
	ArmorCarry     bool
	RearCarry      bool
	StructureCarry bool

	// aerospace damage threshold
	Threshold int

	Breached bool
	BlownOff bool
}

// NewLocation builds an intact location. rear < 0 means no rear armor.
func NewLocation(name string, armor, rear, internal int) Location {
	if rear < 0 {
		rear = NoArmor
	}
	return Location{
		Name:         name,
		Armor:        armor,
		RearArmor:    rear,
		Internal:     internal,
		OrigArmor:    armor,
		OrigRear:     rear,
		OrigInternal: internal,
		BAR:          10,
	}
}

func (l *Location) HasRear() bool { return l.RearArmor != NoArmor }

// IsDestroyed reports whether the internal structure is exhausted.
func (l *Location) IsDestroyed() bool {
	if l.Internal == Destroyed || l.BlownOff {
		return true
	}
	return l.Internal == 0 && l.OrigInternal > 0 && !l.StructureCarry
}

// ArmorFor returns the armor facing the hit.
func (l *Location) ArmorFor(rear bool) int {
	if rear && l.HasRear() {
		return l.RearArmor
	}
	return l.Armor
}

// SetArmorFor writes the facing's armor, clamped to the destroyed sentinel.
func (l *Location) SetArmorFor(rear bool, v int) {
	v = Clamp(v)
	if rear && l.HasRear() {
		l.RearArmor = v
		return
	}
	l.Armor = v
}

func (l *Location) carry(rear bool) *bool {
	if rear && l.HasRear() {
		return &l.RearCarry
	}
	return &l.ArmorCarry
}

// CarryFor exposes the hardened half-point carry of a facing.
func (l *Location) CarryFor(rear bool) *bool { return l.carry(rear) }

// Points is armor plus internal, counting sentinels as zero.
func (l *Location) Points() int {
	return max(l.Armor, 0) + max(l.RearArmor, 0) + max(l.Internal, 0)
}

// Clamp keeps a pool at or above the destroyed sentinel.
func Clamp(v int) int {
	if v < Destroyed {
		return Destroyed
	}
	return v
}

// MekLocationName returns the short name of a Mek location index.
func MekLocationName(loc int) string {
	if loc < 0 || loc >= NumMekLoc {
		return "??"
	}
	return mekLocNames[loc]
}

// IsLimb reports whether a Mek location is an arm or leg.
func IsLimb(loc int) bool {
	return loc == LocLA || loc == LocRA || loc == LocLL || loc == LocRL
}

// IsLeg reports whether a Mek location is a leg (quads: all limbs).
func (u *Unit) IsLeg(loc int) bool {
	if u.Mek != nil && u.Mek.Quad {
		return IsLimb(loc)
	}
	return loc == LocLL || loc == LocRL
}

// ─── Transfer ───────────────────────────────────────────────────────────────

// TransferLocation returns where damage goes after loc is destroyed.
func (u *Unit) TransferLocation(loc int) int {
	switch u.Kind {
	case KindMek:
		switch loc {
		case LocLA, LocLL:
			return LocLT
		case LocRA, LocRL:
			return LocRT
		case LocLT, LocRT:
			return LocCT
		case LocHD:
			if u.Cockpit == CockpitTorso {
				return LocNone
			}
			return LocDestroyed
		default:
			return LocDestroyed
		}
	case KindVehicle:
		if u.Motive == MotiveVTOL && loc == VehRotor {
			return LocNone
		}
		return LocDestroyed
	case KindProtoMech:
		switch loc {
		case ProtoTorso:
			return LocDestroyed
		case ProtoMainGun:
			return LocNone
		default:
			return ProtoTorso
		}
	case KindInfantry:
		return LocDestroyed
	default:
		return LocNone
	}
}

// TransferChainLength is the longest chain of transfers from any location.
func (u *Unit) TransferChainLength() int {
	longest := 0
	for i := range u.Locations {
		n := 0
		for loc := i; loc >= 0 && n <= len(u.Locations); loc = u.TransferLocation(loc) {
			n++
		}
		longest = max(longest, n)
	}
	return longest
}
