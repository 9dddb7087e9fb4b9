// Package unit is the in-memory record of a combat unit: per-location armor,
// internal structure and critical slots, mounted equipment, crew and the
// per-kind state the damage engine mutates.
package unit

// Kind is the closed set of unit classes. Everything kind specific is decided
// by switching on it, never by inspecting the concrete record.
type Kind int

const (
	KindMek Kind = iota
	KindVehicle
	KindAerospace
	KindBattleArmor
	KindInfantry
	KindProtoMech
	KindSquadron
)

var kindNames = [...]string{"Mek", "Vehicle", "Aerospace", "BattleArmor", "Infantry", "ProtoMech", "Squadron"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of String (case sensitive).
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Capabilities describes what the damage pipeline may do to a kind.
type Capabilities struct {
	CriticalSlots       bool // per-location slot arrays
	RearArmor           bool
	TransferChain       bool // destroyed locations pass damage on
	CritOnStructure     bool // internal damage queues a crit roll
	HeadCrewInjury      bool
	Troopers            bool // each location is one trooper
	Composite           bool // hits are redirected to a member unit
	StructuralIntegrity bool // armor overflows into SI, not per-location IS
	CrewCasualties      bool // internal structure is the trooper count
}

var capabilities = map[Kind]Capabilities{
	KindMek: {
		CriticalSlots:   true,
		RearArmor:       true,
		TransferChain:   true,
		CritOnStructure: true,
		HeadCrewInjury:  true,
	},
	KindVehicle: {
		TransferChain:   true,
		CritOnStructure: true,
	},
	KindAerospace: {
		StructuralIntegrity: true,
	},
	KindBattleArmor: {
		Troopers: true,
	},
	KindInfantry: {
		TransferChain:  true,
		CrewCasualties: true,
	},
	KindProtoMech: {
		TransferChain: true,
	},
	KindSquadron: {
		Composite: true,
	},
}

func (k Kind) Caps() Capabilities {
	return capabilities[k]
}

// Motive is the vehicle propulsion type.
type Motive int

const (
	MotiveNone Motive = iota
	MotiveTracked
	MotiveWheeled
	MotiveHover
	MotiveVTOL
)

func (m Motive) String() string {
	switch m {
	case MotiveTracked:
		return "Tracked"
	case MotiveWheeled:
		return "Wheeled"
	case MotiveHover:
		return "Hover"
	case MotiveVTOL:
		return "VTOL"
	default:
		return "None"
	}
}

// Environment is the medium around the unit, for breach checks.
type Environment int

const (
	EnvNormal Environment = iota
	EnvVacuum
	EnvUnderwater
)

func (e Environment) Hostile() bool {
	return e == EnvVacuum || e == EnvUnderwater
}
