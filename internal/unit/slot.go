package unit

// ─── Critical slots ─────────────────────────────────────────────────────────

type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotSystem
	SlotEquipment
)

// System identifies the structural component a system slot holds.
type System int

const (
	SysNone System = iota
	SysEngine
	SysGyro
	SysCockpit
	SysLifeSupport
	SysSensors
	SysShoulder
	SysUpperArm
	SysLowerArm
	SysHand
	SysHip
	SysUpperLeg
	SysLowerLeg
	SysFoot
	SysAvionics
	SysLandingGear
)

var systemNames = map[System]string{
	SysEngine:      "Engine",
	SysGyro:        "Gyro",
	SysCockpit:     "Cockpit",
	SysLifeSupport: "Life Support",
	SysSensors:     "Sensors",
	SysShoulder:    "Shoulder",
	SysUpperArm:    "Upper Arm Actuator",
	SysLowerArm:    "Lower Arm Actuator",
	SysHand:        "Hand Actuator",
	SysHip:         "Hip",
	SysUpperLeg:    "Upper Leg Actuator",
	SysLowerLeg:    "Lower Leg Actuator",
	SysFoot:        "Foot Actuator",
	SysAvionics:    "Avionics",
	SysLandingGear: "Landing Gear",
}

func (s System) String() string {
	if n, ok := systemNames[s]; ok {
		return n
	}
	return "-Empty-"
}

// ParseSystem maps an MTF slot label onto a system, or SysNone.
func ParseSystem(label string) System {
	for s, n := range systemNames {
		if n == label {
			return s
		}
	}
	switch label {
	case "Fusion Engine", "Engine":
		return SysEngine
	case "Heavy Duty Gyro", "Compact Gyro", "XL Gyro":
		return SysGyro
	case "Small Cockpit", "Torso-Mounted Cockpit", "Command Console":
		return SysCockpit
	}
	return SysNone
}

// IsLegActuator covers hips, leg and foot actuators.
func (s System) IsLegActuator() bool {
	return s == SysHip || s == SysUpperLeg || s == SysLowerLeg || s == SysFoot
}

func (s System) IsArmActuator() bool {
	return s == SysShoulder || s == SysUpperArm || s == SysLowerArm || s == SysHand
}

// Slot is one cell of a location's critical table. Mount indexes
// Unit.Equipment for equipment slots and is -1 otherwise.
type Slot struct {
	Kind   SlotKind
	System System
	Mount  int

	Hit       bool
	Destroyed bool
	Armored   bool
	Breached  bool
	Missing   bool
}

func SystemSlot(s System) Slot { return Slot{Kind: SlotSystem, System: s, Mount: -1} }

func EquipmentSlot(mount int) Slot { return Slot{Kind: SlotEquipment, Mount: mount} }

func EmptySlot() Slot { return Slot{Mount: -1} }

// Hittable reports whether a critical hit can land here.
func (s *Slot) Hittable() bool {
	return s.Kind != SlotEmpty && !s.Hit && !s.Destroyed && !s.Missing
}
