package unit

import (
	"github.com/JustinWhittecar/battlecore/internal/board"
)

// ─── Per-kind state ─────────────────────────────────────────────────────────

type MekState struct {
	Quad         bool
	Convertible  bool
	GyroHits     int
	SensorHits   int
	LifeSupport  int
	AvionicsHits int
	ActuatorHits [NumMekLoc]int
	HipHit       [NumMekLoc]bool
	CockpitHit   bool
	LandingGear  bool
	AntiTSMHits  int
}

type VehicleState struct {
	CrewStunned   int
	DriverHit     bool
	CommanderHit  bool
	Stabilizers   [6]bool
	SensorHits    int
	EngineHit     bool
	CargoHit      bool
	TurretJammed  bool
	TurretLocked  bool
	RotorHits     int
	Immobile      bool
	MotivePenalty int
}

type AeroState struct {
	SI           int
	OrigSI       int
	FCSHits      int
	SensorHits   int
	AvionicsHits int
	FuelTankHit  bool
	Fuel         int
	GearHit      bool
	ThrusterHits int
	CargoHit     bool
	CollarHit    bool
	DriveHits    int
	BridgeHit    bool
	EscapePods   int
	PodsLaunched int
}

type ProtoState struct {
	Hits [NumProtoLoc]int
}

type InfantryState struct {
	InOpen bool
}

// Passenger is a unit riding on, or swarming, the outside of another.
type Passenger struct {
	Unit     *Unit
	Location int
	Swarming bool
}

// ─── Unit ───────────────────────────────────────────────────────────────────

type Unit struct {
	ID      string
	Owner   int
	Name    string
	Kind    Kind
	Motive  Motive
	Tonnage int

	Pos    board.HexCoord
	Facing int

	Locations []Location
	Equipment []*Mounted
	Crew      *Crew

	Engine    Engine
	Structure StructureType
	Gyro      GyroType
	Cockpit   CockpitType
	Quirks    []Quirk

	Industrial   bool
	CapitalScale bool
	Environment  Environment
	CowlArmor    int

	// live state
	Heat        int
	Dissipation int
	Shutdown    bool
	Prone       bool
	Airborne    bool
	Destroyed   bool
	Doomed      bool
	DestroyedBy string

	EngineHits            int
	EngineHitsThisPhase   int
	EngineExplosionRolled bool
	DamageThisPhase       int

	Riders    []Passenger
	CarriedBy *Unit

	Mek      *MekState
	Vehicle  *VehicleState
	Aero     *AeroState
	Proto    *ProtoState
	Infantry *InfantryState
	Members  []*Unit
}

func (u *Unit) String() string {
	if u.ID == "" {
		return u.Name
	}
	return u.Name + " (" + u.ID + ")"
}

// Alive reports whether the unit can still be damaged.
func (u *Unit) Alive() bool { return !u.Destroyed && !u.Doomed }

func (u *Unit) Caps() Capabilities { return u.Kind.Caps() }

// ValidLocation reports whether loc indexes a location of this unit.
func (u *Unit) ValidLocation(loc int) bool { return loc >= 0 && loc < len(u.Locations) }

// LocationName returns a display name for loc.
func (u *Unit) LocationName(loc int) string {
	if u.ValidLocation(loc) && u.Locations[loc].Name != "" {
		return u.Locations[loc].Name
	}
	if u.Kind == KindMek {
		return MekLocationName(loc)
	}
	return "??"
}

// HasQuirk reports whether q is set.
func (u *Unit) HasQuirk(q Quirk) bool {
	for _, have := range u.Quirks {
		if have == q {
			return true
		}
	}
	return false
}

// ResetPhase clears the per-phase counters.
func (u *Unit) ResetPhase() {
	u.EngineHitsThisPhase = 0
	u.EngineExplosionRolled = false
	u.DamageThisPhase = 0
}

// TotalPoints sums armor and internal structure across all locations.
func (u *Unit) TotalPoints() int {
	total := 0
	for i := range u.Locations {
		total += u.Locations[i].Points()
	}
	if u.Aero != nil {
		total += max(u.Aero.SI, 0)
	}
	return total
}

// ─── Equipment lookups ──────────────────────────────────────────────────────

// AddEquipment mounts m and places it in the first free slots of its
// location. It returns the equipment index.
func (u *Unit) AddEquipment(m *Mounted, slots int) int {
	idx := len(u.Equipment)
	u.Equipment = append(u.Equipment, m)
	if !u.ValidLocation(m.Location) {
		return idx
	}
	l := &u.Locations[m.Location]
	for i := range l.Slots {
		if slots == 0 {
			break
		}
		if l.Slots[i].Kind == SlotEmpty {
			l.Slots[i] = EquipmentSlot(idx)
			slots--
		}
	}
	return idx
}

// EquipmentAt returns the indices of equipment mounted at loc.
func (u *Unit) EquipmentAt(loc int) []int {
	var out []int
	for i, m := range u.Equipment {
		if m.Location == loc {
			out = append(out, i)
		}
	}
	return out
}

func (u *Unit) hasMisc(loc int, t MiscType) bool {
	for _, m := range u.Equipment {
		if m.Location == loc && m.Misc == t && !m.Destroyed {
			return true
		}
	}
	return false
}

func (u *Unit) HasCASE(loc int) bool   { return u.hasMisc(loc, MiscCASE) }
func (u *Unit) HasCASEII(loc int) bool { return u.hasMisc(loc, MiscCASEII) }

// FindMisc returns the first working item of type t at loc, or -1.
// A negative loc searches the whole unit.
func (u *Unit) FindMisc(loc int, t MiscType) int {
	for i, m := range u.Equipment {
		if m.Misc != t || m.Destroyed || (loc >= 0 && m.Location != loc) {
			continue
		}
		return i
	}
	return -1
}

// Weapons returns the indices of working weapons, optionally limited to loc.
func (u *Unit) Weapons(loc int) []int {
	var out []int
	for i, m := range u.Equipment {
		if !m.IsWeapon() || m.Destroyed {
			continue
		}
		if loc >= 0 && m.Location != loc {
			continue
		}
		out = append(out, i)
	}
	return out
}

// HittableSlots returns indices of slots at loc a critical hit can land on.
func (u *Unit) HittableSlots(loc int) []int {
	if !u.ValidLocation(loc) {
		return nil
	}
	var out []int
	for i := range u.Locations[loc].Slots {
		if u.Locations[loc].Slots[i].Hittable() {
			out = append(out, i)
		}
	}
	return out
}

// CountSystem counts intact slots of a system at loc.
func (u *Unit) CountSystem(loc int, s System) int {
	if !u.ValidLocation(loc) {
		return 0
	}
	n := 0
	for _, sl := range u.Locations[loc].Slots {
		if sl.Kind == SlotSystem && sl.System == s && !sl.Destroyed && !sl.Hit {
			n++
		}
	}
	return n
}

// ─── Members and troopers ───────────────────────────────────────────────────

// LiveMembers returns the squadron members still in the fight.
func (u *Unit) LiveMembers() []*Unit {
	var out []*Unit
	for _, m := range u.Members {
		if m.Alive() {
			out = append(out, m)
		}
	}
	return out
}

// LiveTroopers returns the battle armor trooper locations still alive.
func (u *Unit) LiveTroopers() []int {
	var out []int
	for i := 1; i < len(u.Locations); i++ {
		if !u.Locations[i].IsDestroyed() {
			out = append(out, i)
		}
	}
	return out
}

// RidersAt returns the passengers on the outside of loc.
func (u *Unit) RidersAt(loc int) []int {
	var out []int
	for i, p := range u.Riders {
		if p.Location == loc && p.Unit != nil && p.Unit.Alive() {
			out = append(out, i)
		}
	}
	return out
}

// ─── Piloting ───────────────────────────────────────────────────────────────

// PilotingSkill is the base target of a piloting or control roll.
func (u *Unit) PilotingSkill() int {
	return u.Crew.Piloting()
}

// PreexistingPSRModifier sums the damage modifiers every piloting roll carries.
func (u *Unit) PreexistingPSRModifier() int {
	mod := 0
	if u.Mek != nil {
		mod += u.Gyro.PSRModifier(u.Mek.GyroHits)
		for loc := range NumMekLoc {
			if !u.IsLeg(loc) || !u.ValidLocation(loc) {
				continue
			}
			switch {
			case u.Locations[loc].IsDestroyed():
				mod += 5
			case u.Mek.HipHit[loc]:
				mod += 2
			default:
				mod += u.Mek.ActuatorHits[loc]
			}
		}
	}
	if u.Vehicle != nil && u.Vehicle.DriverHit {
		mod += 2
	}
	if u.Aero != nil {
		mod += u.Aero.AvionicsHits + u.Aero.ThrusterHits
		if u.Aero.BridgeHit {
			mod += 2
		}
	}
	return mod
}
