package unit

import "fmt"

// ─── IS table by tonnage ────────────────────────────────────────────────────

var isTable = map[int][NumMekLoc]int{
	20:  {3, 6, 5, 5, 3, 3, 4, 4},
	25:  {3, 8, 6, 6, 4, 4, 6, 6},
	30:  {3, 10, 7, 7, 5, 5, 7, 7},
	35:  {3, 11, 8, 8, 6, 6, 8, 8},
	40:  {3, 12, 10, 10, 6, 6, 10, 10},
	45:  {3, 14, 11, 11, 7, 7, 11, 11},
	50:  {3, 16, 12, 12, 8, 8, 12, 12},
	55:  {3, 18, 13, 13, 9, 9, 13, 13},
	60:  {3, 20, 14, 14, 10, 10, 14, 14},
	65:  {3, 21, 15, 15, 10, 10, 15, 15},
	70:  {3, 22, 15, 15, 11, 11, 15, 15},
	75:  {3, 23, 16, 16, 12, 12, 16, 16},
	80:  {3, 25, 17, 17, 13, 13, 17, 17},
	85:  {3, 27, 18, 18, 14, 14, 18, 18},
	90:  {3, 29, 19, 19, 15, 15, 19, 19},
	95:  {3, 30, 20, 20, 16, 16, 20, 20},
	100: {3, 31, 21, 21, 17, 17, 21, 21},
}

// MekInternal returns the internal structure per location for a tonnage.
func MekInternal(tons int) [NumMekLoc]int {
	if v, ok := isTable[tons]; ok {
		return v
	}
	bestTons := 20
	for t := range isTable {
		if t <= tons && t > bestTons {
			bestTons = t
		}
	}
	return isTable[bestTons]
}

// ─── Mek ────────────────────────────────────────────────────────────────────

// MekSpec is everything needed to lay out a Mek record.
type MekSpec struct {
	Name       string
	Tonnage    int
	Engine     Engine
	Gyro       GyroType
	Cockpit    CockpitType
	Structure  StructureType
	ArmorType  ArmorType
	Armor      [NumMekLoc]int
	Rear       [3]int // CT, LT, RT
	Quad       bool
	Industrial bool
	Pilot      *Crew
}

func mekSlotCount(loc int) int {
	switch loc {
	case LocHD, LocLL, LocRL:
		return 6
	default:
		return 12
	}
}

func sideEngineSlots(t EngineType) int {
	switch t {
	case EngineXL:
		return 3
	case EngineXXL:
		return 6
	case EngineLight:
		return 2
	default:
		return 0
	}
}

func gyroSlots(g GyroType) int {
	switch g {
	case GyroCompact:
		return 2
	case GyroXL:
		return 6
	case GyroNone:
		return 0
	default:
		return 4
	}
}

// NewMek builds a Mek with the standard system layout.
func NewMek(s MekSpec) *Unit {
	is := MekInternal(s.Tonnage)
	u := &Unit{
		Name:        s.Name,
		Kind:        KindMek,
		Tonnage:     s.Tonnage,
		Engine:      s.Engine,
		Gyro:        s.Gyro,
		Cockpit:     s.Cockpit,
		Structure:   s.Structure,
		Industrial:  s.Industrial,
		Crew:        s.Pilot,
		Mek:         &MekState{Quad: s.Quad},
		Dissipation: 10,
	}
	if u.Crew == nil {
		u.Crew = NewCrew("MechWarrior", 4, 5)
	}
	if s.Industrial {
		u.Cockpit = CockpitIndustrial
	}
	u.Locations = make([]Location, NumMekLoc)
	for loc := range NumMekLoc {
		rear := -1
		switch loc {
		case LocCT:
			rear = s.Rear[0]
		case LocLT:
			rear = s.Rear[1]
		case LocRT:
			rear = s.Rear[2]
		}
		l := NewLocation(MekLocationName(loc), s.Armor[loc], rear, is[loc])
		l.ArmorType = s.ArmorType
		l.BAR = s.ArmorType.DefaultBAR()
		l.Slots = make([]Slot, mekSlotCount(loc))
		for i := range l.Slots {
			l.Slots[i] = EmptySlot()
		}
		u.Locations[loc] = l
	}
	u.layoutSystems()
	return u
}

func (u *Unit) place(loc int, from int, sys ...System) int {
	slots := u.Locations[loc].Slots
	i := from
	for _, s := range sys {
		if i >= len(slots) {
			break
		}
		slots[i] = SystemSlot(s)
		i++
	}
	return i
}

func repeat(s System, n int) []System {
	out := make([]System, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func (u *Unit) layoutSystems() {
	if u.Cockpit == CockpitTorso {
		u.place(LocHD, 0, SysSensors, SysSensors, SysLifeSupport)
	} else {
		u.place(LocHD, 0, SysLifeSupport, SysSensors, SysCockpit, SysNone, SysSensors, SysLifeSupport)
		u.Locations[LocHD].Slots[3] = EmptySlot()
	}

	if u.Engine.Type != EngineNone {
		i := u.place(LocCT, 0, repeat(SysEngine, 3)...)
		i = u.place(LocCT, i, repeat(SysGyro, gyroSlots(u.Gyro))...)
		if u.Engine.Type != EngineCompact {
			i = u.place(LocCT, i, repeat(SysEngine, 3)...)
		}
		if u.Cockpit == CockpitTorso {
			u.place(LocCT, i, SysCockpit)
		}
		if n := sideEngineSlots(u.Engine.Type); n > 0 {
			u.place(LocLT, 0, repeat(SysEngine, n)...)
			u.place(LocRT, 0, repeat(SysEngine, n)...)
		}
	}

	for _, loc := range []int{LocLA, LocRA} {
		if u.Mek.Quad {
			u.place(loc, 0, SysHip, SysUpperLeg, SysLowerLeg, SysFoot)
		} else {
			u.place(loc, 0, SysShoulder, SysUpperArm, SysLowerArm, SysHand)
		}
	}
	for _, loc := range []int{LocLL, LocRL} {
		u.place(loc, 0, SysHip, SysUpperLeg, SysLowerLeg, SysFoot)
	}
}

// ─── Other kinds ────────────────────────────────────────────────────────────

var vehicleLocNames = []string{"Body", "Front", "Right", "Left", "Rear", "Turret"}

// NewVehicle builds a combat vehicle. armor lists Front, Right, Left, Rear
// and optionally Turret (Rotor for VTOLs).
func NewVehicle(name string, tonnage int, motive Motive, engine Engine, armor []int) *Unit {
	internal := (tonnage + 9) / 10
	u := &Unit{
		Name:    name,
		Kind:    KindVehicle,
		Motive:  motive,
		Tonnage: tonnage,
		Engine:  engine,
		Crew:    NewCrew("Crew", 4, 5),
		Vehicle: &VehicleState{},
	}
	u.Locations = append(u.Locations, NewLocation("Body", 0, -1, internal))
	for i, a := range armor {
		name := vehicleLocNames[i+1]
		if i+1 == VehRotor && motive == MotiveVTOL {
			name = "Rotor"
		}
		in := internal
		if name == "Rotor" {
			in = 2
		}
		u.Locations = append(u.Locations, NewLocation(name, a, -1, in))
	}
	if motive == MotiveVTOL {
		u.Airborne = true
	}
	return u
}

func (u *Unit) HasTurret() bool {
	return u.Kind == KindVehicle && u.Motive != MotiveVTOL && len(u.Locations) > VehTurret
}

var aeroLocNames = [NumAeroLoc]string{"Nose", "Left Wing", "Right Wing", "Aft", "Fuselage"}

// NewAerospace builds a fighter, small craft or capital ship.
func NewAerospace(name string, tonnage int, engine Engine, armor [NumAeroLoc]int, si int, capital bool) *Unit {
	u := &Unit{
		Name:         name,
		Kind:         KindAerospace,
		Tonnage:      tonnage,
		Engine:       engine,
		CapitalScale: capital,
		Crew:         NewCrew("Pilot", 4, 5),
		Airborne:     true,
		Aero:         &AeroState{SI: si, OrigSI: si, Fuel: 400},
		Dissipation:  10,
	}
	for i, a := range armor {
		l := NewLocation(aeroLocNames[i], a, -1, 0)
		l.Threshold = (a + 9) / 10
		u.Locations = append(u.Locations, l)
	}
	return u
}

// NewBattleArmor builds a squad; location 0 is the squad, 1..n the troopers.
func NewBattleArmor(name string, troopers, armorPer int) *Unit {
	u := &Unit{
		Name: name,
		Kind: KindBattleArmor,
		Crew: NewCrew("Squad", 4, 5),
	}
	u.Locations = append(u.Locations, NewLocation("Squad", 0, -1, 0))
	for i := 1; i <= troopers; i++ {
		u.Locations = append(u.Locations, NewLocation(fmt.Sprintf("Trooper %d", i), armorPer, -1, 1))
	}
	return u
}

// NewInfantry builds a conventional platoon whose internal structure is its
// trooper count.
func NewInfantry(name string, troopers int) *Unit {
	return &Unit{
		Name:      name,
		Kind:      KindInfantry,
		Crew:      NewCrew("Platoon", 4, 5),
		Infantry:  &InfantryState{},
		Locations: []Location{NewLocation("Platoon", 0, -1, troopers)},
	}
}

var protoLocNames = [NumProtoLoc]string{"Head", "Torso", "Right Arm", "Left Arm", "Legs", "Main Gun"}

// NewProtoMech builds a protomech; a zero main gun internal omits the mount.
func NewProtoMech(name string, tonnage int, armor, internal [NumProtoLoc]int) *Unit {
	u := &Unit{
		Name:    name,
		Kind:    KindProtoMech,
		Tonnage: tonnage,
		Crew:    NewCrew("ProtoWarrior", 4, 5),
		Proto:   &ProtoState{},
	}
	for i := range NumProtoLoc {
		u.Locations = append(u.Locations, NewLocation(protoLocNames[i], armor[i], -1, internal[i]))
	}
	return u
}

func (u *Unit) HasMainGun() bool {
	return u.Kind == KindProtoMech && len(u.Locations) > ProtoMainGun && u.Locations[ProtoMainGun].OrigInternal > 0
}

// NewSquadron groups fighters into one target.
func NewSquadron(name string, members ...*Unit) *Unit {
	u := &Unit{Name: name, Kind: KindSquadron, Members: members, Airborne: true}
	for _, m := range members {
		m.CarriedBy = u
	}
	return u
}
