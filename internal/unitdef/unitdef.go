// Package unitdef loads unit records from YAML definition files. It covers
// every kind, including those MegaMek .mtf files cannot describe: vehicles,
// aerospace, battle armor, infantry, protomechs and squadrons.
package unitdef

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JustinWhittecar/battlecore/internal/bvcalc"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

var (
	ErrUnknownKind     = errors.New("unknown unit kind")
	ErrUnknownLocation = errors.New("unknown location")
)

type Pilot struct {
	Name     string `yaml:"name"`
	Gunnery  int    `yaml:"gunnery"`
	Piloting int    `yaml:"piloting"`
	Edge     int    `yaml:"edge"`
}

type Equipment struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Rear     bool   `yaml:"rear"`
	Turret   bool   `yaml:"turret"`
	Trooper  int    `yaml:"trooper"`
	Shots    int    `yaml:"shots"`
}

// Definition is one unit as written in a definition file. Which fields
// matter depends on Kind.
type Definition struct {
	Kind       string   `yaml:"kind"`
	Name       string   `yaml:"name"`
	Tonnage    int      `yaml:"tonnage"`
	Motive     string   `yaml:"motive"`
	Engine     string   `yaml:"engine"`
	Rating     int      `yaml:"rating"`
	Gyro       string   `yaml:"gyro"`
	Structure  string   `yaml:"structure"`
	ArmorType  string   `yaml:"armorType"`
	Armor      []int    `yaml:"armor"`
	Rear       []int    `yaml:"rear"`
	Internal   []int    `yaml:"internal"`
	SI         int      `yaml:"si"`
	Capital    bool     `yaml:"capital"`
	EscapePods int      `yaml:"escapePods"`
	Troopers   int      `yaml:"troopers"`
	Quad       bool     `yaml:"quad"`
	Clan       bool     `yaml:"clan"`
	HeatSinks  int      `yaml:"heatSinks"`
	Quirks     []string `yaml:"quirks"`
	Pilot      *Pilot   `yaml:"pilot"`

	Equipment []Equipment  `yaml:"equipment"`
	Members   []Definition `yaml:"members"`
}

// Load reads a definition file and builds its unit.
func Load(path string) (*unit.Unit, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unitdef: load %s: %w", path, err)
	}
	u, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("unitdef: %s: %w", path, err)
	}
	return u, nil
}

// Parse builds a unit from YAML bytes.
func Parse(data []byte) (*unit.Unit, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return Build(&d)
}

// Build turns a definition into a unit record.
func Build(d *Definition) (*unit.Unit, error) {
	kind, ok := unit.ParseKind(d.Kind)
	if !ok {
		return nil, fmt.Errorf("%q: %w", d.Kind, ErrUnknownKind)
	}
	engine := unit.Engine{Type: unit.ParseEngineType(d.Engine), Rating: d.Rating}

	var u *unit.Unit
	switch kind {
	case unit.KindMek:
		spec := unit.MekSpec{
			Name:      d.Name,
			Tonnage:   d.Tonnage,
			Engine:    engine,
			Gyro:      unit.ParseGyroType(d.Gyro),
			Structure: unit.ParseStructureType(d.Structure),
			ArmorType: unit.ParseArmorType(d.ArmorType),
			Quad:      d.Quad,
		}
		copy(spec.Armor[:], d.Armor)
		copy(spec.Rear[:], d.Rear)
		u = unit.NewMek(spec)
	case unit.KindVehicle:
		motive, err := parseMotive(d.Motive)
		if err != nil {
			return nil, err
		}
		u = unit.NewVehicle(d.Name, d.Tonnage, motive, engine, d.Armor)
	case unit.KindAerospace:
		var armor [unit.NumAeroLoc]int
		copy(armor[:], d.Armor)
		u = unit.NewAerospace(d.Name, d.Tonnage, engine, armor, d.SI, d.Capital)
		u.Aero.EscapePods = d.EscapePods
	case unit.KindBattleArmor:
		per := 0
		if len(d.Armor) > 0 {
			per = d.Armor[0]
		}
		u = unit.NewBattleArmor(d.Name, d.Troopers, per)
	case unit.KindInfantry:
		u = unit.NewInfantry(d.Name, d.Troopers)
	case unit.KindProtoMech:
		var armor, internal [unit.NumProtoLoc]int
		copy(armor[:], d.Armor)
		copy(internal[:], d.Internal)
		u = unit.NewProtoMech(d.Name, d.Tonnage, armor, internal)
	case unit.KindSquadron:
		members := make([]*unit.Unit, 0, len(d.Members))
		for i := range d.Members {
			m, err := Build(&d.Members[i])
			if err != nil {
				return nil, fmt.Errorf("squadron %s member %d: %w", d.Name, i, err)
			}
			members = append(members, m)
		}
		return unit.NewSquadron(d.Name, members...), nil
	}

	if d.ArmorType != "" && kind != unit.KindMek {
		t := unit.ParseArmorType(d.ArmorType)
		for i := range u.Locations {
			u.Locations[i].ArmorType = t
			u.Locations[i].BAR = t.DefaultBAR()
		}
	}
	if d.HeatSinks > 0 {
		u.Dissipation = d.HeatSinks
	}
	for _, q := range d.Quirks {
		u.Quirks = append(u.Quirks, unit.Quirk(strings.ToLower(q)))
	}
	if d.Pilot != nil {
		u.Crew = unit.NewCrew(d.Pilot.Name, d.Pilot.Gunnery, d.Pilot.Piloting)
		u.Crew.Edge = d.Pilot.Edge
	}

	for _, e := range d.Equipment {
		if err := mount(u, e, d.Clan); err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
	}
	return u, nil
}

func mount(u *unit.Unit, e Equipment, clan bool) error {
	loc, err := locationIndex(u, e.Location)
	if err != nil {
		return err
	}
	var m *unit.Mounted
	slots := 1
	switch it, ok := bvcalc.Lookup(e.Name, clan); {
	case bvcalc.IsAmmo(e.Name):
		m = bvcalc.AmmoBin(e.Name, loc)
	case ok:
		m = it.Mounted(loc)
		slots = it.Slots
	default:
		m = unit.NewMisc(e.Name, unit.ParseMiscType(e.Name), loc)
	}
	if e.Shots > 0 {
		m.Shots = e.Shots
	}
	m.Rear = e.Rear
	m.Turret = e.Turret
	m.Trooper = e.Trooper
	if !u.Caps().CriticalSlots {
		slots = 0
	}
	u.AddEquipment(m, slots)
	return nil
}

// locationIndex resolves a location by its display name ("CT", "Front",
// "Nose", "Trooper 2").
func locationIndex(u *unit.Unit, name string) (int, error) {
	for i := range u.Locations {
		if strings.EqualFold(u.LocationName(i), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownLocation)
}

func parseMotive(s string) (unit.Motive, error) {
	switch strings.ToLower(s) {
	case "tracked":
		return unit.MotiveTracked, nil
	case "wheeled":
		return unit.MotiveWheeled, nil
	case "hover":
		return unit.MotiveHover, nil
	case "vtol":
		return unit.MotiveVTOL, nil
	}
	return 0, fmt.Errorf("unknown motive %q", s)
}
