package ingestion

import (
	"fmt"
	"strings"

	"github.com/JustinWhittecar/battlecore/internal/bvcalc"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// ─── Unit records ───────────────────────────────────────────────────────────

var locationCodes = map[string]int{
	"HD":  unit.LocHD,
	"CT":  unit.LocCT,
	"LT":  unit.LocLT,
	"RT":  unit.LocRT,
	"LA":  unit.LocLA,
	"RA":  unit.LocRA,
	"LL":  unit.LocLL,
	"RL":  unit.LocRL,
	"FLL": unit.LocLA,
	"FRL": unit.LocRA,
	"RLL": unit.LocLL,
	"RRL": unit.LocRL,
}

var locationHeaders = map[string]int{
	"Head":            unit.LocHD,
	"Center Torso":    unit.LocCT,
	"Left Torso":      unit.LocLT,
	"Right Torso":     unit.LocRT,
	"Left Arm":        unit.LocLA,
	"Right Arm":       unit.LocRA,
	"Left Leg":        unit.LocLL,
	"Right Leg":       unit.LocRL,
	"Front Left Leg":  unit.LocLA,
	"Front Right Leg": unit.LocRA,
	"Rear Left Leg":   unit.LocLL,
	"Rear Right Leg":  unit.LocRL,
}

// slotLabel strips the MegaMek markers from a slot line.
func slotLabel(raw string) (label string, rear, armored, omni bool) {
	label = strings.TrimSpace(raw)
	for {
		l := strings.ToLower(label)
		switch {
		case strings.HasSuffix(l, "(r)"):
			rear = true
			label = strings.TrimSpace(label[:len(label)-3])
		case strings.HasSuffix(l, "(armored)"):
			armored = true
			label = strings.TrimSpace(label[:len(label)-9])
		case strings.HasSuffix(l, "(omnipod)"):
			omni = true
			label = strings.TrimSpace(label[:len(label)-9])
		default:
			return label, rear, armored, omni
		}
	}
}

// BuildMek turns parsed .mtf data into a Mek record with the file's exact
// critical slot layout. Unknown equipment still occupies its slots so crit
// rolls land where the file says they do.
func BuildMek(d *MTFData) (*unit.Unit, error) {
	spec := unit.MekSpec{
		Name:       d.FullName(),
		Tonnage:    d.Mass,
		Engine:     unit.Engine{Type: unit.ParseEngineType(d.EngineType), Rating: d.EngineRating},
		Gyro:       unit.ParseGyroType(d.Gyro),
		Cockpit:    unit.ParseCockpitType(d.Cockpit),
		Structure:  unit.ParseStructureType(d.Structure),
		ArmorType:  unit.ParseArmorType(d.ArmorType),
		Quad:       d.IsQuad(),
		Industrial: strings.Contains(strings.ToLower(d.Structure), "industrial"),
	}
	for code, v := range d.ArmorValues {
		switch code {
		case "RTC":
			spec.Rear[0] = v
		case "RTL":
			spec.Rear[1] = v
		case "RTR":
			spec.Rear[2] = v
		default:
			loc, ok := locationCodes[code]
			if !ok {
				return nil, fmt.Errorf("%s: unknown armor location %q", d.FullName(), code)
			}
			spec.Armor[loc] = v
		}
	}

	u := unit.NewMek(spec)
	for _, q := range d.Quirks {
		u.Quirks = append(u.Quirks, unit.Quirk(strings.ToLower(q)))
	}
	u.Dissipation = d.HeatSinkCount
	if strings.Contains(strings.ToLower(d.HeatSinkType), "double") {
		u.Dissipation *= 2
	}

	for header, labels := range d.LocationEquipment {
		loc, ok := locationHeaders[header]
		if !ok {
			return nil, fmt.Errorf("%s: unknown location %q", d.FullName(), header)
		}
		layoutLocation(u, loc, labels, d.IsClan())
	}
	return u, nil
}

// layoutLocation replaces a location's default slots with the file's.
func layoutLocation(u *unit.Unit, loc int, labels []string, clan bool) {
	l := &u.Locations[loc]
	l.Slots = make([]unit.Slot, max(len(labels), len(l.Slots)))
	for i := range l.Slots {
		l.Slots[i] = unit.EmptySlot()
	}

	for i := 0; i < len(labels); {
		label, rear, armored, _ := slotLabel(labels[i])
		run := 1
		for i+run < len(labels) && labels[i+run] == labels[i] {
			run++
		}

		switch sys := unit.ParseSystem(label); {
		case label == "-Empty-" || label == "":
			i++
			continue
		case sys != unit.SysNone:
			l.Slots[i] = unit.SystemSlot(sys)
			l.Slots[i].Armored = armored
			i++
			continue
		}

		var m *unit.Mounted
		size := 1
		if bvcalc.IsAmmo(label) {
			m = bvcalc.AmmoBin(label, loc)
		} else if it, ok := bvcalc.Lookup(label, clan); ok {
			m = it.Mounted(loc)
			size = max(it.Slots, 1)
		} else {
			m = unit.NewMisc(label, unit.ParseMiscType(label), loc)
			size = run
		}
		// a run longer than one item is several items of the same kind
		size = min(size, run)
		m.Rear = rear

		idx := len(u.Equipment)
		u.Equipment = append(u.Equipment, m)
		for j := i; j < i+size; j++ {
			l.Slots[j] = unit.EquipmentSlot(idx)
			l.Slots[j].Armored = armored
		}
		i += size
	}
}

// LoadMek parses a .mtf file and builds its record.
func LoadMek(path string) (*unit.Unit, error) {
	d, err := ParseMTF(path)
	if err != nil {
		return nil, err
	}
	u, err := BuildMek(d)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", path, err)
	}
	return u, nil
}
