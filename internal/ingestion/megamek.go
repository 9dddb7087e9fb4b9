// Package ingestion reads MegaMek unit files and turns them into unit
// records the combat engine can resolve damage against.
package ingestion

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// parseArmorValue handles both standard "26" and patchwork "Reactive(Inner Sphere):26" formats
func parseArmorValue(val string) int {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if idx := strings.LastIndex(val, ":"); idx >= 0 {
		if n, err := strconv.Atoi(val[idx+1:]); err == nil {
			return n
		}
	}
	return 0
}

// MTFData holds the combat-relevant fields of a MegaMek .mtf file.
type MTFData struct {
	Chassis  string
	Model    string
	Config   string
	TechBase string
	Quirks   []string

	Mass         int
	EngineRating int
	EngineType   string
	Structure    string
	Cockpit      string
	Gyro         string

	HeatSinkCount int
	HeatSinkType  string

	WalkMP int
	JumpMP int

	ArmorType   string
	ArmorValues map[string]int // location code -> armor points

	// Per-location slot labels in file order
	LocationEquipment map[string][]string
}

// armor keys, lower-cased, to location codes
var armorKeys = map[string]string{
	"la armor":  "LA",
	"ra armor":  "RA",
	"lt armor":  "LT",
	"rt armor":  "RT",
	"ct armor":  "CT",
	"hd armor":  "HD",
	"ll armor":  "LL",
	"rl armor":  "RL",
	"rtl armor": "RTL",
	"rtr armor": "RTR",
	"rtc armor": "RTC",
	"fll armor": "FLL",
	"frl armor": "FRL",
	"rll armor": "RLL",
	"rrl armor": "RRL",
}

// ParseMTF reads a MegaMek .mtf file.
func ParseMTF(path string) (*MTFData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtf: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads .mtf content.
func Parse(r io.Reader) (*MTFData, error) {
	data := &MTFData{
		ArmorValues:       make(map[string]int),
		LocationEquipment: make(map[string][]string),
	}

	scanner := bufio.NewScanner(r)
	// lore lines can be long
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentLocation string
	var inWeapons bool

	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lower := strings.ToLower(trimmed)

		if loc := matchLocationHeader(trimmed); loc != "" {
			currentLocation = loc
			inWeapons = false
			continue
		}
		if strings.HasPrefix(lower, "weapons:") {
			inWeapons = true
			currentLocation = ""
			continue
		}

		if currentLocation != "" {
			// a key:value line ends the slot block
			if idx := strings.Index(trimmed, ":"); idx < 0 || !isHeaderKey(lower[:idx]) {
				data.LocationEquipment[currentLocation] = append(data.LocationEquipment[currentLocation], trimmed)
				continue
			}
			currentLocation = ""
		}
		// the weapons summary repeats the slot blocks, nothing to keep
		if inWeapons && !strings.Contains(trimmed, ":") {
			continue
		}
		inWeapons = false

		idx := strings.Index(trimmed, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(trimmed[:idx]))
		val := strings.TrimSpace(trimmed[idx+1:])

		if code, ok := armorKeys[key]; ok {
			data.ArmorValues[code] = parseArmorValue(val)
			continue
		}
		switch key {
		case "chassis":
			data.Chassis = val
		case "model":
			data.Model = val
		case "config":
			data.Config = val
		case "techbase":
			data.TechBase = val
		case "quirk":
			if val != "" {
				data.Quirks = append(data.Quirks, val)
			}
		case "mass":
			data.Mass, _ = strconv.Atoi(val)
		case "engine":
			data.EngineRating, data.EngineType = parseEngine(val)
		case "structure":
			data.Structure = val
		case "cockpit":
			data.Cockpit = val
		case "gyro":
			data.Gyro = val
		case "heat sinks":
			data.HeatSinkCount, data.HeatSinkType = parseHeatSinks(val)
		case "walk mp":
			data.WalkMP, _ = strconv.Atoi(val)
		case "jump mp":
			data.JumpMP, _ = strconv.Atoi(val)
		case "armor":
			data.ArmorType = val
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mtf: %w", err)
	}
	if data.Chassis == "" {
		return nil, fmt.Errorf("missing chassis field")
	}
	if data.Mass <= 0 {
		return nil, fmt.Errorf("%s: missing mass", data.FullName())
	}
	return data, nil
}

// isHeaderKey reports whether a key before ':' is a file field rather than
// part of an equipment label such as "ISAMS Ammo:Half".
func isHeaderKey(key string) bool {
	switch key {
	case "chassis", "model", "config", "techbase", "era", "source", "rules level",
		"quirk", "mass", "engine", "structure", "myomer", "cockpit", "gyro",
		"heat sinks", "walk mp", "jump mp", "armor", "overview", "capabilities",
		"deployment", "history", "manufacturer", "primaryfactory", "systemmanufacturer",
		"systemmode", "nocrit", "mul id", "ejection", "base chassis heat sinks":
		return true
	}
	_, ok := armorKeys[key]
	return ok
}

// matchLocationHeader checks if a line is a location header like "Left Arm:" or "Front Left Leg:"
func matchLocationHeader(line string) string {
	locations := []string{
		"Left Arm:",
		"Right Arm:",
		"Left Torso:",
		"Right Torso:",
		"Center Torso:",
		"Head:",
		"Left Leg:",
		"Right Leg:",
		// Quad mech locations
		"Front Left Leg:",
		"Front Right Leg:",
		"Rear Left Leg:",
		"Rear Right Leg:",
	}
	for _, loc := range locations {
		if line == loc {
			return strings.TrimSuffix(loc, ":")
		}
	}
	return ""
}

// parseEngine parses "300 Fusion Engine(IS)" -> (300, "Fusion Engine(IS)")
func parseEngine(val string) (int, string) {
	parts := strings.SplitN(val, " ", 2)
	if len(parts) < 2 {
		rating, _ := strconv.Atoi(val)
		return rating, ""
	}
	rating, _ := strconv.Atoi(parts[0])
	return rating, parts[1]
}

// parseHeatSinks parses "14 IS Double" -> (14, "IS Double")
func parseHeatSinks(val string) (int, string) {
	parts := strings.SplitN(val, " ", 2)
	if len(parts) < 2 {
		count, _ := strconv.Atoi(val)
		return count, "Single"
	}
	count, _ := strconv.Atoi(parts[0])
	return count, parts[1]
}

// TotalArmor returns the sum of all armor values.
func (d *MTFData) TotalArmor() int {
	total := 0
	for _, v := range d.ArmorValues {
		total += v
	}
	return total
}

// FullName returns "Chassis Model" or just "Chassis" if model is empty.
func (d *MTFData) FullName() string {
	if d.Model == "" {
		return d.Chassis
	}
	return d.Chassis + " " + d.Model
}

func (d *MTFData) IsClan() bool {
	return strings.Contains(strings.ToLower(d.TechBase), "clan")
}

func (d *MTFData) IsQuad() bool {
	return strings.Contains(strings.ToLower(d.Config), "quad")
}
