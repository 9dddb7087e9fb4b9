package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/battlecore/internal/unit"
)

const hunchback = "testdata/Hunchback_HBK-4G.mtf"

func TestParseMTF(t *testing.T) {
	d, err := ParseMTF(hunchback)
	require.NoError(t, err)

	assert.Equal(t, "Hunchback HBK-4G", d.FullName())
	assert.Equal(t, 50, d.Mass)
	assert.Equal(t, 200, d.EngineRating)
	assert.Equal(t, "Fusion Engine", d.EngineType)
	assert.Equal(t, 13, d.HeatSinkCount)
	assert.Equal(t, "Single", d.HeatSinkType)
	assert.Equal(t, []string{"cramped_cockpit"}, d.Quirks)
	assert.Equal(t, 26, d.ArmorValues["CT"])
	assert.Equal(t, 5, d.ArmorValues["RTC"])
	assert.Equal(t, 160, d.TotalArmor())
	assert.Len(t, d.LocationEquipment["Right Torso"], 12)
	assert.Len(t, d.LocationEquipment["Head"], 6)
	assert.False(t, d.IsClan())
	assert.False(t, d.IsQuad())
}

func TestParseRejectsIncompleteFiles(t *testing.T) {
	_, err := Parse(strings.NewReader("model:HBK-4G\nmass:50\n"))
	assert.ErrorContains(t, err, "missing chassis")

	_, err = Parse(strings.NewReader("chassis:Hunchback\nmodel:HBK-4G\n"))
	assert.ErrorContains(t, err, "missing mass")
}

func TestParseArmorValue(t *testing.T) {
	assert.Equal(t, 26, parseArmorValue("26"))
	assert.Equal(t, 12, parseArmorValue("Reactive(Inner Sphere):12"))
	assert.Zero(t, parseArmorValue("lots"))
}

func TestSlotLabel(t *testing.T) {
	label, rear, armored, omni := slotLabel("Medium Laser (R) (OMNIPOD)")
	assert.Equal(t, "Medium Laser", label)
	assert.True(t, rear)
	assert.False(t, armored)
	assert.True(t, omni)

	label, _, armored, _ = slotLabel("Gyro (ARMORED)")
	assert.Equal(t, "Gyro", label)
	assert.True(t, armored)
}

func TestBuildMek(t *testing.T) {
	u, err := LoadMek(hunchback)
	require.NoError(t, err)

	assert.Equal(t, unit.KindMek, u.Kind)
	assert.Equal(t, "Hunchback HBK-4G", u.Name)
	assert.Equal(t, unit.EngineFusion, u.Engine.Type)
	assert.Equal(t, 13, u.Dissipation)
	assert.True(t, u.HasQuirk("cramped_cockpit"))
	assert.Equal(t, 26, u.Locations[unit.LocCT].Armor)
	assert.Equal(t, 5, u.Locations[unit.LocCT].RearArmor)
	assert.Equal(t, 4, u.Locations[unit.LocRT].RearArmor)
	assert.False(t, u.Locations[unit.LocLA].HasRear())

	// AC/20 fills ten slots with one mount, each ammo slot is its own bin
	rt := u.Locations[unit.LocRT].Slots
	ac := rt[0].Mount
	for i := 0; i < 10; i++ {
		require.Equal(t, unit.SlotEquipment, rt[i].Kind)
		assert.Equal(t, ac, rt[i].Mount)
	}
	assert.Equal(t, "AC/20", u.Equipment[ac].Name)
	assert.Equal(t, 178, u.Equipment[ac].Value)
	assert.NotEqual(t, rt[10].Mount, rt[11].Mount)
	bin := u.Equipment[rt[10].Mount]
	assert.Equal(t, unit.EquipAmmo, bin.Kind)
	assert.Equal(t, 100, bin.ExplosionAmount())

	// three single heat sinks are three mounts
	lt := u.Locations[unit.LocLT].Slots
	assert.NotEqual(t, lt[0].Mount, lt[1].Mount)
	assert.Equal(t, unit.MiscHeatSink, u.Equipment[lt[2].Mount].Misc)
	assert.Equal(t, unit.SlotEmpty, lt[3].Kind)

	ct := u.Locations[unit.LocCT].Slots
	assert.Equal(t, unit.SysGyro, ct[3].System)
	rearLaser := u.Equipment[ct[10].Mount]
	assert.Equal(t, "Medium Laser", rearLaser.Name)
	assert.True(t, rearLaser.Rear)

	hd := u.Locations[unit.LocHD].Slots
	assert.Equal(t, unit.SysCockpit, hd[2].System)
	assert.Equal(t, "Small Laser", u.Equipment[hd[3].Mount].Name)

	assert.Len(t, u.Weapons(-1), 5)
	assert.Len(t, u.Equipment, 10)
}

func TestBuildMekClanAndDouble(t *testing.T) {
	d := &MTFData{
		Chassis:       "Kit Fox",
		Model:         "Prime",
		Config:        "Biped Omnimech",
		TechBase:      "Clan",
		Mass:          30,
		EngineRating:  180,
		EngineType:    "XL Engine",
		HeatSinkCount: 10,
		HeatSinkType:  "Clan Double",
		ArmorValues:   map[string]int{"CT": 12},
		LocationEquipment: map[string][]string{
			"Right Arm": {"Shoulder", "Upper Arm Actuator", "ER Medium Laser", "CLDoubleHeatSink", "CLDoubleHeatSink"},
		},
	}
	u, err := BuildMek(d)
	require.NoError(t, err)
	assert.Equal(t, 20, u.Dissipation)
	assert.Equal(t, unit.EngineXL, u.Engine.Type)

	ra := u.Locations[unit.LocRA].Slots
	assert.Equal(t, 108, u.Equipment[ra[2].Mount].Value)
	// a clan double heat sink takes two slots
	assert.Equal(t, ra[3].Mount, ra[4].Mount)
	// the default arm layout below the file's slots is cleared
	assert.Equal(t, unit.SlotEmpty, ra[5].Kind)
}

func TestBuildMekUnknownLocation(t *testing.T) {
	d := &MTFData{Chassis: "Odd", Mass: 20, ArmorValues: map[string]int{"XX": 3}}
	_, err := BuildMek(d)
	assert.ErrorContains(t, err, "unknown armor location")
}
