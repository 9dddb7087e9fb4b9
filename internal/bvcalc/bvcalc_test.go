package bvcalc

import (
	"testing"

	"github.com/JustinWhittecar/battlecore/internal/unit"
)

func TestAmmoBV(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"IS Ammo LRM-20", 23},
		{"IS Ammo LRM-5", 6},
		{"Clan Ammo SRM-6", 7},
		{"IS Ammo AC/20", 22},
		{"IS Ammo AC/2", 5},
		{"IS Gauss Ammo", 40},
		{"Clan Streak SRM-6 Ammo", 11},
		{"IS Ammo MRM-40", 28},
		{"Clan Ultra AC/5 Ammo", 14},
		{"IS LB 10-X AC Ammo", 15},
		{"IS Ammo LRM-15 Artemis-capable", 17},
		{"Medium Laser", 0},
	}
	for _, tt := range tests {
		got := AmmoBV(tt.name)
		if got != tt.want {
			t.Errorf("AmmoBV(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestExplosiveAmmo(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"IS Ammo AC/20", true},
		{"IS Gauss Ammo", false},
		{"Clan Ammo SRM-6", true},
		{"IS AMS Ammo", false},
		{"Medium Laser", false},
	}
	for _, tt := range tests {
		if got := IsExplosiveAmmo(tt.name); got != tt.want {
			t.Errorf("IsExplosiveAmmo(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAmmoBin(t *testing.T) {
	m := AmmoBin("IS Ammo SRM-6", unit.LocLT)
	if m.Shots != 15 || m.DamagePerShot != 12 {
		t.Errorf("SRM-6 bin = %d shots x %d, want 15 x 12", m.Shots, m.DamagePerShot)
	}
	if !m.CanExplode() {
		t.Error("SRM-6 bin should explode")
	}
	if got := AmmoBin("IS Gauss Ammo", unit.LocRT); got.CanExplode() {
		t.Error("gauss bin should not explode")
	}
	if got := AmmoBin("Mystery Ammo", unit.LocRT); got.Shots != 1 || got.CanExplode() {
		t.Errorf("unknown bin = %+v, want one inert round", got)
	}
}

func TestSquash(t *testing.T) {
	tests := []struct {
		name string
		key  string
		clan bool
	}{
		{"ISERMediumLaser", "ermediumlaser", false},
		{"CLERMediumLaser", "ermediumlaser", true},
		{"Clan ER PPC", "erppc", true},
		{"Autocannon/20", "autocannon20", false},
		{"IS Endo Steel", "endosteel", false},
		{"LRM 20", "lrm20", false},
	}
	for _, tt := range tests {
		key, clan := Squash(tt.name)
		if key != tt.key || clan != tt.clan {
			t.Errorf("Squash(%q) = %q, %v, want %q, %v", tt.name, key, clan, tt.key, tt.clan)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		clanBase  bool
		wantName  string
		wantSlots int
		wantBV    int
	}{
		{"Medium Laser", false, "Medium Laser", 1, 46},
		{"ISERMediumLaser", false, "ER Medium Laser", 1, 62},
		{"CLERMediumLaser", false, "ER Medium Laser", 1, 108},
		{"ER Medium Laser", true, "ER Medium Laser", 1, 108},
		{"Autocannon/20", false, "AC/20", 10, 178},
		{"ISDoubleHeatSink", false, "Double Heat Sink", 3, 0},
		{"CLDoubleHeatSink", false, "Double Heat Sink", 2, 0},
		{"CASE", true, "CASE", 1, 0},
	}
	for _, tt := range tests {
		it, ok := Lookup(tt.name, tt.clanBase)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.name)
			continue
		}
		if it.Name != tt.wantName || it.Slots != tt.wantSlots || it.BV != tt.wantBV {
			t.Errorf("Lookup(%q) = %s/%d/%d, want %s/%d/%d", tt.name, it.Name, it.Slots, it.BV, tt.wantName, tt.wantSlots, tt.wantBV)
		}
	}
	if _, ok := Lookup("Fusion Engine", false); ok {
		t.Error("engine slots are not catalogue items")
	}
}

func TestMountedGauss(t *testing.T) {
	it, _ := Lookup("ISGaussRifle", false)
	m := it.Mounted(unit.LocRT)
	if !m.CanExplode() || m.ExplosionAmount() != 20 {
		t.Errorf("gauss rifle explodes for %d, want 20", m.ExplosionAmount())
	}
	shield, _ := Lookup("Medium Shield", false)
	if m := shield.Mounted(unit.LocLA); !m.Active || m.Capacity != 18 {
		t.Errorf("medium shield = %+v", m)
	}
}

func TestEstimateDropsWithDamage(t *testing.T) {
	u := unit.NewMek(unit.MekSpec{
		Name:    "Hunchback",
		Tonnage: 50,
		Engine:  unit.Engine{Type: unit.EngineFusion, Rating: 200},
		Armor:   [unit.NumMekLoc]int{9, 26, 20, 20, 16, 16, 20, 20},
		Rear:    [3]int{5, 4, 4},
	})
	it, _ := Lookup("Autocannon/20", false)
	u.AddEquipment(it.Mounted(unit.LocRT), it.Slots)

	// armor 160 * 2.5 + structure 83 * 1.5 + gyro 25 + AC/20 178
	want := 400 + 125 + 25 + 178
	if got := Estimate(u); got != want {
		t.Fatalf("Estimate = %d, want %d", got, want)
	}

	u.Equipment[0].Destroyed = true
	u.Locations[unit.LocRT].Armor = 0
	if got := Estimate(u); got != want-178-50 {
		t.Errorf("damaged Estimate = %d, want %d", got, want-178-50)
	}
}

func TestFeeds(t *testing.T) {
	tests := []struct {
		ammo, weapon string
		want         bool
	}{
		{"IS Ammo AC/20", "AC/20", true},
		{"IS Ammo AC/2", "AC/20", false},
		{"IS Ammo LRM-10", "LRM 10", true},
		{"IS Gauss Ammo", "Gauss Rifle", true},
		{"Clan Streak SRM-6 Ammo", "Streak SRM 6", true},
		{"Clan Streak SRM-6 Ammo", "SRM 6", false},
		{"IS Ammo SRM-6", "Medium Laser", false},
	}
	for _, tt := range tests {
		if got := Feeds(tt.ammo, tt.weapon); got != tt.want {
			t.Errorf("Feeds(%q, %q) = %v, want %v", tt.ammo, tt.weapon, got, tt.want)
		}
	}
}
