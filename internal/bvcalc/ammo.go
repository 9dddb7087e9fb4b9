package bvcalc

import (
	"strings"

	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// AmmoStats describes one ton of ammunition.
type AmmoStats struct {
	BV            int // per ton
	Shots         int
	DamagePerShot int
}

// ammoTable maps squashed ammo names (without "ammo") to a ton of rounds
var ammoTable = map[string]AmmoStats{
	"ac2":               {5, 45, 2},
	"ac5":               {9, 20, 5},
	"ac10":              {15, 10, 10},
	"ac20":              {22, 5, 20},
	"lb2xac":            {5, 45, 2},
	"lb5xac":            {9, 20, 5},
	"lb10xac":           {15, 10, 10},
	"lb20xac":           {22, 5, 20},
	"ultraac2":          {7, 45, 2},
	"ultraac5":          {14, 20, 5},
	"ultraac10":         {26, 10, 10},
	"ultraac20":         {35, 5, 20},
	"rotaryac2":         {15, 45, 2},
	"rotaryac5":         {31, 20, 5},
	"lrm5":              {6, 24, 5},
	"lrm10":             {11, 12, 10},
	"lrm15":             {17, 8, 15},
	"lrm20":             {23, 6, 20},
	"srm2":              {3, 50, 4},
	"srm4":              {5, 25, 8},
	"srm6":              {7, 15, 12},
	"streaksrm2":        {4, 50, 4},
	"streaksrm4":        {7, 25, 8},
	"streaksrm6":        {11, 15, 12},
	"mrm10":             {7, 24, 10},
	"mrm20":             {14, 12, 20},
	"mrm30":             {21, 8, 30},
	"mrm40":             {28, 6, 40},
	"gauss":             {40, 8, 15},
	"gaussrifle":        {40, 8, 15},
	"lightgauss":        {20, 16, 8},
	"lightgaussrifle":   {20, 16, 8},
	"heavygauss":        {43, 4, 25},
	"heavygaussrifle":   {43, 4, 25},
	"machinegun":        {1, 200, 2},
	"mg":                {1, 200, 2},
	"antimissilesystem": {11, 12, 0},
	"ams":               {11, 12, 0},
	"arrowiv":           {10, 5, 20},
	"thumper":           {5, 20, 15},
	"sniper":            {6, 10, 20},
	"longtom":           {25, 5, 20},
}

// variant suffixes that share the base type's figures
var ammoVariants = []string{"artemisvcapable", "artemiscapable", "narccapable", "torpedo", "half", "inferno"}

func squashAmmo(name string) string {
	n, _ := Squash(name)
	n = strings.Replace(n, "ammo", "", 1)
	for _, v := range ammoVariants {
		n = strings.Replace(n, v, "", 1)
	}
	return n
}

// IsAmmo reports whether an equipment name is an ammunition bin.
func IsAmmo(name string) bool {
	return strings.Contains(strings.ToLower(name), "ammo")
}

// Ammo returns the per-ton figures for an ammo name.
func Ammo(name string) (AmmoStats, bool) {
	st, ok := ammoTable[squashAmmo(name)]
	return st, ok
}

// AmmoBV returns the BV per ton for a MegaMek ammo name, 0 when unknown.
func AmmoBV(name string) int {
	st, _ := Ammo(name)
	return st.BV
}

// IsExplosiveAmmo reports whether a bin of this ammo detonates when hit.
// Gauss slugs and AMS rounds do not.
func IsExplosiveAmmo(name string) bool {
	if !IsAmmo(name) {
		return false
	}
	n := squashAmmo(name)
	if strings.Contains(n, "gauss") {
		return false
	}
	st, ok := ammoTable[n]
	return !ok || st.DamagePerShot > 0
}

// AmmoBin builds a full one-ton bin at loc. Unknown ammo gets a single
// non-explosive round so it still occupies its slot.
func AmmoBin(name string, loc int) *unit.Mounted {
	st, ok := Ammo(name)
	if !ok {
		return unit.NewAmmo(name, loc, 1, 0)
	}
	return unit.NewAmmo(name, loc, st.Shots, st.DamagePerShot)
}

// Feeds reports whether an ammo bin can load a weapon, matching on the
// squashed names ("IS Ammo AC/20" feeds "AC/20", "Gauss Ammo" feeds
// "Gauss Rifle").
func Feeds(ammo, weapon string) bool {
	a := squashAmmo(ammo)
	w, _ := Squash(weapon)
	return a != "" && (w == a || w == a+"rifle")
}
