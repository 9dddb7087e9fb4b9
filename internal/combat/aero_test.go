package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

func testFighter() *unit.Unit {
	u := unit.NewAerospace("Sparrowhawk", 30, unit.Engine{Type: unit.EngineFusion, Rating: 210},
		[unit.NumAeroLoc]int{20, 14, 14, 10, 0}, 10, false)
	u.ID = "fighter"
	return u
}

func TestAeroThresholdForcesCrit(t *testing.T) {
	e, _ := newTestEngine(t, scripted(2))
	u := testFighter()

	reps := e.ApplyDamage(u, Hit(unit.AeroNose, 2))
	assert.Zero(t, report.Count(reps, report.MsgCritRoll))

	reps = e.ApplyDamage(u, Hit(unit.AeroNose, 5))
	assert.Equal(t, 1, report.Count(reps, report.MsgAeroThreshold))
	assert.Equal(t, 1, report.Count(reps, report.MsgCritRoll))
	assert.Equal(t, 13, u.Locations[unit.AeroNose].Armor)
}

func TestAeroOverflowIntoSI(t *testing.T) {
	e, _ := newTestEngine(t, scripted(2))
	u := testFighter()

	e.ApplyDamage(u, Hit(unit.AeroAft, 14))
	assert.Equal(t, unit.Destroyed, u.Locations[unit.AeroAft].Armor)
	assert.Equal(t, 6, u.Aero.SI)
	assert.True(t, u.Alive())

	e.ApplyDamage(u, Hit(unit.AeroAft, 30))
	assert.Zero(t, u.Aero.SI)
	assert.False(t, u.Alive())
	assert.Equal(t, "structural integrity collapse", u.DestroyedBy)
}

func TestAeroEffectTables(t *testing.T) {
	fighter := testFighter()
	ship := unit.NewAerospace("Union", 3500, unit.Engine{Type: unit.EngineFusion, Rating: 1000},
		[unit.NumAeroLoc]int{60, 50, 50, 40, 0}, 15, true)

	assert.Equal(t, aeroFuelTank, aeroEffectFor(fighter, unit.AeroNose, 12))
	assert.Equal(t, aeroBridge, aeroEffectFor(ship, unit.AeroNose, 12))
	assert.Equal(t, aeroEngine, aeroEffectFor(fighter, unit.AeroAft, 8))
	assert.Equal(t, aeroDrive, aeroEffectFor(ship, unit.AeroAft, 8))
	assert.Equal(t, aeroNone, aeroEffectFor(fighter, unit.AeroFuselage, 7))
	assert.Equal(t, aeroCargo, aeroEffectFor(ship, unit.AeroFuselage, 7))
	assert.Equal(t, aeroCollar, aeroEffectFor(ship, unit.AeroFuselage, 8))
	assert.Equal(t, aeroBomb, aeroEffectFor(fighter, unit.AeroRightWing, 10))
	for roll := 2; roll <= 5; roll++ {
		assert.Equal(t, aeroNone, aeroEffectFor(fighter, unit.AeroLeftWing, roll))
	}
}

func TestAeroControlRollEffects(t *testing.T) {
	e, q := newTestEngine(t, dice.NewScripted())
	u := testFighter()

	e.aeroEffect(u, unit.AeroNose, aeroAvionics)
	e.aeroEffect(u, unit.AeroAft, aeroThrusters)
	assert.Equal(t, 1, u.Aero.AvionicsHits)
	assert.Equal(t, 1, u.Aero.ThrusterHits)
	require.Len(t, q.reqs, 2)
	assert.Equal(t, 2, u.PreexistingPSRModifier())
}

func TestAeroWeaponAndHeatSink(t *testing.T) {
	e, _ := newTestEngine(t, dice.NewScripted())
	u := testFighter()
	w := u.AddEquipment(unit.NewWeapon("Large Laser", unit.ClassEnergy, unit.AeroLeftWing, 8, 8, 123), 0)

	e.aeroEffect(u, unit.AeroLeftWing, aeroWeapon)
	assert.True(t, u.Equipment[w].Destroyed)

	reps := e.aeroEffect(u, unit.AeroLeftWing, aeroWeapon)
	assert.Equal(t, 1, report.Count(reps, report.MsgNoCritical))

	e.aeroEffect(u, unit.AeroLeftWing, aeroHeatSink)
	assert.Equal(t, 9, u.Dissipation)
}

func TestFuelTankExplodes(t *testing.T) {
	e, _ := newTestEngine(t, scripted(10))
	u := testFighter()
	reps := e.aeroEffect(u, unit.AeroNose, aeroFuelTank)
	assert.Equal(t, 1, report.Count(reps, report.MsgAeroFuelExplodes))
	assert.False(t, u.Alive())
}

func TestFuelTankEdgeReroll(t *testing.T) {
	opts := DefaultOptions()
	opts.EdgeOnFuelTank = true
	e, _ := newTestEngine(t, scripted(11, 4), WithOptions(opts))
	u := testFighter()
	u.Crew.Edge = 1

	reps := e.aeroEffect(u, unit.AeroNose, aeroFuelTank)
	assert.Equal(t, 1, report.Count(reps, report.MsgEdgeUsed))
	assert.True(t, u.Alive())
	assert.Zero(t, u.Crew.Edge)
	assert.Equal(t, 200, u.Aero.Fuel)
	assert.True(t, u.Aero.FuelTankHit)
}

func TestAeroCriticalOnLocationResult(t *testing.T) {
	// 12 on the crit roll, then three table rolls of 5 (no effect)
	e, _ := newTestEngine(t, scripted(12, 5, 5, 5))
	u := testFighter()
	reps := e.RollCritical(u, unit.AeroNose, false, 0, 6)
	assert.Equal(t, 3, report.Count(reps, report.MsgNoCritical))
}
