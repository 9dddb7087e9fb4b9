package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/battlecore/internal/bvcalc"
	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/phase"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

func testMek(id string, weapons ...string) *unit.Unit {
	u := unit.NewMek(unit.MekSpec{
		Name:    "Centurion CN9-A",
		Tonnage: 50,
		Engine:  unit.Engine{Type: unit.EngineFusion, Rating: 200},
		Armor:   [unit.NumMekLoc]int{9, 10, 10, 10, 10, 10, 10, 10},
		Rear:    [3]int{5, 5, 5},
	})
	u.ID = id
	for _, w := range weapons {
		it, _ := bvcalc.Lookup(w, false)
		u.AddEquipment(it.Mounted(unit.LocRT), it.Slots)
	}
	return u
}

func testTank(id string) *unit.Unit {
	u := unit.NewVehicle("Vedette", 50, unit.MotiveTracked, unit.Engine{Type: unit.EngineICE, Rating: 250}, []int{20, 15, 15, 10})
	u.ID = id
	return u
}

func newDuel(t *testing.T, r *dice.Roller, a, b *unit.Unit) (*phase.Context, *Duel) {
	t.Helper()
	ctx, err := phase.New(r)
	require.NoError(t, err)
	d, err := NewDuel(ctx, a, b, WithModifier(0))
	require.NoError(t, err)
	return ctx, d
}

func TestClusterHits(t *testing.T) {
	tests := []struct {
		rack, roll, want int
	}{
		{10, 7, 6},
		{20, 2, 6},
		{20, 12, 20},
		{6, 7, 4},
		{7, 7, 4}, // odd racks read the next smaller column
		{20, 15, 20},
		{1, 7, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClusterHits(tt.rack, tt.roll), "rack %d roll %d", tt.rack, tt.roll)
	}
}

func TestRackSize(t *testing.T) {
	assert.Equal(t, 20, rackSize("LRM 20"))
	assert.Equal(t, 6, rackSize("SRM-6"))
	assert.Equal(t, 6, rackSize("Streak SRM 6"))
	assert.Equal(t, 0, rackSize("Medium Laser"))
	assert.Equal(t, 5, missileGroup("LRM 10"))
	assert.Equal(t, 1, missileGroup("SRM 6"))
	assert.True(t, allHit("Streak SRM 6"))
}

func TestLaserHitsTank(t *testing.T) {
	a := testMek("mek", "Medium Laser")
	b := testTank("tank")
	r := dice.NewScripted(append(dice.Sum2d6(8), dice.Sum2d6(7)...)...)
	ctx, d := newDuel(t, r, a, b)

	reps := d.Turn()

	assert.Equal(t, 15, b.Locations[unit.VehFront].Armor)
	assert.Equal(t, 1, report.Count(reps, report.MsgWeaponAttack))
	att, _ := report.Find(ctx.Log.Reports, report.MsgWeaponAttack)
	assert.Equal(t, "mek", att.Subject)
	assert.True(t, att.Fields[len(att.Fields)-1].Flag)
	assert.Equal(t, 1, ctx.Phase)
	assert.Equal(t, 4, r.Count())
}

func TestMissedShotDealsNoDamage(t *testing.T) {
	a := testMek("mek", "Medium Laser")
	b := testTank("tank")
	r := dice.NewScripted(dice.Sum2d6(3)...)
	_, d := newDuel(t, r, a, b)

	d.Turn()
	assert.Equal(t, 20, b.Locations[unit.VehFront].Armor)
	assert.Equal(t, 2, r.Count())
}

func TestMissileClusterAndAmmo(t *testing.T) {
	a := testTank("tank")
	lrm, _ := bvcalc.Lookup("LRM 10", false)
	a.AddEquipment(lrm.Mounted(unit.VehFront), 0)
	a.AddEquipment(bvcalc.AmmoBin("IS Ammo LRM-10", unit.VehBody), 0)
	b := testMek("mek")

	var script []int
	script = append(script, dice.Sum2d6(9)...) // attack
	script = append(script, dice.Sum2d6(7)...) // cluster: 6 of 10
	script = append(script, dice.Sum2d6(7)...) // five missiles to CT
	script = append(script, dice.Sum2d6(7)...) // one missile to CT
	r := dice.NewScripted(script...)
	_, d := newDuel(t, r, a, b)

	reps := d.Turn()

	assert.Equal(t, 4, b.Locations[unit.LocCT].Armor)
	assert.Equal(t, 11, a.Equipment[1].Shots)
	ch, ok := report.Find(reps, report.MsgClusterHits)
	require.True(t, ok)
	assert.Equal(t, 6, ch.Fields[0].Num)
	assert.Equal(t, 2, report.Count(reps, report.MsgDamageHeader))
}

func TestNoAmmoNoShot(t *testing.T) {
	a := testMek("mek", "AC/20")
	b := testTank("tank")
	r := dice.NewScripted(dice.Sum2d6(12)...)
	ctx, d := newDuel(t, r, a, b)

	reps := d.Turn()
	assert.Equal(t, 1, report.Count(reps, report.MsgOutOfAmmo))
	assert.Zero(t, report.Count(reps, report.MsgWeaponAttack))
	assert.Zero(t, ctx.Heat.Pending(a))
	assert.Zero(t, r.Count())
}

func TestShutdownUnitHoldsFire(t *testing.T) {
	a := testMek("mek", "Medium Laser")
	a.Shutdown = true
	a.Heat = 0
	b := testTank("tank")
	// the startup roll at end of phase
	r := dice.NewScripted(dice.Sum2d6(10)...)
	_, d := newDuel(t, r, a, b)

	reps := d.Turn()
	assert.Zero(t, report.Count(reps, report.MsgWeaponAttack))
}

func TestRunToDestruction(t *testing.T) {
	a := testMek("hunter", "AC/20", "Medium Laser", "Medium Laser")
	a.AddEquipment(bvcalc.AmmoBin("IS Ammo AC/20", unit.LocLT), 1)
	a.AddEquipment(bvcalc.AmmoBin("IS Ammo AC/20", unit.LocLT), 1)
	b := testTank("prey")
	ctx, err := phase.New(dice.NewSeeded(7))
	require.NoError(t, err)
	d, err := NewDuel(ctx, a, b)
	require.NoError(t, err)

	res := d.Run(100)

	assert.LessOrEqual(t, res.Turns, 100)
	assert.Equal(t, 1, ctx.Log.Count(report.MsgDuelResult))
	// the tank has no weapons, so it can only lose or survive
	if res.Winner != nil {
		assert.Same(t, a, res.Winner)
		assert.False(t, b.Alive())
	}

	rec := d.Resolution("hunt", 7, res)
	assert.Equal(t, ctx.ID, rec.ID)
	require.Len(t, rec.Units, 2)
	assert.Equal(t, "Vehicle", rec.Units[1].Kind)
	assert.LessOrEqual(t, rec.Units[1].EndBV, rec.Units[1].StartBV)
	assert.Equal(t, len(ctx.Log.Reports), len(rec.Reports))
}

func TestDuelRejectsSameUnit(t *testing.T) {
	ctx, err := phase.New(dice.NewSeeded(1))
	require.NoError(t, err)
	u := testMek("solo")
	_, err = NewDuel(ctx, u, u)
	assert.ErrorIs(t, err, ErrSameUnit)
}
