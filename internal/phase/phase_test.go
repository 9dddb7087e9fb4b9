package phase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/battlecore/internal/board"
	"github.com/JustinWhittecar/battlecore/internal/combat"
	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/psr"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

func testMek(id string, pos board.HexCoord) *unit.Unit {
	u := unit.NewMek(unit.MekSpec{
		Name:    "Enforcer ENF-4R",
		Tonnage: 50,
		Engine:  unit.Engine{Type: unit.EngineFusion, Rating: 200},
		Armor:   [unit.NumMekLoc]int{9, 20, 16, 16, 12, 12, 16, 16},
		Rear:    [3]int{8, 6, 6},
	})
	u.ID = id
	u.Pos = pos
	return u
}

func newContext(t *testing.T, r *dice.Roller, opts ...Option) *Context {
	t.Helper()
	c, err := New(r, opts...)
	require.NoError(t, err)
	return c
}

// ─── Units ──────────────────────────────────────────────────────────────────

func TestAddAssignsIDs(t *testing.T) {
	c := newContext(t, dice.NewScripted())
	u := testMek("", board.HexCoord{Col: 1, Row: 1})
	require.NoError(t, c.Add(u))
	assert.NotEmpty(t, u.ID)
	assert.Same(t, u, c.Unit(u.ID))

	dup := testMek(u.ID, board.HexCoord{Col: 2, Row: 2})
	err := c.Add(dup)
	assert.True(t, errors.Is(err, ErrDuplicateUnit))
	assert.Len(t, c.Units(), 1)
}

func TestAddRegistersSquadronMembers(t *testing.T) {
	c := newContext(t, dice.NewScripted())
	f := unit.NewAerospace("Corsair", 50, unit.Engine{Type: unit.EngineFusion, Rating: 250}, [unit.NumAeroLoc]int{20, 14, 14, 10, 0}, 10, false)
	f.ID = "corsair-1"
	sq := unit.NewSquadron("Blue", f)
	require.NoError(t, c.Add(sq))
	assert.Same(t, f, c.Unit("corsair-1"))
	assert.Len(t, c.Units(), 1)
}

// ─── Falls ──────────────────────────────────────────────────────────────────

func TestFallDamageAndPilotCheck(t *testing.T) {
	var script []int
	script = append(script, dice.Faces(1)...)  // facing: front
	script = append(script, dice.Sum2d6(7)...) // CT
	script = append(script, dice.Sum2d6(4)...) // pilot check vs 5, fails
	script = append(script, dice.Sum2d6(8)...) // consciousness vs 3
	c := newContext(t, dice.NewScripted(script...))
	u := testMek("enf", board.HexCoord{Col: 3, Row: 3})
	require.NoError(t, c.Add(u))

	reps := c.Fall(u)
	assert.True(t, u.Prone)
	assert.Equal(t, 15, u.Locations[unit.LocCT].Armor)
	assert.Equal(t, 1, u.Crew.Current().Hits)
	assert.False(t, u.Crew.Current().Unconscious)

	fall, ok := report.Find(reps, report.MsgFall)
	require.True(t, ok)
	assert.Equal(t, 5, fall.Fields[0].Num)
	check, ok := report.Find(reps, report.MsgFallPilotCheck)
	require.True(t, ok)
	assert.False(t, check.Fields[2].Flag)
}

func TestFallIntoWaterOnItsBack(t *testing.T) {
	b := board.New(10, 10)
	pos := board.HexCoord{Col: 4, Row: 4}
	b.Get(pos).Terrain = []board.TerrainFeature{{Type: board.TerrainWater, Level: 2}}

	var script []int
	script = append(script, dice.Faces(4)...)
	script = append(script, dice.Sum2d6(7)...)
	script = append(script, dice.Sum2d6(10)...)
	c := newContext(t, dice.NewScripted(script...), WithBoard(b))
	u := testMek("enf", pos)
	require.NoError(t, c.Add(u))

	c.Fall(u)
	// 5 points halved, against the rear
	assert.Equal(t, 5, u.Locations[unit.LocCT].RearArmor)
	assert.Equal(t, 20, u.Locations[unit.LocCT].Armor)
	assert.Zero(t, u.Crew.Current().Hits)
}

func TestFallIgnoresNonMeks(t *testing.T) {
	c := newContext(t, dice.NewScripted())
	tank := unit.NewVehicle("Manticore", 60, unit.MotiveTracked, unit.Engine{Type: unit.EngineFusion, Rating: 240}, []int{40, 30, 30, 20, 35})
	assert.Nil(t, c.Fall(tank))
	assert.Nil(t, c.Fall(nil))
}

func TestEndPhaseRollsQueuedPSRs(t *testing.T) {
	var script []int
	script = append(script, dice.Sum2d6(3)...) // PSR vs 5, fails
	script = append(script, dice.Faces(1)...)
	script = append(script, dice.Sum2d6(7)...)
	script = append(script, dice.Sum2d6(9)...) // pilot check passes
	c := newContext(t, dice.NewScripted(script...))
	u := testMek("enf", board.HexCoord{Col: 3, Row: 3})
	require.NoError(t, c.Add(u))
	c.Rolls.Enqueue(psr.Request{UnitID: u.ID, Reason: "leg actuator"})

	reps := c.EndPhase()
	assert.True(t, u.Prone)
	assert.Equal(t, 1, report.Count(reps, report.MsgPSRRoll))
	assert.Equal(t, 1, report.Count(reps, report.MsgFall))
	assert.Equal(t, 1, report.Count(reps, report.MsgPhaseEnd))
	assert.Zero(t, c.Rolls.Len())
	assert.Equal(t, 1, c.Phase)
	assert.Zero(t, u.DamageThisPhase)
	assert.Equal(t, len(reps), len(c.Log.Reports))
}

func TestEndPhaseSettlesHeat(t *testing.T) {
	c := newContext(t, dice.NewScripted())
	u := testMek("enf", board.HexCoord{Col: 3, Row: 3})
	require.NoError(t, c.Add(u))
	c.AddHeat(u, 20)

	c.EndPhase()
	assert.Equal(t, 10, u.Heat)
	assert.False(t, u.Shutdown)
}

// ─── Crashes ────────────────────────────────────────────────────────────────

func TestCrashVTOL(t *testing.T) {
	c := newContext(t, dice.NewScripted(dice.Sum2d6(7)...))
	vtol := unit.NewVehicle("Warrior", 30, unit.MotiveVTOL, unit.Engine{Type: unit.EngineICE, Rating: 100}, []int{10, 8, 8, 6, 2})
	vtol.ID = "warrior"
	require.NoError(t, c.Add(vtol))

	reps := c.Crash(vtol)
	assert.False(t, vtol.Airborne)
	assert.True(t, vtol.Vehicle.Immobile)
	assert.Equal(t, 7, vtol.Locations[unit.VehFront].Armor)
	assert.Equal(t, 1, report.Count(reps, report.MsgCrash))
	assert.Nil(t, c.Crash(vtol))
}

func TestCrashAerospaceDestroys(t *testing.T) {
	c := newContext(t, dice.NewScripted())
	f := unit.NewAerospace("Seydlitz", 20, unit.Engine{Type: unit.EngineFusion, Rating: 160}, [unit.NumAeroLoc]int{16, 12, 12, 8, 0}, 6, false)
	f.ID = "seydlitz"

	c.Crash(f)
	assert.True(t, f.Destroyed)
	assert.Equal(t, "crashed", f.DestroyedBy)
}

// ─── Area explosions ────────────────────────────────────────────────────────

func TestBlastDamage(t *testing.T) {
	ex := board.Explosion{Damage: 30, Degradation: 10}
	tests := []struct {
		distance, want int
	}{
		{0, 30},
		{1, 20},
		{2, 10},
		{3, 0},
		{7, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BlastDamage(ex, tt.distance), "distance %d", tt.distance)
	}
}

func TestDetonateFansOut(t *testing.T) {
	b := board.New(10, 10)
	origin := board.HexCoord{Col: 5, Row: 5}
	b.Buildings = append(b.Buildings, &board.Building{ID: 1, CF: 40, Hex: []board.HexCoord{origin}})

	// every 2d6 is a 7: center torso, no critical
	c := newContext(t, dice.NewScripted(dice.Sum2d6(7)...), WithBoard(b))
	near := testMek("near", origin)
	mid := testMek("mid", board.HexCoord{Col: 5, Row: 7})
	far := testMek("far", board.HexCoord{Col: 5, Row: 8})
	vtol := unit.NewVehicle("Warrior", 30, unit.MotiveVTOL, unit.Engine{Type: unit.EngineICE, Rating: 100}, []int{10, 8, 8, 6, 2})
	vtol.Pos = origin
	for _, u := range []*unit.Unit{near, mid, far, vtol} {
		require.NoError(t, c.Add(u))
	}

	reps := c.Detonate(board.Explosion{Origin: origin, Damage: 30, Degradation: 10, Cause: "test"})
	assert.Equal(t, 0, near.Locations[unit.LocCT].Armor)
	assert.Equal(t, 6, near.Locations[unit.LocCT].Internal)
	assert.Equal(t, 10, mid.Locations[unit.LocCT].Armor)
	assert.Equal(t, 20, far.Locations[unit.LocCT].Armor)
	assert.Equal(t, 10, vtol.Locations[unit.VehFront].Armor)
	assert.Equal(t, 10, b.Buildings[0].CF)
	assert.Equal(t, 1, report.Count(reps, report.MsgBuildingDamaged))
	assert.Equal(t, 8, report.Count(reps, report.MsgDamageHeader))
}

func TestEndPhaseDrainsBoardExplosions(t *testing.T) {
	b := board.New(10, 10)
	pos := board.HexCoord{Col: 2, Row: 2}
	c := newContext(t, dice.NewScripted(dice.Sum2d6(7)...), WithBoard(b), WithRules(combat.DefaultOptions()))
	u := testMek("enf", pos)
	require.NoError(t, c.Add(u))
	b.AddExplosion(board.Explosion{Origin: pos, Damage: 5, Degradation: 10, Cause: "test"})

	reps := c.EndPhase()
	assert.Empty(t, b.Pending)
	assert.Equal(t, 1, report.Count(reps, report.MsgAreaExplosion))
	assert.Equal(t, 15, u.Locations[unit.LocCT].Armor)
}
