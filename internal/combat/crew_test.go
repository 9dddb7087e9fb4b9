package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/heat"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

func TestConsciousnessThresholds(t *testing.T) {
	tests := []struct {
		hits int
		roll int
		out  bool
	}{
		{1, 2, true},
		{1, 3, false},
		{2, 4, true},
		{3, 7, false},
		{4, 9, true},
		{5, 11, false},
		{5, 10, true},
	}
	for _, tt := range tests {
		e, _ := newTestEngine(t, scripted(tt.roll))
		u := testMek("pilot")
		e.DamageCrew(u, tt.hits, "test")
		assert.Equal(t, tt.out, u.Crew.Members[0].Unconscious, "hits %d roll %d", tt.hits, tt.roll)
		assert.Equal(t, tt.hits, u.Crew.Members[0].Hits)
	}
}

func TestSixthHitKills(t *testing.T) {
	r := dice.NewScripted()
	e, _ := newTestEngine(t, r)
	u := testMek("pilot")
	u.Crew.Members[0].Hits = 5
	u.Crew.Members[0].Unconscious = true

	reps := e.DamageCrew(u, 1, "test")
	assert.True(t, u.Crew.Members[0].Dead)
	assert.False(t, u.Alive())
	assert.Equal(t, 1, report.Count(reps, report.MsgCrewKilled))
	assert.Zero(t, r.Count())
}

func TestUnconsciousCrewDoesNotReroll(t *testing.T) {
	r := dice.NewScripted()
	e, _ := newTestEngine(t, r)
	u := testMek("pilot")
	u.Crew.Members[0].Unconscious = true

	e.DamageCrew(u, 2, "test")
	assert.Equal(t, 2, u.Crew.Members[0].Hits)
	assert.Zero(t, r.Count())
}

func TestEdgeRerollsConsciousness(t *testing.T) {
	opts := DefaultOptions()
	opts.EdgeOnConsciousness = true
	e, _ := newTestEngine(t, scripted(2, 9), WithOptions(opts))
	u := testMek("lucky")
	u.Crew.Edge = 2

	reps := e.DamageCrew(u, 3, "test")
	assert.False(t, u.Crew.Members[0].Unconscious)
	assert.Equal(t, 1, u.Crew.Edge)
	assert.Equal(t, 2, report.Count(reps, report.MsgConsciousness))
}

func TestConsumeHeat(t *testing.T) {
	e, q := newTestEngine(t, scripted(12))
	hot := testMek("hot")
	hot.Shutdown = false
	cold := testMek("cold")
	cold.Shutdown = true
	burnt := testMek("burnt")
	burnt.Mek.LifeSupport = 1
	ammo := burnt.AddEquipment(unit.NewAmmo("SRM 6 Ammo", unit.LocRT, 15, 2), 1)
	burnt.AddEquipment(unit.NewMisc("CASE", unit.MiscCASE, unit.LocRT), 1)

	res := heat.Result{
		Levels:         []heat.Level{{Unit: hot, Heat: 31}, {Unit: cold, Heat: 4}, {Unit: burnt, Heat: 24}},
		Shutdowns:      []heat.Event{{Unit: hot, Heat: 31}},
		Startups:       []heat.Event{{Unit: cold, Heat: 4}},
		AmmoExplosions: []heat.AmmoExplosionRequest{{Unit: burnt, Heat: 24}},
		PilotDamage:    []heat.PilotDamageRequest{{Unit: burnt, Hits: 1}},
	}
	reps := e.ConsumeHeat(res)

	assert.Equal(t, 31, hot.Heat)
	assert.True(t, hot.Shutdown)
	assert.False(t, cold.Shutdown)
	assert.Equal(t, 24, burnt.Heat)
	assert.Zero(t, burnt.Equipment[ammo].Shots)
	assert.True(t, burnt.Alive())
	// two from the explosion, one from heat
	assert.Equal(t, 3, burnt.Crew.Members[0].Hits)
	assert.Equal(t, 1, report.Count(reps, report.MsgHeatPilotDamage))

	if assert.Len(t, q.reqs, 1) {
		assert.Equal(t, "hot", q.reqs[0].UnitID)
		assert.Equal(t, 3, q.reqs[0].Delta)
	}
}
