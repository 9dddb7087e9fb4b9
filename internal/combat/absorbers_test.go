package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

func TestShieldCoversArmAndSideTorso(t *testing.T) {
	e, _ := newTestEngine(t, dice.NewScripted())
	u := testMek("shield")
	s := unit.NewMisc("Medium Shield", unit.MiscShield, unit.LocLA)
	s.Capacity = 7
	u.AddEquipment(s, 1)

	e.ApplyDamage(u, Hit(unit.LocLT, 5))
	assert.Equal(t, 2, s.Capacity)
	assert.Equal(t, 16, u.Locations[unit.LocLT].Armor)

	reps := e.ApplyDamage(u, Hit(unit.LocLA, 5))
	assert.Equal(t, 1, report.Count(reps, report.MsgShieldDestroyed))
	assert.Equal(t, 9, u.Locations[unit.LocLA].Armor)

	// the opposite side is never covered
	e.ApplyDamage(u, Hit(unit.LocRT, 5))
	assert.Equal(t, 11, u.Locations[unit.LocRT].Armor)
}

func TestShieldIgnoresRearHits(t *testing.T) {
	e, _ := newTestEngine(t, dice.NewScripted())
	u := testMek("shield")
	s := unit.NewMisc("Large Shield", unit.MiscShield, unit.LocRA)
	s.Capacity = 10
	u.AddEquipment(s, 1)

	ev := Hit(unit.LocRT, 4)
	ev.Hit.Rear = true
	e.ApplyDamage(u, ev)
	assert.Equal(t, 10, s.Capacity)
	assert.Equal(t, 2, u.Locations[unit.LocRT].RearArmor)
}

func TestCowlAndModularArmor(t *testing.T) {
	e, _ := newTestEngine(t, dice.NewScripted())
	u := testMek("cowl")
	u.Quirks = []unit.Quirk{unit.QuirkCowl}
	u.CowlArmor = 3
	m := unit.NewMisc("Modular Armor", unit.MiscModularArmor, unit.LocHD)
	m.Capacity = 10
	u.AddEquipment(m, 1)

	reps := e.ApplyDamage(u, Hit(unit.LocHD, 5))
	assert.Zero(t, u.CowlArmor)
	assert.Equal(t, 8, m.Capacity)
	assert.Equal(t, 9, u.Locations[unit.LocHD].Armor)
	assert.Equal(t, 1, report.Count(reps, report.MsgCowlAbsorbs))
	assert.Equal(t, 1, report.Count(reps, report.MsgModularAbsorbs))
}

func TestSearchlightBreaksOnSix(t *testing.T) {
	e, _ := newTestEngine(t, dice.NewScripted(dice.Faces(6)...))
	u := testMek("light")
	i := u.AddEquipment(unit.NewMisc("Searchlight", unit.MiscSearchlight, unit.LocCT), 1)

	e.ApplyDamage(u, Hit(unit.LocLA, 2))
	assert.True(t, u.Equipment[i].Destroyed)
}

func riderSetup() (*unit.Unit, *unit.Unit) {
	carrier := testMek("carrier")
	ba := unit.NewBattleArmor("Elementals", 4, 5)
	ba.ID = "ba"
	carrier.Riders = append(carrier.Riders, unit.Passenger{Unit: ba, Location: unit.LocCT, Swarming: true})
	ba.CarriedBy = carrier
	return carrier, ba
}

func TestRiderInterceptsAll(t *testing.T) {
	// d6 = 5, then trooper 1
	e, _ := newTestEngine(t, dice.NewScripted(4, 0))
	carrier, ba := riderSetup()

	reps := e.ApplyDamage(carrier, Hit(unit.LocCT, 10))

	assert.Equal(t, 20, carrier.Locations[unit.LocCT].Armor)
	assert.True(t, ba.Locations[1].IsDestroyed())
	assert.Equal(t, 1, report.Count(reps, report.MsgRiderIntercepts))

	// the rider's share resolves after the carrier's header
	ri := -1
	for i, r := range reps {
		if r.MessageID == report.MsgTrooperKilled {
			ri = i
			break
		}
	}
	assert.Greater(t, ri, 0)
}

func TestRiderInterceptsHalf(t *testing.T) {
	// d6 = 3, then trooper 2
	e, _ := newTestEngine(t, dice.NewScripted(2, 1))
	carrier, ba := riderSetup()

	e.ApplyDamage(carrier, Hit(unit.LocCT, 7))

	assert.Equal(t, 17, carrier.Locations[unit.LocCT].Armor)
	assert.Equal(t, 1, ba.Locations[2].Armor)
}

func TestRiderMisses(t *testing.T) {
	e, _ := newTestEngine(t, dice.NewScripted(0))
	carrier, ba := riderSetup()

	e.ApplyDamage(carrier, Hit(unit.LocCT, 7))

	assert.Equal(t, 13, carrier.Locations[unit.LocCT].Armor)
	assert.Len(t, ba.LiveTroopers(), 4)
}

func TestRidersDieWithTheirLocation(t *testing.T) {
	// rider misses (d6 = 1)
	e, _ := newTestEngine(t, dice.NewScripted(0))
	carrier, ba := riderSetup()
	carrier.Riders[0].Location = unit.LocLA

	e.ApplyDamage(carrier, Hit(unit.LocLA, 25))
	assert.True(t, carrier.Locations[unit.LocLA].IsDestroyed())
	assert.False(t, ba.Alive())
}

func TestCategoryAdjustments(t *testing.T) {
	mek := testMek("mek")
	hardened := testMek("hardened")
	hardened.Locations[unit.LocCT].ArmorType = unit.ArmorHardened
	commercial := testMek("commercial")
	commercial.Locations[unit.LocCT].BAR = 4
	inf := unit.NewInfantry("Rifles", 28)
	inf.ID = "inf"
	openInf := unit.NewInfantry("Rifles", 28)
	openInf.Infantry.InOpen = true
	ba := unit.NewBattleArmor("Elementals", 4, 10)

	tests := []struct {
		name string
		u    *unit.Unit
		loc  int
		ev   DamageEvent
		want int
	}{
		{"fragmentation vs mek", mek, unit.LocCT, DamageEvent{Amount: 8, Category: Fragmentation}, 0},
		{"fragmentation vs infantry", inf, 0, DamageEvent{Amount: 8, Category: Fragmentation}, 8},
		{"flechette vs mek", mek, unit.LocCT, DamageEvent{Amount: 9, Category: Flechette}, 4},
		{"flechette vs infantry", inf, 0, DamageEvent{Amount: 9, Category: Flechette}, 9},
		{"acid vs infantry", inf, 0, DamageEvent{Amount: 5, Category: Acid}, 8},
		{"acid vs hardened", hardened, unit.LocCT, DamageEvent{Amount: 10, Category: Acid}, 3},
		{"acid vs standard", mek, unit.LocCT, DamageEvent{Amount: 10, Category: Acid}, 10},
		{"incendiary vs infantry", inf, 0, DamageEvent{Amount: 4, Category: Incendiary}, 6},
		{"nail vs mek", mek, unit.LocCT, DamageEvent{Amount: 4, Category: NailRivet}, 0},
		{"nail vs low BAR", commercial, unit.LocCT, DamageEvent{Amount: 4, Category: NailRivet}, 4},
		{"infantry in the open", openInf, 0, DamageEvent{Amount: 4}, 8},
		{"area saturation vs battle armor", ba, 1, DamageEvent{Amount: 4, AreaSaturation: true}, 8},
		{"battle armor in the open", ba, 1, DamageEvent{Amount: 4}, 4},
	}
	e, _ := newTestEngine(t, dice.NewScripted())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.ev.Hit.Location = tt.loc
			got, _ := e.adjustForCategory(tt.u, tt.ev, tt.ev.Amount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAntiTSMFlagsTarget(t *testing.T) {
	e, _ := newTestEngine(t, dice.NewScripted())
	u := testMek("tsm")
	ev := Hit(unit.LocCT, 3)
	ev.Category = AntiTSM
	e.ApplyDamage(u, ev)
	assert.Equal(t, 1, u.Mek.AntiTSMHits)
	assert.Equal(t, 17, u.Locations[unit.LocCT].Armor)
}

func TestArmorTransforms(t *testing.T) {
	tests := []struct {
		name     string
		armor    unit.ArmorType
		class    unit.WeaponClass
		area     bool
		d        int
		pool     int
		left     int
		residual int
	}{
		{"lamellor", unit.ArmorFerroLamellor, unit.ClassEnergy, false, 10, 20, 12, 0},
		{"lamellor exhausted", unit.ArmorFerroLamellor, unit.ClassEnergy, false, 10, 5, unit.Destroyed, 3},
		{"reflective vs energy", unit.ArmorReflective, unit.ClassEnergy, false, 9, 10, 6, 0},
		{"reflective vs energy exhausted", unit.ArmorReflective, unit.ClassEnergy, false, 9, 2, unit.Destroyed, 4},
		{"reflective vs physical", unit.ArmorReflective, unit.ClassPhysical, false, 5, 12, 2, 0},
		{"reflective vs area exhausted", unit.ArmorReflective, unit.ClassNone, true, 5, 7, unit.Destroyed, 2},
		{"reactive vs missile", unit.ArmorReactive, unit.ClassMissile, false, 1, 10, 9, 0},
		{"reactive vs energy", unit.ArmorReactive, unit.ClassEnergy, false, 6, 10, 4, 0},
		{"ballistic vs ballistic", unit.ArmorBallisticReinforced, unit.ClassBallistic, false, 7, 10, 6, 0},
		{"ballistic exhausted", unit.ArmorBallisticReinforced, unit.ClassBallistic, false, 7, 2, unit.Destroyed, 4},
		{"impact vs physical", unit.ArmorImpactResistant, unit.ClassPhysical, false, 9, 10, 4, 0},
		{"standard exact", unit.ArmorStandard, unit.ClassEnergy, false, 5, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := unit.NewLocation("x", tt.pool, -1, 10)
			l.ArmorType = tt.armor
			res := applyArmor(&l, false, tt.d, tt.class, tt.area)
			assert.Equal(t, tt.left, l.Armor)
			assert.Equal(t, tt.residual, res.Residual)
		})
	}
}

func TestCompositeAndReinforcedStructure(t *testing.T) {
	l := unit.NewLocation("x", 0, -1, 10)
	res := applyStructure(&l, unit.StructComposite, 3)
	assert.Equal(t, 4, l.Internal)
	res = applyStructure(&l, unit.StructComposite, 3)
	assert.True(t, res.Exhausted)
	assert.Equal(t, 1, res.Residual)

	r := unit.NewLocation("y", 0, -1, 4)
	applyStructure(&r, unit.StructReinforced, 3)
	assert.Equal(t, 2, r.Internal)
	assert.True(t, r.StructureCarry)
	// half a point of structure keeps the location standing
	applyStructure(&r, unit.StructReinforced, 4)
	assert.Equal(t, 0, r.Internal)
	assert.True(t, r.StructureCarry)
	assert.False(t, r.IsDestroyed())
	res = applyStructure(&r, unit.StructReinforced, 1)
	assert.True(t, res.Exhausted)
	assert.Equal(t, unit.Destroyed, r.Internal)
	assert.True(t, r.IsDestroyed())
}

func TestMountRider(t *testing.T) {
	e, _ := newTestEngine(t, dice.NewScripted())
	carrier := testMek("carrier")
	ba := unit.NewBattleArmor("Elementals", 4, 5)
	ba.ID = "ba"

	reps := e.Mount(carrier, ba, unit.LocCT, false)
	assert.Equal(t, 1, report.Count(reps, report.MsgRiderMounted))
	assert.Same(t, carrier, ba.CarriedBy)
	assert.Equal(t, []int{0}, carrier.RidersAt(unit.LocCT))

	Dismount(ba)
	assert.Nil(t, ba.CarriedBy)
	assert.Empty(t, carrier.Riders)
}

func TestIllegalMountChangesNothing(t *testing.T) {
	e, _ := newTestEngine(t, dice.NewScripted())
	carrier, ba := riderSetup()
	other := unit.NewBattleArmor("Gnomes", 5, 6)
	other.ID = "gnomes"
	mek := testMek("mek")

	tests := []struct {
		name  string
		rider *unit.Unit
		loc   int
	}{
		{"location full", other, unit.LocCT},
		{"already mounted", ba, unit.LocLT},
		{"not infantry", mek, unit.LocLT},
		{"no such location", other, 12},
	}
	for _, tt := range tests {
		reps := e.Mount(carrier, tt.rider, tt.loc, true)
		if assert.Len(t, reps, 1, tt.name) {
			assert.Equal(t, report.MsgIllegalAction, reps[0].MessageID, tt.name)
			assert.Equal(t, tt.name, reps[0].Fields[1].Str)
			assert.Equal(t, report.PlayerOnly, reps[0].Visibility)
		}
		assert.Len(t, carrier.Riders, 1, tt.name)
	}
	assert.Nil(t, other.CarriedBy)
	assert.Nil(t, mek.CarriedBy)
}
