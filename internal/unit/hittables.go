package unit

import "github.com/JustinWhittecar/battlecore/internal/dice"

// ─── Hit location tables (2d6, index 0-10 for rolls 2-12) ──────────────────

var mekFrontHitTable = [11]int{
	LocCT, LocRA, LocRA, LocRL, LocRT, LocCT, LocLT, LocLL, LocLA, LocLA, LocHD,
}

var mekRearHitTable = [11]int{
	LocCT, LocRA, LocRA, LocRL, LocRT, LocCT, LocLT, LocLL, LocLA, LocLA, LocHD,
}

var vehicleFrontHitTable = [11]int{
	VehFront, VehFront, VehFront, VehRight, VehFront, VehFront, VehFront, VehLeft, VehTurret, VehTurret, VehTurret,
}

var vehicleRearHitTable = [11]int{
	VehRear, VehRear, VehRear, VehLeft, VehRear, VehRear, VehRear, VehRight, VehTurret, VehTurret, VehTurret,
}

var aeroNoseHitTable = [11]int{
	AeroNose, AeroRightWing, AeroRightWing, AeroRightWing, AeroNose, AeroNose, AeroNose, AeroLeftWing, AeroLeftWing, AeroLeftWing, AeroNose,
}

var aeroAftHitTable = [11]int{
	AeroAft, AeroLeftWing, AeroLeftWing, AeroLeftWing, AeroAft, AeroAft, AeroAft, AeroRightWing, AeroRightWing, AeroRightWing, AeroAft,
}

var protoHitTable = [11]int{
	ProtoMainGun, ProtoLA, ProtoLegs, ProtoRA, ProtoTorso, ProtoTorso, ProtoTorso, ProtoLA, ProtoLegs, ProtoRA, ProtoHead,
}

// RollHitLocation rolls where an attack lands. critical is set on the
// through-armor rolls that earn a free critical check (a natural 2 on Meks,
// vehicles and fighters).
func (u *Unit) RollHitLocation(rear bool, r *dice.Roller) (loc int, critical bool) {
	switch u.Kind {
	case KindMek:
		roll := r.Roll2d6()
		if rear {
			return mekRearHitTable[roll-2], roll == 2
		}
		return mekFrontHitTable[roll-2], roll == 2
	case KindVehicle:
		roll := r.Roll2d6()
		loc = vehicleFrontHitTable[roll-2]
		if rear {
			loc = vehicleRearHitTable[roll-2]
		}
		if loc == VehTurret && len(u.Locations) <= VehTurret {
			loc = VehFront
			if rear {
				loc = VehRear
			}
		}
		return loc, roll == 2 || roll == 12
	case KindAerospace:
		roll := r.Roll2d6()
		if rear {
			return aeroAftHitTable[roll-2], roll == 2
		}
		return aeroNoseHitTable[roll-2], roll == 2
	case KindProtoMech:
		loc = protoHitTable[r.Roll2d6()-2]
		if loc == ProtoMainGun && !u.HasMainGun() {
			loc = ProtoTorso
		}
		return loc, false
	case KindBattleArmor:
		live := u.LiveTroopers()
		if len(live) == 0 {
			return BASquad, false
		}
		return live[r.IntN(len(live))], false
	default:
		return 0, false
	}
}
