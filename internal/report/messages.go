package report

// Message ids. Display text lives with the client; the numbers only have to
// stay stable across releases.
const (
	// damage pipeline
	MsgDamageHeader       = 1000 // subject takes N damage to location
	MsgArmorAbsorbs       = 1001 // armor absorbs, N remaining
	MsgArmorDestroyed     = 1002
	MsgStructureDamaged   = 1003 // internal structure takes N, M remaining
	MsgLocationDestroyed  = 1004
	MsgDamageTransfers    = 1005 // N damage transfers to location
	MsgDamageWasted       = 1006
	MsgNoEffect           = 1007 // damage category has no effect
	MsgDamageAdjusted     = 1008 // category or armor transform changed amount
	MsgCapitalScale       = 1009
	MsgCASEContains       = 1010
	MsgCASEIIContains     = 1011
	MsgSquadronMemberHit  = 1012
	MsgBARCritical        = 1013
	MsgHardenedCarry      = 1014
	MsgNonPenetrating     = 1015
	MsgSIDamaged          = 1016 // aerospace structural integrity
	MsgTrooperKilled      = 1017
	MsgInfantryCasualties = 1018
	MsgIllegalAction      = 1019
	MsgAntiTSM            = 1020
	MsgStructureCarry     = 1021
	MsgDirectInternal     = 1022
	MsgRiderIntercepts    = 1023
	MsgRiderKilled        = 1024
	MsgInfernoChain       = 1025
	MsgLimbDebris         = 1026
	MsgAreaSaturation     = 1027
	MsgRiderMounted       = 1028

	// absorbers
	MsgShieldAbsorbs        = 1100
	MsgShieldDestroyed      = 1101
	MsgCowlAbsorbs          = 1102
	MsgModularAbsorbs       = 1103
	MsgModularDestroyed     = 1104
	MsgSearchlightDestroyed = 1105
	MsgSpikesDestroyed      = 1106

	// end of location
	MsgBreachRoll  = 1200
	MsgBreached    = 1201
	MsgHeadHitCrew = 1202

	// criticals
	MsgCritRoll         = 1300 // roll, modifier, slots
	MsgNoCritical       = 1301
	MsgCritSlot         = 1302 // slot name hit
	MsgCritAbsorbed     = 1303 // no hittable slot left
	MsgArmoredSlot      = 1304
	MsgLimbBlownOff     = 1305
	MsgHeadBlownOff     = 1306
	MsgEngineHit        = 1307
	MsgEngineDestroyed  = 1308
	MsgGyroHit          = 1309
	MsgGyroDestroyed    = 1310
	MsgCockpitHit       = 1311
	MsgCrewReassigned   = 1312
	MsgActuatorHit      = 1313
	MsgSensorHit        = 1314
	MsgLifeSupportHit   = 1315
	MsgAvionicsHit      = 1316
	MsgEquipmentHit     = 1317
	MsgECMLinkLost      = 1318
	MsgHeatSinkHit      = 1319
	MsgWeaponDestroyed  = 1320
	MsgWeaponJammed     = 1321
	MsgLandingGearHit   = 1322
	MsgExplosionSkipped = 1323 // scenario load, no secondary effects

	// vehicle criticals
	MsgVehicleCrewStunned  = 1400
	MsgVehicleCrewKilled   = 1401
	MsgVehicleDriverHit    = 1402
	MsgVehicleCommanderHit = 1403
	MsgVehicleStabilizer   = 1404
	MsgVehicleSensors      = 1405
	MsgVehicleCargoHit     = 1406
	MsgVehicleFuelTank     = 1407
	MsgTurretJam           = 1408
	MsgTurretLocked        = 1409
	MsgTurretBlownOff      = 1410
	MsgRotorDestroyed      = 1411
	MsgRotorDamaged        = 1412

	// aerospace criticals
	MsgAeroFCS           = 1500
	MsgAeroSensors       = 1501
	MsgAeroAvionics      = 1502
	MsgAeroFuelTank      = 1503
	MsgAeroFuelExplodes  = 1504
	MsgAeroCrew          = 1505
	MsgAeroGear          = 1506
	MsgAeroBomb          = 1507
	MsgAeroHeatSink      = 1508
	MsgAeroWeapon        = 1509
	MsgAeroEngine        = 1510
	MsgAeroThrusters     = 1511
	MsgAeroCargo         = 1512
	MsgAeroDockingCollar = 1513
	MsgAeroDrive         = 1514
	MsgAeroBridge        = 1515
	MsgAeroThreshold     = 1516
	MsgEdgeUsed          = 1517
	MsgEscapePods        = 1518

	// protomech
	MsgProtoLocationHit = 1600
	MsgProtoTorsoWeapon = 1601

	// explosions & destruction
	MsgAmmoExplosion       = 1700
	MsgEquipmentExplosion  = 1701
	MsgEngineExplosionRoll = 1702
	MsgEngineExplodes      = 1703
	MsgFusionBlast         = 1704
	MsgUnitDestroyed       = 1705
	MsgEjected             = 1706

	// crew
	MsgCrewHit         = 1800
	MsgConsciousness   = 1801
	MsgCrewUnconscious = 1802
	MsgCrewKilled      = 1803

	// heat & rolls
	MsgHeatLevel       = 1900
	MsgShutdown        = 1901
	MsgStartup         = 1902
	MsgHeatAmmoAvoid   = 1903
	MsgHeatPilotDamage = 1904
	MsgPSRQueued       = 1905
	MsgPSRRoll         = 1906
	MsgFall            = 1907
	MsgCrash           = 1908
	MsgAreaExplosion   = 1909
	MsgBuildingDamaged = 1910
	MsgFallPilotCheck  = 1911
	MsgPhaseEnd        = 1912

	// attacks
	MsgWeaponAttack = 2000 // attacker fires weapon, target number, roll, outcome
	MsgClusterHits  = 2001 // N of M missiles hit
	MsgOutOfAmmo    = 2002
	MsgDuelResult   = 2003
)
