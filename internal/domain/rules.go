package domain

// Company delivery rules used by the KPI simulation.
const (
	// Fatigued drivers take 30% longer on any route.
	FatiguedSpeedModifier = 1.30

	// Minutes a delivery may exceed its route's base time before it counts as late.
	LateGraceMinutes = 10.0

	LatePenalty = 50.0

	HighValueThreshold = 1000.0
	HighValueBonusRate = 0.10

	FuelCostPerKm             = 5.0
	HighTrafficSurchargePerKm = 2.0
)
