package iapws

// IAPWS-IF97 Constants

const (
	// Specific gas constant of water (Section 2)
	R = 0.461526 // kJ/(kg·K)

	// Critical point (Section 2)
	Tc   = 647.096 // K
	Pc   = 22.064  // MPa
	RhoC = 322.0   // kg/m³

	// Range of validity (Section 4)
	TMin  = 273.15  // K
	TMax  = 2273.15 // K
	PMax  = 100.0   // MPa
	P5Max = 50.0    // MPa, upper pressure of region 5

	// Region borders
	T13    = 623.15  // K, regions 1/3 and lower end of B23
	TB23Hi = 863.15  // K, upper end of B23
	T25    = 1073.15 // K, regions 2/5

	// Saturation pressure at T13, the top of the region 4 part bounded by regions 1 and 2
	PSat13 = 16.5291642 // MPa

	// Saturation pressure at TMin (triple point region)
	PSatMin = 611.213e-6 // MPa
)
