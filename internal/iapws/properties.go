package iapws

// Properties holds the full set of thermodynamic properties of one state.
type Properties struct {
	P   float64 `json:"p" csv:"p"`     // MPa
	T   float64 `json:"T" csv:"T"`     // K
	X   float64 `json:"x" csv:"x"`     // vapor mass fraction
	Rho float64 `json:"rho" csv:"rho"` // kg/m³
	V   float64 `json:"v" csv:"v"`     // m³/kg
	U   float64 `json:"u" csv:"u"`     // kJ/kg
	H   float64 `json:"h" csv:"h"`     // kJ/kg
	S   float64 `json:"s" csv:"s"`     // kJ/(kg·K)
	Cp  float64 `json:"cp" csv:"cp"`   // kJ/(kg·K)
	Cv  float64 `json:"cv" csv:"cv"`   // kJ/(kg·K)
	W   float64 `json:"w" csv:"w"`     // m/s
}
