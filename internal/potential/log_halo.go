package potential

// LogarithmicHalo is the flattened logarithmic halo
// Phi = (amp/2) ln(R^2 + (z/q)^2 + core^2), giving a flat rotation curve.
type LogarithmicHalo struct {
	Amp  float64
	Core float64
	Q    float64
}

func NewLogarithmicHalo() *LogarithmicHalo {
	return &LogarithmicHalo{Amp: 1.0, Core: 0.0, Q: 1.0}
}

func (p *LogarithmicHalo) Dim() int {
	return 3
}

func (p *LogarithmicHalo) Native() bool {
	return true
}

func (p *LogarithmicHalo) Rforce(R, z float64) float64 {
	zq := z / p.Q
	return -p.Amp * R / (R*R + zq*zq + p.Core*p.Core)
}

func (p *LogarithmicHalo) Doc() string {
	return `LogarithmicHaloPotential: flattened logarithmic halo with an
asymptotically flat rotation curve vc = sqrt(amp).
Arguments: amp (vc^2), core (core radius), q (flattening).`
}
