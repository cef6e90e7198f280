package potential

import "math"

// Plummer is the softened point-mass model Phi = -amp/sqrt(r^2 + b^2).
type Plummer struct {
	Amp float64
	B   float64
}

func NewPlummer() *Plummer {
	return &Plummer{Amp: 1.0, B: 0.8}
}

func (p *Plummer) Dim() int {
	return 3
}

func (p *Plummer) Native() bool {
	return true
}

func (p *Plummer) Rforce(R, z float64) float64 {
	s2 := R*R + z*z + p.B*p.B
	return -p.Amp * R / (s2 * math.Sqrt(s2))
}

func (p *Plummer) Doc() string {
	return `PlummerPotential: spherical Plummer model,
rho ~ (1 + (r/b)^2)^(-5/2).
Arguments: amp (total mass), b (scale length).`
}
