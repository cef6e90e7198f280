package potential

import "math"

// PseudoIsothermal is the cored isothermal sphere rho ~ 1/(1 + (r/a)^2).
type PseudoIsothermal struct {
	Amp float64
	A   float64
}

func NewPseudoIsothermal() *PseudoIsothermal {
	return &PseudoIsothermal{Amp: 1.0, A: 1.0}
}

func (p *PseudoIsothermal) Dim() int {
	return 3
}

func (p *PseudoIsothermal) Native() bool {
	return true
}

func (p *PseudoIsothermal) Rforce(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		return 0
	}
	x := r / p.A
	m := p.Amp * (x - math.Atan(x))
	return -m * R / (r * r * r)
}

func (p *PseudoIsothermal) Doc() string {
	return `PseudoIsothermalPotential: cored isothermal sphere,
rho ~ 1/(1 + (r/a)^2).
Arguments: amp, a (core radius).`
}
