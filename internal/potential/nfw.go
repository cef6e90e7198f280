package potential

import "math"

// NFW is the Navarro–Frenk–White halo model.
type NFW struct {
	Amp float64
	A   float64
}

func NewNFW() *NFW {
	return &NFW{Amp: 1.0, A: 1.0}
}

func (p *NFW) Dim() int {
	return 3
}

func (p *NFW) Native() bool {
	return true
}

func (p *NFW) Rforce(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		return 0
	}
	x := r / p.A
	m := p.Amp * (math.Log(1+x) - x/(1+x))
	return -m * R / (r * r * r)
}

func (p *NFW) Doc() string {
	return `NFWPotential: Navarro, Frenk & White (1997) dark-matter halo,
rho ~ 1/(r/a (1 + r/a)^2).
Arguments: amp, a (scale radius).`
}
