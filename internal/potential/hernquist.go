package potential

import "math"

// Hernquist is the cuspy spheroid Phi = -amp/(r + a).
type Hernquist struct {
	Amp float64
	A   float64
}

func NewHernquist() *Hernquist {
	return &Hernquist{Amp: 1.0, A: 1.0}
}

func (p *Hernquist) Dim() int {
	return 3
}

func (p *Hernquist) Native() bool {
	return true
}

func (p *Hernquist) Rforce(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		return 0
	}
	d := r + p.A
	return -p.Amp * R / (r * d * d)
}

func (p *Hernquist) Doc() string {
	return `HernquistPotential: Hernquist (1990) spheroid,
rho ~ 1/(r/a (1 + r/a)^3).
Arguments: amp, a (scale length).`
}
