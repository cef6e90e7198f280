package potential

import "math"

// Kepler is the point-mass potential Phi = -amp/r.
type Kepler struct {
	Amp float64
}

func NewKepler() *Kepler {
	return &Kepler{Amp: 1.0}
}

func (p *Kepler) Dim() int {
	return 3
}

func (p *Kepler) Native() bool {
	return true
}

func (p *Kepler) Rforce(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		return 0
	}
	return -p.Amp * R / (r * r * r)
}

func (p *Kepler) Doc() string {
	return `KeplerPotential: potential of a point mass, Phi = -amp/r.
The simulator builds it as a power-law sphere with alpha = 3.
Arguments: amp (total mass), alpha (fixed to 3).`
}
