package potential

import "math"

// Isochrone is the Henon isochrone sphere Phi = -amp/(b + sqrt(b^2 + r^2)).
type Isochrone struct {
	Amp float64
	B   float64
}

func NewIsochrone() *Isochrone {
	return &Isochrone{Amp: 1.0, B: 1.0}
}

func (p *Isochrone) Dim() int {
	return 3
}

func (p *Isochrone) Native() bool {
	return true
}

func (p *Isochrone) Rforce(R, z float64) float64 {
	r2 := R*R + z*z
	s := math.Sqrt(p.B*p.B + r2)
	d := p.B + s
	return -p.Amp * R / (s * d * d)
}

func (p *Isochrone) Doc() string {
	return `IsochronePotential: Henon isochrone sphere; all bound orbits are
analytic. Kepler for b = 0, harmonic for b -> inf.
Arguments: amp (total mass), b (scale length).`
}
