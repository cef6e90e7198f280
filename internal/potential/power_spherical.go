package potential

import "math"

// PowerSpherical is the scale-free sphere rho ~ r^-alpha with alpha < 3.
type PowerSpherical struct {
	Amp   float64
	Alpha float64
}

func NewPowerSpherical() *PowerSpherical {
	return &PowerSpherical{Amp: 1.0, Alpha: 1.0}
}

func (p *PowerSpherical) Dim() int {
	return 3
}

func (p *PowerSpherical) Native() bool {
	return true
}

func (p *PowerSpherical) Rforce(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		return 0
	}
	// M(<r) = amp r^(3-alpha)/(3-alpha)
	m := p.Amp * math.Pow(r, 3-p.Alpha) / (3 - p.Alpha)
	return -m * R / (r * r * r)
}

func (p *PowerSpherical) Doc() string {
	return `PowerSphericalPotential: power-law density sphere,
rho ~ r^(-alpha) with alpha < 3.
Arguments: amp, alpha (power-law index).`
}
