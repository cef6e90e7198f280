package potential

import "math"

// DoubleExponentialDisk is a disk with density exponential in both R and
// z. Its canonical argument list carries the Gauss–Legendre quadrature
// table used by the simulator's force evaluation, so the encoding is long.
type DoubleExponentialDisk struct {
	Amp float64
	Hr  float64
	Hz  float64
}

// 5-point Gauss–Legendre nodes and weights on [-1, 1].
var (
	glNodes = [5]float64{
		-0.906179845938664, -0.538469310105683, 0,
		0.538469310105683, 0.906179845938664,
	}
	glWeights = [5]float64{
		0.23692688505618908, 0.47862867049936647, 0.5688888888888889,
		0.47862867049936647, 0.23692688505618908,
	}
)

func NewDoubleExponentialDisk() *DoubleExponentialDisk {
	return &DoubleExponentialDisk{Amp: 1.0, Hr: 1.0 / 3.0, Hz: 1.0 / 16.0}
}

func (p *DoubleExponentialDisk) Dim() int {
	return 3
}

func (p *DoubleExponentialDisk) Native() bool {
	return true
}

func (p *DoubleExponentialDisk) Rforce(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		return 0
	}
	// spherically averaged exponential mass profile; the simulator owns
	// the exact Bessel-integral force
	x := r / p.Hr
	m := p.Amp * (1 - (1+x)*math.Exp(-x))
	return -m * R / (r * r * r)
}

func (p *DoubleExponentialDisk) Doc() string {
	return `DoubleExponentialDiskPotential: disk with rho ~ exp(-R/hr - |z|/hz).
The argument list includes the quadrature table for the force integrals,
so it is long; prefer a configure file over --type-arg.
Arguments: amp, hr (radial scale), hz (vertical scale), 5 quadrature
nodes, 5 quadrature weights.`
}
