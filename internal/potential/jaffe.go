package potential

import "math"

// Jaffe is the steep spheroid Phi = -(amp/a) ln(1 + a/r).
type Jaffe struct {
	Amp float64
	A   float64
}

func NewJaffe() *Jaffe {
	return &Jaffe{Amp: 1.0, A: 1.0}
}

func (p *Jaffe) Dim() int {
	return 3
}

func (p *Jaffe) Native() bool {
	return true
}

func (p *Jaffe) Rforce(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		return 0
	}
	return -p.Amp * R / (r * r * (r + p.A))
}

func (p *Jaffe) Doc() string {
	return `JaffePotential: Jaffe (1983) spheroid,
rho ~ 1/((r/a)^2 (1 + r/a)^2).
Arguments: amp, a (scale length).`
}
