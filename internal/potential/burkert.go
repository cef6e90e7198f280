package potential

import "math"

// Burkert is the cored dark-matter halo of Burkert (1995),
// rho ~ 1/((1 + r/a)(1 + (r/a)^2)).
type Burkert struct {
	Amp float64
	A   float64
}

func NewBurkert() *Burkert {
	return &Burkert{Amp: 1.0, A: 1.0}
}

func (p *Burkert) Dim() int {
	return 3
}

func (p *Burkert) Native() bool {
	return true
}

func (p *Burkert) Rforce(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		return 0
	}
	x := r / p.A
	a3 := p.A * p.A * p.A
	m := math.Pi * p.Amp * a3 * (math.Log(1+x*x) + 2*math.Log(1+x) - 2*math.Atan(x))
	return -m * R / (r * r * r)
}

func (p *Burkert) Doc() string {
	return `BurkertPotential: cored halo of Burkert (1995),
rho ~ 1/((1 + r/a)(1 + (r/a)^2)).
Arguments: amp (central density), a (core radius).`
}
