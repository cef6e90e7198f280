package potential

import "math"

// PowerSphericalCutoff is a power-law sphere with an exponential cutoff,
// rho ~ r^-alpha exp(-(r/rc)^2). The enclosed mass has no closed form;
// it is integrated numerically.
type PowerSphericalCutoff struct {
	Amp   float64
	Alpha float64
	Rc    float64
}

func NewPowerSphericalCutoff() *PowerSphericalCutoff {
	return &PowerSphericalCutoff{Amp: 1.0, Alpha: 1.0, Rc: 1.0}
}

func (p *PowerSphericalCutoff) Dim() int {
	return 3
}

func (p *PowerSphericalCutoff) Native() bool {
	return true
}

// enclosedMass integrates amp s^(2-alpha) exp(-(s/rc)^2) over [0, r] by
// composite Simpson. The integrand vanishes at s = 0 for alpha < 2.
func (p *PowerSphericalCutoff) enclosedMass(r float64) float64 {
	const n = 512 // even
	h := r / n
	f := func(s float64) float64 {
		if s == 0 {
			return 0
		}
		return math.Pow(s, 2-p.Alpha) * math.Exp(-(s/p.Rc)*(s/p.Rc))
	}
	sum := f(0) + f(r)
	for i := 1; i < n; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4.0
		}
		sum += w * f(float64(i)*h)
	}
	return p.Amp * sum * h / 3
}

func (p *PowerSphericalCutoff) Rforce(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		return 0
	}
	return -p.enclosedMass(r) * R / (r * r * r)
}

func (p *PowerSphericalCutoff) Doc() string {
	return `PowerSphericalPotentialwCutoffPotential: power-law sphere with an
exponential cutoff, rho ~ r^(-alpha) exp(-(r/rc)^2). The MWPotential2014
bulge uses this model.
Arguments: amp, alpha (power-law index), rc (cutoff radius).`
}
