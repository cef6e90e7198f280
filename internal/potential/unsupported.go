package potential

import "math"

// Models below are exported by the library but rejected by discovery:
// EllipticalDisk is planar, RazorThinExponentialDisk evaluates its forces
// through slow Bessel integrals and has no native path.

// EllipticalDisk is a two-dimensional perturbed disk model.
type EllipticalDisk struct {
	Amp float64
	Eps float64
	P   float64
}

func NewEllipticalDisk() *EllipticalDisk {
	return &EllipticalDisk{Amp: 1.0, Eps: 0.05, P: 1.0}
}

func (p *EllipticalDisk) Dim() int {
	return 2
}

func (p *EllipticalDisk) Native() bool {
	return true
}

func (p *EllipticalDisk) Rforce(R, z float64) float64 {
	return -p.Amp * p.Eps * math.Pow(R, p.P-1)
}

func (p *EllipticalDisk) Doc() string {
	return `EllipticalDiskPotential: planar elliptical disk perturbation.
Two-dimensional; not usable by the 3-D simulator.`
}

// RazorThinExponentialDisk is an infinitely thin exponential disk.
type RazorThinExponentialDisk struct {
	Amp float64
	Hr  float64
}

func NewRazorThinExponentialDisk() *RazorThinExponentialDisk {
	return &RazorThinExponentialDisk{Amp: 1.0, Hr: 1.0 / 3.0}
}

func (p *RazorThinExponentialDisk) Dim() int {
	return 3
}

func (p *RazorThinExponentialDisk) Native() bool {
	return false
}

func (p *RazorThinExponentialDisk) Rforce(R, z float64) float64 {
	// Kuzmin-like stand-in for the exact Bessel-integral force.
	s2 := R*R + p.Hr*p.Hr
	return -p.Amp * R / (s2 * math.Sqrt(s2))
}

func (p *RazorThinExponentialDisk) Doc() string {
	return `RazorThinExponentialDiskPotential: infinitely thin exponential
disk. Force evaluation needs Bessel integrals; no native path.`
}
