package potential

import "math"

// KuzminDisk is the razor-thin Kuzmin disk
// Phi = -amp/sqrt(R^2 + (a + |z|)^2).
type KuzminDisk struct {
	Amp float64
	A   float64
}

func NewKuzminDisk() *KuzminDisk {
	return &KuzminDisk{Amp: 1.0, A: 1.0}
}

func (p *KuzminDisk) Dim() int {
	return 3
}

func (p *KuzminDisk) Native() bool {
	return true
}

func (p *KuzminDisk) Rforce(R, z float64) float64 {
	h := p.A + math.Abs(z)
	s2 := R*R + h*h
	return -p.Amp * R / (s2 * math.Sqrt(s2))
}

func (p *KuzminDisk) Doc() string {
	return `KuzminDiskPotential: infinitely thin Kuzmin (1956) disk.
Arguments: amp (total mass), a (scale length).`
}
