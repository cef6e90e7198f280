package potential

import "math"

// MiyamotoNagai is the flattened disk model
// Phi = -amp/sqrt(R^2 + (a + sqrt(z^2 + b^2))^2).
type MiyamotoNagai struct {
	Amp float64
	A   float64
	B   float64
}

func NewMiyamotoNagai() *MiyamotoNagai {
	return &MiyamotoNagai{Amp: 1.0, A: 1.0, B: 0.1}
}

func (p *MiyamotoNagai) Dim() int {
	return 3
}

func (p *MiyamotoNagai) Native() bool {
	return true
}

func (p *MiyamotoNagai) Rforce(R, z float64) float64 {
	h := p.A + math.Sqrt(z*z+p.B*p.B)
	s2 := R*R + h*h
	return -p.Amp * R / (s2 * math.Sqrt(s2))
}

func (p *MiyamotoNagai) Doc() string {
	return `MiyamotoNagaiPotential: Miyamoto & Nagai (1975) disk model.
Reduces to Plummer for a = 0 and to Kuzmin for b = 0.
Arguments: amp (total mass), a (disk scale length), b (scale height).`
}
