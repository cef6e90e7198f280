package potential

// MN3ExponentialDisk approximates a radially exponential disk by the sum
// of three Miyamoto–Nagai disks (Smith et al. 2015). The third component
// carries negative mass; that is part of the fit, not an error.
type MN3ExponentialDisk struct {
	Disks [3]MiyamotoNagai
}

func NewMN3ExponentialDisk() *MN3ExponentialDisk {
	return &MN3ExponentialDisk{
		Disks: [3]MiyamotoNagai{
			{Amp: 0.4362, A: 0.6251, B: 0.0625},
			{Amp: 0.6419, A: 0.2617, B: 0.0625},
			{Amp: -0.0781, A: 0.8750, B: 0.0625},
		},
	}
}

func (p *MN3ExponentialDisk) Dim() int {
	return 3
}

func (p *MN3ExponentialDisk) Native() bool {
	return true
}

func (p *MN3ExponentialDisk) Rforce(R, z float64) float64 {
	f := 0.0
	for i := range p.Disks {
		f += p.Disks[i].Rforce(R, z)
	}
	return f
}

func (p *MN3ExponentialDisk) Doc() string {
	return `MN3ExponentialDiskPotential: three Miyamoto–Nagai disks fitted to
a radially exponential disk (Smith et al. 2015). Splits into three
type-5 components sharing one argument list.
Arguments: amp, a, b for each of the three disks (9 values).`
}
