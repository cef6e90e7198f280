package potential

import (
	"fmt"
	"sort"
)

// builders maps every exported library name to a constructor taking
// parameter overrides; absent keys keep the model defaults. Combined sets
// and multi-component models return more than one instance.
var builders = map[string]func(params map[string]float64) ([]Potential, error){
	"BurkertPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewBurkert()
		p.Amp = param(ps, "amp", p.Amp)
		p.A = param(ps, "a", p.A)
		return []Potential{p}, nil
	},
	"DoubleExponentialDiskPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewDoubleExponentialDisk()
		p.Amp = param(ps, "amp", p.Amp)
		p.Hr = param(ps, "hr", p.Hr)
		p.Hz = param(ps, "hz", p.Hz)
		if p.Hr <= 0 || p.Hz <= 0 {
			return nil, fmt.Errorf("%w: hr = %g, hz = %g", ErrParameterBounds, p.Hr, p.Hz)
		}
		return []Potential{p}, nil
	},
	"EllipticalDiskPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewEllipticalDisk()
		p.Amp = param(ps, "amp", p.Amp)
		p.Eps = param(ps, "eps", p.Eps)
		p.P = param(ps, "p", p.P)
		return []Potential{p}, nil
	},
	"HernquistPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewHernquist()
		p.Amp = param(ps, "amp", p.Amp)
		p.A = param(ps, "a", p.A)
		return []Potential{p}, nil
	},
	"IsochronePotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewIsochrone()
		p.Amp = param(ps, "amp", p.Amp)
		p.B = param(ps, "b", p.B)
		return []Potential{p}, nil
	},
	"JaffePotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewJaffe()
		p.Amp = param(ps, "amp", p.Amp)
		p.A = param(ps, "a", p.A)
		return []Potential{p}, nil
	},
	"KeplerPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewKepler()
		p.Amp = param(ps, "amp", p.Amp)
		return []Potential{p}, nil
	},
	"KuzminDiskPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewKuzminDisk()
		p.Amp = param(ps, "amp", p.Amp)
		p.A = param(ps, "a", p.A)
		return []Potential{p}, nil
	},
	"LogarithmicHaloPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewLogarithmicHalo()
		p.Amp = param(ps, "amp", p.Amp)
		p.Core = param(ps, "core", p.Core)
		p.Q = param(ps, "q", p.Q)
		if p.Q <= 0 {
			return nil, fmt.Errorf("%w: q = %g", ErrParameterBounds, p.Q)
		}
		return []Potential{p}, nil
	},
	"MN3ExponentialDiskPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewMN3ExponentialDisk()
		amp := param(ps, "amp", 1.0)
		hz := param(ps, "hz", p.Disks[0].B)
		for i := range p.Disks {
			p.Disks[i].Amp *= amp
			p.Disks[i].B = hz
		}
		return []Potential{p}, nil
	},
	"MWPotential2014": func(map[string]float64) ([]Potential, error) {
		return MWPotential2014(), nil
	},
	"MiyamotoNagaiPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewMiyamotoNagai()
		p.Amp = param(ps, "amp", p.Amp)
		p.A = param(ps, "a", p.A)
		p.B = param(ps, "b", p.B)
		return []Potential{p}, nil
	},
	"NFWPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewNFW()
		p.Amp = param(ps, "amp", p.Amp)
		p.A = param(ps, "a", p.A)
		return []Potential{p}, nil
	},
	"PlummerPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewPlummer()
		p.Amp = param(ps, "amp", p.Amp)
		p.B = param(ps, "b", p.B)
		return []Potential{p}, nil
	},
	"PowerSphericalPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewPowerSpherical()
		p.Amp = param(ps, "amp", p.Amp)
		p.Alpha = param(ps, "alpha", p.Alpha)
		if p.Alpha >= 3 {
			return nil, fmt.Errorf("%w: alpha = %g (mass diverges)", ErrParameterBounds, p.Alpha)
		}
		return []Potential{p}, nil
	},
	"PowerSphericalPotentialwCutoffPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewPowerSphericalCutoff()
		p.Amp = param(ps, "amp", p.Amp)
		p.Alpha = param(ps, "alpha", p.Alpha)
		p.Rc = param(ps, "rc", p.Rc)
		if p.Rc <= 0 {
			return nil, fmt.Errorf("%w: rc = %g", ErrParameterBounds, p.Rc)
		}
		return []Potential{p}, nil
	},
	"PseudoIsothermalPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewPseudoIsothermal()
		p.Amp = param(ps, "amp", p.Amp)
		p.A = param(ps, "a", p.A)
		return []Potential{p}, nil
	},
	"RazorThinExponentialDiskPotential": func(ps map[string]float64) ([]Potential, error) {
		p := NewRazorThinExponentialDisk()
		p.Amp = param(ps, "amp", p.Amp)
		p.Hr = param(ps, "hr", p.Hr)
		return []Potential{p}, nil
	},
	"SnapshotRZPotential": func(map[string]float64) ([]Potential, error) {
		return nil, ErrNeedsSnapshot
	},
}

// Names returns every exported model name in sorted order, including the
// ones discovery will reject.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named model with parameter overrides; nil params keep
// the library defaults.
func New(name string, params map[string]float64) ([]Potential, error) {
	fn, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPotential, name)
	}
	return fn(params)
}

func param(ps map[string]float64, key string, def float64) float64 {
	if v, ok := ps[key]; ok {
		return v
	}
	return def
}
