package potential

// MWPotential2014 is the standard Milky Way mass model of Bovy (2015):
// a power-law bulge with an exponential cutoff, a Miyamoto–Nagai disk and
// an NFW halo. Exported as a list; each component keeps its own type code
// and arguments.
func MWPotential2014() []Potential {
	return []Potential{
		&PowerSphericalCutoff{Amp: 0.029994597188218, Alpha: 1.8, Rc: 0.2375},
		&MiyamotoNagai{Amp: 0.75748020193716, A: 0.375, B: 0.035},
		&NFW{Amp: 4.852230533528, A: 2.0},
	}
}
