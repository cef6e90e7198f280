package potential

// Potential is one gravitational force model in the library.
type Potential interface {
	// Dim reports the spatial dimensionality of the model.
	Dim() int

	// Native reports whether the model has a fast native force evaluation
	// usable by the simulator.
	Native() bool

	// Rforce returns the cylindrical radial force -dPhi/dR at (R, z).
	Rforce(R, z float64) float64

	// Doc describes the model and its argument order.
	Doc() string
}

// NameOf returns the exported library name of a model instance.
func NameOf(p Potential) string {
	switch p.(type) {
	case *Burkert:
		return "BurkertPotential"
	case *DoubleExponentialDisk:
		return "DoubleExponentialDiskPotential"
	case *EllipticalDisk:
		return "EllipticalDiskPotential"
	case *Hernquist:
		return "HernquistPotential"
	case *Isochrone:
		return "IsochronePotential"
	case *Jaffe:
		return "JaffePotential"
	case *Kepler:
		return "KeplerPotential"
	case *KuzminDisk:
		return "KuzminDiskPotential"
	case *LogarithmicHalo:
		return "LogarithmicHaloPotential"
	case *MN3ExponentialDisk:
		return "MN3ExponentialDiskPotential"
	case *MiyamotoNagai:
		return "MiyamotoNagaiPotential"
	case *NFW:
		return "NFWPotential"
	case *Plummer:
		return "PlummerPotential"
	case *PowerSpherical:
		return "PowerSphericalPotential"
	case *PowerSphericalCutoff:
		return "PowerSphericalPotentialwCutoffPotential"
	case *PseudoIsothermal:
		return "PseudoIsothermalPotential"
	case *RazorThinExponentialDisk:
		return "RazorThinExponentialDiskPotential"
	}
	return "Potential"
}
