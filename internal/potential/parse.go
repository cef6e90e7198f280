package potential

import "fmt"

// Type codes understood by the downstream simulator.
const (
	TypeLogarithmicHalo       = 0
	TypeMiyamotoNagai         = 5
	TypePowerSpherical        = 7
	TypeHernquist             = 8
	TypeNFW                   = 9
	TypeJaffe                 = 10
	TypeDoubleExponentialDisk = 11
	TypeIsochrone             = 14
	TypePowerSphericalCutoff  = 15
	TypePlummer               = 17
	TypePseudoIsothermal      = 18
	TypeKuzminDisk            = 19
	TypeBurkert               = 20
)

// Parse splits one model instance into its simulator type codes and the
// flattened argument values. Most models map to a single code; MN3 yields
// three codes sharing one argument list. The type and argument lists
// round-trip: feeding them back to the simulator reconstructs an
// equivalent potential.
func Parse(p Potential) ([]int, []float64, error) {
	switch v := p.(type) {
	case *Burkert:
		return []int{TypeBurkert}, []float64{v.Amp, v.A}, nil
	case *DoubleExponentialDisk:
		args := []float64{v.Amp, v.Hr, v.Hz}
		args = append(args, glNodes[:]...)
		args = append(args, glWeights[:]...)
		return []int{TypeDoubleExponentialDisk}, args, nil
	case *Hernquist:
		return []int{TypeHernquist}, []float64{v.Amp, v.A}, nil
	case *Isochrone:
		return []int{TypeIsochrone}, []float64{v.Amp, v.B}, nil
	case *Jaffe:
		return []int{TypeJaffe}, []float64{v.Amp, v.A}, nil
	case *Kepler:
		// A point mass is a power-law sphere with alpha pinned to 3.
		return []int{TypePowerSpherical}, []float64{v.Amp, 3}, nil
	case *KuzminDisk:
		return []int{TypeKuzminDisk}, []float64{v.Amp, v.A}, nil
	case *LogarithmicHalo:
		return []int{TypeLogarithmicHalo}, []float64{v.Amp, v.Core, v.Q}, nil
	case *MN3ExponentialDisk:
		types := []int{TypeMiyamotoNagai, TypeMiyamotoNagai, TypeMiyamotoNagai}
		args := make([]float64, 0, 9)
		for i := range v.Disks {
			args = append(args, v.Disks[i].Amp, v.Disks[i].A, v.Disks[i].B)
		}
		return types, args, nil
	case *MiyamotoNagai:
		return []int{TypeMiyamotoNagai}, []float64{v.Amp, v.A, v.B}, nil
	case *NFW:
		return []int{TypeNFW}, []float64{v.Amp, v.A}, nil
	case *Plummer:
		return []int{TypePlummer}, []float64{v.Amp, v.B}, nil
	case *PowerSpherical:
		return []int{TypePowerSpherical}, []float64{v.Amp, v.Alpha}, nil
	case *PowerSphericalCutoff:
		return []int{TypePowerSphericalCutoff}, []float64{v.Amp, v.Alpha, v.Rc}, nil
	case *PseudoIsothermal:
		return []int{TypePseudoIsothermal}, []float64{v.Amp, v.A}, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrNotSupported, NameOf(p))
}

// ParseAll flattens a stack of instances into one type list and one
// argument list, in component order.
func ParseAll(comps []Potential) ([]int, []float64, error) {
	var types []int
	var args []float64
	for _, p := range comps {
		t, a, err := Parse(p)
		if err != nil {
			return nil, nil, err
		}
		types = append(types, t...)
		args = append(args, a...)
	}
	return types, args, nil
}
