// Package plot renders rotation curves and force profiles of potential
// stacks as ASCII graphs.
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/galpot/internal/potential"
)

// RotationCurve samples the circular velocity vc(R) = sqrt(-R F_R) of a
// stack at n radii up to rmax, in the equatorial plane.
func RotationCurve(comps []potential.Potential, rmax float64, n int) []float64 {
	vc := make([]float64, n)
	for i := 0; i < n; i++ {
		R := rmax * float64(i+1) / float64(n)
		f := 0.0
		for _, p := range comps {
			f += p.Rforce(R, 0)
		}
		if v2 := -R * f; v2 > 0 {
			vc[i] = math.Sqrt(v2)
		}
	}
	return vc
}

// ForceProfile samples -F_R(R, 0) at n radii up to rmax.
func ForceProfile(comps []potential.Potential, rmax float64, n int) []float64 {
	fr := make([]float64, n)
	for i := 0; i < n; i++ {
		R := rmax * float64(i+1) / float64(n)
		for _, p := range comps {
			fr[i] -= p.Rforce(R, 0)
		}
	}
	return fr
}

// Render draws both curves for one named stack.
func Render(name string, comps []potential.Potential, rmax float64, n int) string {
	var b strings.Builder
	vc := asciigraph.Plot(RotationCurve(comps, rmax, n),
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s: vc(R), R up to %.3g", name, rmax)),
	)
	fr := asciigraph.Plot(ForceProfile(comps, rmax, n),
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s: -F_R(R,0), R up to %.3g", name, rmax)),
	)
	b.WriteString(vc)
	b.WriteString("\n\n")
	b.WriteString(fr)
	b.WriteByte('\n')
	return b.String()
}
