package plot

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/galpot/internal/potential"
)

func TestKeplerRotationCurve(t *testing.T) {
	comps := []potential.Potential{potential.NewKepler()}
	vc := RotationCurve(comps, 1, 100)
	if len(vc) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(vc))
	}
	// unit point mass: vc(1) = 1
	if math.Abs(vc[99]-1) > 1e-12 {
		t.Errorf("expected vc(1) = 1, got %v", vc[99])
	}
	// vc ~ r^(-1/2): inner velocities are higher
	if vc[9] <= vc[99] {
		t.Errorf("expected falling curve, got vc=%v then %v", vc[9], vc[99])
	}
}

func TestLogarithmicHaloFlat(t *testing.T) {
	comps := []potential.Potential{potential.NewLogarithmicHalo()}
	for i, v := range RotationCurve(comps, 8, 40) {
		if math.Abs(v-1) > 1e-12 {
			t.Errorf("sample %d: expected flat vc = 1, got %v", i, v)
		}
	}
}

func TestRenderContainsBothCurves(t *testing.T) {
	out := Render("KeplerPotential", []potential.Potential{potential.NewKepler()}, 4, 40)
	if !strings.Contains(out, "vc(R)") || !strings.Contains(out, "-F_R(R,0)") {
		t.Errorf("expected both captions in output:\n%s", out)
	}
}
