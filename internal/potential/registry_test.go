package potential

import (
	"errors"
	"sort"
	"testing"
)

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Error("expected sorted names")
	}
	want := map[string]bool{
		"KeplerPotential":     false,
		"MWPotential2014":     false,
		"PlummerPotential":    false,
		"SnapshotRZPotential": false,
	}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Errorf("expected %s in Names()", n)
		}
	}
}

func TestNewUnknownName(t *testing.T) {
	_, err := New("NoSuchPotential", nil)
	if !errors.Is(err, ErrUnknownPotential) {
		t.Errorf("expected ErrUnknownPotential, got %v", err)
	}
}

func TestNewSnapshotNeedsData(t *testing.T) {
	_, err := New("SnapshotRZPotential", nil)
	if !errors.Is(err, ErrNeedsSnapshot) {
		t.Errorf("expected ErrNeedsSnapshot, got %v", err)
	}
}

func TestNewParamOverrides(t *testing.T) {
	comps, err := New("PlummerPotential", map[string]float64{"b": 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("expected 1 component, got %d", len(comps))
	}
	p, ok := comps[0].(*Plummer)
	if !ok {
		t.Fatalf("expected *Plummer, got %T", comps[0])
	}
	if p.B != 0.5 {
		t.Errorf("expected b = 0.5, got %v", p.B)
	}
	if p.Amp != 1.0 {
		t.Errorf("expected default amp 1, got %v", p.Amp)
	}
}

func TestNewParameterBounds(t *testing.T) {
	_, err := New("PowerSphericalPotential", map[string]float64{"alpha": 3})
	if !errors.Is(err, ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestNewCombinedSet(t *testing.T) {
	comps, err := New("MWPotential2014", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comps) != 3 {
		t.Fatalf("expected 3 components, got %d", len(comps))
	}
	if _, ok := comps[0].(*PowerSphericalCutoff); !ok {
		t.Errorf("expected bulge first, got %T", comps[0])
	}
	if _, ok := comps[2].(*NFW); !ok {
		t.Errorf("expected halo last, got %T", comps[2])
	}
}
