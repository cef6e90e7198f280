package discover

import (
	"testing"

	"github.com/san-kum/galpot/internal/potential"
)

func TestScanSkipsUnusableModels(t *testing.T) {
	entries := Scan()
	if len(entries) == 0 {
		t.Fatal("expected a non-empty supported list")
	}
	skipped := map[string]bool{
		"EllipticalDiskPotential":           true, // 2-D
		"RazorThinExponentialDiskPotential": true, // no native path
		"SnapshotRZPotential":               true, // construction fails
	}
	for _, e := range entries {
		if skipped[e.Name] {
			t.Errorf("expected %s to be skipped", e.Name)
		}
		for _, p := range e.Components {
			if p.Dim() != 3 || !p.Native() {
				t.Errorf("%s: unusable component survived the scan", e.Name)
			}
		}
	}
}

func TestScanFindsCombinedSet(t *testing.T) {
	var mw *Entry
	for _, e := range Scan() {
		if e.Name == "MWPotential2014" {
			cp := e
			mw = &cp
		}
	}
	if mw == nil {
		t.Fatal("expected MWPotential2014 in scan")
	}
	if mw.Kind != Combined {
		t.Errorf("expected Combined kind, got %v", mw.Kind)
	}
	if len(mw.Components) != 3 {
		t.Errorf("expected 3 components, got %d", len(mw.Components))
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("KeplerPotential")
	if !ok {
		t.Fatal("expected KeplerPotential to resolve")
	}
	if e.Kind != Single || len(e.Components) != 1 {
		t.Errorf("expected single-instance entry, got %+v", e)
	}
	if _, ok := e.Components[0].(*potential.Kepler); !ok {
		t.Errorf("expected *Kepler, got %T", e.Components[0])
	}

	if _, ok := Lookup("NoSuchPotential"); ok {
		t.Error("expected unknown name to fail lookup")
	}
	if _, ok := Lookup("EllipticalDiskPotential"); ok {
		t.Error("expected 2-D model to fail lookup")
	}
	if _, ok := Lookup("SnapshotRZPotential"); ok {
		t.Error("expected failing constructor to downgrade to skip")
	}
}
