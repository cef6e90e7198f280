package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/galpot/internal/typearg"
)

const sampleSet = `name: mw-with-cluster
components:
  - model: MWPotential2014
  - model: PlummerPotential
    params:
      amp: 1.11072675e-8
      b: 0.000125
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "set.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadAndBuild(t *testing.T) {
	set, err := Load(writeSample(t, sampleSet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Name != "mw-with-cluster" {
		t.Errorf("expected set name, got %q", set.Name)
	}
	comps, err := set.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// MWPotential2014 contributes three instances, Plummer one
	if len(comps) != 4 {
		t.Fatalf("expected 4 components, got %d", len(comps))
	}
	enc, err := typearg.Encode(comps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "15:0.029994597188218,1.8,0.2375|5:0.75748020193716,0.375,0.035|9:4.852230533528,2|17:1.11072675e-08,0.000125"
	if enc != want {
		t.Errorf("expected %q, got %q", want, enc)
	}
}

func TestLoadEmptySet(t *testing.T) {
	if _, err := Load(writeSample(t, "name: empty\n")); err == nil {
		t.Error("expected error for a set without components")
	}
}

func TestBuildUnknownModel(t *testing.T) {
	set, err := Load(writeSample(t, "components:\n  - model: NoSuchPotential\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := set.Build(); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	set := &Set{
		Name: "kepler",
		Components: []Component{
			{Model: "KeplerPotential", Params: map[string]float64{"amp": 2}},
		},
	}
	if err := Save(path, set); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Name != set.Name || len(loaded.Components) != 1 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.Components[0].Params["amp"] != 2 {
		t.Errorf("expected amp override to survive, got %v", loaded.Components[0].Params)
	}
}
