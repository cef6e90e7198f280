package typearg

import (
	"strings"
	"testing"

	"github.com/san-kum/galpot/internal/potential"
)

func TestEncodeKeplerLiteral(t *testing.T) {
	enc, err := EncodeOne(potential.NewKepler())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc != "7:1,3" {
		t.Errorf("expected \"7:1,3\", got %q", enc)
	}
}

func TestEncodeMWPotential2014Literal(t *testing.T) {
	enc, err := Encode(potential.MWPotential2014())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "15:0.029994597188218,1.8,0.2375|5:0.75748020193716,0.375,0.035|9:4.852230533528,2"
	if enc != want {
		t.Errorf("expected %q, got %q", want, enc)
	}
}

func TestEncodePipeJoinsInOrder(t *testing.T) {
	a := []potential.Potential{potential.NewKepler()}
	b := []potential.Potential{potential.NewPlummer(), potential.NewNFW()}

	encA, err := Encode(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	encB, err := Encode(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	encAB, err := Encode(append(append([]potential.Potential{}, a...), b...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if encAB != encA+"|"+encB {
		t.Errorf("expected %q, got %q", encA+"|"+encB, encAB)
	}
}

func TestEncodeMN3SharesArgumentBlock(t *testing.T) {
	enc, err := EncodeOne(potential.NewMN3ExponentialDisk())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(enc, "5,5,5:") {
		t.Errorf("expected shared type list \"5,5,5:\", got %q", enc)
	}
	if strings.Count(enc, ":") != 1 || strings.Contains(enc, "|") {
		t.Errorf("expected one block for one instance, got %q", enc)
	}
}

func TestEncodeRejectsUnsupported(t *testing.T) {
	if _, err := Encode([]potential.Potential{potential.NewEllipticalDisk()}); err == nil {
		t.Error("expected error for a model without a type code")
	}
}
