package typearg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteConfFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pot.conf")
	types := []int{15, 5, 9}
	args := []float64{0.029994597188218, 1.8, 0.2375, 0.75748020193716, 0.375, 0.035, 4.852230533528, 2.0}

	if err := WriteConf(path, types, args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "0 3" {
		t.Errorf("expected header \"0 3\", got %q", lines[0])
	}
	if lines[1] != "15 5 9" {
		t.Errorf("expected type line \"15 5 9\", got %q", lines[1])
	}
	fields := strings.Fields(lines[2])
	if len(fields) != len(args) {
		t.Fatalf("expected %d arguments, got %d", len(args), len(fields))
	}
	if fields[0] != "0.029994597188218" {
		t.Errorf("expected 14-digit amplitude, got %q", fields[0])
	}
	if fields[7] != "2" {
		t.Errorf("expected compact \"2\", got %q", fields[7])
	}
}

func TestWriteConfRoundsTo14Digits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pot.conf")
	if err := WriteConf(path, []int{17}, []float64{1.0 / 3.0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[2] != "0.33333333333333" {
		t.Errorf("expected 14 significant digits, got %q", lines[2])
	}
}

func TestWriteConfBadPath(t *testing.T) {
	err := WriteConf(filepath.Join(t.TempDir(), "missing", "pot.conf"), []int{7}, []float64{1, 3})
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}
