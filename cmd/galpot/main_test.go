package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunHelpExitsBeforeLookup(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pot.conf")
	if code := run([]string{"-h", "-o", out}); code != 1 {
		t.Errorf("expected exit code 1 for help, got %d", code)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("expected no configure file to be written on help")
	}
}

func TestRunFlagParseError(t *testing.T) {
	if code := run([]string{"--no-such-flag"}); code != 2 {
		t.Errorf("expected exit code 2 for bad flag, got %d", code)
	}
}

func TestRunKnownPotential(t *testing.T) {
	if code := run([]string{"KeplerPotential"}); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestRunUnknownPotentialIsNotFatal(t *testing.T) {
	if code := run([]string{"NoSuchPotential"}); code != 0 {
		t.Errorf("expected exit code 0 with fallback listing, got %d", code)
	}
}

func TestRunWritesConfFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pot.conf")
	if code := run([]string{"-o", out, "MWPotential2014"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected configure file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty configure file")
	}
}
