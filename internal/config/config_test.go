package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBenignTraitNamesDefault(t *testing.T) {
	ResetBenignTraitNames()
	names := BenignTraitNames()
	if !names[Shared] || !names[Fun] {
		t.Fatalf("expected Shared and Fun to be benign by default, got %v", names)
	}
	if len(names) != 2 {
		t.Fatalf("expected exactly 2 default benign traits, got %d", len(names))
	}
}

func TestLoadOverridesBenignTraits(t *testing.T) {
	defer ResetBenignTraitNames()

	dir := t.TempDir()
	path := filepath.Join(dir, "frontend.yaml")
	content := "benign_traits:\n  - Shared\n  - Ord\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	names := BenignTraitNames()
	if !names[TraitName("Ord")] {
		t.Fatalf("expected Ord to become benign, got %v", names)
	}
	if names[Fun] {
		t.Fatalf("expected Fun to no longer be benign after override, got %v", names)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	defer ResetBenignTraitNames()
	if err := Load("/nonexistent/frontend.yaml"); err != nil {
		t.Fatalf("expected missing config file to be ignored, got %v", err)
	}
}
