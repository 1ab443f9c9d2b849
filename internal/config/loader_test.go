package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	// No custom path and no local configs dir in the test environment:
	// the embedded YAML must parse and match the canonical tuning.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	tuning := cfg.Tuning()
	if tuning.ScreenW != 375 || tuning.ScreenH != 667 {
		t.Errorf("pitch: expected 375x667, got %fx%f", tuning.ScreenW, tuning.ScreenH)
	}
	if tuning.Gravity != 0.3 {
		t.Errorf("gravity: expected 0.3, got %f", tuning.Gravity)
	}
	if tuning.FlapImpulse != -5 {
		t.Errorf("flap impulse: expected -5, got %f", tuning.FlapImpulse)
	}
	if tuning.MaxVelX != 4 || tuning.MaxVelY != 8 {
		t.Errorf("velocity caps: expected 4/8, got %f/%f", tuning.MaxVelX, tuning.MaxVelY)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Tuning() != Default().Tuning() {
		t.Errorf("embedded YAML drifted from hardcoded defaults:\n%+v\n%+v", cfg.Tuning(), Default().Tuning())
	}
}

func TestLoadCustomPath(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
pitch:
  width: 400
  height: 700
physics:
  gravity: 0.5
`
	if err := os.WriteFile(custom, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(custom)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Pitch.Width != 400 || cfg.Physics.Gravity != 0.5 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("an explicitly named missing file must be an error")
	}
}
