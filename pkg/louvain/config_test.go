package louvain

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.Repeat(); got != 1 {
		t.Errorf("Repeat() = %d, want 1", got)
	}
	if got := cfg.Resolution(); got != 1.0 {
		t.Errorf("Resolution() = %f, want 1", got)
	}
	if got := cfg.Tolerance(); got != 0.0 {
		t.Errorf("Tolerance() = %f, want 0", got)
	}
	if got := cfg.PassTolerance(); got != 0.0 {
		t.Errorf("PassTolerance() = %f, want 0", got)
	}
	if got := cfg.ToleranceDeclineFactor(); got != 1.0 {
		t.Errorf("ToleranceDeclineFactor() = %f, want 1", got)
	}
	if got := cfg.MaxIterations(); got != 500 {
		t.Errorf("MaxIterations() = %d, want 500", got)
	}
	if got := cfg.MaxPasses(); got != 500 {
		t.Errorf("MaxPasses() = %d, want 500", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value interface{}
		valid bool
	}{
		{"HalfResolution", "algorithm.resolution", 0.5, true},
		{"ZeroResolution", "algorithm.resolution", 0.0, false},
		{"NegativeIterations", "algorithm.max_iterations", -5, false},
		{"NegativePasses", "algorithm.max_passes", -1, false},
		{"NegativeDecline", "algorithm.tolerance_decline_factor", -1.0, false},
		{"ShrinkingDecline", "algorithm.tolerance_decline_factor", 0.9, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Set(tc.key, tc.value)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.valid && err == nil {
				t.Errorf("Validate() accepted %s = %v", tc.key, tc.value)
			}
		})
	}
}

func TestConfigLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "louvain.yaml")
	content := "algorithm:\n  resolution: 0.75\n  max_passes: 20\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if got := cfg.Resolution(); got != 0.75 {
		t.Errorf("Resolution() = %f, want 0.75", got)
	}
	if got := cfg.MaxPasses(); got != 20 {
		t.Errorf("MaxPasses() = %d, want 20", got)
	}
	// Untouched keys keep their defaults.
	if got := cfg.MaxIterations(); got != 500 {
		t.Errorf("MaxIterations() = %d, want 500", got)
	}
}
