package spring

import "testing"

func TestLoadPresets(t *testing.T) {
	data := []byte(`{
		"presets": {
			"snappy": {"stiffness": 300, "damping": 20},
			"wobbly": {"stiffness": 80, "damping": 2}
		}
	}`)

	presets, err := LoadPresets(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}
	snappy, ok := presets.Get("snappy")
	if !ok || snappy.Stiffness != 300 || snappy.Damping != 20 {
		t.Errorf("snappy = %+v (ok=%v)", snappy, ok)
	}
	if _, ok := presets.Get("missing"); ok {
		t.Error("Get should report a missing preset")
	}
}

func TestLoadPresets_Invalid(t *testing.T) {
	_, err := LoadPresets([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadPresets_Empty(t *testing.T) {
	_, err := LoadPresets([]byte(`{"presets": {}}`))
	if err == nil {
		t.Error("expected error for empty presets")
	}
}

func TestPresetsLookupFallsBack(t *testing.T) {
	presets := Presets{"soft": {Stiffness: 5, Damping: 1}}
	if got := presets.Lookup("soft"); got.Stiffness != 5 {
		t.Errorf("Lookup(soft) = %+v", got)
	}
	if got := presets.Lookup("nope"); got != DefaultConfig() {
		t.Errorf("Lookup(nope) = %+v, want default", got)
	}
}

func TestConfigApply(t *testing.T) {
	s := NewScalarSpring()
	s.ResetTo(3)
	Config{Stiffness: 42, Damping: 7}.Apply(&s.Spring)

	if s.Stiffness != 42 || s.Damping != 7 {
		t.Errorf("dynamics = %v/%v, want 42/7", s.Stiffness, s.Damping)
	}
	if s.Value() != 3 {
		t.Errorf("Apply changed the value to %v", s.Value())
	}
}

func TestConfigConstructors(t *testing.T) {
	if c := CriticalConfig(25); c.Damping != 10 || c.Character() != CriticallyDamped {
		t.Errorf("CriticalConfig(25) = %+v", c)
	}
	if c := ConfigFromRatio(25, 0.5); c.Damping != 5 || c.Character() != Underdamped {
		t.Errorf("ConfigFromRatio(25, 0.5) = %+v", c)
	}
	if c := DefaultConfig(); c.Stiffness != DefaultStiffness || c.Damping != DefaultDamping {
		t.Errorf("DefaultConfig = %+v", c)
	}
}
