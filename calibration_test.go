package spring

import (
	"math"
	"testing"
)

func TestCriticalDamping(t *testing.T) {
	if got := CriticalDamping(10); !approxEqual(got, 2*math.Sqrt(10), epsilon) {
		t.Errorf("CriticalDamping(10) = %v", got)
	}
	if got := CriticalDamping(0); got != 0 {
		t.Errorf("CriticalDamping(0) = %v, want 0", got)
	}
	if got := CriticalDamping(-4); got != 0 {
		t.Errorf("CriticalDamping(-4) = %v, want 0", got)
	}
}

func TestDampingRatio(t *testing.T) {
	if got := DampingRatio(100, 10); !approxEqual(got, 0.5, epsilon) {
		t.Errorf("DampingRatio(100, 10) = %v, want 0.5", got)
	}
	if got := DampingRatio(0, 1); !math.IsInf(got, 1) {
		t.Errorf("DampingRatio(0, 1) = %v, want +Inf", got)
	}
	if got := DampingRatio(0, 0); got != 0 {
		t.Errorf("DampingRatio(0, 0) = %v, want 0", got)
	}
}

func TestCharacter(t *testing.T) {
	tests := []struct {
		k, c float64
		want DampingCharacter
	}{
		{10, 0.5, Underdamped},
		{10, CriticalDamping(10), CriticallyDamped},
		{10, 20, Overdamped},
		{0, 1, Overdamped},
		{100, 0, Underdamped},
	}
	for _, tt := range tests {
		if got := Character(tt.k, tt.c); got != tt.want {
			t.Errorf("Character(%v, %v) = %v, want %v", tt.k, tt.c, got, tt.want)
		}
	}
	if Underdamped.String() != "underdamped" || DampingCharacter(99).String() != "unknown" {
		t.Error("unexpected String output")
	}
}

func TestMaxStableStep(t *testing.T) {
	if got := MaxStableStep(100, 0); !approxEqual(got, 0.2, epsilon) {
		t.Errorf("MaxStableStep(100, 0) = %v, want 2/√100", got)
	}
	if got := MaxStableStep(0, 4); !approxEqual(got, 0.5, epsilon) {
		t.Errorf("MaxStableStep(0, 4) = %v, want 0.5", got)
	}
	if got := MaxStableStep(0, 0); !math.IsInf(got, 1) {
		t.Errorf("MaxStableStep(0, 0) = %v, want +Inf", got)
	}
}

func TestMaxStableStepBoundary(t *testing.T) {
	const k, c = 400.0, 5.0
	limit := MaxStableStep(k, c)

	run := func(dt float64) float64 {
		s := New(1)
		s.Stiffness, s.Damping = k, c
		s.SetTarget(State{1})
		for i := 0; i < 400; i++ {
			s.Update(dt)
		}
		return math.Abs(s.Value()[0] - 1)
	}

	if d := run(limit * 0.9); d > 1 {
		t.Errorf("below the limit the spring diverged: |x| = %v", d)
	}
	if d := run(limit * 1.1); d < 1e3 {
		t.Errorf("above the limit the spring should diverge: |x| = %v", d)
	}
}

func TestCalibrationTrio(t *testing.T) {
	c := NewCalibration(10)
	if Character(c.Under.Stiffness, c.Under.Damping) != Underdamped {
		t.Error("Under is not underdamped")
	}
	if Character(c.Critical.Stiffness, c.Critical.Damping) != CriticallyDamped {
		t.Error("Critical is not critically damped")
	}
	if Character(c.Over.Stiffness, c.Over.Damping) != Overdamped {
		t.Error("Over is not overdamped")
	}

	c.ResetTo(0)
	c.SetTarget(1)
	underOvershot := false
	for i := 0; i < 300; i++ {
		c.Update(0.016)
		if c.Under.Value() > 1 {
			underOvershot = true
		}
		if c.Critical.Value() > 1 || c.Over.Value() > 1 {
			t.Fatalf("step %d: damped springs overshot (%v, %v)", i, c.Critical.Value(), c.Over.Value())
		}
	}
	if !underOvershot {
		t.Error("underdamped spring never overshot")
	}
	if c.Over.Value() >= c.Critical.Value() {
		t.Errorf("overdamped %v should trail critical %v", c.Over.Value(), c.Critical.Value())
	}
}

func TestReferenceDrift(t *testing.T) {
	cfg := CriticalConfig(10)
	coarse := ReferenceDrift(cfg, 0, 10, 1.0/30, 150)
	fine := ReferenceDrift(cfg, 0, 10, 1.0/240, 1200)

	if coarse <= 0 || math.IsNaN(coarse) {
		t.Fatalf("coarse drift = %v, want positive", coarse)
	}
	if fine >= coarse {
		t.Errorf("drift should shrink with the step: fine %v, coarse %v", fine, coarse)
	}
	if coarse > 2 {
		t.Errorf("coarse drift = %v, unexpectedly large", coarse)
	}
}

func TestReferenceDriftDegenerate(t *testing.T) {
	if got := ReferenceDrift(Config{Stiffness: 0, Damping: 1}, 0, 1, 0.016, 10); got != 0 {
		t.Errorf("drift with zero stiffness = %v, want 0", got)
	}
	if got := ReferenceDrift(DefaultConfig(), 0, 1, 0, 10); got != 0 {
		t.Errorf("drift with zero dt = %v, want 0", got)
	}
}

func TestCalibrationReset(t *testing.T) {
	c := NewCalibration(60)
	c.SetTarget(2)
	c.Update(0.016)
	c.Reset()

	for _, s := range []*ScalarSpring{c.Under, c.Critical, c.Over} {
		if s.Value() != 2 || s.Velocity() != 0 {
			t.Errorf("value/velocity = %v/%v, want 2/0", s.Value(), s.Velocity())
		}
	}
}
