package focus

import (
	"math"
	"testing"
)

func TestComputeDefaults(t *testing.T) {
	s := DefaultScorer()

	tests := []struct {
		name     string
		in       Inputs
		expected float64
	}{
		{"all zero", Inputs{}, 50.0},
		{"typical day", Inputs{Attention: 60, SocialTime: 2, Notifications: 30}, 100.0},
		{"distracted day", Inputs{Attention: 20, SocialTime: 6, Notifications: 60}, 49.0},
		// 50 + 85 - 0.25 - 3 = 131.75, clamped.
		{"clamps high", Inputs{Attention: 85, SocialTime: 0.5, Notifications: 10}, 100.0},
		{"clamps low", Inputs{Attention: 0, SocialTime: 100, Notifications: 100}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Compute(tt.in); got != tt.expected {
				t.Errorf("Compute(%+v) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestComputeAlwaysBounded(t *testing.T) {
	s := NewScorer(Weights{Base: 50, Attention: 3.5, Social: 2.0, Notif: 1.1})

	extremes := []float64{-1e12, -100, 0, 1, 99.9, 1e12, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, a := range extremes {
		for _, st := range extremes {
			for _, n := range extremes {
				got := s.Compute(Inputs{Attention: a, SocialTime: st, Notifications: n})
				if got < 0 || got > 100 || math.IsNaN(got) {
					t.Fatalf("Compute(%v, %v, %v) = %v, out of [0, 100]", a, st, n, got)
				}
			}
		}
	}
}

func TestComputeNonFiniteTermsAreZero(t *testing.T) {
	s := DefaultScorer()

	// NaN attention contributes nothing; the other terms still count.
	got := s.Compute(Inputs{Attention: math.NaN(), SocialTime: 2, Notifications: 10})
	want := 50.0 - 1.0 - 3.0
	if got != want {
		t.Errorf("Compute with NaN attention = %v, want %v", got, want)
	}
}

func TestThreshold(t *testing.T) {
	isGood := Threshold(70.0)

	tests := []struct {
		value    float64
		expected bool
	}{
		{82.5, true},
		{70.0, true},
		{69.9, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}

	for _, tt := range tests {
		if got := isGood(tt.value); got != tt.expected {
			t.Errorf("Threshold(70)(%v) = %v, want %v", tt.value, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.expected)
		}
	}
}
