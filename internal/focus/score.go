package focus

import "math"

// Weights configures the linear focus model. Attention raises the score;
// distracting screen time and notification pressure lower it.
type Weights struct {
	Base      float64 `toml:"base"`
	Attention float64 `toml:"attention"`
	Social    float64 `toml:"social"`
	Notif     float64 `toml:"notif"`
}

// DefaultWeights returns the calibration the survey model ships with.
func DefaultWeights() Weights {
	return Weights{
		Base:      50.0,
		Attention: 1.0,
		Social:    0.5,
		Notif:     0.3,
	}
}

// Inputs are the three normalized terms of the focus model. All are
// expected to be non-negative; attention lives on a 0..100 scale.
type Inputs struct {
	Attention     float64
	SocialTime    float64
	Notifications float64
}

// Scorer computes focus scores with a fixed set of weights.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// DefaultScorer creates a scorer with the default calibration.
func DefaultScorer() *Scorer {
	return NewScorer(DefaultWeights())
}

// Compute evaluates the linear model and clamps the result into [0, 100].
// Non-finite inputs are treated as 0 for their term; Compute never fails.
func (s *Scorer) Compute(in Inputs) float64 {
	a := sanitize(in.Attention)
	st := sanitize(in.SocialTime)
	n := sanitize(in.Notifications)

	score := s.weights.Base + s.weights.Attention*a - s.weights.Social*st - s.weights.Notif*n
	return Clamp(score, 0, 100)
}

// Threshold returns a reusable predicate reporting whether a score is at
// least limit. Non-finite values compare false instead of erroring.
func Threshold(limit float64) func(float64) bool {
	return func(v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.IsNaN(limit) {
			return false
		}
		return v >= limit
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
