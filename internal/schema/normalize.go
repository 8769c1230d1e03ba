package schema

import (
	"regexp"
	"strconv"
	"strings"
)

// The survey mixes English and Spanish free text; the normalizers below
// cover both without raising. Anything unrecognizable is reported as
// ok=false rather than an error, so a best-effort score can still be
// computed downstream.

// Replaces en dash and em dash variants before range splitting.
var dashReplacer = strings.NewReplacer("—", "-", "–", "-")

var firstNumber = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseHours converts free-text screen-time answers to hours.
// Recognized forms: a "lo-hi" range (midpoint), "more than 10" style
// phrases (10.5), a bare integer, and as a last resort the first number
// appearing anywhere in the text. The fallback can misread adversarial
// text ("about 3 or 4" yields 3); that is accepted for heuristic use.
func ParseHours(text string) (float64, bool) {
	t := dashReplacer.Replace(strings.ToLower(strings.TrimSpace(text)))
	if t == "" {
		return 0, false
	}

	if strings.Contains(t, "-") {
		parts := strings.Split(t, "-")
		lo, errLo := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLo != nil || errHi != nil {
			return 0, false
		}
		return (lo + hi) / 2.0, true
	}

	if strings.Contains(t, "more than 10") || strings.Contains(t, "más de 10") {
		return 10.5, true
	}

	if isDigits(t) {
		v, err := strconv.ParseFloat(t, 64)
		if err == nil {
			return v, true
		}
	}

	if m := firstNumber.FindString(t); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return v, true
		}
	}

	return 0, false
}

// ParseAttention maps textual attention-span bands to a point estimate on
// a 0..100 scale. Numeric text is clamped into [0, 100].
func ParseAttention(text string) (float64, bool) {
	t := dashReplacer.Replace(strings.ToLower(strings.TrimSpace(text)))
	if t == "" {
		return 0, false
	}

	switch {
	case strings.Contains(t, "less than 10"), strings.Contains(t, "menos de 10"):
		return 20.0, true
	case strings.Contains(t, "10-30"):
		return 40.0, true
	case strings.Contains(t, "30-60"):
		return 60.0, true
	case strings.Contains(t, "more than 1 hour"), strings.Contains(t, "más de 1 hora"):
		return 85.0, true
	}

	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return clamp(v, 0, 100), true
	}
	return 0, false
}

// NotificationsFromHandling estimates a notification pressure index from a
// "how do you handle notifications" answer. Unknown or empty text gets the
// neutral default of 30.
func NotificationsFromHandling(text string) float64 {
	v := strings.ToLower(strings.TrimSpace(text))
	switch {
	case v == "":
		return 30.0
	case strings.Contains(v, "mute"), strings.Contains(v, "silenc"):
		return 10.0
	case strings.Contains(v, "manage"), strings.Contains(v, "smart"), strings.Contains(v, "resumen"):
		return 20.0
	case strings.Contains(v, "frequent"), strings.Contains(v, "many"),
		strings.Contains(v, "muchas"), strings.Contains(v, "alta"):
		return 60.0
	}
	return 30.0
}

// normalizeName canonicalizes a column name: trim, lowercase, and collapse
// spaces and hyphens into underscores.
func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.Join(strings.Fields(n), "_")
	n = strings.ReplaceAll(n, "-", "_")
	return n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
