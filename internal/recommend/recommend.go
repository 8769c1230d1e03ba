package recommend

import "math"

// Flags are the behavioral conditions the advice engine reacts to. A
// fixed struct (rather than a string-keyed map) keeps flag names checked
// at compile time.
type Flags struct {
	Nocturnal    bool // meaningful use after 22:00
	NotifHigh    bool // notification index >= 60
	SocialHigh   bool // >3h of distracting apps, or a Social category day
	LowAttention bool // attention under 50
	AdherenceLow bool // study-block adherence under 60%
}

// Advisory messages, one per flag, in evaluation order.
const (
	adviceNocturnal    = "Avoid late-night use (after 22:00). Turn on rest mode or silence overnight notifications."
	adviceNotifHigh    = "Mute or batch notifications. Allow only essential apps during study hours."
	adviceSocialHigh   = "Move social apps off your home screen during study blocks."
	adviceLowAttention = "Plan short blocks (25 min) with breaks. Start with 2-3 blocks."
	adviceAdherenceLow = "Lower your block target and raise it gradually. Celebrate progress."
	adviceAllClear     = "You're doing well. Keep your habits consistent and review progress weekly."
)

// Recommend maps flags to an ordered list of advisories. Flags are
// evaluated in declaration order and each true flag contributes exactly
// one message; callers may rely on that order for display and tests.
// When nothing is flagged the single all-clear message is returned.
func Recommend(f Flags) []string {
	var recs []string

	if f.Nocturnal {
		recs = append(recs, adviceNocturnal)
	}
	if f.NotifHigh {
		recs = append(recs, adviceNotifHigh)
	}
	if f.SocialHigh {
		recs = append(recs, adviceSocialHigh)
	}
	if f.LowAttention {
		recs = append(recs, adviceLowAttention)
	}
	if f.AdherenceLow {
		recs = append(recs, adviceAdherenceLow)
	}

	if len(recs) == 0 {
		recs = append(recs, adviceAllClear)
	}
	return recs
}

// ClassifyUsage labels total daily hours in distracting apps:
// low (<=1.5h), moderate (<=3h), high (>3h). Non-finite input is unknown.
func ClassifyUsage(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return "unknown"
	}
	switch {
	case hours <= 1.5:
		return "low"
	case hours <= 3.0:
		return "moderate"
	default:
		return "high"
	}
}
