package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/focusboost/focusboost/internal/focus"
	"github.com/focusboost/focusboost/internal/recommend"
)

// Report prints the friendly natural-language score summary: the score
// with a level word, then one line describing each input in plain terms.
func Report(w io.Writer, score float64, in focus.Inputs, goodScore float64) {
	level := "LOW"
	switch {
	case score >= goodScore:
		level = "GOOD"
	case score >= 50:
		level = "FAIR"
	}

	fmt.Fprintf(w, "\nYour Focus Score: %.1f  -> Level: %s\n", score, level)

	parts := []string{
		fmt.Sprintf("%s attention (%d/100)", attentionWord(in.Attention), int(in.Attention)),
		fmt.Sprintf("%s usage (~%.1f h)", recommend.ClassifyUsage(in.SocialTime), in.SocialTime),
		fmt.Sprintf("%s notifications (~%d)", notificationsWord(in.Notifications), int(in.Notifications)),
	}
	fmt.Fprintf(w, "Summary: %s.\n", strings.Join(parts, ", "))
}

// Recommendations prints an advice list as bullets.
func Recommendations(w io.Writer, recs []string) {
	fmt.Fprintln(w, "\nRecommendations:")
	for _, r := range recs {
		fmt.Fprintf(w, "- %s\n", r)
	}
}

func attentionWord(v float64) string {
	switch {
	case v >= 70:
		return "high"
	case v >= 40:
		return "medium"
	default:
		return "low"
	}
}

func notificationsWord(v float64) string {
	switch {
	case v >= 60:
		return "high"
	case v >= 30:
		return "medium"
	default:
		return "low"
	}
}
