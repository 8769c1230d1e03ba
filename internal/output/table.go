package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/focusboost/focusboost/internal/database"
	"github.com/focusboost/focusboost/internal/matcher"
	"github.com/focusboost/focusboost/internal/session"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []matcher.Candidate:
		return candidatesTable(w, v)
	case []session.Record:
		return sessionsTable(w, v)
	case *database.Stats:
		return statsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func candidatesTable(w io.Writer, cands []matcher.Candidate) error {
	if len(cands) == 0 {
		fmt.Fprintln(w, "No matching records found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FB-ID\tCATEGORY\tATTENTION")
	fmt.Fprintln(tw, "-----\t--------\t---------")

	for _, c := range cands {
		category := c.Category
		if category == "" {
			category = "(none)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n",
			c.ID,
			truncate(category, 25),
			c.AttentionBucket(),
		)
	}

	return tw.Flush()
}

func sessionsTable(w io.Writer, sessions []session.Record) error {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions logged yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tMODE\tSCORE\tUSAGE\tCATEGORY\tADHERENCE")
	fmt.Fprintln(tw, "----\t----\t-----\t-----\t--------\t---------")

	for _, s := range sessions {
		adherence := "-"
		if s.Adherence != nil {
			adherence = fmt.Sprintf("%.0f%%", *s.Adherence)
		}
		category := s.AppCategory
		if category == "" {
			category = "-"
		}

		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\t%s\t%s\n",
			s.Timestamp.Format("Jan 02 15:04"),
			s.Mode,
			s.FocusScore,
			s.UsageLabel,
			truncate(category, 20),
			adherence,
		)
	}

	return tw.Flush()
}

func statsTable(w io.Writer, s *database.Stats) error {
	fmt.Fprintln(w, "FocusBoost Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Total sessions:       %d\n", s.TotalSessions)
	fmt.Fprintf(w, "  dataset mode:       %d\n", s.DatasetSessions)
	fmt.Fprintf(w, "  manual mode:        %d\n", s.ManualSessions)
	fmt.Fprintf(w, "Average focus score:  %.1f\n", s.AvgFocusScore)
	fmt.Fprintf(w, "Usage low/mod/high:   %d / %d / %d\n", s.LowUsage, s.ModerateUsage, s.HighUsage)

	if s.TrackedSessions > 0 {
		fmt.Fprintf(w, "Block tracking:       %d sessions, %.1f%% avg adherence\n",
			s.TrackedSessions, s.AvgAdherence)
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
