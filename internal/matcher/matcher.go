package matcher

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/focusboost/focusboost/internal/dataset"
	"github.com/focusboost/focusboost/internal/schema"
)

// ErrNotFound reports that a stable ID or row index did not resolve to
// exactly one row. Re-prompting the user is the caller's concern.
var ErrNotFound = errors.New("no matching record")

// MaxCandidates caps the guided-mode shortlist.
const MaxCandidates = 3

// MaxCategories caps the category menu in guided mode.
const MaxCategories = 6

// Band is a coarse attention level the user can pick instead of a number.
type Band string

const (
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

// Midpoint returns the representative attention value for a band, used
// as the nearest-neighbor target. Unknown bands get the middle value.
func (b Band) Midpoint() float64 {
	switch b {
	case BandLow:
		return 20.0
	case BandHigh:
		return 85.0
	default:
		return 55.0
	}
}

// Candidate is a shortlisted row: its stable ID, display category, parsed
// attention (nil when unknown), and distance from the chosen band
// midpoint. Candidates exist only during ranking.
type Candidate struct {
	ID        int
	Row       int
	Category  string
	Attention *float64
	Distance  float64
}

// AttentionBucket renders an attention value as a coarse label.
func (c Candidate) AttentionBucket() string {
	return bucket(c.Attention)
}

// CategoryLabel strips a parenthetical qualifier: "Social (Instagram)"
// becomes "Social".
func CategoryLabel(s string) string {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// TopCategories returns the most frequent category labels in the table,
// at most MaxCategories, ordered by descending frequency with ties broken
// by first appearance. Empty when the category role is unresolved.
func TopCategories(t *dataset.Table, m schema.Mapping) []string {
	if m.Category == "" {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for i := 0; i < t.Len(); i++ {
		cell, ok := t.Cell(i, m.Category)
		if !ok {
			continue
		}
		label := CategoryLabel(cell)
		if label == "" {
			continue
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > MaxCategories {
		order = order[:MaxCategories]
	}
	return order
}

// Candidates filters the table to rows matching the chosen category and
// ranks them by attention distance from the band's midpoint. Rows whose
// attention is unknown sit at the midpoint (distance 0). The result holds
// at most MaxCandidates entries, sorted by non-decreasing distance with
// ties preserving original row order. An empty result is a normal
// outcome, not an error.
func Candidates(t *dataset.Table, m schema.Mapping, category string, band Band) []Candidate {
	t.EnsureIDs()
	target := band.Midpoint()

	// Match on the leading token of the chosen label, case-insensitive,
	// anywhere in the raw cell.
	token := ""
	if category != "" && m.Category != "" {
		if fields := strings.Fields(category); len(fields) > 0 {
			token = strings.ToLower(fields[0])
		}
	}

	var out []Candidate
	for i := 0; i < t.Len(); i++ {
		label := ""
		if m.Category != "" {
			cell, _ := t.Cell(i, m.Category)
			if token != "" && !strings.Contains(strings.ToLower(cell), token) {
				continue
			}
			label = CategoryLabel(cell)
		}

		c := Candidate{ID: t.IDAt(i), Row: i, Category: label}
		if v, ok := t.DerivedAt(schema.ColAttentionNum, i); ok {
			att := v
			c.Attention = &att
			c.Distance = math.Abs(v - target)
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	if len(out) > MaxCandidates {
		out = out[:MaxCandidates]
	}
	return out
}

// ResolveID maps a stable ID back to its row index. Zero matches and
// duplicate matches both report ErrNotFound; duplicates cannot happen
// under the assignment scheme but are defended against anyway.
func ResolveID(t *dataset.Table, id int) (int, error) {
	t.EnsureIDs()
	found := -1
	for i := 0; i < t.Len(); i++ {
		if t.IDAt(i) != id {
			continue
		}
		if found >= 0 {
			return 0, ErrNotFound
		}
		found = i
	}
	if found < 0 {
		return 0, ErrNotFound
	}
	return found, nil
}

// SelectByIndex validates a direct row index against the table bounds.
func SelectByIndex(t *dataset.Table, idx int) (int, error) {
	if idx < 0 || idx >= t.Len() {
		return 0, ErrNotFound
	}
	return idx, nil
}

func bucket(v *float64) string {
	if v == nil {
		return "unknown"
	}
	switch {
	case *v < 40:
		return "low"
	case *v < 70:
		return "mid"
	default:
		return "high"
	}
}
