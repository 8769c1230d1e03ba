package schema

import (
	"strings"

	"github.com/focusboost/focusboost/internal/dataset"
)

// Names of the derived numeric columns the inferencer adds.
const (
	ColAttentionNum    = "attention_num"
	ColScreenTimeHours = "screen_time_hours"
)

// Gate is a categorical equality filter: rows stay in the working set only
// when the column whose normalized name contains Keyword holds exactly
// Value (compared trimmed and lowercased).
type Gate struct {
	Keyword string `toml:"keyword"`
	Value   string `toml:"value"`
}

// Mapping records which concrete column plays each logical role. An empty
// string means the role is unresolved.
type Mapping struct {
	Attention string
	Social    string
	Notif     string
	Name      string
	Category  string
}

// roleRules is the ordered fallback rule table for raw-column role
// matching. Columns are scanned in table order; the first column whose
// normalized name satisfies a rule wins that role.
var roleRules = []struct {
	assign func(*Mapping) *string
	match  func(string) bool
}{
	{
		assign: func(m *Mapping) *string { return &m.Attention },
		match: func(c string) bool {
			return strings.Contains(c, "attention") || strings.Contains(c, "span")
		},
	},
	{
		assign: func(m *Mapping) *string { return &m.Social },
		match: func(c string) bool {
			return strings.Contains(c, "average_screen_time") ||
				(strings.Contains(c, "screen") && strings.Contains(c, "time"))
		},
	},
	{
		assign: func(m *Mapping) *string { return &m.Notif },
		match:  func(c string) bool { return strings.Contains(c, "notif") },
	},
	{
		assign: func(m *Mapping) *string { return &m.Name },
		match: func(c string) bool {
			return strings.Contains(c, "name") || strings.Contains(c, "student")
		},
	},
	{
		assign: func(m *Mapping) *string { return &m.Category },
		match: func(c string) bool {
			return strings.Contains(c, "app_category") ||
				strings.Contains(c, "category") || strings.Contains(c, "activity")
		},
	},
}

// Infer normalizes column names, applies the gate filters, derives the
// numeric attention and screen-time columns, and builds the role mapping.
// The input table is not modified; all work happens on a copy.
//
// A gate whose column cannot be located is skipped rather than failing.
// That leniency means an unexpected export passes through unfiltered; it
// mirrors the survey tooling this replaces and is deliberate.
func Infer(t *dataset.Table, gates []Gate) (*dataset.Table, Mapping) {
	out := t.Clone()
	for i, c := range out.Columns {
		out.Columns[i] = normalizeName(c)
	}

	for _, g := range gates {
		col := findColumn(out, g.Keyword)
		if col == "" {
			continue
		}
		want := strings.ToLower(strings.TrimSpace(g.Value))
		cur := out
		out = cur.Filter(func(row int) bool {
			cell, _ := cur.Cell(row, col)
			return strings.ToLower(strings.TrimSpace(cell)) == want
		})
	}

	deriveColumns(out)
	return out, buildMapping(out)
}

// deriveColumns attaches attention_num and screen_time_hours. When a
// source column cannot be located the derived column still exists, with
// null values throughout.
func deriveColumns(t *dataset.Table) {
	attCol := ""
	scrCol := ""
	for _, c := range t.Columns {
		if attCol == "" && (strings.Contains(c, "attention") || strings.Contains(c, "span")) {
			attCol = c
		}
		if scrCol == "" && (strings.Contains(c, "average_screen_time") ||
			(strings.Contains(c, "screen") && strings.Contains(c, "time"))) {
			scrCol = c
		}
	}

	att := make([]*float64, t.Len())
	scr := make([]*float64, t.Len())
	for i := 0; i < t.Len(); i++ {
		if attCol != "" {
			if cell, ok := t.Cell(i, attCol); ok {
				if v, ok := ParseAttention(cell); ok {
					att[i] = &v
				}
			}
		}
		if scrCol != "" {
			if cell, ok := t.Cell(i, scrCol); ok {
				if v, ok := ParseHours(cell); ok {
					scr[i] = &v
				}
			}
		}
	}
	t.SetDerived(ColAttentionNum, att)
	t.SetDerived(ColScreenTimeHours, scr)
}

func buildMapping(t *dataset.Table) Mapping {
	var m Mapping

	// Derived numeric columns beat raw heuristic matches.
	if t.HasDerived(ColAttentionNum) {
		m.Attention = ColAttentionNum
	}
	if t.HasDerived(ColScreenTimeHours) {
		m.Social = ColScreenTimeHours
	}

	for _, c := range t.Columns {
		for _, rule := range roleRules {
			slot := rule.assign(&m)
			if *slot == "" && rule.match(c) {
				*slot = c
			}
		}
	}
	return m
}

// findColumn returns the first column whose normalized name contains the
// keyword, in table column order.
func findColumn(t *dataset.Table, keyword string) string {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return ""
	}
	for _, c := range t.Columns {
		if strings.Contains(c, kw) {
			return c
		}
	}
	return ""
}
