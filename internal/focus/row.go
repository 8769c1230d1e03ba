package focus

import (
	"strconv"
	"strings"

	"github.com/focusboost/focusboost/internal/dataset"
	"github.com/focusboost/focusboost/internal/schema"
)

// DefaultNotifications is the notification index assumed when a row has
// neither an exact notification count nor a handling answer to estimate
// one from.
const DefaultNotifications = 30.0

// InputsFromRow extracts score-model inputs for one row of an inferred
// table. Missing or unparsable values fall back to 0 for attention and
// social time and to DefaultNotifications for notifications, so a score
// can always be computed.
func InputsFromRow(t *dataset.Table, m schema.Mapping, row int) Inputs {
	in := Inputs{Notifications: DefaultNotifications}

	in.Attention = numericAt(t, m.Attention, row)
	in.SocialTime = numericAt(t, m.Social, row)

	// An exact "notifications" column wins; otherwise estimate from the
	// handling answer.
	if col := exactColumn(t, "notifications"); col != "" {
		if cell, ok := t.Cell(row, col); ok {
			if v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
				in.Notifications = v
				return in
			}
		}
	}
	if col := containsColumn(t, "notification_handling"); col != "" {
		cell, _ := t.Cell(row, col)
		in.Notifications = schema.NotificationsFromHandling(cell)
	}

	return in
}

// numericAt reads a mapped column as a float, preferring derived values.
func numericAt(t *dataset.Table, column string, row int) float64 {
	if column == "" {
		return 0
	}
	if v, ok := t.DerivedAt(column, row); ok {
		return v
	}
	cell, ok := t.Cell(row, column)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return v
}

func exactColumn(t *dataset.Table, name string) string {
	for _, c := range t.Columns {
		if c == name {
			return c
		}
	}
	return ""
}

func containsColumn(t *dataset.Table, keyword string) string {
	for _, c := range t.Columns {
		if strings.Contains(c, keyword) {
			return c
		}
	}
	return ""
}
