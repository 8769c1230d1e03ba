package focus

import (
	"testing"

	"github.com/focusboost/focusboost/internal/dataset"
	"github.com/focusboost/focusboost/internal/schema"
)

func inferredTable(t *testing.T, columns []string, rows [][]string) (*dataset.Table, schema.Mapping) {
	t.Helper()
	out, m := schema.Infer(dataset.New(columns, rows), nil)
	return out, m
}

func TestInputsFromRowDerivedValues(t *testing.T) {
	table, m := inferredTable(t,
		[]string{"Attention Span", "Average Screen Time", "Notifications"},
		[][]string{{"More than 1 hour", "4-6", "42"}},
	)

	in := InputsFromRow(table, m, 0)
	if in.Attention != 85.0 {
		t.Errorf("Attention = %v, want 85", in.Attention)
	}
	if in.SocialTime != 5.0 {
		t.Errorf("SocialTime = %v, want 5", in.SocialTime)
	}
	if in.Notifications != 42.0 {
		t.Errorf("Notifications = %v, want exact column value 42", in.Notifications)
	}
}

func TestInputsFromRowHandlingEstimate(t *testing.T) {
	table, m := inferredTable(t,
		[]string{"Attention Span", "Notification Handling"},
		[][]string{{"10-30 minutes", "Muted in the evening"}},
	)

	in := InputsFromRow(table, m, 0)
	if in.Notifications != 10.0 {
		t.Errorf("Notifications = %v, want handling estimate 10", in.Notifications)
	}
}

func TestInputsFromRowDefaults(t *testing.T) {
	// No usable columns at all: attention and social fall to 0, the
	// notification index to its documented default.
	table, m := inferredTable(t,
		[]string{"Favorite Color"},
		[][]string{{"blue"}},
	)

	in := InputsFromRow(table, m, 0)
	if in.Attention != 0 || in.SocialTime != 0 {
		t.Errorf("Attention, SocialTime = %v, %v; want zeros", in.Attention, in.SocialTime)
	}
	if in.Notifications != DefaultNotifications {
		t.Errorf("Notifications = %v, want %v", in.Notifications, DefaultNotifications)
	}
}

func TestInputsFromRowUnparsableDerived(t *testing.T) {
	table, m := inferredTable(t,
		[]string{"Attention Span", "Average Screen Time"},
		[][]string{{"whenever", "no idea"}},
	)

	in := InputsFromRow(table, m, 0)
	if in.Attention != 0 || in.SocialTime != 0 {
		t.Errorf("unparsable derived values should coerce to 0, got %+v", in)
	}
}
