package session

import (
	"time"

	"github.com/focusboost/focusboost/internal/focus"
	"github.com/focusboost/focusboost/internal/recommend"
)

// Modes a scoring session can run in.
const (
	ModeDataset = "dataset"
	ModeManual  = "manual"
)

// Record is the immutable log entry written once per completed scoring
// session. Optional fields are pointers: nil means the session did not
// produce that value (for example, no block tracking was done).
type Record struct {
	ID            string    `json:"id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Mode          string    `json:"mode"`
	Attention     float64   `json:"attention"`
	SocialTime    float64   `json:"social_time"`
	Notifications float64   `json:"notifications"`
	AppCategory   string    `json:"app_category"`
	Nocturnal     bool      `json:"nocturnal"`
	FocusScore    float64   `json:"focus_score"`
	UsageLabel    string    `json:"usage_label"`

	PlannedBlocks *int     `json:"planned_blocks,omitempty"`
	DoneBlocks    *int     `json:"done_blocks,omitempty"`
	Adherence     *float64 `json:"adherence,omitempty"`

	AttentionLabel     *string `json:"attention_label,omitempty"`
	SocialLabel        *string `json:"social_label,omitempty"`
	NotificationsLabel *string `json:"notifications_label,omitempty"`
	Daypart            *string `json:"daypart,omitempty"`
}

// Blocks holds the outcome of one day of study-block tracking.
type Blocks struct {
	Planned int
	Done    int
}

// Adherence is the percentage of planned blocks completed; 0 when none
// were planned.
func Adherence(planned, done int) float64 {
	if planned == 0 {
		return 0
	}
	return 100.0 * float64(done) / float64(planned)
}

// Params carries everything a finished session produced.
type Params struct {
	Mode        string
	Inputs      focus.Inputs
	Score       float64
	AppCategory string
	Nocturnal   bool

	// Optional block tracking.
	Blocks *Blocks

	// Optional human-readable bucket labels from manual entry.
	AttentionLabel     string
	SocialLabel        string
	NotificationsLabel string
	Daypart            string
}

// Build assembles the log record. The builder stamps the time and derives
// the usage label; it performs no I/O, persistence belongs to the store.
func Build(p Params) Record {
	r := Record{
		Timestamp:     time.Now(),
		Mode:          p.Mode,
		Attention:     p.Inputs.Attention,
		SocialTime:    p.Inputs.SocialTime,
		Notifications: p.Inputs.Notifications,
		AppCategory:   p.AppCategory,
		Nocturnal:     p.Nocturnal,
		FocusScore:    p.Score,
		UsageLabel:    recommend.ClassifyUsage(p.Inputs.SocialTime),
	}

	if p.Blocks != nil {
		planned, done := p.Blocks.Planned, p.Blocks.Done
		adherence := Adherence(planned, done)
		r.PlannedBlocks = &planned
		r.DoneBlocks = &done
		r.Adherence = &adherence
	}

	r.AttentionLabel = optional(p.AttentionLabel)
	r.SocialLabel = optional(p.SocialLabel)
	r.NotificationsLabel = optional(p.NotificationsLabel)
	r.Daypart = optional(p.Daypart)

	return r
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
