package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/focusboost/focusboost/internal/config"
	"github.com/focusboost/focusboost/internal/focus"
	"github.com/focusboost/focusboost/internal/output"
	"github.com/focusboost/focusboost/internal/recommend"
	"github.com/focusboost/focusboost/internal/session"
)

// Bucket menus for manual entry. Users pick a rough description and the
// option maps to an internal value; nobody is asked for "attention on a
// 0-100 scale" directly.
var (
	attentionOptions = []promptValue{
		{"Low (I get distracted fast, <15 min at a stretch)", 25.0},
		{"Medium (I last about 30-45 min)", 55.0},
		{"High (I can hold ~1 hour or more)", 85.0},
	}
	screenTimeOptions = []promptValue{
		{"Barely any (<= 30 min)", 0.5},
		{"A little (30-60 min)", 0.75},
		{"Some (1-2 h)", 1.5},
		{"Moderate (2-3 h)", 2.5},
		{"A lot (> 3 h)", 3.5},
	}
	notificationOptions = []promptValue{
		{"Silenced (do not disturb / focus mode)", 10.0},
		{"Managed (smart summary / essentials only)", 20.0},
		{"Normal (no special handling)", 30.0},
		{"Constant (they interrupted me all the time)", 60.0},
	}
	categoryOptions = []string{
		"Social (Instagram, TikTok, X, etc.)",
		"Streaming (YouTube, Netflix, etc.)",
		"Gaming",
		"Messaging (WhatsApp, Messenger)",
		"Education/Study",
		"Productivity/Tasks",
		"Other / Not sure",
	}
	daypartOptions = []string{
		"Morning (6-12)",
		"Afternoon (12-18)",
		"Evening (18-22)",
		"Night (22-6)",
	}
)

type promptValue struct {
	label string
	value float64
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Enter today's usage manually and get recommendations",
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	p := NewPrompter()
	p.Say("== Manual entry (today) ==")

	attention, attLabel, ok := chooseValue(p, "How would you describe your attention today?", attentionOptions)
	if !ok {
		return nil
	}
	socialTime, socialLabel, ok := chooseValue(p, "How long did you use distracting apps today (in total)?", screenTimeOptions)
	if !ok {
		return nil
	}
	notifications, notifLabel, ok := chooseValue(p, "How were your notifications today?", notificationOptions)
	if !ok {
		return nil
	}

	category, ok := p.Choose("What did you use the most today?", categoryOptions)
	if !ok {
		category = "Other / Not sure"
	}

	daypart, ok := p.Choose("When did you use your phone the most today?", daypartOptions)
	if !ok {
		daypart = ""
	}
	nocturnal := strings.HasPrefix(daypart, "Night")

	in := focus.Inputs{
		Attention:     attention,
		SocialTime:    socialTime,
		Notifications: notifications,
	}
	score := focus.NewScorer(cfg.Weights).Compute(in)
	output.Report(os.Stdout, score, in, cfg.Thresholds.GoodScore)

	var blocks *session.Blocks
	var adherence *float64
	if p.AskYes("Do you want to log your study blocks for today?") {
		blocks = trackBlocks(p, cfg.Tracking.MaxBlocks)
		if blocks != nil {
			a := session.Adherence(blocks.Planned, blocks.Done)
			adherence = &a
		}
	}

	flags := recommend.Flags{
		Nocturnal: nocturnal,
		NotifHigh: notifications >= cfg.Thresholds.NotifHigh,
		SocialHigh: socialTime > cfg.Thresholds.SocialHigh ||
			strings.Contains(strings.ToLower(category), "social"),
		LowAttention: attention < cfg.Thresholds.LowAttention,
		AdherenceLow: adherence != nil && *adherence < cfg.Thresholds.AdherenceLow,
	}
	output.Recommendations(os.Stdout, recommend.Recommend(flags))

	record := session.Build(session.Params{
		Mode:               session.ModeManual,
		Inputs:             in,
		Score:              score,
		AppCategory:        category,
		Nocturnal:          nocturnal,
		Blocks:             blocks,
		AttentionLabel:     attLabel,
		SocialLabel:        socialLabel,
		NotificationsLabel: notifLabel,
		Daypart:            daypart,
	})
	if err := appendSession(cfg, &record); err != nil {
		return err
	}
	p.Success("Session logged.")
	return nil
}

func chooseValue(p *Prompter, prompt string, options []promptValue) (float64, string, bool) {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.label
	}
	chosen, ok := p.Choose(prompt, labels)
	if !ok {
		return 0, "", false
	}
	for _, o := range options {
		if o.label == chosen {
			return o.value, o.label, true
		}
	}
	return 0, "", false
}

// trackBlocks asks for planned and completed study blocks. Returns nil
// when the user cancels midway.
func trackBlocks(p *Prompter, maxBlocks int) *session.Blocks {
	p.Say("\n== Study-block tracking (time-boxing) ==")
	zero := 0

	planned, ok := p.AskInt(fmt.Sprintf("How many blocks did you plan today? (0-%d):", maxBlocks), 0, maxBlocks, &zero)
	if !ok {
		return nil
	}
	done, ok := p.AskInt(fmt.Sprintf("How many did you finish without interruptions? (0-%d):", maxBlocks), 0, maxBlocks, &zero)
	if !ok {
		return nil
	}

	b := &session.Blocks{Planned: planned, Done: done}
	p.Say("Adherence: %.1f%%", session.Adherence(b.Planned, b.Done))
	return b
}
