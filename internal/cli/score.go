package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/focusboost/focusboost/internal/config"
	"github.com/focusboost/focusboost/internal/database"
	"github.com/focusboost/focusboost/internal/dataset"
	"github.com/focusboost/focusboost/internal/focus"
	"github.com/focusboost/focusboost/internal/matcher"
	"github.com/focusboost/focusboost/internal/output"
	"github.com/focusboost/focusboost/internal/recommend"
	"github.com/focusboost/focusboost/internal/schema"
	"github.com/focusboost/focusboost/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Find a survey record and compute its focus score",
	Long: `score loads the survey dataset, keeps only rows matching the configured
gate conditions (by default: students on smartphones), and helps you find
your record either by number or through guided selection by category and
attention level. The matched record is scored, reported, and logged.`,
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	table, err := dataset.LoadCSV(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("could not load dataset (try 'focusboost today' for manual entry): %w", err)
	}

	filtered, mapping := schema.Infer(table, cfg.Dataset.Gates)
	filtered.EnsureIDs()

	p := NewPrompter()
	if filtered.Len() == 0 {
		p.Say("No records in the target group. Use 'focusboost today' to enter your own data.")
		return nil
	}
	p.Say("Loaded %d records from the target group.", filtered.Len())

	choice, ok := p.Choose("How do you want to find your record?", []string{
		"By record number",
		"Guided (category + attention level)",
	})
	if !ok {
		return nil
	}

	var idx int
	if strings.HasPrefix(choice, "By record") {
		idx, ok = selectDirect(p, filtered)
	} else {
		idx, ok = selectGuided(p, filtered, mapping)
	}
	if !ok {
		return nil
	}

	in := focus.InputsFromRow(filtered, mapping, idx)
	score := focus.NewScorer(cfg.Weights).Compute(in)
	output.Report(os.Stdout, score, in, cfg.Thresholds.GoodScore)

	category := ""
	if mapping.Category != "" {
		cell, _ := filtered.Cell(idx, mapping.Category)
		category = matcher.CategoryLabel(cell)
	}

	flags := recommend.Flags{
		NotifHigh: in.Notifications >= cfg.Thresholds.NotifHigh,
		SocialHigh: in.SocialTime > cfg.Thresholds.SocialHigh ||
			strings.Contains(strings.ToLower(category), "social"),
		LowAttention: in.Attention < cfg.Thresholds.LowAttention,
	}
	output.Recommendations(os.Stdout, recommend.Recommend(flags))

	record := session.Build(session.Params{
		Mode:        session.ModeDataset,
		Inputs:      in,
		Score:       score,
		AppCategory: category,
	})
	if err := appendSession(cfg, &record); err != nil {
		return err
	}
	p.Success("Session logged.")
	return nil
}

// selectDirect asks for a bounded row index, the simple selection mode.
func selectDirect(p *Prompter, t *dataset.Table) (int, bool) {
	p.Say("Enter a record number between 0 and %d.", t.Len()-1)
	for {
		raw, ok := p.AskInt("Record number:", 0, t.Len()-1, nil)
		if !ok {
			return 0, false
		}
		idx, err := matcher.SelectByIndex(t, raw)
		if err == nil {
			return idx, true
		}
		p.Say("Invalid record number. Try again.")
	}
}

// selectGuided walks category and attention menus, shows a shortlist with
// stable FB-IDs, and resolves the one the user picks.
func selectGuided(p *Prompter, t *dataset.Table, m schema.Mapping) (int, bool) {
	category := ""
	if cats := matcher.TopCategories(t, m); len(cats) > 0 {
		chosen, ok := p.Choose("Pick your main category (the one you used most today):", cats)
		if !ok {
			return 0, false
		}
		category = chosen
	}

	bandChoice, ok := p.Choose("Pick your approximate attention level today:", []string{
		"low (0-39)",
		"mid (40-69)",
		"high (70-100)",
	})
	if !ok {
		return 0, false
	}
	band := matcher.Band(strings.Fields(bandChoice)[0])

	cands := matcher.Candidates(t, m, category, band)
	if len(cands) == 0 {
		p.Say("No matches found. Try another category, or use 'focusboost today'.")
		return 0, false
	}

	p.Say("\nFound these options. Pick your FB-ID:")
	if err := output.Table(cands); err != nil {
		p.Say("%v", err)
	}

	for {
		id, ok := p.AskInt("Your FB-ID:", 0, 1<<30, nil)
		if !ok {
			return 0, false
		}
		idx, err := matcher.ResolveID(t, id)
		if err == nil {
			return idx, true
		}
		p.Say("Unknown FB-ID. Try again.")
	}
}

// appendSession opens the session log and appends one record.
func appendSession(cfg *config.Config, r *session.Record) error {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.InsertSession(context.Background(), r); err != nil {
		return fmt.Errorf("failed to log session: %w", err)
	}
	return nil
}
