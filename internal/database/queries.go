package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/focusboost/focusboost/internal/session"
)

// InsertSession appends a session record to the log. A record ID is
// assigned when the caller has not set one.
func (db *DB) InsertSession(ctx context.Context, r *session.Record) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO sessions (
			id, timestamp, mode, attention, social_time, notifications,
			app_category, nocturnal, focus_score, usage_label,
			planned_blocks, done_blocks, adherence,
			attention_label, social_label, notifications_label, daypart,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID, r.Timestamp, r.Mode, r.Attention, r.SocialTime, r.Notifications,
		r.AppCategory, r.Nocturnal, r.FocusScore, r.UsageLabel,
		NullInt64(r.PlannedBlocks), NullInt64(r.DoneBlocks), NullFloat64(r.Adherence),
		NullString(r.AttentionLabel), NullString(r.SocialLabel),
		NullString(r.NotificationsLabel), NullString(r.Daypart),
		time.Now(),
	)
	return err
}

// ListSessions returns the most recent sessions, newest first. A limit of
// 0 or less returns everything.
func (db *DB) ListSessions(ctx context.Context, limit int) ([]session.Record, error) {
	query := `
		SELECT id, timestamp, mode, attention, social_time, notifications,
		       app_category, nocturnal, focus_score, usage_label,
		       planned_blocks, done_blocks, adherence,
		       attention_label, social_label, notifications_label, daypart
		FROM sessions
		ORDER BY timestamp DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []session.Record
	for rows.Next() {
		r, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, r)
	}
	return sessions, rows.Err()
}

// GetStats computes aggregate statistics over the whole log.
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN mode = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN mode = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(AVG(focus_score), 0),
		       COALESCE(SUM(CASE WHEN usage_label = 'low' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN usage_label = 'moderate' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN usage_label = 'high' THEN 1 ELSE 0 END), 0)
		FROM sessions
	`, session.ModeDataset, session.ModeManual).Scan(
		&stats.TotalSessions, &stats.DatasetSessions, &stats.ManualSessions,
		&stats.AvgFocusScore, &stats.LowUsage, &stats.ModerateUsage, &stats.HighUsage,
	)
	if err != nil {
		return nil, err
	}

	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(adherence), 0)
		FROM sessions WHERE adherence IS NOT NULL
	`).Scan(&stats.TrackedSessions, &stats.AvgAdherence)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func scanSession(rows *sql.Rows) (session.Record, error) {
	var r session.Record
	var planned, done sql.NullInt64
	var adherence sql.NullFloat64
	var attLabel, socLabel, notifLabel, daypart sql.NullString

	err := rows.Scan(
		&r.ID, &r.Timestamp, &r.Mode, &r.Attention, &r.SocialTime, &r.Notifications,
		&r.AppCategory, &r.Nocturnal, &r.FocusScore, &r.UsageLabel,
		&planned, &done, &adherence,
		&attLabel, &socLabel, &notifLabel, &daypart,
	)
	if err != nil {
		return r, err
	}

	r.PlannedBlocks = IntPtr(planned)
	r.DoneBlocks = IntPtr(done)
	r.Adherence = Float64Ptr(adherence)
	r.AttentionLabel = StringPtr(attLabel)
	r.SocialLabel = StringPtr(socLabel)
	r.NotificationsLabel = StringPtr(notifLabel)
	r.Daypart = StringPtr(daypart)
	return r, nil
}
