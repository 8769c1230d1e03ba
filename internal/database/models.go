package database

import "database/sql"

// Stats represents aggregate statistics over the session log
type Stats struct {
	TotalSessions   int     `json:"total_sessions"`
	DatasetSessions int     `json:"dataset_sessions"`
	ManualSessions  int     `json:"manual_sessions"`
	AvgFocusScore   float64 `json:"avg_focus_score"`
	LowUsage        int     `json:"low_usage"`
	ModerateUsage   int     `json:"moderate_usage"`
	HighUsage       int     `json:"high_usage"`
	AvgAdherence    float64 `json:"avg_adherence_pct"`
	TrackedSessions int     `json:"tracked_sessions"`
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullFloat64 is a helper to convert *float64 to sql.NullFloat64
func NullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// NullInt64 is a helper to convert *int to sql.NullInt64
func NullInt64(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// Float64Ptr converts sql.NullFloat64 to *float64
func Float64Ptr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}

// IntPtr converts sql.NullInt64 to *int
func IntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}
