package stats

import (
	"context"
	"errors"
)

// HistoryLimit caps how many past analyses are retained per user.
const HistoryLimit = 10

// ErrNotFound signals that no stats exist for the requested user.
var ErrNotFound = errors.New("stats: user not found")

// Summary is one completed analysis as kept in a user's history.
type Summary struct {
	Date        string  `json:"date"`
	WPM         float64 `json:"wpm"`
	Fillers     int     `json:"fillers"`
	DurationSec float64 `json:"duration_sec"`
}

// UserStats accumulates per-user totals plus a bounded history of the
// most recent analyses, oldest first. The totals cover every analysis
// ever recorded, not just the retained history, so lifetime averages
// stay exact after old entries are evicted.
type UserStats struct {
	UserID           string    `json:"user_id"`
	TotalAnalyses    int       `json:"total_analyses"`
	TotalDurationSec float64   `json:"total_duration_sec"`
	TotalWPM         float64   `json:"total_wpm"`
	TotalFillers     int       `json:"total_fillers"`
	LastAnalysisDate string    `json:"last_analysis_date"`
	History          []Summary `json:"history"`
}

// Append adds a summary to the history, evicting the oldest entry once
// the limit is reached, and updates the running totals.
func (u *UserStats) Append(s Summary) {
	u.TotalAnalyses++
	u.TotalDurationSec += s.DurationSec
	u.TotalWPM += s.WPM
	u.TotalFillers += s.Fillers
	u.LastAnalysisDate = s.Date
	u.History = append(u.History, s)
	if len(u.History) > HistoryLimit {
		u.History = u.History[len(u.History)-HistoryLimit:]
	}
}

// Repository stores per-user speech statistics.
type Repository interface {
	// Get returns the stats for a user, or ErrNotFound.
	Get(ctx context.Context, userID string) (*UserStats, error)
	// Record appends one analysis summary to the user's stats,
	// creating the record on first use.
	Record(ctx context.Context, userID string, s Summary) error
}
