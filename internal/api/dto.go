package api

import (
	"github.com/speechlens/speechlens/internal/analysis"
	"github.com/speechlens/speechlens/internal/stats"
)

// AnalysisResponse is the API response for a completed analysis.
type AnalysisResponse struct {
	ID              string                         `json:"id"`
	UserID          string                         `json:"user_id,omitempty"`
	Language        string                         `json:"language"`
	Metrics         *analysis.SpeechMetrics        `json:"metrics"`
	TextStructure   analysis.TextStructureReport   `json:"text_structure"`
	Recommendations string                         `json:"recommendations,omitempty"`
}

// FillerRequest is the request body for the standalone filler counter.
type FillerRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// FillerResponse wraps the filler report with the resolved language.
type FillerResponse struct {
	Language string                `json:"language"`
	Fillers  analysis.FillerReport `json:"fillers"`
}

// TextStructureRequest is the request body for the standalone text
// structure analysis.
type TextStructureRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// TextStructureResponse wraps the structure report with the resolved
// language.
type TextStructureResponse struct {
	Language  string                       `json:"language"`
	Structure analysis.TextStructureReport `json:"structure"`
}

// UserStatsResponse is the API response for per-user statistics.
type UserStatsResponse struct {
	UserID           string          `json:"user_id"`
	TotalAnalyses    int             `json:"total_analyses"`
	TotalDurationSec float64         `json:"total_duration_sec"`
	AverageWPM       float64         `json:"average_wpm"`
	AverageFillers   float64         `json:"average_fillers"`
	LastAnalysisDate string          `json:"last_analysis_date,omitempty"`
	History          []stats.Summary `json:"history"`
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
