package events

import (
	"encoding/json"
	"time"
)

// EventType identifies the kind of event flowing through the system.
type EventType string

const (
	AnalysisStarted   EventType = "analysis.started"
	AnalysisCompleted EventType = "analysis.completed"
	AnalysisFailed    EventType = "analysis.failed"
	VocabReloaded     EventType = "vocab.reloaded"
	SystemError       EventType = "error"
)

// Envelope is the standard event wrapper published to the event bus.
type Envelope struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	Source     string            `json:"source"`
	AnalysisID string            `json:"analysis_id"`
	Timestamp  time.Time         `json:"timestamp"`
	Data       json.RawMessage   `json:"data"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// AnalysisStartedData is the payload for analysis.started events.
type AnalysisStartedData struct {
	UserID     string `json:"user_id"`
	Language   string `json:"language"`
	AudioBytes int    `json:"audio_bytes"`
}

// AnalysisCompletedData is the payload for analysis.completed events.
type AnalysisCompletedData struct {
	UserID         string  `json:"user_id"`
	Language       string  `json:"language"`
	DurationSec    float64 `json:"duration_sec"`
	WordsPerMinute float64 `json:"words_per_minute"`
	FillerCount    int     `json:"filler_count"`
	ElapsedMs      int64   `json:"elapsed_ms"`
}

// AnalysisFailedData is the payload for analysis.failed events.
type AnalysisFailedData struct {
	UserID string `json:"user_id"`
	Stage  string `json:"stage"`
	Error  string `json:"error"`
}

// VocabReloadedData is the payload for vocab.reloaded events.
type VocabReloadedData struct {
	Language string `json:"language"`
	Words    int    `json:"words"`
}
