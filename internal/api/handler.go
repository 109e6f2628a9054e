package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/pitabwire/util"
	"github.com/rs/xid"

	"github.com/speechlens/speechlens/internal/analysis"
	"github.com/speechlens/speechlens/internal/audio"
	"github.com/speechlens/speechlens/internal/recommend"
	"github.com/speechlens/speechlens/internal/stats"
	"github.com/speechlens/speechlens/pkg/events"
)

const maxRequestBodySize = 1 << 20 // 1 MiB, JSON endpoints only

// Handler provides REST endpoints for speech analysis.
type Handler struct {
	analyzer      *analysis.Analyzer
	stats         stats.Repository
	recommender   *recommend.Client
	publisher     *events.Publisher
	maxAudioBytes int64
}

// NewHandler creates a speech analysis API handler. The recommender
// and publisher may be nil; the matching features are then skipped.
func NewHandler(analyzer *analysis.Analyzer, repo stats.Repository, rec *recommend.Client, pub *events.Publisher, maxAudioBytes int64) *Handler {
	if maxAudioBytes <= 0 {
		maxAudioBytes = 20 << 20
	}
	return &Handler{
		analyzer:      analyzer,
		stats:         repo,
		recommender:   rec,
		publisher:     pub,
		maxAudioBytes: maxAudioBytes,
	}
}

// RegisterRoutes registers all analysis API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/analyses", h.Analyze)
	mux.HandleFunc("POST /api/v1/fillers", h.CountFillers)
	mux.HandleFunc("POST /api/v1/text-structure", h.TextStructure)
	mux.HandleFunc("GET /api/v1/users/{id}/stats", h.UserStats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// Analyze handles POST /api/v1/analyses. The request is multipart form
// data with an "audio" file part plus "transcript", optional
// "language" and optional "user_id" fields.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxAudioBytes)

	if err := r.ParseMultipartForm(h.maxAudioBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request too large or malformed")
		return
	}

	file, _, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(io.LimitReader(file, h.maxAudioBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read audio")
		return
	}

	transcript := r.FormValue("transcript")
	userID := r.FormValue("user_id")
	lang := r.FormValue("language")
	if lang == "" {
		lang = analysis.DetectLanguage(transcript)
	}

	analysisID := xid.New().String()
	if h.publisher != nil {
		_ = h.publisher.Emit(ctx, events.AnalysisStarted, analysisID, &events.AnalysisStartedData{
			UserID:     userID,
			Language:   lang,
			AudioBytes: len(payload),
		})
	}

	started := time.Now()
	samples, rate, err := audio.LoadBytes(payload)
	if err != nil {
		h.emitFailure(r, analysisID, userID, "decode", err)
		writeError(w, http.StatusUnprocessableEntity, "undecodable audio: "+err.Error())
		return
	}

	metrics, err := h.analyzer.Analyze(samples, rate, transcript, lang)
	if err != nil {
		h.emitFailure(r, analysisID, userID, "analyze", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	structure := h.analyzer.AnalyzeTextStructure(transcript, lang)

	resp := AnalysisResponse{
		ID:            analysisID,
		UserID:        userID,
		Language:      lang,
		Metrics:       metrics,
		TextStructure: structure,
	}

	if h.recommender != nil {
		prompt := recommend.BuildPrompt(transcript, metrics, structure, lang)
		recs, rerr := h.recommender.Recommend(ctx, prompt, lang)
		if rerr != nil {
			slog.WarnContext(ctx, "recommendations unavailable",
				slog.String("analysis_id", analysisID), slog.String("error", rerr.Error()))
			recs = recommend.Fallback(lang)
		}
		resp.Recommendations = recs
	}

	if h.stats != nil && userID != "" {
		summary := stats.Summary{
			Date:        time.Now().UTC().Format(time.RFC3339),
			WPM:         metrics.WordsPerMinute,
			Fillers:     metrics.Fillers.Total,
			DurationSec: metrics.DurationSec,
		}
		if serr := h.stats.Record(ctx, userID, summary); serr != nil {
			util.Log(ctx).WithError(serr).Error("recording user stats")
		}
	}

	if h.publisher != nil {
		_ = h.publisher.Emit(ctx, events.AnalysisCompleted, analysisID, &events.AnalysisCompletedData{
			UserID:         userID,
			Language:       lang,
			DurationSec:    metrics.DurationSec,
			WordsPerMinute: metrics.WordsPerMinute,
			FillerCount:    metrics.Fillers.Total,
			ElapsedMs:      time.Since(started).Milliseconds(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) emitFailure(r *http.Request, analysisID, userID, stage string, err error) {
	if h.publisher == nil {
		return
	}
	_ = h.publisher.Emit(r.Context(), events.AnalysisFailed, analysisID, &events.AnalysisFailedData{
		UserID: userID,
		Stage:  stage,
		Error:  err.Error(),
	})
}

// CountFillers handles POST /api/v1/fillers
func (h *Handler) CountFillers(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req FillerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang := req.Language
	if lang == "" {
		lang = analysis.DetectLanguage(req.Text)
	}

	writeJSON(w, http.StatusOK, FillerResponse{
		Language: lang,
		Fillers:  h.analyzer.CountFillers(req.Text, lang),
	})
}

// TextStructure handles POST /api/v1/text-structure
func (h *Handler) TextStructure(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req TextStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang := req.Language
	if lang == "" {
		lang = analysis.DetectLanguage(req.Text)
	}

	writeJSON(w, http.StatusOK, TextStructureResponse{
		Language:  lang,
		Structure: h.analyzer.AnalyzeTextStructure(req.Text, lang),
	})
}

// UserStats handles GET /api/v1/users/{id}/stats
func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		writeError(w, http.StatusNotImplemented, "stats storage not configured")
		return
	}

	id := r.PathValue("id")
	u, err := h.stats.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, stats.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	resp := UserStatsResponse{
		UserID:           u.UserID,
		TotalAnalyses:    u.TotalAnalyses,
		TotalDurationSec: u.TotalDurationSec,
		LastAnalysisDate: u.LastAnalysisDate,
		History:          u.History,
	}
	// Averages come from the lifetime totals, not the capped history.
	if u.TotalAnalyses > 0 {
		n := float64(u.TotalAnalyses)
		resp.AverageWPM = math.Round(u.TotalWPM/n*10) / 10
		resp.AverageFillers = math.Round(float64(u.TotalFillers)/n*10) / 10
	}
	writeJSON(w, http.StatusOK, resp)
}
