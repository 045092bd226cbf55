package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tldr/internal/domain/entity"
	"tldr/internal/handler/http/respond"
	"tldr/internal/usecase/summary"
)

// SummarizeRequest is the JSON request body for POST /api/summarize.
type SummarizeRequest struct {
	// Text is the UTF-8 document to summarize.
	Text string `json:"text"`
	// Vocabulary is the optional reference corpus, one string per document.
	Vocabulary []string `json:"vocabulary,omitempty"`
	// Percentage is the size target in [1,100]; omitted applies the default.
	Percentage int `json:"percentage,omitempty"`
	// Mode is the selection policy: value, length or best; omitted applies
	// the default.
	Mode string `json:"mode,omitempty"`
}

// SummarizeResponse is the JSON response body for POST /api/summarize.
type SummarizeResponse struct {
	Summary       string  `json:"summary"`
	AchievedRatio float64 `json:"achieved_ratio"`
	Mode          string  `json:"mode"`
	Percentage    int     `json:"percentage"`
	SentenceCount int     `json:"sentence_count"`
	SelectedCount int     `json:"selected_count"`
}

// SummarizeHandler handles POST /api/summarize.
type SummarizeHandler struct {
	Service *summary.Service
}

// ServeHTTP decodes the request, runs the summarization pipeline and
// writes the result. Invalid parameters answer 400, oversized bodies 413,
// anything unexpected 500 with a sanitized message.
func (h *SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.JSON(w, http.StatusMethodNotAllowed,
			map[string]string{"error": "method not allowed"})
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respond.Error(w, http.StatusRequestEntityTooLarge,
				fmt.Errorf("request body exceeds %d bytes", maxBytesErr.Limit))
			return
		}
		respond.Error(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	result, err := h.Service.Summarize(r.Context(), summary.Request{
		Text:       req.Text,
		Vocabulary: req.Vocabulary,
		Percentage: req.Percentage,
		Mode:       req.Mode,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidParameter) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, SummarizeResponse{
		Summary:       result.Summary,
		AchievedRatio: result.AchievedRatio,
		Mode:          string(result.Mode),
		Percentage:    result.Percentage,
		SentenceCount: result.SentenceCount,
		SelectedCount: result.SelectedCount,
	})
}

// EngineCheck adapts the summarization service to the health handler by
// running a tiny canned document through the whole pipeline.
type EngineCheck struct {
	Service *summary.Service
}

// Check runs the probe summarization and reports any pipeline failure.
func (c EngineCheck) Check() error {
	_, err := c.Service.Summarize(context.Background(), summary.Request{
		Text: "Probe sentence one. Probe sentence two.",
	})
	return err
}
