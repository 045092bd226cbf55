// Package summary orchestrates the summarization pipeline: sentence
// splitting, term-importance model fitting, sentence scoring and summary
// selection. It owns defaults, logging, metrics and tracing around the
// pure engine in internal/summarizer.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"tldr/internal/domain/entity"
	"tldr/internal/handler/http/requestid"
	"tldr/internal/observability/metrics"
	"tldr/internal/observability/tracing"
	"tldr/internal/summarizer"
)

// Request describes one summarization run.
type Request struct {
	// Text is the UTF-8 document to summarize.
	Text string
	// Vocabulary is the optional reference corpus, one entry per document.
	// When empty, the model is fitted on the document's own sentences.
	Vocabulary []string
	// Percentage is the size target in [1,100]; 0 applies the default.
	Percentage int
	// Mode is the selection policy name; empty applies the default.
	Mode string
}

// Result is the outcome of a summarization run.
type Result struct {
	// Summary is the selected sentences rejoined with single spaces,
	// in original document order.
	Summary string
	// AchievedRatio is the realized fraction in the units of the mode.
	AchievedRatio float64
	// Mode and Percentage are the effective parameters after defaulting.
	Mode       summarizer.Mode
	Percentage int
	// SentenceCount and SelectedCount describe the document and the subset.
	SentenceCount int
	SelectedCount int
}

// Service runs the summarization pipeline.
type Service struct {
	logger            *slog.Logger
	defaultPercentage int
	defaultMode       summarizer.Mode
	parallelism       int
}

// NewService creates a summarization service.
//
// Parameters:
//   - logger: structured logger for per-run diagnostics
//   - defaultPercentage: size target applied when a request leaves it unset
//   - defaultMode: selection policy applied when a request leaves it unset
//   - parallelism: scoring worker bound; values below 2 score sequentially
func NewService(logger *slog.Logger, defaultPercentage int, defaultMode summarizer.Mode, parallelism int) *Service {
	return &Service{
		logger:            logger,
		defaultPercentage: defaultPercentage,
		defaultMode:       defaultMode,
		parallelism:       parallelism,
	}
}

// Summarize extracts a shortened version of the request's document.
//
// The pipeline is split → fit → score → select. An empty document yields
// an empty summary with ratio 0, without error. Invalid percentage or mode
// fails with an error matching entity.ErrInvalidParameter before any
// selection work.
func (s *Service) Summarize(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	requestID := s.getOrCreateRequestID(ctx)
	logger := s.logger.With(slog.String("request_id", requestID))

	percentage := req.Percentage
	if percentage == 0 {
		percentage = s.defaultPercentage
	}
	modeName := req.Mode
	if modeName == "" {
		modeName = string(s.defaultMode)
	}

	mode, err := summarizer.ParseMode(modeName)
	if err != nil {
		logger.Warn("rejected summarize request",
			slog.String("mode", modeName),
			slog.Any("error", err))
		metrics.RecordSummary(modeName, false)
		return nil, err
	}

	// Parameters are validated up front so a rejected request does no
	// splitting, fitting or scoring work.
	if err := summarizer.ValidatePercentage(percentage); err != nil {
		logger.Warn("rejected summarize request",
			slog.Int("percentage", percentage),
			slog.Any("error", err))
		metrics.RecordSummary(string(mode), false)
		return nil, err
	}

	ctx, span := tracing.GetTracer().Start(ctx, "summary.Summarize")
	defer span.End()
	span.SetAttributes(
		attribute.String("summary.mode", string(mode)),
		attribute.Int("summary.percentage", percentage),
	)

	doc := s.split(ctx, req.Text)

	corpus := req.Vocabulary
	usedFallback := false
	if len(corpus) == 0 {
		// No external vocabulary: the document calibrates its own terms.
		corpus = make([]string, doc.Len())
		for i, sentence := range doc.Sentences {
			corpus[i] = sentence.Text
		}
		usedFallback = true
	}

	model := s.fit(ctx, corpus)

	if err := s.score(ctx, doc, model); err != nil {
		logger.Error("sentence scoring failed", slog.Any("error", err))
		metrics.RecordSummary(string(mode), false)
		return nil, fmt.Errorf("scoring sentences: %w", err)
	}

	selection, err := s.selectSpan(ctx, doc, percentage, mode)
	if err != nil {
		logger.Warn("rejected summarize request",
			slog.Int("percentage", percentage),
			slog.Any("error", err))
		metrics.RecordSummary(string(mode), false)
		return nil, err
	}

	texts := make([]string, len(selection.Sentences))
	for i, sentence := range selection.Sentences {
		texts[i] = sentence.Text
	}

	result := &Result{
		Summary:       strings.Join(texts, " "),
		AchievedRatio: selection.AchievedRatio,
		Mode:          mode,
		Percentage:    percentage,
		SentenceCount: doc.Len(),
		SelectedCount: len(selection.Sentences),
	}

	duration := time.Since(start)
	metrics.RecordSummary(string(mode), true)
	metrics.RecordSummarizeDuration(duration)
	metrics.RecordSummaryResult(string(mode), result.AchievedRatio, result.SentenceCount)

	logger.Info("summarized document",
		slog.String("mode", string(mode)),
		slog.Int("percentage", percentage),
		slog.Int("sentences", result.SentenceCount),
		slog.Int("selected", result.SelectedCount),
		slog.Float64("achieved_ratio", result.AchievedRatio),
		slog.Bool("vocabulary_fallback", usedFallback),
		slog.Int("corpus_size", model.CorpusSize()),
		slog.Duration("duration", duration))

	return result, nil
}

// split segments the document inside its own span.
func (s *Service) split(ctx context.Context, text string) entity.Document {
	_, span := tracing.GetTracer().Start(ctx, "summary.split")
	defer span.End()

	doc := summarizer.Split(text)
	span.SetAttributes(attribute.Int("summary.sentences", doc.Len()))
	return doc
}

// fit builds the term-importance model inside its own span.
func (s *Service) fit(ctx context.Context, corpus []string) *summarizer.Model {
	_, span := tracing.GetTracer().Start(ctx, "summary.fit")
	defer span.End()

	model := summarizer.Fit(corpus)
	span.SetAttributes(
		attribute.Int("summary.corpus_size", model.CorpusSize()),
		attribute.Int("summary.terms", model.TermCount()),
	)
	return model
}

// score assigns sentence values inside its own span.
func (s *Service) score(ctx context.Context, doc entity.Document, model *summarizer.Model) error {
	ctx, span := tracing.GetTracer().Start(ctx, "summary.score")
	defer span.End()

	return summarizer.ScoreAll(ctx, doc, model, s.parallelism)
}

// selectSpan runs the selection policy inside its own span.
func (s *Service) selectSpan(ctx context.Context, doc entity.Document, percentage int, mode summarizer.Mode) (entity.Selection, error) {
	_, span := tracing.GetTracer().Start(ctx, "summary.select")
	defer span.End()

	return summarizer.Select(doc, percentage, mode)
}

// getOrCreateRequestID extracts the request ID from the context, generating
// a fresh UUID for runs started outside the HTTP layer (the CLI).
func (s *Service) getOrCreateRequestID(ctx context.Context) string {
	if id := requestid.FromContext(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}
