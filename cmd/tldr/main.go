// Package main provides a CLI command for extractive text summarization.
// Usage: tldr --file doc.txt [--vocabulary corpus.csv] [--percentage N] [--mode value|length|best] [--output json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tldr/internal/config"
	"tldr/internal/infra/vocabulary"
	"tldr/internal/usecase/summary"
)

// SummaryOutput represents the JSON output format for summarization results.
type SummaryOutput struct {
	Summary       string  `json:"summary"`
	AchievedRatio float64 `json:"achieved_ratio"`
	Mode          string  `json:"mode"`
	Percentage    int     `json:"percentage"`
	SentenceCount int     `json:"sentence_count"`
	SelectedCount int     `json:"selected_count"`
}

func main() {
	var (
		filePath     string
		vocabPath    string
		percentage   int
		mode         string
		outputFormat string
	)

	flag.StringVar(&filePath, "file", "", "Path to the UTF-8 text file to summarize (required)")
	flag.StringVar(&vocabPath, "vocabulary", "", "Path to a CSV vocabulary corpus, one reference document per row")
	flag.IntVar(&percentage, "percentage", 0, "Size target between 1 and 100 (default from TLDR_PERCENTAGE or 30)")
	flag.StringVar(&mode, "mode", "", "Selection mode: value, length or best (default from TLDR_MODE or best)")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: tldr --file doc.txt [--vocabulary corpus.csv] [--percentage N] [--mode value|length|best] [--output json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  tldr --file article.txt")
		fmt.Fprintln(os.Stderr, "  tldr --file article.txt --percentage 20 --mode length")
		fmt.Fprintln(os.Stderr, "  tldr --file article.txt --vocabulary corpus.csv --output json")
		os.Exit(1)
	}

	if outputFormat != "text" && outputFormat != "json" {
		fmt.Fprintf(os.Stderr, "Error: Invalid output format '%s' (must be 'text' or 'json')\n", outputFormat)
		os.Exit(1)
	}

	logger := initLogger()

	engineCfg, warnings := config.LoadEngineConfig()
	for _, warning := range warnings {
		logger.Warn("engine configuration", slog.String("warning", warning))
	}

	text, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("failed to read input file", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Failed to read %s: %v\n", filePath, err)
		os.Exit(1)
	}

	var corpus []string
	if vocabPath != "" {
		corpus, err = vocabulary.LoadCSV(vocabPath)
		if err != nil {
			logger.Error("failed to load vocabulary", slog.Any("error", err))
			fmt.Fprintf(os.Stderr, "Error: Failed to load vocabulary: %v\n", err)
			os.Exit(1)
		}
	}

	service := summary.NewService(logger, engineCfg.DefaultPercentage, engineCfg.DefaultMode, engineCfg.ScoringParallelism)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := service.Summarize(ctx, summary.Request{
		Text:       string(text),
		Vocabulary: corpus,
		Percentage: percentage,
		Mode:       mode,
	})
	if err != nil {
		logger.Error("summarize failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Summarize failed: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		outputJSON(result)
	} else {
		outputText(result)
	}
}

// outputText prints summarization results in human-readable format.
func outputText(result *summary.Result) {
	fmt.Println(result.Summary)
	fmt.Fprintf(os.Stderr, "\nMode: %s  Target: %d%%  Achieved: %.1f%%  Sentences: %d of %d\n",
		result.Mode, result.Percentage, result.AchievedRatio*100,
		result.SelectedCount, result.SentenceCount)
}

// outputJSON prints summarization results in JSON format.
func outputJSON(result *summary.Result) {
	output := SummaryOutput{
		Summary:       result.Summary,
		AchievedRatio: result.AchievedRatio,
		Mode:          string(result.Mode),
		Percentage:    result.Percentage,
		SentenceCount: result.SentenceCount,
		SelectedCount: result.SelectedCount,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}

// initLogger initializes a structured logger writing to stderr so that
// summary output on stdout stays clean.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}
