package metrics

import "time"

// RecordSummary records the outcome of a summarization run.
// Status is either "success" or "failure".
func RecordSummary(mode string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	SummariesTotal.WithLabelValues(mode, status).Inc()
}

// RecordSummarizeDuration records the end-to-end time of a summarization run.
func RecordSummarizeDuration(duration time.Duration) {
	SummarizeDuration.Observe(duration.Seconds())
}

// RecordSummaryResult records the realized ratio and document size for a
// successful run. Ratios are observed per mode because the three policies
// report in different units (length, value and count fractions).
func RecordSummaryResult(mode string, achievedRatio float64, sentenceCount int) {
	SummaryAchievedRatio.WithLabelValues(mode).Observe(achievedRatio)
	DocumentSentences.Observe(float64(sentenceCount))
}
