// Package observability exposes Prometheus instrumentation for the crawl.
package observability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pagesFetchedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jognote",
		Subsystem: "crawl",
		Name:      "pages_fetched_total",
		Help:      "Pages successfully fetched from the origin, by page type.",
	}, []string{"page"})
	fetchRetriesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jognote",
		Subsystem: "crawl",
		Name:      "fetch_retries_total",
		Help:      "Transient fetch failures that were retried, by page type.",
	}, []string{"page"})
	fetchFailuresCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jognote",
		Subsystem: "crawl",
		Name:      "fetch_failures_total",
		Help:      "Fetches that failed after exhausting retries, by page type.",
	}, []string{"page"})
	workoutsParsedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jognote",
		Subsystem: "parse",
		Name:      "workouts_parsed_total",
		Help:      "Workout records extracted from day pages, by activity kind.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(pagesFetchedCounter, fetchRetriesCounter, fetchFailuresCounter, workoutsParsedCounter)
}

// RecordPageFetched counts a successful origin fetch.
func RecordPageFetched(page string) {
	pagesFetchedCounter.WithLabelValues(page).Inc()
}

// RecordFetchRetry counts a retried transient failure.
func RecordFetchRetry(page string) {
	fetchRetriesCounter.WithLabelValues(page).Inc()
}

// RecordFetchFailure counts a fetch given up on after retries.
func RecordFetchFailure(page string) {
	fetchFailuresCounter.WithLabelValues(page).Inc()
}

// RecordWorkoutParsed counts one extracted workout record.
func RecordWorkoutParsed(kind string) {
	workoutsParsedCounter.WithLabelValues(kind).Inc()
}

// Handler routes the metrics endpoint. Long crawls run for hours at the
// politeness delay, so the exporter can optionally serve this while working.
func Handler() http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	return r
}
