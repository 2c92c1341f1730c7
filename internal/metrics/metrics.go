// Package metrics provides Prometheus instrumentation for the finder
// engine: search latency and batch sizes, swipe throughput by action, and
// match creation counts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// SearchDuration records candidate-selection latency in seconds.
	SearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "finder_search_duration_seconds",
		Help:    "Candidate selection latency in seconds",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})

	// CandidatesReturned records how many candidates a search batch held.
	CandidatesReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "finder_candidates_returned",
		Help:    "Number of candidates returned per search batch",
		Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
	})

	// SwipesTotal counts recorded swipe decisions, labeled by action:
	// "like" or "skip".
	SwipesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "finder_swipes_total",
		Help: "Total number of swipe decisions recorded",
	}, []string{"action"})

	// MatchesTotal counts newly created mutual matches.
	MatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "finder_matches_total",
		Help: "Total number of mutual matches created",
	})

	// UnscoreableProfiles counts candidates skipped because their rank
	// could not be normalized.
	UnscoreableProfiles = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "finder_unscoreable_profiles_total",
		Help: "Candidates dropped from ranking due to invalid rank data",
	})
)

func init() {
	prometheus.MustRegister(
		SearchDuration,
		CandidatesReturned,
		SwipesTotal,
		MatchesTotal,
		UnscoreableProfiles,
	)
}
