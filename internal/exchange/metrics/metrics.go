// Package metrics holds the Prometheus collectors of the gift exchange
// service. Collectors register on the default registry via promauto and are
// served by Handler.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/assign"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeLocked       = "locked"
	OutcomeInsufficient = "insufficient_participants"
	OutcomeExhausted    = "attempts_exhausted"
	OutcomeError        = "error"
)

var (
	generationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "giftexchange_assignment_generations_total",
		Help: "Assignment generation requests by outcome",
	}, []string{"outcome"})

	generationAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "giftexchange_assignment_generation_attempts",
		Help:    "Construction attempts needed per successful generation",
		Buckets: []float64{1, 2, 5, 10, 100, 1000, 10000},
	})

	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "giftexchange_assignment_generation_duration_seconds",
		Help:    "Assignment generation latency in seconds, including storage",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	})

	generatedPairs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "giftexchange_assignment_cycle_length",
		Help:    "Number of giver -> receiver pairs per generated cycle",
		Buckets: []float64{2, 3, 5, 10, 25, 50, 100, 250},
	})

	lockChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "giftexchange_assignment_lock_changes_total",
		Help: "Assignment lock flag changes by resulting state",
	}, []string{"state"})
)

// Outcome classifies a generation error into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, assign.ErrExchangeLocked):
		return OutcomeLocked
	case errors.Is(err, assign.ErrInsufficientParticipants):
		return OutcomeInsufficient
	case errors.Is(err, assign.ErrAssignmentGeneration):
		return OutcomeExhausted
	default:
		return OutcomeError
	}
}

// ObserveGeneration records one generation request. attempts and pairs are
// only recorded on success.
func ObserveGeneration(err error, attempts, pairs int, elapsed time.Duration) {
	generationTotal.WithLabelValues(Outcome(err)).Inc()
	generationDuration.Observe(elapsed.Seconds())
	if err == nil {
		generationAttempts.Observe(float64(attempts))
		generatedPairs.Observe(float64(pairs))
	}
}

// ObserveLockChange records a lock flag write.
func ObserveLockChange(locked bool) {
	state := "unlocked"
	if locked {
		state = "locked"
	}
	lockChanges.WithLabelValues(state).Inc()
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
