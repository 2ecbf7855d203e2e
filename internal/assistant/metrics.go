package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	turnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "websage_turns_total",
		Help: "User turns handled, by classified intent",
	}, []string{"intent"})

	searchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "websage_search_failures_total",
		Help: "Web search calls that degraded to zero results",
	})

	scrapeAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "websage_scrape_attempts_total",
		Help: "Candidate URLs fetched during retrieval",
	})

	scrapeSuccesses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "websage_scrape_successes_total",
		Help: "Fetched URLs that yielded usable content",
	})

	contextTruncations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "websage_context_truncations_total",
		Help: "Retrieval cycles whose combined context exceeded the budget",
	})
)
