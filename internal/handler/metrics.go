package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flashmind_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	refreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flashmind_refreshes_total",
		Help: "Total number of successful token refreshes.",
	})

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flashmind_token_verifications_total",
			Help: "Total number of token verification attempts by type and status.",
		},
		[]string{"type", "status"},
	)

	decksClonedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flashmind_decks_cloned_total",
		Help: "Total number of decks cloned into user collections.",
	})

	ratingsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flashmind_ratings_submitted_total",
		Help: "Total number of deck ratings submitted.",
	})
)
