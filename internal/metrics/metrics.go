package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JoinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gameboard_joins_total",
		Help: "Participants registered since process start.",
	})

	UpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gameboard_updates_total",
		Help: "Accepted progress updates since process start.",
	})

	RejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gameboard_rejected_total",
		Help: "Requests rejected as expected client errors, by reason.",
	}, []string{"reason"})

	SnapshotWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gameboard_snapshot_write_failures_total",
		Help: "Durable snapshot writes that failed after an accepted mutation.",
	})

	SnapshotWriteSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gameboard_snapshot_write_seconds",
		Help:    "Durable snapshot write latency.",
		Buckets: prometheus.DefBuckets,
	})
)
