package repository

import (
	pkglogger "github.com/1000kkannoo/dnd-8th-4-backend/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheDegradedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diary_cache_degraded_total",
			Help: "Cache operations that failed and fell back to the relational store",
		},
		[]string{"op"},
	)

	bookmarkIndexRebuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diary_bookmark_index_rebuilds_total",
			Help: "Bookmark index lists rebuilt from bookmark rows",
		},
	)
)

// CacheDegraded logs a cache failure the caller recovered from and counts it under op
func CacheDegraded(op string, err error) {
	cacheDegradedTotal.WithLabelValues(op).Inc()
	pkglogger.GetLogger().Warn().
		Err(err).
		Str("op", op).
		Msg("cache degraded")
}
