package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch results used as label values.
const (
	ResultSuccess        = "success"
	ResultFetchFailure   = "fetch_failure"
	ResultNetworkFailure = "network_failure"
	ResultError          = "error"
)

var (
	// PlaylistFetches counts playlist refresh attempts by result
	PlaylistFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streamline_playlist_fetches_total",
		Help: "Total number of playlist fetch attempts",
	}, []string{"result"})

	// PlaylistFetchDuration observes how long a fetch and parse cycle takes
	PlaylistFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "streamline_playlist_fetch_duration_seconds",
		Help:    "Duration of playlist fetch and parse cycles",
		Buckets: prometheus.DefBuckets,
	})

	// CatalogChannels tracks the number of channels in the current catalog
	CatalogChannels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "streamline_catalog_channels",
		Help: "Number of channels in the current catalog",
	})

	// CatalogCategoryChannels tracks channels per canonical category
	CatalogCategoryChannels = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "streamline_catalog_category_channels",
		Help: "Number of channels per canonical category",
	}, []string{"category"})

	// FavoritesCount tracks the number of favorite channels
	FavoritesCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "streamline_favorites",
		Help: "Number of favorite channels",
	})

	// HealthCheckFailures tracks health check failures
	HealthCheckFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streamline_health_check_failures_total",
		Help: "Total number of health check failures",
	})
)

// RecordPlaylistFetch increments the fetch counter and observes the duration
func RecordPlaylistFetch(result string, seconds float64) {
	PlaylistFetches.WithLabelValues(result).Inc()
	PlaylistFetchDuration.Observe(seconds)
}

// SetCatalogChannels sets the catalog size and the per-category breakdown
func SetCatalogChannels(total int, perCategory map[string]int) {
	CatalogChannels.Set(float64(total))
	CatalogCategoryChannels.Reset()
	for category, count := range perCategory {
		CatalogCategoryChannels.WithLabelValues(category).Set(float64(count))
	}
}

// SetFavoritesCount sets the number of favorite channels
func SetFavoritesCount(count int) {
	FavoritesCount.Set(float64(count))
}

// RecordHealthCheckFailure increments the health check failure counter
func RecordHealthCheckFailure() {
	HealthCheckFailures.Inc()
}
