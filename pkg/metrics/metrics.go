package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Latência das requisições HTTP (segundos), rotulada pelo padrão da rota
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms a ~4s
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Acertos e faltas do cache de estatísticas
	StatisticsCacheResult = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statistics_cache_requests_total",
			Help: "Statistics cache lookups by result",
		},
		[]string{"kind", "result"}, // result: hit, miss, error
	)

	RankingSyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sales_ranking_sync_duration_seconds",
			Help:    "Duration of the sales ranking synchronization",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)
)

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	HTTPRequestCount.WithLabelValues(method, path, code).Inc()
}

func RecordCacheResult(kind, result string) {
	StatisticsCacheResult.WithLabelValues(kind, result).Inc()
}

func RecordRankingSync(duration time.Duration) {
	RankingSyncDuration.Observe(duration.Seconds())
}

// Handler expõe o registro padrão no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument mede a rota usando o padrão registrado (ex: /api/teams/:code)
// para não explodir a cardinalidade com valores de parâmetros
func Instrument(method, pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		RecordHTTPRequest(method, pattern, sw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
