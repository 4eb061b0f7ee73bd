// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ミドルウェアおよびハンドラー層から利用する。
type MetricsCollector interface {
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
	RecordRateLimitRejection(limiter string)
	RecordAuthFailure(reason string)
	RecordRegistration()
	RecordFavoriteAdded()
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpStatus     *prometheus.CounterVec
	requestLatency prometheus.Histogram
	rateLimitHits  *prometheus.CounterVec
	authFailures   *prometheus.CounterVec
	registrations  prometheus.Counter
	favoritesAdded prometheus.Counter
}

var _ MetricsCollector = (*Collector)(nil)

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arenaview_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arenaview_http_request_duration_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		rateLimitHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arenaview_rate_limit_rejections_total",
			Help: "リミッター別のレート制限拒否数",
		}, []string{"limiter"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arenaview_auth_failures_total",
			Help: "失敗理由別の認証失敗数",
		}, []string{"reason"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arenaview_registrations_total",
			Help: "ユーザー登録成功の合計数",
		}),
		favoritesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arenaview_favorites_added_total",
			Help: "お気に入り追加成功の合計数",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestLatency,
		c.rateLimitHits,
		c.authFailures,
		c.registrations,
		c.favoritesAdded,
	)

	return c
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency はリクエスト処理のレイテンシを記録する。
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// RecordRateLimitRejection はレート制限による拒否を記録する。
func (c *Collector) RecordRateLimitRejection(limiter string) {
	c.rateLimitHits.WithLabelValues(limiter).Inc()
}

// RecordAuthFailure は認証失敗を理由付きで記録する。
func (c *Collector) RecordAuthFailure(reason string) {
	c.authFailures.WithLabelValues(reason).Inc()
}

// RecordRegistration はユーザー登録成功を記録する。
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordFavoriteAdded はお気に入り追加成功を記録する。
func (c *Collector) RecordFavoriteAdded() {
	c.favoritesAdded.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
