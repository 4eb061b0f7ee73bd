package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TestNewCollector_ReturnsNonNil はCollectorが正常に生成されることを検証する。
func TestNewCollector_ReturnsNonNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	if c == nil {
		t.Fatal("expected non-nil Collector")
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) (float64, bool) {
	t.Helper()

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() == name {
			total := 0.0
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			return total, true
		}
	}
	return 0, false
}

// TestRecordHTTPStatus_IncrementsCounter はステータスコード別カウンタが増加することを検証する。
func TestRecordHTTPStatus_IncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(404)

	val, found := counterValue(t, reg, "arenaview_http_status_total")
	if !found {
		t.Fatal("arenaview_http_status_total metric not found")
	}
	if val != 3 {
		t.Errorf("http_status_total = %v, want 3", val)
	}
}

// TestRecordRateLimitRejection_LabelsByLimiter はリミッター別に拒否数が記録されることを検証する。
func TestRecordRateLimitRejection_LabelsByLimiter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRateLimitRejection("auth")
	c.RecordRateLimitRejection("auth")
	c.RecordRateLimitRejection("favorites")

	val, found := counterValue(t, reg, "arenaview_rate_limit_rejections_total")
	if !found {
		t.Fatal("arenaview_rate_limit_rejections_total metric not found")
	}
	if val != 3 {
		t.Errorf("rate_limit_rejections_total = %v, want 3", val)
	}
}

// TestRecordAuthFailure_IncrementsCounter は認証失敗カウンタが増加することを検証する。
func TestRecordAuthFailure_IncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuthFailure("invalid_token")

	val, found := counterValue(t, reg, "arenaview_auth_failures_total")
	if !found {
		t.Fatal("arenaview_auth_failures_total metric not found")
	}
	if val != 1 {
		t.Errorf("auth_failures_total = %v, want 1", val)
	}
}

// TestRecordRequestLatency_ObservesHistogram はレイテンシヒストグラムに記録されることを検証する。
func TestRecordRequestLatency_ObservesHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequestLatency(50 * time.Millisecond)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() == "arenaview_http_request_duration_seconds" {
			if mf.GetMetric()[0].GetHistogram().GetSampleCount() != 1 {
				t.Errorf("sample count = %d, want 1", mf.GetMetric()[0].GetHistogram().GetSampleCount())
			}
			return
		}
	}
	t.Error("arenaview_http_request_duration_seconds metric not found")
}

// TestHandler_ServesPrometheusFormat は/metricsがスクレイプ可能な形式を返すことを検証する。
func TestHandler_ServesPrometheusFormat(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRegistration()
	c.RecordFavoriteAdded()

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("failed to scrape metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(body), "arenaview_registrations_total 1") {
		t.Errorf("expected registrations counter in scrape output, got:\n%s", body)
	}
	if !strings.Contains(string(body), "arenaview_favorites_added_total 1") {
		t.Errorf("expected favorites counter in scrape output, got:\n%s", body)
	}
}
