package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/GunaPalanivel/arenaview/internal/metrics"
	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/respond"
)

// CounterStore は固定ウィンドウのリクエストカウントを管理するインターフェース。
// 単一プロセスではインメモリ実装を使用し、複数プロセスで制限を共有する場合は
// 外部カウンタストア実装に差し替える。リミッターはこのインターフェースにのみ依存する。
type CounterStore interface {
	// Increment はキーのカウントを1増やし、増加後のカウントと
	// 現在のウィンドウの残り時間を返す。ウィンドウが経過していた場合は
	// カウントを1にリセットして新しいウィンドウを開始する。
	Increment(key string, window time.Duration) (count int, remaining time.Duration)
}

// windowEntry は1つのキーの固定ウィンドウ状態を保持する。
type windowEntry struct {
	count       int
	windowStart time.Time
}

// MemoryCounterStore はCounterStoreのインメモリ実装。
// カウンタは揮発的であり、プロセス再起動で失われることを許容する。
type MemoryCounterStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
	stopCh  chan struct{}
}

// NewMemoryCounterStore は新しいMemoryCounterStoreを生成し、
// バックグラウンドで期限切れエントリのクリーンアップを開始する。
func NewMemoryCounterStore(cleanupInterval time.Duration) *MemoryCounterStore {
	s := &MemoryCounterStore{
		entries: make(map[string]*windowEntry),
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go s.cleanupLoop(cleanupInterval)

	return s
}

// Stop はクリーンアップのバックグラウンドゴルーチンを停止する。
func (s *MemoryCounterStore) Stop() {
	close(s.stopCh)
}

// Increment はCounterStoreを実装する。
func (s *MemoryCounterStore) Increment(key string, window time.Duration) (int, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	entry, exists := s.entries[key]
	if !exists || now.Sub(entry.windowStart) >= window {
		s.entries[key] = &windowEntry{count: 1, windowStart: now}
		return 1, window
	}

	entry.count++
	return entry.count, entry.windowStart.Add(window).Sub(now)
}

// cleanupLoop はバックグラウンドで期限切れエントリを定期的に削除する。
func (s *MemoryCounterStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup(interval)
		case <-s.stopCh:
			return
		}
	}
}

// cleanup はウィンドウ開始からintervalの2倍を超えたエントリを削除する。
func (s *MemoryCounterStore) cleanup(interval time.Duration) {
	ttl := interval * 2

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.Sub(entry.windowStart) > ttl {
			delete(s.entries, key)
		}
	}
}

var _ CounterStore = (*MemoryCounterStore)(nil)

// RateLimiter はクライアントフィンガープリント単位の固定ウィンドウレート制限を行う。
type RateLimiter struct {
	name      string
	max       int
	window    time.Duration
	store     CounterStore
	collector metrics.MetricsCollector
}

// NewRateLimiter は新しいRateLimiterを生成する。
// nameはログとメトリクスでリミッターを識別するために使用する。
func NewRateLimiter(name string, max int, window time.Duration, store CounterStore, collector metrics.MetricsCollector) *RateLimiter {
	return &RateLimiter{
		name:      name,
		max:       max,
		window:    window,
		store:     store,
		collector: collector,
	}
}

// Middleware はレート制限ミドルウェアを返す。
// 制限を超えたリクエストには429とRetry-Afterヘッダー（ウィンドウの残り秒数）を返す。
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rl.name + ":" + Fingerprint(r)

			count, remaining := rl.store.Increment(key, rl.window)
			if count > rl.max {
				retryAfterSec := int(math.Ceil(remaining.Seconds()))
				if retryAfterSec < 1 {
					retryAfterSec = 1
				}

				slog.Warn("rate limit exceeded",
					slog.String("limiter", rl.name),
					slog.String("fingerprint", Fingerprint(r)),
					slog.Int("count", count),
				)
				rl.collector.RecordRateLimitRejection(rl.name)

				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSec))
				respond.APIError(w, model.NewRateLimitedError(retryAfterSec))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// フィンガープリントのUser-Agent切り詰め長。
const fingerprintUserAgentLen = 50

// Fingerprint はクライアントの複合キー（IPアドレス + 切り詰めたUser-Agent）を返す。
func Fingerprint(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	ua := r.UserAgent()
	if len(ua) > fingerprintUserAgentLen {
		ua = ua[:fingerprintUserAgentLen]
	}

	return ip + "-" + ua
}
