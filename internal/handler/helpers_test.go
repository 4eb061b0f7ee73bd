package handler

import "time"

// fakeCollector はMetricsCollectorのテスト用実装。
type fakeCollector struct {
	registrations  int
	favoritesAdded int
}

func newFakeCollector() *fakeCollector { return &fakeCollector{} }

func (c *fakeCollector) RecordHTTPStatus(statusCode int)         {}
func (c *fakeCollector) RecordRequestLatency(d time.Duration)    {}
func (c *fakeCollector) RecordRateLimitRejection(limiter string) {}
func (c *fakeCollector) RecordAuthFailure(reason string)         {}
func (c *fakeCollector) RecordRegistration()                     { c.registrations++ }
func (c *fakeCollector) RecordFavoriteAdded()                    { c.favoritesAdded++ }
