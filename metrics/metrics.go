// Package metrics collects request counters and latency histograms for
// the HTTP server.
package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const maxSamples = 1000

// Collector aggregates per-route request metrics.
type Collector struct {
	startTime time.Time

	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	statuses map[string]*atomic.Int64
	latency  map[string]*histogram
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		counters:  make(map[string]*atomic.Int64),
		statuses:  make(map[string]*atomic.Int64),
		latency:   make(map[string]*histogram),
	}
}

// RecordRequest records one completed request for a route.
func (c *Collector) RecordRequest(route string, status int, duration time.Duration) {
	c.counter(c.counters, route).Add(1)
	c.counter(c.statuses, statusClass(status)).Add(1)
	c.hist(route).observe(duration.Seconds())
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

func (c *Collector) counter(m map[string]*atomic.Int64, key string) *atomic.Int64 {
	c.mu.RLock()
	v, ok := m[key]
	c.mu.RUnlock()
	if ok {
		return v
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok = m[key]; ok {
		return v
	}
	v = &atomic.Int64{}
	m[key] = v
	return v
}

func (c *Collector) hist(route string) *histogram {
	c.mu.RLock()
	h, ok := c.latency[route]
	c.mu.RUnlock()
	if ok {
		return h
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if h, ok = c.latency[route]; ok {
		return h
	}
	h = newHistogram(maxSamples)
	c.latency[route] = h
	return h
}

// Snapshot returns the collected metrics as a nested map suitable for JSON.
func (c *Collector) Snapshot() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	requests := make(map[string]any, len(c.counters))
	for route, n := range c.counters {
		entry := map[string]any{"count": n.Load()}
		if h, ok := c.latency[route]; ok {
			entry["latency_seconds"] = h.summary()
		}
		requests[route] = entry
	}

	statuses := make(map[string]int64, len(c.statuses))
	for class, n := range c.statuses {
		statuses[class] = n.Load()
	}

	return map[string]any{
		"uptime_seconds": int64(time.Since(c.startTime).Seconds()),
		"requests":       requests,
		"statuses":       statuses,
	}
}

// histogram keeps a bounded sample window of observations.
type histogram struct {
	mu      sync.Mutex
	samples []float64
	next    int
	full    bool
	count   int64
}

func newHistogram(size int) *histogram {
	return &histogram{samples: make([]float64, 0, size)}
}

func (h *histogram) observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	if len(h.samples) < cap(h.samples) {
		h.samples = append(h.samples, v)
		return
	}
	h.samples[h.next] = v
	h.next = (h.next + 1) % cap(h.samples)
	h.full = true
}

func (h *histogram) summary() map[string]any {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.samples) == 0 {
		return map[string]any{"count": int64(0)}
	}

	sorted := make([]float64, len(h.samples))
	copy(sorted, h.samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	percentile := func(p float64) float64 {
		idx := int(p * float64(len(sorted)-1))
		return sorted[idx]
	}

	return map[string]any{
		"count": h.count,
		"min":   sorted[0],
		"max":   sorted[len(sorted)-1],
		"mean":  sum / float64(len(sorted)),
		"p50":   percentile(0.50),
		"p95":   percentile(0.95),
		"p99":   percentile(0.99),
	}
}
