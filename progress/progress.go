// Package progress reports periodic status while a long loop processes
// items, the kind of feedback corpus-loading tools print every few
// thousand documents.
package progress

import (
	"time"

	"github.com/mwantia/textutil/log"
	"github.com/mwantia/textutil/textfmt"
)

// Meter counts processed items and logs a status line at most once per
// reporting interval.
type Meter struct {
	logger *log.Logger
	noun   string

	interval time.Duration
	start    time.Time
	lastLog  time.Time
	count    int64

	now func() time.Time
}

type Option func(*Meter)

// WithInterval sets the minimum time between status lines. The default
// is 15 seconds.
func WithInterval(d time.Duration) Option {
	return func(m *Meter) { m.interval = d }
}

// withClock substitutes the time source in tests.
func withClock(now func() time.Time) Option {
	return func(m *Meter) { m.now = now }
}

// NewMeter starts a meter for items called noun (for example
// "documents").
func NewMeter(logger *log.Logger, noun string, opts ...Option) *Meter {
	m := &Meter{
		logger:   logger,
		noun:     noun,
		interval: 15 * time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.start = m.now()
	m.lastLog = m.start
	return m
}

// Item records one processed item, logging when the interval elapsed.
func (m *Meter) Item() {
	m.count++
	now := m.now()
	if now.Sub(m.lastLog) < m.interval {
		return
	}
	m.lastLog = now
	m.logger.Info("Processed %s %s in %s",
		textfmt.IntWithCommas(m.count), m.noun,
		textfmt.MinutesSeconds(now.Sub(m.start).Seconds()))
}

// Count returns the number of items recorded so far.
func (m *Meter) Count() int64 {
	return m.count
}

// Finish logs the final total and overall rate.
func (m *Meter) Finish() {
	elapsed := m.now().Sub(m.start).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(m.count) / elapsed
	}
	m.logger.Info("Finished processing %s %s in %s (%.1f/sec)",
		textfmt.IntWithCommas(m.count), m.noun,
		textfmt.MinutesSeconds(elapsed), rate)
}
