// Package notify implements the due-today checker. It is purely
// advisory: a missed or duplicate toast never affects task state.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/eisenkit/eisen/pkg/task"
)

// DefaultInterval matches the original poll cadence of twenty minutes.
const DefaultInterval = 20 * time.Minute

// Sink receives the rendered notification. The CLI uses a toast-style
// printer; anything with a title/body channel works.
type Sink interface {
	Notify(title, body string)
}

// Checker polls a task provider and notifies once per process for every
// incomplete task due today.
type Checker struct {
	Tasks    func() []task.Task
	Sink     Sink
	Interval time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time

	notified map[string]struct{}
}

// Start checks immediately, then on every tick until ctx is done.
func (c *Checker) Start(ctx context.Context) {
	interval := c.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	c.CheckNow()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.CheckNow()
		}
	}
}

// CheckNow runs one pass and returns how many notifications were sent.
func (c *Checker) CheckNow() int {
	if c.Tasks == nil || c.Sink == nil {
		return 0
	}
	if c.notified == nil {
		c.notified = make(map[string]struct{})
	}
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}

	sent := 0
	for _, t := range c.Tasks() {
		if t.Completed || t.DueDate == nil {
			continue
		}
		// Compare calendar fields directly: the stored date is a plain
		// day with no zone, so converting it to an instant first can
		// shift it across midnight.
		if !t.DueDate.IsToday(now) {
			continue
		}
		if _, done := c.notified[t.ID]; done {
			continue
		}
		c.Sink.Notify(
			fmt.Sprintf("Urgent task: %s", t.Text),
			fmt.Sprintf("Your task in %q is due today!", t.Quadrant.Title()),
		)
		c.notified[t.ID] = struct{}{}
		sent++
	}
	return sent
}
