package usecase

import (
	"sync"
	"time"

	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/notification/domain"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

const (
	DefaultDuration = 5 * time.Second
	DefaultStep     = 100 * time.Millisecond
)

var _ domain.Notifier = (*Center)(nil)

// Center is the process-wide ordered queue of notifications. Every entry owns
// one countdown task; removing an entry for any reason stops that task.
type Center struct {
	mu       sync.Mutex
	clock    clock.Clock
	logger   *logger.Logger
	duration time.Duration
	step     time.Duration
	items    []*entry
	closed   bool
}

type entry struct {
	n       domain.Notification
	elapsed time.Duration
	timer   *clock.Timer
	removed bool
}

type Option func(*Center)

func WithDefaultDuration(d time.Duration) Option {
	return func(c *Center) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithStep sets the countdown granularity.
func WithStep(d time.Duration) Option {
	return func(c *Center) {
		if d > 0 {
			c.step = d
		}
	}
}

func NewCenter(clk clock.Clock, logg *logger.Logger, opts ...Option) *Center {
	c := &Center{
		clock:    clk,
		logger:   logg,
		duration: DefaultDuration,
		step:     DefaultStep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Push appends a notification and starts its countdown. It returns the new id,
// or "" once the center has been closed.
func (c *Center) Push(kind domain.Kind, message string, opts ...domain.PushOption) string {
	o := domain.PushOptions{AutoClose: true, Duration: c.duration}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Duration <= 0 {
		o.Duration = c.duration
	}
	if !kind.Valid() {
		kind = domain.KindInfo
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ""
	}

	e := &entry{n: domain.Notification{
		ID:                    newID(),
		Kind:                  kind,
		Message:               message,
		AutoClose:             o.AutoClose,
		Duration:              o.Duration,
		RemainingTimeFraction: 1,
		CreatedAt:             c.clock.Now(),
	}}
	c.items = append(c.items, e)
	if e.n.AutoClose {
		c.scheduleLocked(e)
	}
	c.logger.Debugf("notification %s pushed kind=%s", e.n.ID, kind)
	return e.n.ID
}

func (c *Center) Success(message string) string { return c.Push(domain.KindSuccess, message) }
func (c *Center) Error(message string) string   { return c.Push(domain.KindError, message) }
func (c *Center) Warning(message string) string { return c.Push(domain.KindWarning, message) }
func (c *Center) Info(message string) string    { return c.Push(domain.KindInfo, message) }

// Dismiss removes the notification immediately. Unknown or already removed ids are a no-op.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.items {
		if e.n.ID == id {
			c.removeLocked(e)
			c.logger.Debugf("notification %s dismissed", id)
			return true
		}
	}
	return false
}

// List returns a snapshot of the queue in display order.
func (c *Center) List() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Notification, 0, len(c.items))
	for _, e := range c.items {
		out = append(out, e.snapshot())
	}
	return out
}

func (c *Center) Get(id string) (domain.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.items {
		if e.n.ID == id {
			return e.snapshot(), true
		}
	}
	return domain.Notification{}, false
}

// Close cancels every pending countdown and drops the queue. Later pushes are ignored.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.items {
		e.removed = true
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	c.items = nil
	c.closed = true
}

// scheduleLocked arms the next countdown step of e. The last step is shortened
// so the entry expires exactly at its duration.
func (c *Center) scheduleLocked(e *entry) {
	wait := c.step
	if rem := e.n.Duration - e.elapsed; rem < wait {
		wait = rem
	}
	e.timer = c.clock.AfterFunc(wait, func() { c.tick(e, wait) })
}

func (c *Center) tick(e *entry, waited time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e.removed {
		return
	}
	e.elapsed += waited
	if e.elapsed >= e.n.Duration {
		c.removeLocked(e)
		c.logger.Debugf("notification %s expired", e.n.ID)
		return
	}
	c.scheduleLocked(e)
}

func (c *Center) removeLocked(target *entry) {
	target.removed = true
	if target.timer != nil {
		target.timer.Stop()
	}
	for i, e := range c.items {
		if e == target {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (e *entry) snapshot() domain.Notification {
	n := e.n
	if n.AutoClose {
		frac := 1 - float64(e.elapsed)/float64(n.Duration)
		if frac < 0 {
			frac = 0
		}
		n.RemainingTimeFraction = frac
	}
	return n
}

// newID returns a time-ordered UUIDv7 so ids sort by creation.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
