// Package alert implements transient user notifications. A new alert replaces
// the visible one and restarts its timer; there is no queue.
package alert

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Kind is the visual flavour of an alert.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Phase tracks where an alert is in its lifecycle.
type Phase string

const (
	PhaseHidden  Phase = "hidden"
	PhaseVisible Phase = "visible"
	PhaseHiding  Phase = "hiding"
)

const (
	DefaultDelay = 5 * time.Second
	DefaultFade  = 300 * time.Millisecond
)

// Alert is a snapshot of the presenter state.
type Alert struct {
	Message string
	Kind    Kind
	Phase   Phase
	ShownAt time.Time
}

// Visible reports whether the alert should be drawn.
func (a Alert) Visible() bool {
	return a.Phase == PhaseVisible || a.Phase == PhaseHiding
}

// Observer receives every state transition.
type Observer func(Alert)

// Option configures a Presenter.
type Option func(*Presenter)

// WithDelay sets how long an alert stays fully visible.
func WithDelay(d time.Duration) Option {
	return func(p *Presenter) {
		if d > 0 {
			p.delay = d
		}
	}
}

// WithFade sets the length of the hiding phase.
func WithFade(d time.Duration) Option {
	return func(p *Presenter) {
		if d >= 0 {
			p.fade = d
		}
	}
}

// WithObserver registers an observer.
func WithObserver(fn Observer) Option {
	return func(p *Presenter) {
		if fn != nil {
			p.observers = append(p.observers, fn)
		}
	}
}

// WithLogger sets the logger. Error alerts are logged at warn level.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Presenter) {
		p.logger = logger
	}
}

// WithClock overrides time.Now for ShownAt.
func WithClock(now func() time.Time) Option {
	return func(p *Presenter) {
		if now != nil {
			p.now = now
		}
	}
}

// Presenter shows one alert at a time.
type Presenter struct {
	mu         sync.Mutex
	current    Alert
	generation uint64
	timer      *time.Timer
	closed     bool

	delay     time.Duration
	fade      time.Duration
	observers []Observer
	logger    zerolog.Logger
	now       func() time.Time
}

// New constructs a Presenter.
func New(options ...Option) *Presenter {
	p := &Presenter{
		current: Alert{Phase: PhaseHidden},
		delay:   DefaultDelay,
		fade:    DefaultFade,
		logger:  zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Show displays message immediately and schedules its dismissal.
func (p *Presenter) Show(message string, kind Kind) {
	message = strings.TrimSpace(message)
	if kind != KindError {
		kind = KindSuccess
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.stopTimerLocked()
	p.generation++
	gen := p.generation
	p.current = Alert{Message: message, Kind: kind, Phase: PhaseVisible, ShownAt: p.now()}
	p.timer = time.AfterFunc(p.delay, func() { p.beginHide(gen) })
	snapshot := p.current
	p.mu.Unlock()

	if kind == KindError {
		p.logger.Warn().Str("message", message).Msg("error alert shown")
	} else {
		p.logger.Debug().Str("message", message).Msg("alert shown")
	}
	p.notify(snapshot)
}

// Current returns the alert being displayed, if any.
func (p *Presenter) Current() Alert {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Dismiss hides the current alert right away.
func (p *Presenter) Dismiss() {
	p.mu.Lock()
	if p.current.Phase == PhaseHidden {
		p.mu.Unlock()
		return
	}
	p.stopTimerLocked()
	p.generation++
	p.current.Phase = PhaseHidden
	snapshot := p.current
	p.mu.Unlock()

	p.notify(snapshot)
}

// Close stops pending timers. Later Show calls are ignored.
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopTimerLocked()
	p.generation++
	p.closed = true
}

func (p *Presenter) beginHide(gen uint64) {
	p.mu.Lock()
	if gen != p.generation || p.current.Phase != PhaseVisible {
		p.mu.Unlock()
		return
	}
	p.current.Phase = PhaseHiding
	p.timer = time.AfterFunc(p.fade, func() { p.finishHide(gen) })
	snapshot := p.current
	p.mu.Unlock()

	p.notify(snapshot)
}

func (p *Presenter) finishHide(gen uint64) {
	p.mu.Lock()
	if gen != p.generation || p.current.Phase != PhaseHiding {
		p.mu.Unlock()
		return
	}
	p.current.Phase = PhaseHidden
	p.timer = nil
	snapshot := p.current
	p.mu.Unlock()

	p.notify(snapshot)
}

func (p *Presenter) stopTimerLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Presenter) notify(a Alert) {
	for _, fn := range p.observers {
		fn(a)
	}
}
