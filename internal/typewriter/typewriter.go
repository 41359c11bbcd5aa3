// Package typewriter reveals a source string one character per tick.
package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MinInterval is used in place of non-positive tick intervals.
const MinInterval = time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances the animator that owns it by one character. Ticks that
// belong to a superseded session are ignored.
type TickMsg struct {
	ID  int
	gen int
}

// Scheduler arms a single delayed message. tea.Tick is the default.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Option configures an Animator.
type Option func(*Animator)

// WithScheduler replaces the tick scheduler, mainly for tests.
func WithScheduler(s Scheduler) Option {
	return func(a *Animator) {
		if s != nil {
			a.schedule = s
		}
	}
}

// Session is a snapshot of one typing run.
type Session struct {
	Source   string
	Interval time.Duration
	Revealed int
	Complete bool
}

// Animator drives a character-by-character reveal of a source string.
type Animator struct {
	id       int
	source   []rune
	interval time.Duration
	revealed int
	complete bool

	// gen identifies the live session; ticks carrying an older value are stale.
	gen     int
	running bool

	schedule Scheduler
}

// New constructs an animator. Call Start to arm the first session.
func New(source string, interval time.Duration, opts ...Option) *Animator {
	a := &Animator{
		id:       nextID(),
		source:   []rune(source),
		interval: normalizeInterval(interval),
		schedule: tea.Tick,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func normalizeInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return MinInterval
	}
	return d
}

// ID returns the identifier carried by this animator's ticks.
func (a *Animator) ID() int {
	return a.id
}

// Start begins a new session from an empty prefix, superseding any session in
// flight. An empty source completes immediately without arming a tick.
func (a *Animator) Start() tea.Cmd {
	a.gen++
	a.revealed = 0
	a.complete = false
	a.running = false
	if len(a.source) == 0 {
		a.complete = true
		return nil
	}
	a.running = true
	return a.tick()
}

// SetSource replaces the source text and restarts the animation when it changed.
func (a *Animator) SetSource(source string) tea.Cmd {
	if string(a.source) == source && (a.running || a.complete) {
		return nil
	}
	a.source = []rune(source)
	return a.Start()
}

// SetInterval replaces the tick interval and restarts the animation when it changed.
func (a *Animator) SetInterval(d time.Duration) tea.Cmd {
	d = normalizeInterval(d)
	if d == a.interval && (a.running || a.complete) {
		return nil
	}
	a.interval = d
	return a.Start()
}

// Stop invalidates the current session. Ticks already scheduled become no-ops.
func (a *Animator) Stop() {
	a.gen++
	a.running = false
}

// Skip reveals the whole source and ends the session.
func (a *Animator) Skip() {
	a.Stop()
	a.revealed = len(a.source)
	a.complete = true
}

// Update handles TickMsg for this animator.
func (a *Animator) Update(msg tea.Msg) (*Animator, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != a.id || tick.gen != a.gen || !a.running {
		return a, nil
	}
	if a.revealed < len(a.source) {
		a.revealed++
	}
	if a.revealed == len(a.source) {
		a.running = false
		a.complete = true
		return a, nil
	}
	return a, a.tick()
}

func (a *Animator) tick() tea.Cmd {
	id, gen := a.id, a.gen
	return a.schedule(a.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, gen: gen}
	})
}

// Prefix returns the revealed part of the source.
func (a *Animator) Prefix() string {
	return string(a.source[:a.revealed])
}

// Source returns the full source text.
func (a *Animator) Source() string {
	return string(a.source)
}

// Done reports whether the whole source has been revealed.
func (a *Animator) Done() bool {
	return a.complete
}

// Running reports whether a tick is armed for the current session.
func (a *Animator) Running() bool {
	return a.running
}

// Session returns a snapshot of the current session.
func (a *Animator) Session() Session {
	return Session{
		Source:   string(a.source),
		Interval: a.interval,
		Revealed: a.revealed,
		Complete: a.complete,
	}
}
