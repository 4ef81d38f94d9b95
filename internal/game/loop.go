package game

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/pixel-racers/internal/core"
)

// Input is a non-blocking key source. It returns KeyNone when nothing is pending.
type Input interface {
	Poll() core.Key
}

// Loop drives a Machine frame by frame with a fixed sleep between frames.
type Loop struct {
	machine  *Machine
	input    Input
	screen   *core.Screen
	interval time.Duration
	present  func(*core.Screen)
	sleep    func(time.Duration)
	quit     atomic.Bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithPresenter sets a function called with the rendered frame.
func WithPresenter(fn func(*core.Screen)) LoopOption {
	return func(l *Loop) { l.present = fn }
}

// WithSleep replaces the end-of-frame sleep.
func WithSleep(fn func(time.Duration)) LoopOption {
	return func(l *Loop) { l.sleep = fn }
}

// NewLoop creates a loop rendering into a buffer of the runtime screen size.
func NewLoop(m *Machine, in Input, rt core.RuntimeConfig, opts ...LoopOption) *Loop {
	tick := rt.TickRate
	if tick <= 0 {
		tick = core.DefaultConfig().TickRate
	}
	l := &Loop{
		machine:  m,
		input:    in,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		interval: time.Second / time.Duration(tick),
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RequestQuit asks the loop to stop before its next frame. Safe to call from any goroutine.
func (l *Loop) RequestQuit() {
	l.quit.Store(true)
}

// Run executes frames until quit is requested or ctx is done.
// It returns the score of the race on the track at exit.
func (l *Loop) Run(ctx context.Context) int {
	for !l.quit.Load() && ctx.Err() == nil {
		l.machine.Step(l.input.Poll())
		l.machine.Render(l.screen)
		if l.present != nil {
			l.present(l.screen)
		}
		l.sleep(l.interval)
	}
	return l.machine.Score()
}

// Screen returns the frame buffer.
func (l *Loop) Screen() *core.Screen {
	return l.screen
}
