package game

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/pixel-racers/internal/core"
	"github.com/vovakirdan/pixel-racers/internal/screens"
	"github.com/vovakirdan/pixel-racers/internal/telemetry"
)

// Menu and race keys. Matching is case-insensitive.
const (
	KeyInstructions = screens.KeyInstructions
	KeyMode         = screens.KeyMode
	KeyBack         = screens.KeyBack
	KeyForceWin     = screens.KeyForceWin
)

// Machine is the race state machine. It owns every screen, the current
// track and all per-race counters. It is not safe for concurrent use.
type Machine struct {
	state State

	start        *screens.StartScreen
	instructions *screens.InstructionsScreen
	playing      *screens.PlayingScreen
	pause        *screens.PauseScreen
	gameOver     *screens.GameOverScreen
	win          *screens.WinScreen
	screens      [stateCount]screens.Screen

	newTrack TrackFactory
	track    Track
	rules    Rules

	infiniteMode      bool
	collisionCooldown int
	frameCount        int
	dirty             bool // the current track has been raced on

	raceID   string
	raceSpan trace.Span

	logger    *log.Logger
	tracer    trace.Tracer
	onRaceEnd func(RaceResult)
	bestScore func(infinite bool) int
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transitions and race results.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithTracer sets the tracer used for race spans.
func WithTracer(t trace.Tracer) Option {
	return func(m *Machine) { m.tracer = t }
}

// WithRaceEndHook registers a callback invoked whenever a race ends.
func WithRaceEndHook(fn func(RaceResult)) Option {
	return func(m *Machine) { m.onRaceEnd = fn }
}

// WithBestScore registers a lookup for the best score shown on the start screen.
func WithBestScore(fn func(infinite bool) int) Option {
	return func(m *Machine) { m.bestScore = fn }
}

// NewMachine creates a machine in the Start state with a freshly built track.
func NewMachine(newTrack TrackFactory, rules Rules, opts ...Option) *Machine {
	m := &Machine{
		state:        StateStart,
		start:        screens.NewStartScreen(),
		instructions: screens.NewInstructionsScreen(),
		playing:      screens.NewPlayingScreen(false),
		pause:        screens.NewPauseScreen(),
		gameOver:     screens.NewGameOverScreen(),
		win:          screens.NewWinScreen(),
		newTrack:     newTrack,
		track:        newTrack(),
		rules:        rules,
		logger:       log.New(io.Discard),
		tracer:       telemetry.NoopTracer(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.screens = [stateCount]screens.Screen{
		StateStart:        m.start,
		StateInstructions: m.instructions,
		StatePlaying:      m.playing,
		StatePaused:       m.pause,
		StateGameOver:     m.gameOver,
		StateWin:          m.win,
	}
	m.refreshBest()
	return m
}

// Step runs one frame: at most one key transition, then the active state's update.
// KeyNone means no key was pressed this frame.
func (m *Machine) Step(k core.Key) {
	if k != core.KeyNone {
		m.HandleKey(k)
	}
	if m.state == StatePlaying {
		m.playFrame()
		return
	}
	m.screens[m.state].Update()
}

// HandleKey applies the transition for a key press in the current state.
// Keys with no transition are ignored.
func (m *Machine) HandleKey(k core.Key) {
	k = core.NormalizeKey(rune(k))

	switch m.state {
	case StateStart:
		switch {
		case k == KeyInstructions:
			m.setState(StateInstructions, "instructions")
		case m.start.HandleInput(k):
			m.beginRace("start")
		case k == KeyMode:
			m.infiniteMode = !m.infiniteMode
			m.start.SetInfiniteMode(m.infiniteMode)
			m.refreshBest()
			m.logger.Debug("mode toggled", "infinite", m.infiniteMode)
		}

	case StateInstructions:
		switch {
		case m.instructions.HandleInput(k):
			m.beginRace("start")
		case k == KeyBack:
			m.setState(StateStart, "back")
		}

	case StatePlaying:
		switch {
		case m.playing.HandleInput(k):
			m.event("pause")
			m.setState(StatePaused, "pause")
		case k == KeyForceWin && m.rules.ForceWin:
			score := m.track.Points.Score()
			m.win.SetWin(score)
			m.finishRace(StateWin, OutcomeForced, false, false)
		case k.IsDirection():
			m.track.Player.Move(k)
		}

	case StatePaused:
		switch {
		case m.pause.HandleInput(k):
			m.event("resume")
			m.setState(StatePlaying, "resume")
		case k == KeyBack:
			m.Abandon()
		}

	case StateGameOver:
		if m.gameOver.HandleInput(k) {
			m.restart()
		}

	case StateWin:
		if m.win.HandleInput(k) {
			m.restart()
		}
	}
}

// playFrame is the Playing update. The order of steps is fixed.
func (m *Machine) playFrame() {
	t := m.track
	m.dirty = true

	speed := t.Player.Speed()
	t.Road.Update(speed)
	t.Points.UpdateSpeed(speed)
	t.Points.Update()
	t.Player.Update(t.Road.Offset())

	lap := m.playing.CurrentLap()
	m.playing.UpdateLaps(t.Points)
	if m.playing.CurrentLap() > lap {
		m.event("lap", attribute.Int("lap", m.playing.CurrentLap()))
		m.logger.Debug("lap", "race", m.raceID, "lap", m.playing.CurrentLap())
	}

	for _, car := range t.Cars {
		car.Update(t.Road.Offset(), t.Obstacles)
		if car.OffScreen() {
			car.Respawn()
			t.Points.AddCarPass()
		}
	}
	for _, obs := range t.Obstacles {
		obs.Update(t.Player.Speed())
		if obs.OffScreen() {
			obs.Respawn()
			t.Points.AddObstacleAvoided()
		}
	}

	m.frameCount++

	if m.collisionCooldown <= 0 {
		hitAI, hitObstacle := t.Collider.CheckAll(t.Player, t.Cars, t.Obstacles)
		if hitAI || hitObstacle {
			m.crash(hitAI, hitObstacle)
			return
		}
	} else {
		m.collisionCooldown--
	}

	if m.playing.IsWinCondition() {
		m.win.SetWin(t.Points.Score())
		m.finishRace(StateWin, OutcomeWin, false, false)
	}
}

// crash applies the collision penalties and ends the race.
// The cooldown is left as is.
func (m *Machine) crash(hitAI, hitObstacle bool) {
	t := m.track

	t.Player.SetSpeed(max(m.rules.MinSpeed, t.Player.Speed()-m.rules.SpeedPenalty))

	prev := t.Points.Score()
	next := max(0, prev-m.rules.ScorePenalty)
	t.Points.Deduct(prev - next)

	m.gameOver.SetGameOver(t.Points.Score(), hitAI, hitObstacle)
	m.finishRace(StateGameOver, OutcomeCrash, hitAI, hitObstacle)
}

// beginRace enters Playing. A track that was raced on and abandoned is rebuilt first.
func (m *Machine) beginRace(trigger string) {
	if m.dirty {
		m.resetRace()
	}
	m.collisionCooldown = 0
	m.playing.SetInfiniteMode(m.infiniteMode)

	m.raceID = uuid.NewString()
	_, m.raceSpan = m.tracer.Start(context.Background(), "race",
		trace.WithAttributes(
			attribute.String("race.id", m.raceID),
			attribute.Bool("race.infinite", m.infiniteMode),
		),
	)
	m.logger.Info("race started", "race", m.raceID, "infinite", m.infiniteMode)
	m.setState(StatePlaying, trigger)
}

// finishRace records the result of the current race and moves to next.
func (m *Machine) finishRace(next State, outcome Outcome, hitAI, hitObstacle bool) {
	res := RaceResult{
		ID:          m.raceID,
		Outcome:     outcome,
		Score:       m.track.Points.Score(),
		Lap:         m.playing.CurrentLap(),
		Infinite:    m.playing.InfiniteMode(),
		HitAI:       hitAI,
		HitObstacle: hitObstacle,
		Frames:      m.frameCount,
	}

	if m.raceSpan != nil {
		m.raceSpan.SetAttributes(
			attribute.String("race.outcome", string(outcome)),
			attribute.Int("race.score", res.Score),
			attribute.Int("race.lap", res.Lap),
			attribute.Int("race.frames", res.Frames),
		)
		m.raceSpan.End()
		m.raceSpan = nil
	}

	m.logger.Info("race ended",
		"race", res.ID,
		"outcome", outcome,
		"score", res.Score,
		"lap", res.Lap,
	)
	if m.onRaceEnd != nil {
		m.onRaceEnd(res)
	}

	m.setState(next, string(outcome))
	if next == StateStart {
		m.refreshBest()
	}
}

// Abandon records a running or paused race as abandoned and returns to Start.
// It reports whether there was a race to end.
func (m *Machine) Abandon() bool {
	if m.state != StatePlaying && m.state != StatePaused {
		return false
	}
	m.finishRace(StateStart, OutcomeAbandoned, false, false)
	return true
}

// restart discards the finished race and returns to Start.
func (m *Machine) restart() {
	m.resetRace()
	m.collisionCooldown = 0
	m.setState(StateStart, "restart")
	m.refreshBest()
}

// Rebuild replaces an untouched track with a fresh one from the factory,
// picking up a new screen size. It only acts in the Start state.
func (m *Machine) Rebuild() bool {
	if m.state != StateStart {
		return false
	}
	m.resetRace()
	return true
}

// resetRace rebuilds the track and the playing screen from scratch.
func (m *Machine) resetRace() {
	m.track = m.newTrack()
	m.frameCount = 0
	m.dirty = false
	m.playing = screens.NewPlayingScreen(m.infiniteMode)
	m.screens[StatePlaying] = m.playing
}

func (m *Machine) setState(next State, trigger string) {
	m.logger.Debug("transition", "from", m.state, "to", next, "trigger", trigger)
	m.state = next
}

func (m *Machine) event(name string, attrs ...attribute.KeyValue) {
	if m.raceSpan != nil {
		m.raceSpan.AddEvent(name, trace.WithAttributes(attrs...))
	}
}

func (m *Machine) refreshBest() {
	if m.bestScore != nil {
		m.start.SetBestScore(m.bestScore(m.infiniteMode))
	}
}

// Render draws the active state. Playing draws the world then the HUD.
func (m *Machine) Render(dst *core.Screen) {
	if m.state != StatePlaying {
		m.screens[m.state].Draw(dst)
		return
	}

	t := m.track
	dst.Clear()
	t.Road.Render(dst)
	for _, obs := range t.Obstacles {
		obs.Render(dst)
	}
	for _, car := range t.Cars {
		car.Render(dst)
	}
	t.Player.Render(dst)
	m.playing.DrawHUD(dst, t.Points.Score(), t.Player.Speed())
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// InfiniteMode reports whether the next race runs without a lap cap.
func (m *Machine) InfiniteMode() bool { return m.infiniteMode }

// Cooldown returns the remaining collision cooldown in frames.
func (m *Machine) Cooldown() int { return m.collisionCooldown }

// SetCooldown suppresses collision checks for the given number of frames.
func (m *Machine) SetCooldown(frames int) { m.collisionCooldown = max(0, frames) }

// FrameCount returns the number of frames raced on the current track.
func (m *Machine) FrameCount() int { return m.frameCount }

// Score returns the current race score.
func (m *Machine) Score() int { return m.track.Points.Score() }

// Track returns the current track.
func (m *Machine) Track() Track { return m.track }

// Playing returns the current race screen.
func (m *Machine) Playing() *screens.PlayingScreen { return m.playing }

// GameOver returns the game over screen.
func (m *Machine) GameOver() *screens.GameOverScreen { return m.gameOver }

// Win returns the win screen.
func (m *Machine) Win() *screens.WinScreen { return m.win }

// Start returns the title screen.
func (m *Machine) Start() *screens.StartScreen { return m.start }
