package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/pixel-racers/internal/config"
	"github.com/vovakirdan/pixel-racers/internal/core"
	"github.com/vovakirdan/pixel-racers/internal/game"
	"github.com/vovakirdan/pixel-racers/internal/race"
	"github.com/vovakirdan/pixel-racers/internal/storage"
	"github.com/vovakirdan/pixel-racers/internal/telemetry"
)

// footerHeight is the number of rows reserved under the race for the help line.
const footerHeight = 1

// Options configure one racing session.
type Options struct {
	Config  config.RacersConfig
	Runtime core.RuntimeConfig // terminal size, tick rate and seed
	Store   *storage.Store     // optional results ledger
	Session string             // generated when empty
	Logger  *log.Logger
	Tracer  trace.Tracer

	// Renderer detects the color profile of the output. Nil means the local terminal.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one racing session.
// Each tick feeds at most one buffered key to the state machine.
type Model struct {
	machine     *game.Machine
	runtime     *core.RuntimeConfig // shared with the track factory
	screen      *core.Screen
	session     string
	keys        KeyMap
	mapper      *KeyMapper
	help        help.Model
	palette     *Palette
	footer      lipgloss.Style
	results     ResultsModel
	pending     core.Key
	showResults bool
	quitting    bool
}

// NewModel creates a session with a machine in the Start state.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	rt.ScreenH = max(1, rt.ScreenH-footerHeight)

	if opts.Session == "" {
		opts.Session = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}

	machineOpts := []game.Option{
		game.WithLogger(logger.With("session", opts.Session)),
		game.WithTracer(tracer),
	}
	if store := opts.Store; store != nil {
		session := opts.Session
		machineOpts = append(machineOpts,
			game.WithRaceEndHook(func(res game.RaceResult) {
				if _, err := store.SaveResult(session, res); err != nil {
					logger.Warn("could not save race result", "error", err)
				}
			}),
			game.WithBestScore(func(infinite bool) int {
				best, err := store.BestScore(game.ModeName(infinite))
				if err != nil {
					logger.Warn("could not load best score", "error", err)
					return 0
				}
				return best
			}),
		)
	}

	runtime := &rt
	keys := DefaultKeyMap()
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return Model{
		machine: game.NewMachine(
			race.Factory(opts.Config, runtime),
			game.RulesFromConfig(opts.Config),
			machineOpts...,
		),
		runtime: runtime,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		session: opts.Session,
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    help.New(),
		palette: NewPalette(renderer),
		footer:  renderer.NewStyle().Foreground(lipgloss.Color("241")),
		results: NewResultsModel(opts.Store, opts.Session, rt.ScreenW, rt.ScreenH+footerHeight),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.machine.Abandon()
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Results) {
		m.showResults = !m.showResults
		if m.showResults {
			m.results.Load(m.machine.InfiniteMode())
		}
		return m, nil
	}

	// The results table owns the keyboard while it is open
	if m.showResults {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	// One key per frame; extra presses before the next tick are dropped
	if m.pending == core.KeyNone {
		m.pending = k
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = max(1, msg.Height-footerHeight)
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH)
	m.help.Width = msg.Width

	// A race in progress keeps its layout until the next one
	m.machine.Rebuild()

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The race is frozen while the results cover it
	if m.showResults {
		return m, tickCmd(m.runtime.TickRate)
	}
	m.machine.Step(m.pending)
	m.pending = core.KeyNone
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showResults {
		return m.results.View()
	}

	m.machine.Render(m.screen)

	return m.palette.Render(m.screen) + "\n" + m.footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// Score returns the score of the race on the current track.
func (m Model) Score() int {
	return m.machine.Score()
}

// Machine returns the state machine driven by this model.
func (m Model) Machine() *game.Machine {
	return m.machine
}

// Session returns the session ID results are stored under.
func (m Model) Session() string {
	return m.session
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the score of the race on the track at exit.
func Run(opts Options, programOpts ...tea.ProgramOption) (int, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...,
	)

	final, err := p.Run()
	if err != nil {
		return model.Score(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.Score(), nil
	}
	return model.Score(), nil
}
