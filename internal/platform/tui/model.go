package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astrobreak/internal/config"
	"github.com/vovakirdan/astrobreak/internal/core"
	"github.com/vovakirdan/astrobreak/internal/diag"
	"github.com/vovakirdan/astrobreak/internal/games/astrobreak"
	"github.com/vovakirdan/astrobreak/internal/storage"
)

// cueLogSize is how many cues the music lab line shows.
const cueLogSize = 6

// Options configures a Model beyond the game itself.
type Options struct {
	Store   *storage.Store // Optional; nil disables the high-score table
	Flags   diag.Flags
	Player  string      // Name stored with scores
	Logger  *log.Logger // Optional
	Publish bool        // Publish the diagnostic handle process-wide
}

// Model is the Bubble Tea model running one astrobreak game.
type Model struct {
	game     *astrobreak.Game
	handle   *diag.Handle
	screen   *core.Screen
	renderer *Renderer
	opts     Options
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	cues     *CueLog

	inputFrame core.InputFrame
	steer      core.Action
	steerTicks int

	gameState  core.GameState
	highScore  int
	scoreSaved bool // Whether the finished run has been recorded
	quitting   bool
}

// NewModel creates a new Bubble Tea model for a game configuration.
func NewModel(cfg config.AstrobreakConfig, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	game := astrobreak.New(cfg)
	cues := NewCueLog(cueLogSize)
	game.SetCueSink(cues)

	keys := DefaultKeyMap()
	keys.ForceWin.SetEnabled(opts.Flags.DevPanel)

	m := Model{
		game:       game,
		handle:     diag.NewHandle(game),
		renderer:   NewRenderer(),
		opts:       opts,
		config:     rt,
		keys:       keys,
		help:       help.New(),
		cues:       cues,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(rt.ScreenW, m.playfieldHeight(rt.ScreenH))
	m.help.Width = rt.ScreenW

	if opts.Store != nil {
		if high, err := opts.Store.HighScore(); err == nil {
			m.highScore = high
		} else {
			m.logWarn("could not read high score", "error", err)
		}
	}

	return m
}

// chromeRows is the number of terminal rows below the playfield.
func (m Model) chromeRows() int {
	rows := 1 // Help
	if m.opts.Flags.DevPanel {
		rows++
	}
	if m.opts.Flags.MusicLab {
		rows++
	}
	return rows
}

func (m Model) playfieldHeight(termH int) int {
	return max(1, termH-m.chromeRows())
}

// gameRuntime is the runtime config the game sees.
func (m Model) gameRuntime() core.RuntimeConfig {
	rt := m.config
	rt.ScreenH = m.playfieldHeight(rt.ScreenH)
	return rt
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameRuntime())
	if m.opts.Publish {
		diag.Publish(m.handle)
	}
	return tickCmd(m.config.TickRate)
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
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.ForceWin):
		m.handle.ForceWin()
		m.logInfo("force win", "remaining", m.handle.Remaining())
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.steer = action
		m.steerTicks = steerHold
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := m.playfieldHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.steerTicks > 0 {
		m.inputFrame.Set(m.steer)
		m.steerTicks--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record each finished run once
	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.saveRun()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run in the high-score table.
func (m *Model) saveRun() {
	st := m.gameState
	if st.Score > m.highScore {
		m.highScore = st.Score
	}
	if m.opts.Store == nil || st.Score <= 0 {
		return
	}

	outcome := storage.OutcomeGameOver
	if st.Won {
		outcome = storage.OutcomeWon
	}
	run, err := m.opts.Store.SaveScore(storage.Run{
		Player:    m.opts.Player,
		Score:     st.Score,
		Outcome:   outcome,
		LivesLeft: max(0, st.Lives),
	})
	if err != nil {
		m.logWarn("could not save score", "error", err)
		return
	}
	m.logInfo("run saved", "run", run.ID, "score", run.Score, "outcome", run.Outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".astrobreak", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("astrobreak_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

var (
	panelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#70a1ff"))
	labStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb347"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.renderer.RenderScreen(m.screen))

	if m.opts.Flags.DevPanel {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(m.devPanelLine()))
	}
	if m.opts.Flags.MusicLab {
		b.WriteString("\n")
		b.WriteString(labStyle.Render(m.musicLabLine()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// devPanelLine reports the diagnostic handle and current effects.
func (m Model) devPanelLine() string {
	fx := m.game.Director().Effects()
	return fmt.Sprintf("%s best=%d | stars=%.2f vignette=%.2f shake=%.2f",
		m.handle.Report(), m.highScore, fx.StarSpeed, fx.VignetteAlpha, fx.MicroShake)
}

// musicLabLine shows the latest sound cues.
func (m Model) musicLabLine() string {
	recent := m.cues.Recent()
	if len(recent) == 0 {
		return "♪ (silence)"
	}
	return "♪ " + strings.Join(recent, " · ")
}

// HighScore returns the best score known to this model.
func (m Model) HighScore() int {
	return m.highScore
}

func (m Model) logInfo(msg string, kv ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Info(msg, kv...)
	}
}

func (m Model) logWarn(msg string, kv ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, kv...)
	}
}

// Run starts the Bubble Tea program with the given configuration.
func Run(cfg config.AstrobreakConfig, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)
	if opts.Publish {
		defer diag.Publish(nil)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
