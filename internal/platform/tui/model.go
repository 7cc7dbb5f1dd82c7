package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/games/snake"
)

// Services are the collaborators shared by every session a process runs.
type Services struct {
	Config     config.SnakeConfig
	Scores     snake.HighScores
	History    snake.ResultRecorder
	Logger     *log.Logger
	Difficulty config.Difficulty
	Mode       snake.Mode
}

// NewSession creates a session wired to the shared services. Extra listeners
// receive the session's notifications after the model's own.
func (s Services) NewSession(seed int64, listeners ...snake.Listener) (*snake.Session, *Cues, error) {
	cues := &Cues{}
	all := append(snake.Listeners{cues}, listeners...)
	session, err := snake.NewSession(s.Config, snake.Deps{
		Scores:     s.Scores,
		History:    s.History,
		Listener:   all,
		Logger:     s.Logger,
		Seed:       seed,
		Difficulty: s.Difficulty,
		Mode:       s.Mode,
	})
	if err != nil {
		return nil, nil, err
	}
	return session, cues, nil
}

// cueTicks is how long a cue stays on screen.
const cueTicks = 45

// Cues turns session notifications into short status messages shown under
// the board.
type Cues struct {
	snake.NopListener
	text  string
	ticks int
}

func (c *Cues) OnFoodEaten(kind snake.FoodKind) {
	if kind.IsSpecial() {
		c.show(strings.ToUpper(strings.ReplaceAll(kind.String(), "_", " ")) + "!")
	}
}

func (c *Cues) OnGameOver(finalScore int, newHighScore bool) {
	if newHighScore {
		c.show(fmt.Sprintf("new high score %d", finalScore))
	}
}

func (c *Cues) show(text string) {
	c.text = text
	c.ticks = cueTicks
}

func (c *Cues) dismiss() {
	c.text = ""
	c.ticks = 0
}

// tick ages the current cue and returns what should be displayed.
func (c *Cues) tick() string {
	if c.ticks == 0 {
		return ""
	}
	c.ticks--
	return c.text
}

// Model is the Bubble Tea model running one session.
type Model struct {
	session  *snake.Session
	cues     *Cues
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	tickRate int
	cue      string
	quitting bool
}

// NewModel creates a model for session. cues may be nil.
func NewModel(session *snake.Session, cues *Cues, renderer *Renderer, cfg core.RuntimeConfig) Model {
	if renderer == nil {
		renderer = NewRenderer(nil)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = session.Config().TickRate
	}
	h := help.New()
	h.Width = cfg.ScreenW
	h.Styles = help.Styles{} // plain text, coloured by the screen buffer

	return Model{
		session:  session,
		cues:     cues,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     h,
		input:    core.NewInputFrame(),
		tickRate: cfg.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, force := m.keys.Action(msg)
		if force {
			m.quitting = true
			return m, tea.Quit
		}
		m.input.Set(action)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick steps the session with the input collected since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Leaving the game over screen drops its cue
	if m.cues != nil && (m.input.Has(core.ActionRestart) || m.input.Has(core.ActionBack)) {
		m.cues.dismiss()
	}
	m.session.Step(m.input)
	m.input.Clear()

	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.cues != nil {
		m.cue = m.cues.tick()
	}
	return m, tickCmd(m.tickRate)
}

// View renders the session and, when there is room, a cue and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	_, minH := m.session.MinScreenSize()
	if m.screen.Height() > minH {
		bottom := m.screen.Height() - 1
		switch {
		case m.cue != "":
			m.screen.DrawTextCentered(bottom, m.cue, core.ColorSelected)
		case m.session.State() == snake.StateRunning:
			m.screen.DrawTextCentered(bottom, m.help.View(m.keys), core.ColorDim)
		}
	}
	return m.renderer.Render(m.screen)
}

// Session returns the session driven by the model.
func (m Model) Session() *snake.Session {
	return m.session
}

// Run starts the Bubble Tea program for a fresh session.
func Run(services Services, cfg core.RuntimeConfig) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	session, cues, err := services.NewSession(cfg.Seed)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(session, cues, nil, cfg),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
