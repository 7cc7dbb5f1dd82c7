// Package snake implements the snake game simulation: the snake with its
// timed power-ups, the food slot, the obstacle field and the session state
// machine that runs them on a fixed tick.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
)

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuGameMode
	MenuHighScores
	MenuSettings
	MenuQuit
)

// MenuItems returns the main menu entries in display order.
func MenuItems() []MenuItem {
	return []MenuItem{MenuStart, MenuGameMode, MenuHighScores, MenuSettings, MenuQuit}
}

// String returns the menu label.
func (m MenuItem) String() string {
	switch m {
	case MenuStart:
		return "Start Game"
	case MenuGameMode:
		return "Game Mode"
	case MenuHighScores:
		return "High Scores"
	case MenuSettings:
		return "Settings"
	case MenuQuit:
		return "Quit"
	default:
		return fmt.Sprintf("MenuItem(%d)", int(m))
	}
}

// SettingsItem is an entry of the settings screen.
type SettingsItem int

const (
	SettingSound SettingsItem = iota
	SettingMusic
	SettingDifficulty
	SettingBack
)

// SettingsItems returns the settings entries in display order.
func SettingsItems() []SettingsItem {
	return []SettingsItem{SettingSound, SettingMusic, SettingDifficulty, SettingBack}
}

// Deps are the collaborators of a session. All fields are optional.
type Deps struct {
	Scores     HighScores
	History    ResultRecorder
	Listener   Listener
	Logger     *log.Logger
	Seed       int64
	Difficulty config.Difficulty // default medium
	Mode       Mode
	Now        func() time.Time
}

// Session is the game state machine. It owns the snake, the food and the
// obstacles of the current game and is driven by Step once per tick.
// A Session is not safe for concurrent use.
type Session struct {
	cfg      config.SnakeConfig
	bounds   core.Bounds
	policy   SpawnPolicy
	layout   []layoutSpec
	rng      *rand.Rand
	scores   HighScores
	history  ResultRecorder
	listener Listener
	logger   *log.Logger
	now      func() time.Time

	state          State
	menuCursor     int
	modeCursor     int
	settingsCursor int
	mode           Mode
	difficulty     config.Difficulty
	soundOn        bool
	musicOn        bool
	quit           bool

	// Per-game state
	id            string
	snake         *Snake
	food          *Food
	obstacles     *ObstacleField
	score         int
	frameCounter  int
	timeRemaining int
	ticks         uint64
	lastResult    *Result

	tick uint64
}

// NewSession validates cfg and creates a session in the Menu state.
func NewSession(cfg config.SnakeConfig, deps Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := NewSpawnPolicy(cfg.Food)
	if err != nil {
		return nil, err
	}
	bounds := core.Bounds{Width: cfg.Grid.Width, Height: cfg.Grid.Height, Cell: cfg.Grid.CellSize}
	layout, err := parseLayout(cfg.Obstacles.ChallengeLayout, bounds)
	if err != nil {
		return nil, err
	}

	difficulty := deps.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyMedium
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("snake: unknown difficulty %q", string(difficulty))
	}
	if deps.Mode < ModeClassic || deps.Mode > ModeChallenge {
		return nil, fmt.Errorf("snake: unknown mode %d", int(deps.Mode))
	}

	s := &Session{
		cfg:        cfg,
		bounds:     bounds,
		policy:     policy,
		layout:     layout,
		rng:        rand.New(rand.NewSource(deps.Seed)),
		scores:     deps.Scores,
		history:    deps.History,
		listener:   deps.Listener,
		logger:     deps.Logger,
		now:        deps.Now,
		state:      StateMenu,
		mode:       deps.Mode,
		modeCursor: int(deps.Mode),
		difficulty: difficulty,
		soundOn:    true,
		musicOn:    true,
	}
	if s.listener == nil {
		s.listener = NopListener{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

// Step applies the actions of one tick in arrival order, then advances the
// game if it is running.
func (s *Session) Step(input core.InputFrame) {
	s.tick++
	for _, a := range input.Actions() {
		s.handleAction(a)
	}
	if s.state == StateRunning {
		s.update()
	}
}

func (s *Session) handleAction(a core.Action) {
	switch s.state {
	case StateMenu:
		s.handleMenu(a)
	case StateModeSelect:
		s.handleModeSelect(a)
	case StateSettings:
		s.handleSettings(a)
	case StateHighScores:
		if a == core.ActionBack || a == core.ActionConfirm {
			s.setState(StateMenu)
		}
	case StateRunning:
		s.handleRunning(a)
	case StatePaused:
		switch a {
		case core.ActionPause, core.ActionBack, core.ActionConfirm:
			s.setState(StateRunning)
		case core.ActionQuit:
			s.setState(StateMenu)
		}
	case StateGameOver:
		switch a {
		case core.ActionConfirm, core.ActionRestart:
			s.StartGame()
		case core.ActionBack:
			s.setState(StateMenu)
		}
	}
}

func (s *Session) handleMenu(a core.Action) {
	items := MenuItems()
	switch a {
	case core.ActionUp:
		s.menuCursor = wrap(s.menuCursor-1, len(items))
	case core.ActionDown:
		s.menuCursor = wrap(s.menuCursor+1, len(items))
	case core.ActionQuit:
		s.quit = true
	case core.ActionConfirm:
		switch items[s.menuCursor] {
		case MenuStart:
			s.StartGame()
		case MenuGameMode:
			s.modeCursor = int(s.mode)
			s.setState(StateModeSelect)
		case MenuHighScores:
			s.setState(StateHighScores)
		case MenuSettings:
			s.settingsCursor = 0
			s.setState(StateSettings)
		case MenuQuit:
			s.quit = true
		}
	}
}

func (s *Session) handleModeSelect(a core.Action) {
	modes := Modes()
	switch a {
	case core.ActionUp:
		s.modeCursor = wrap(s.modeCursor-1, len(modes))
	case core.ActionDown:
		s.modeCursor = wrap(s.modeCursor+1, len(modes))
	case core.ActionConfirm:
		s.mode = modes[s.modeCursor]
		s.StartGame()
	case core.ActionBack:
		s.setState(StateMenu)
	}
}

func (s *Session) handleSettings(a core.Action) {
	items := SettingsItems()
	switch a {
	case core.ActionUp:
		s.settingsCursor = wrap(s.settingsCursor-1, len(items))
	case core.ActionDown:
		s.settingsCursor = wrap(s.settingsCursor+1, len(items))
	case core.ActionBack:
		s.setState(StateMenu)
	case core.ActionConfirm:
		switch items[s.settingsCursor] {
		case SettingSound:
			s.soundOn = !s.soundOn
		case SettingMusic:
			s.musicOn = !s.musicOn
		case SettingDifficulty:
			s.difficulty = s.difficulty.Next()
			s.logger.Debug("difficulty changed", "difficulty", s.difficulty)
		case SettingBack:
			s.setState(StateMenu)
		}
	}
}

func (s *Session) handleRunning(a core.Action) {
	switch a {
	case core.ActionUp:
		s.snake.ChangeDirection(core.DirUp)
	case core.ActionDown:
		s.snake.ChangeDirection(core.DirDown)
	case core.ActionLeft:
		s.snake.ChangeDirection(core.DirLeft)
	case core.ActionRight:
		s.snake.ChangeDirection(core.DirRight)
	case core.ActionPause, core.ActionBack:
		s.setState(StatePaused)
	}
}

// StartGame resets the per-game state for the selected mode and difficulty
// and enters Running.
func (s *Session) StartGame() {
	s.id = uuid.NewString()
	s.snake = NewSnake(s.cfg)
	s.food = NewFood(s.policy, s.bounds, s.rng)
	s.obstacles = NewObstacleField(s.cfg.Obstacles, s.bounds, s.rng)
	if s.mode == ModeChallenge {
		s.obstacles.seedLayout(s.layout)
	}
	s.score = 0
	s.frameCounter = 0
	s.ticks = 0
	s.timeRemaining = 0
	if s.mode == ModeTimeAttack {
		s.timeRemaining = s.cfg.TimeAttackTicks()
	}
	s.lastResult = nil

	s.spawnFood()
	s.logger.Info("game started", "id", s.id, "mode", s.mode, "difficulty", s.difficulty)
	s.setState(StateRunning)
}

// update runs one tick of a running game.
func (s *Session) update() {
	s.ticks++

	// Movement cadence
	s.frameCounter++
	threshold := s.cfg.MovementThreshold(s.difficulty, s.snake.Effects().Slowmo > 0)
	if s.frameCounter >= threshold {
		s.frameCounter = 0
		for _, eff := range s.snake.Move() {
			s.logger.Debug("effect expired", "effect", eff)
		}
		if hit := s.snake.CheckCollision(s.bounds, s.obstacles.Positions()); hit != NoHit {
			s.listener.OnCollision(hit)
			s.gameOver(endCauseFor(hit))
			return
		}
	}

	if s.food.Active() && s.snake.Head() == s.food.Position() {
		s.eat()
	}

	if s.mode == ModeTimeAttack {
		s.timeRemaining--
		if s.timeRemaining <= 0 {
			s.timeRemaining = 0
			s.gameOver(EndTimeUp)
			return
		}
	}

	s.food.Update()
	if !s.food.Active() {
		// Retried quietly every tick until a cell frees up
		s.food.Spawn(s.cellBlocked)
	}
	s.obstacles.Update(s.obstacleBlocked)
}

// eat resolves a food-eaten event.
func (s *Session) eat() {
	kind := s.food.Kind()
	if kind.IsSpecial() {
		s.snake.ApplyPowerUp(kind)
	}

	prev := s.score
	points := s.food.PointValue() * s.snake.ScoreMultiplier()
	s.score += points
	if kind != FoodShrink {
		s.snake.Grow()
	}
	s.logger.Debug("food eaten", "kind", kind, "points", points, "score", s.score)

	s.spawnFood()

	if s.mode == ModeClassic && s.cfg.Obstacles.ClassicEvery > 0 {
		every := s.cfg.Obstacles.ClassicEvery
		for range s.score/every - prev/every {
			if s.obstacles.AddRandom(s.obstacleBlocked) {
				s.logger.Debug("obstacle added", "count", s.obstacles.Len())
			}
		}
	}

	s.listener.OnFoodEaten(kind)
}

// spawnFood respawns food away from the snake and obstacles.
func (s *Session) spawnFood() {
	if !s.food.Spawn(s.cellBlocked) {
		s.logger.Warn("no free cell for food", "length", s.snake.Len(), "obstacles", s.obstacles.Len())
	}
}

func (s *Session) cellBlocked(p core.Point) bool {
	return s.snake.Occupies(p) || s.obstacles.CollidesAt(p)
}

func (s *Session) obstacleBlocked(p core.Point) bool {
	if s.food.Active() && s.food.Position() == p {
		return true
	}
	return s.snake.Occupies(p)
}

// gameOver ends the current game. Persistence problems are reported by the
// collaborators and never stop the transition.
func (s *Session) gameOver(cause EndCause) {
	newHigh := false
	if s.scores != nil {
		newHigh = s.scores.RecordIfHigher(s.difficulty, s.score)
	}
	s.snake.StartDeathAnimation()

	res := Result{
		ID:         s.id,
		Mode:       s.mode,
		Difficulty: s.difficulty,
		Score:      s.score,
		Length:     s.snake.Len(),
		Ticks:      s.ticks,
		Cause:      cause,
		NewHigh:    newHigh,
		EndedAt:    s.now(),
	}
	s.lastResult = &res
	if s.history != nil {
		if err := s.history.SaveSessionResult(res); err != nil {
			s.logger.Warn("could not record session", "id", s.id, "error", err)
		}
	}

	s.logger.Info("game over", "id", s.id, "score", s.score, "cause", cause, "new_high", newHigh)
	s.setState(StateGameOver)
	s.listener.OnGameOver(s.score, newHigh)
}

func (s *Session) setState(st State) {
	if s.state == st {
		return
	}
	s.logger.Debug("state changed", "from", s.state, "to", st)
	s.state = st
	s.listener.OnStateChanged(st)
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Mode returns the selected game mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode selects the mode used by the next game.
func (s *Session) SetMode(m Mode) {
	s.mode = m
	s.modeCursor = int(m)
}

// Difficulty returns the selected difficulty.
func (s *Session) Difficulty() config.Difficulty {
	return s.difficulty
}

// Score returns the score of the current or last game.
func (s *Session) Score() int {
	return s.score
}

// Best returns the high score for the selected difficulty.
func (s *Session) Best() int {
	if s.scores == nil {
		return 0
	}
	return s.scores.Best(s.difficulty)
}

// BestFor returns the high score for d.
func (s *Session) BestFor(d config.Difficulty) int {
	if s.scores == nil {
		return 0
	}
	return s.scores.Best(d)
}

// SoundOn reports the sound setting.
func (s *Session) SoundOn() bool {
	return s.soundOn
}

// MusicOn reports the music setting.
func (s *Session) MusicOn() bool {
	return s.musicOn
}

// QuitRequested reports whether Quit was chosen from the main menu.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// LastResult returns the result of the last finished game, or nil.
func (s *Session) LastResult() *Result {
	return s.lastResult
}

// Config returns the game configuration.
func (s *Session) Config() config.SnakeConfig {
	return s.cfg
}

// Bounds returns the play area.
func (s *Session) Bounds() core.Bounds {
	return s.bounds
}
