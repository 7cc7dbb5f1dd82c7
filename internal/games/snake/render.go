package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
)

// The board is drawn with half-block characters: one character column per
// cell and two cell rows per character row, which keeps cells roughly square.
const hudHeight = 1

// MinScreenSize returns the terminal size needed to draw the board.
func (s *Session) MinScreenSize() (w, h int) {
	return s.bounds.Cols() + 2, (s.bounds.Rows()+1)/2 + 2 + hudHeight
}

// Render draws the current state to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	switch s.state {
	case StateMenu:
		s.renderMenu(dst)
		return
	case StateModeSelect:
		s.renderModeSelect(dst)
		return
	case StateSettings:
		s.renderSettings(dst)
		return
	case StateHighScores:
		s.renderHighScores(dst)
		return
	}

	minW, minH := s.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	s.renderHUD(dst)
	s.renderBoard(dst, (dst.Width()-minW)/2, hudHeight)

	switch s.state {
	case StatePaused:
		renderOverlay(dst, "Paused", "P/Enter resume  Q menu")
	case StateGameOver:
		line := fmt.Sprintf("Score: %d", s.score)
		if s.lastResult != nil && s.lastResult.NewHigh {
			line = fmt.Sprintf("New high score: %d!", s.score)
		}
		renderOverlay(dst, "Game Over", line, "Enter retry  Esc menu")
	}
}

func (s *Session) renderHUD(dst *core.Screen) {
	h := s.HUD()
	var b strings.Builder
	fmt.Fprintf(&b, " Score: %d  Best: %d  Len: %d", h.Score, h.Best, h.Length)
	if h.Multiplier > 1 {
		fmt.Fprintf(&b, "  x%d", h.Multiplier)
	}
	if h.Mode == ModeTimeAttack {
		fmt.Fprintf(&b, "  Time: %d:%02d", h.SecondsLeft/60, h.SecondsLeft%60)
	}
	for _, e := range h.Effects {
		fmt.Fprintf(&b, "  %s %ds", e.Effect, (e.Remaining+s.cfg.TickRate-1)/s.cfg.TickRate)
	}
	dst.DrawText(0, 0, b.String(), core.ColorText)

	tag := fmt.Sprintf("%s/%s ", h.Mode.Label(), h.Difficulty.Label())
	x := dst.Width() - len(tag)
	if x > b.Len() {
		dst.DrawText(x, 0, tag, core.ColorDim)
	}
}

// cellColors rasterises the board into one colour per cell.
func (s *Session) cellColors() [][]core.Color {
	cols, rows := s.bounds.Cols(), s.bounds.Rows()
	grid := make([][]core.Color, rows)
	for r := range grid {
		grid[r] = make([]core.Color, cols)
	}
	put := func(p core.Point, c core.Color) {
		if !s.bounds.Contains(p) {
			return
		}
		col, row := s.bounds.ToCell(p)
		grid[row][col] = c
	}

	for _, o := range s.obstacles.All() {
		c := core.ColorObstacle
		if o.Kind == ObstacleMoving {
			c = core.ColorObstacleMoving
		}
		put(o.Pos, c)
	}
	if s.food.Active() {
		put(s.food.Position(), foodColor(s.food.Kind()))
	}

	body := s.snake.Body()
	bodyColor := core.ColorSnakeBody
	headColor := core.ColorSnakeHead
	switch {
	case s.snake.Dying():
		bodyColor, headColor = core.ColorSnakeDead, core.ColorSnakeDead
	case s.snake.Effects().Ghost > 0:
		bodyColor = core.ColorSnakeGhost
	}
	for i := len(body) - 1; i > 0; i-- {
		put(body[i], bodyColor)
	}
	put(body[0], headColor)
	return grid
}

func (s *Session) renderBoard(dst *core.Screen, x0, y0 int) {
	cols, rows := s.bounds.Cols(), s.bounds.Rows()
	charRows := (rows + 1) / 2
	dst.DrawBox(x0, y0, cols+2, charRows+2, core.ColorBorder)

	grid := s.cellColors()
	for cr := range charRows {
		for col := range cols {
			top := grid[2*cr][col]
			bottom := core.ColorDefault
			if 2*cr+1 < rows {
				bottom = grid[2*cr+1][col]
			}
			x, y := x0+1+col, y0+1+cr
			switch {
			case top == core.ColorDefault && bottom == core.ColorDefault:
				// empty
			case top == bottom:
				dst.SetColored(x, y, '█', top)
			case bottom == core.ColorDefault:
				dst.SetColored(x, y, '▀', top)
			case top == core.ColorDefault:
				dst.SetColored(x, y, '▄', bottom)
			default:
				dst.SetBlock(x, y, '▀', top, bottom)
			}
		}
	}
}

func foodColor(k FoodKind) core.Color {
	mustFoodKind(k)
	switch k {
	case FoodSpecial:
		return core.ColorFoodSpecial
	case FoodSuper:
		return core.ColorFoodSuper
	case FoodShrink:
		return core.ColorFoodShrink
	case FoodSlowmo:
		return core.ColorFoodSlowmo
	case FoodDoubleScore:
		return core.ColorFoodDouble
	case FoodGhost:
		return core.ColorFoodGhost
	default:
		return core.ColorFoodNormal
	}
}

const title = "P I X E L   S N A K E"

func (s *Session) renderMenu(dst *core.Screen) {
	y := dst.Height()/2 - 5
	dst.DrawTextCentered(y, title, core.ColorTitle)
	y += 2
	for i, item := range MenuItems() {
		renderOption(dst, y+i, item.String(), i == s.menuCursor)
	}
	y += len(MenuItems()) + 1
	dst.DrawTextCentered(y, fmt.Sprintf("Mode: %s   Difficulty: %s", s.mode.Label(), s.difficulty.Label()), core.ColorDim)
}

func (s *Session) renderModeSelect(dst *core.Screen) {
	y := dst.Height()/2 - 4
	dst.DrawTextCentered(y, "SELECT GAME MODE", core.ColorTitle)
	y += 2
	modes := Modes()
	for i, m := range modes {
		renderOption(dst, y+i, m.Label(), i == s.modeCursor)
	}
	y += len(modes) + 1
	dst.DrawTextCentered(y, modes[s.modeCursor].Description(), core.ColorDim)
	dst.DrawTextCentered(y+2, "Enter start  Esc back", core.ColorDim)
}

func (s *Session) renderSettings(dst *core.Screen) {
	y := dst.Height()/2 - 4
	dst.DrawTextCentered(y, "SETTINGS", core.ColorTitle)
	y += 2
	for i, item := range SettingsItems() {
		var label string
		switch item {
		case SettingSound:
			label = "Sound: " + onOff(s.soundOn)
		case SettingMusic:
			label = "Music: " + onOff(s.musicOn)
		case SettingDifficulty:
			label = "Difficulty: " + s.difficulty.Label()
		case SettingBack:
			label = "Back"
		}
		renderOption(dst, y+i, label, i == s.settingsCursor)
	}
}

func (s *Session) renderHighScores(dst *core.Screen) {
	y := dst.Height()/2 - 4
	dst.DrawTextCentered(y, "HIGH SCORES", core.ColorTitle)
	y += 2
	for i, d := range config.Difficulties() {
		c := core.ColorText
		if d == s.difficulty {
			c = core.ColorSelected
		}
		dst.DrawTextCentered(y+i, fmt.Sprintf("%-8s %8d", d.Label(), s.BestFor(d)), c)
	}
	dst.DrawTextCentered(y+len(config.Difficulties())+1, "Enter/Esc back", core.ColorDim)
}

func renderOption(dst *core.Screen, y int, label string, selected bool) {
	if selected {
		dst.DrawTextCentered(y, "> "+label+" <", core.ColorSelected)
		return
	}
	dst.DrawTextCentered(y, label, core.ColorText)
}

// renderOverlay draws a bordered box with centred lines in the middle of the screen.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBorder)
	for i, l := range lines {
		c := core.ColorText
		if i == 0 {
			c = core.ColorAlert
		}
		dst.DrawTextCentered(boxY+1+i, l, c)
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
