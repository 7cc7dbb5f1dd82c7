package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// palette maps colour slots to terminal colours. ColorDefault has no entry
// and renders with the terminal's own colours.
var palette = map[core.Color]lipgloss.Color{
	core.ColorText:           lipgloss.Color("7"),
	core.ColorDim:            lipgloss.Color("245"),
	core.ColorTitle:          lipgloss.Color("10"),
	core.ColorSelected:       lipgloss.Color("229"),
	core.ColorBorder:         lipgloss.Color("240"),
	core.ColorAlert:          lipgloss.Color("9"),
	core.ColorSnakeHead:      lipgloss.Color("46"),
	core.ColorSnakeBody:      lipgloss.Color("34"),
	core.ColorSnakeGhost:     lipgloss.Color("117"),
	core.ColorSnakeDead:      lipgloss.Color("88"),
	core.ColorFoodNormal:     lipgloss.Color("196"),
	core.ColorFoodSpecial:    lipgloss.Color("226"),
	core.ColorFoodSuper:      lipgloss.Color("201"),
	core.ColorFoodShrink:     lipgloss.Color("208"),
	core.ColorFoodSlowmo:     lipgloss.Color("39"),
	core.ColorFoodDouble:     lipgloss.Color("220"),
	core.ColorFoodGhost:      lipgloss.Color("255"),
	core.ColorObstacle:       lipgloss.Color("244"),
	core.ColorObstacleMoving: lipgloss.Color("130"),
}

type styleKey struct {
	fg, bg core.Color
}

// Renderer converts a Screen buffer to a styled string. Styles are built
// lazily per colour pair. A Renderer is not safe for concurrent use; SSH
// sessions each get their own.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer. A nil lipgloss renderer uses the default
// one bound to stdout.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[styleKey]lipgloss.Style),
	}
}

func (r *Renderer) style(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if c, ok := palette[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		st = st.Background(c)
	}
	if fg == core.ColorTitle || fg == core.ColorAlert {
		st = st.Bold(true)
	}
	r.styles[k] = st
	return st
}

// Render groups adjacent cells with the same colours to minimise ANSI
// escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Color == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start.Color, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
