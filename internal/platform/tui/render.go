package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/astrobreak/internal/core"
)

// styleKey identifies a cell style.
type styleKey struct {
	color string
	bold  bool
}

// Renderer converts screens to styled strings, caching lipgloss styles.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if k.color != "" {
		s = s.Foreground(lipgloss.Color(k.color))
	}
	if k.bold {
		s = s.Bold(true)
	}
	r.styles[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := styleKey{color: cell.Color, bold: cell.Bold}

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != k.color || cell.Bold != k.bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if k == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(k).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with a throwaway style cache.
func RenderScreen(s *core.Screen) string {
	return NewRenderer().RenderScreen(s)
}

// centerText pads text so it is centered in width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
