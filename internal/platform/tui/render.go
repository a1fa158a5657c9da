package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/limitless/internal/core"
)

// paletteStyles is indexed by core.Color.
var paletteStyles = func() [core.ColorCount]lipgloss.Style {
	var out [core.ColorCount]lipgloss.Style
	for i := range out {
		out[i] = lipgloss.NewStyle()
		if code := core.Color(i).ANSI(); code != "" {
			out[i] = out[i].Foreground(lipgloss.Color(code))
		}
	}
	return out
}()

func styleOf(c core.Color) lipgloss.Style {
	if c >= core.ColorCount {
		c = core.ColorDefault
	}
	return paletteStyles[c]
}

// RenderScreen turns the buffer into one styled frame. Each row is emitted
// as same-color spans so a span costs a single escape sequence.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var frame, span strings.Builder
	frame.Grow(w*h*2 + h)

	flush := func(c core.Color) {
		if span.Len() == 0 {
			return
		}
		frame.WriteString(styleOf(c).Render(span.String()))
		span.Reset()
	}

	for y := range h {
		if y > 0 {
			frame.WriteByte('\n')
		}
		cur := s.GetCell(0, y).Color
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Color != cur {
				flush(cur)
				cur = cell.Color
			}
			span.WriteRune(cell.Rune)
		}
		flush(cur)
	}
	return frame.String()
}
