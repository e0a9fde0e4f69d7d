package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blobrun/internal/core"
)

// palette holds the ANSI code for every core.Color. Default stays empty
// and renders in the terminal's own foreground.
var palette = [...]lipgloss.Color{
	core.ColorDefault:      "",
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightBlue:   "12",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGray:         "240",
	core.ColorBrown:        "130",
}

var colorStyles = func() [len(palette)]lipgloss.Style {
	var out [len(palette)]lipgloss.Style
	for i, c := range palette {
		out[i] = lipgloss.NewStyle()
		if c != "" {
			out[i] = out[i].Foreground(c)
		}
	}
	return out
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// styledRun is a stretch of one row drawn in a single color.
type styledRun struct {
	color core.Color
	text  []rune
}

// rowRuns splits row y into color runs. A blank looks the same in any
// color, so it joins the run it follows: a floor row like "## ##" with
// default-colored gaps is one run, not three.
func rowRuns(s *core.Screen, y int) []styledRun {
	var runs []styledRun
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		color := cell.Color
		if cell.Rune == ' ' && len(runs) > 0 {
			color = runs[len(runs)-1].color
		}
		if len(runs) == 0 || runs[len(runs)-1].color != color {
			runs = append(runs, styledRun{color: color})
		}
		last := &runs[len(runs)-1]
		last.text = append(last.text, cell.Rune)
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range rowRuns(s, y) {
			if run.color == core.ColorDefault {
				sb.WriteString(string(run.text))
				continue
			}
			sb.WriteString(styleFor(run.color).Render(string(run.text)))
		}
	}
	return sb.String()
}
