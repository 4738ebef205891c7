// Package termview draws rendered rasters and run summaries on a terminal.
package termview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	mandel "github.com/gabesaba/mandelbrot"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	textStyle  = lipgloss.NewStyle().Foreground(baseFg)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// Preview samples buf into a cols x rows grid of braille cells. A dot is raised
// wherever the sampled pixel belongs to the set (gray level 0).
func Preview(buf []byte, b mandel.Bounds, cols, rows int) string {
	if cols <= 0 || rows <= 0 || b.W <= 0 || b.H <= 0 || len(buf) < b.Pixels() {
		return ""
	}
	br := newBrailleBuf(cols, rows)
	mw, mh := cols*2, rows*4
	for my := range mh {
		py := my * b.H / mh
		for mx := range mw {
			px := mx * b.W / mw
			if buf[py*b.W+px] == 0 {
				br.setPixel(mx, my)
			}
		}
	}
	return strings.Join(br.toLines(), "\n")
}

// FitPreview picks a grid no wider than maxCols cells that keeps the aspect of b.
// Braille dots are close to square, so one cell covers 2 by 4 pixels of the grid.
func FitPreview(b mandel.Bounds, maxCols int) (cols, rows int) {
	if b.W <= 0 || b.H <= 0 || maxCols <= 0 {
		return 0, 0
	}
	cols = min(maxCols, (b.W+1)/2)
	rows = max(1, (cols*2*b.H/b.W+3)/4)
	return cols, rows
}

// Summary renders a titled box, one body line per entry. Lines of the form
// "key: value" get a dimmed key.
func Summary(title string, lines ...string) string {
	body := make([]string, 0, len(lines)+1)
	body = append(body, titleStyle.Render(title))
	for _, l := range lines {
		if k, v, ok := strings.Cut(l, ": "); ok {
			body = append(body, dimStyle.Render(k+":")+" "+textStyle.Render(v))
			continue
		}
		body = append(body, textStyle.Render(l))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

// PreviewBox frames a preview the same way as Summary.
func PreviewBox(title, preview string) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), preview))
}
