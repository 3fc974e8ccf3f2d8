package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-pixels/internal/core"
)

// upperHalf draws the upper pixel as foreground and the lower as background.
const upperHalf = "▀"

// cellKey identifies the colour pair of one terminal cell.
// hasLower is false on the last line of an odd-height image.
type cellKey struct {
	upper    core.Color
	lower    core.Color
	hasLower bool
}

// TermPresenter shows frames in a terminal using two pixels per character cell.
// Each logical pixel is drawn as a scale×scale block; the scale is the largest
// integer that fits the physical terminal size.
type TermPresenter struct {
	renderer *lipgloss.Renderer
	styles   map[cellKey]lipgloss.Style

	// Physical terminal size in cells; zero until the first resize.
	cols int
	rows int
	// Rows kept free below the image for the help line.
	reservedRows int

	scale int
	view  string
}

// NewTermPresenter creates a presenter drawing through r.
// A nil renderer uses the Lip Gloss default renderer.
func NewTermPresenter(r *lipgloss.Renderer) *TermPresenter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &TermPresenter{
		renderer:     r,
		styles:       make(map[cellKey]lipgloss.Style),
		reservedRows: 1,
		scale:        1,
	}
}

// Resize records the physical terminal size. Only the scale changes.
func (p *TermPresenter) Resize(cols, rows int) {
	p.cols = cols
	p.rows = rows
}

// Scale returns the scale used by the last presented frame.
func (p *TermPresenter) Scale() int {
	return p.scale
}

// View returns the last presented frame as styled text.
func (p *TermPresenter) View() string {
	return p.view
}

// Present renders f into the view string.
func (p *TermPresenter) Present(f core.Frame) error {
	p.scale = p.fitScale(f.Width, f.Height)
	p.view = p.render(f, p.scale)
	return nil
}

// fitScale picks the largest integer scale at which a w×h image fits.
func (p *TermPresenter) fitScale(w, h int) int {
	if p.cols <= 0 || p.rows <= 0 || w <= 0 || h <= 0 {
		return 1
	}
	byWidth := p.cols / w
	byHeight := 2 * (p.rows - p.reservedRows) / h
	return core.Max(1, core.Min(byWidth, byHeight))
}

// render converts a frame to lines of half-block cells.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (p *TermPresenter) render(f core.Frame, scale int) string {
	width := f.Width * scale
	height := f.Height * scale
	lines := (height + 1) / 2

	var sb strings.Builder
	sb.Grow(lines * (width*len(upperHalf) + 1))

	for line := range lines {
		if line > 0 {
			sb.WriteRune('\n')
		}

		upperY := (2 * line) / scale
		lowerRow := 2*line + 1
		hasLower := lowerRow < height
		lowerY := lowerRow / scale

		x := 0
		for x < width {
			start := p.cellAt(f, x/scale, upperY, lowerY, hasLower)
			n := 0
			for x < width && p.cellAt(f, x/scale, upperY, lowerY, hasLower) == start {
				n++
				x++
			}
			sb.WriteString(p.style(start).Render(strings.Repeat(upperHalf, n)))
		}
	}
	return sb.String()
}

func (p *TermPresenter) cellAt(f core.Frame, x, upperY, lowerY int, hasLower bool) cellKey {
	k := cellKey{upper: f.At(x, upperY), hasLower: hasLower}
	if hasLower {
		k.lower = f.At(x, lowerY)
	}
	return k
}

// style returns the cached Lip Gloss style for a colour pair.
func (p *TermPresenter) style(k cellKey) lipgloss.Style {
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := p.renderer.NewStyle().Foreground(lipgloss.Color(k.upper.Hex()))
	if k.hasLower {
		s = s.Background(lipgloss.Color(k.lower.Hex()))
	}
	p.styles[k] = s
	return s
}
