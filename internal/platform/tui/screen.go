package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is a small palette for pitch cells.
type Color int

const (
	ColorDefault Color = iota
	ColorBall
	ColorCone
	ColorGoalpost
	ColorDefender
	ColorCoin
	ColorGround
	ColorHUD
)

var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:  lipgloss.NewStyle(),
	ColorBall:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorCone:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGoalpost: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorDefender: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorCoin:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

type cell struct {
	r rune
	c Color
}

// Screen is a 2D colored character buffer the pitch is drawn into.
// It decouples the projection from the terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]cell
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]cell, s.width)
	}
}

// Width returns the buffer width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the buffer height in characters.
func (s *Screen) Height() int { return s.height }

// Resize changes the buffer dimensions, discarding content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the buffer with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = cell{r: ' ', c: ColorDefault}
		}
	}
}

// Set places a rune at the given position. Out-of-bounds coordinates
// are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = cell{r: r, c: c}
}

// DrawText writes a string horizontally starting at (x, y), clipped to
// the buffer bounds.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	// Advance one cell per rune; a byte-indexed range would leave gaps
	// after multi-byte runes.
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// String renders the buffer to a styled string. Adjacent cells with
// the same color are grouped to keep the ANSI output small.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*2 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.width {
			start := s.cells[y][x].c

			var run strings.Builder
			for x < s.width && s.cells[y][x].c == start {
				run.WriteRune(s.cells[y][x].r)
				x++
			}

			if start == ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(colorStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}
