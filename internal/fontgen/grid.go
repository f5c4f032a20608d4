package fontgen

import (
	"strings"
)

// grid is a 1-bit pixel matrix.
// A true value is an ink pixel.
type grid struct {
	width  int
	height int
	pix    []bool
}

// maxGridSide limits both grid dimensions.
const maxGridSide = 4096

// newGrid allocates a width*height grid.
// Dimensions are clamped to [0, maxGridSide].
func newGrid(width, height int) *grid {
	width = clampSide(width)
	height = clampSide(height)
	return &grid{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}
}

func clampSide(n int) int {
	return min(max(n, 0), maxGridSide)
}

func (g *grid) Width() int  { return g.width }
func (g *grid) Height() int { return g.height }

func (g *grid) IsEmpty() bool { return g.width == 0 || g.height == 0 }

func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get reports whether (x, y) is an ink pixel.
// Out of bounds coordinates are always background.
func (g *grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.pix[y*g.width+x]
}

func (g *grid) Set(x, y int, ink bool) {
	if !g.inBounds(x, y) {
		return
	}
	g.pix[y*g.width+x] = ink
}

// Crop copies a w*h region starting at (x, y) into a new grid.
// Parts of the region that fall outside of g are filled with background.
func (g *grid) Crop(x, y, w, h int) *grid {
	result := newGrid(w, h)
	for dy := 0; dy < result.height; dy++ {
		for dx := 0; dx < result.width; dx++ {
			result.Set(dx, dy, g.Get(x+dx, y+dy))
		}
	}
	return result
}

// Draw copies all pixels of src into g with src top-left corner at (x, y).
func (g *grid) Draw(x, y int, src *grid) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			if src.Get(sx, sy) {
				g.Set(x+sx, y+sy, true)
			}
		}
	}
}

// String renders the grid using '#' for ink and '.' for background.
// It's mostly used by the debug output and tests.
func (g *grid) String() string {
	var buf strings.Builder
	buf.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y != 0 {
			buf.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			if g.Get(x, y) {
				buf.WriteByte('#')
			} else {
				buf.WriteByte('.')
			}
		}
	}
	return buf.String()
}
