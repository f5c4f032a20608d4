package fontgen

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridCrop(t *testing.T) {
	img := gridFromRows(
		"#..",
		".#.",
		"..#",
	)
	assert.Equal(t, "#.\n.#", img.Crop(0, 0, 2, 2).String())
	// Out of bounds pixels are always a background.
	assert.Equal(t, "#..\n...", img.Crop(2, 2, 3, 2).String())
	assert.True(t, img.Crop(1, 1, 0, 5).IsEmpty())
}

func TestNewGridClampsSize(t *testing.T) {
	img := newGrid(math.MaxInt, math.MaxInt)
	assert.Equal(t, maxGridSide, img.Width())
	assert.Equal(t, maxGridSide, img.Height())
	img.Set(maxGridSide-1, maxGridSide-1, true)
	assert.True(t, img.Get(maxGridSide-1, maxGridSide-1))

	img = newGrid(-5, 3)
	assert.True(t, img.IsEmpty())
}

func TestTrimGlyph(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		offsetX int
		offsetY int
		result  string
	}{
		{
			name:   "full",
			rows:   []string{"##", "##"},
			result: "##\n##",
		},
		{
			name: "center",
			rows: []string{
				".....",
				"..#..",
				".#.#.",
				".....",
			},
			offsetX: 1,
			offsetY: 1,
			result:  ".#.\n#.#",
		},
		{
			name: "corners",
			rows: []string{
				"...#",
				"....",
				"#...",
			},
			offsetX: 0,
			offsetY: 0,
			result:  "...#\n....\n#...",
		},
		{
			name: "single pixel",
			rows: []string{
				"....",
				"....",
				"...#",
			},
			offsetX: 3,
			offsetY: 2,
			result:  "#",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := trimGlyph(65, gridFromRows(test.rows...), nil)
			assert.Equal(t, uint32(65), g.Code)
			assert.Equal(t, test.offsetX, g.OffsetX)
			assert.Equal(t, test.offsetY, g.OffsetY)
			assert.Equal(t, test.result, g.Img.String())
			assertInkTouchesEdges(t, g.Img)
		})
	}
}

// assertInkTouchesEdges checks that a trimmed image has
// ink pixels on all four of its edges.
func assertInkTouchesEdges(t *testing.T, img *grid) {
	t.Helper()
	require.False(t, img.IsEmpty())
	var top, bottom, left, right bool
	for x := 0; x < img.Width(); x++ {
		top = top || img.Get(x, 0)
		bottom = bottom || img.Get(x, img.Height()-1)
	}
	for y := 0; y < img.Height(); y++ {
		left = left || img.Get(0, y)
		right = right || img.Get(img.Width()-1, y)
	}
	assert.True(t, top && bottom && left && right, "under-trimmed:\n%s", img)
}

func TestTrimGlyphNoInk(t *testing.T) {
	g := trimGlyph(32, gridFromRows(blankRows(6, 8)...), nil)
	assert.True(t, g.Img.IsEmpty())
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, 0, g.Height())
	assert.Equal(t, 0, g.OffsetX)
	assert.Equal(t, 0, g.OffsetY)
}

func TestTrimGlyphOverride(t *testing.T) {
	img := gridFromRows(
		"#...",
		".##.",
		".##.",
		"...#",
	)
	overrides := map[uint32]GlyphOverride{
		65: {Pos: image.Pt(1, 1), Size: image.Pt(2, 2)},
	}
	g := trimGlyph(65, img, overrides)
	assert.Equal(t, 1, g.OffsetX)
	assert.Equal(t, 1, g.OffsetY)
	assert.Equal(t, "##\n##", g.Img.String())

	// Other codes are still trimmed automatically.
	g = trimGlyph(66, img, overrides)
	assert.Equal(t, 0, g.OffsetX)
	assert.Equal(t, 4, g.Width())
}

func TestTrimGlyphOverrideOutsideCell(t *testing.T) {
	img := gridFromRows("##", "##")
	overrides := map[uint32]GlyphOverride{
		65: {Pos: image.Pt(1, 0), Size: image.Pt(3, 3)},
	}
	g := trimGlyph(65, img, overrides)
	assert.Equal(t, "#..\n#..\n...", g.Img.String())
}

func TestTrimGlyphEmptyOverride(t *testing.T) {
	sizes := []image.Point{
		image.Pt(0, 0),
		image.Pt(0, 5),
		image.Pt(5, 0),
		image.Pt(-1, 3),
	}
	img := gridFromRows(solidRows(4, 4)...)
	for _, size := range sizes {
		overrides := map[uint32]GlyphOverride{
			32: {Pos: image.Pt(1, 2), Size: size},
		}
		// The glyph has ink, but the override must win anyway.
		g := trimGlyph(32, img, overrides)
		assert.True(t, g.Img.IsEmpty(), "size=%v", size)
		assert.Equal(t, 1, g.OffsetX, "size=%v", size)
		assert.Equal(t, 2, g.OffsetY, "size=%v", size)
	}
}

func TestTrimGlyphHugeOverride(t *testing.T) {
	img := gridFromRows("#")

	overrides := map[uint32]GlyphOverride{
		65: {Size: image.Pt(math.MaxInt, math.MaxInt)},
	}
	g := trimGlyph(65, img, overrides)
	assert.Equal(t, maxGridSide, g.Width())
	assert.Equal(t, maxGridSide, g.Height())
	assert.True(t, g.Img.Get(0, 0))
	assert.False(t, g.Img.Get(1, 0))

	// Coordinates past the int range read as background.
	overrides = map[uint32]GlyphOverride{
		66: {Pos: image.Pt(math.MaxInt-1, math.MaxInt-1), Size: image.Pt(4, 4)},
	}
	g = trimGlyph(66, img, overrides)
	assert.Equal(t, math.MaxInt-1, g.OffsetX)
	assert.Equal(t, "....\n....\n....\n....", g.Img.String())
}
