package fontgen

import (
	"image"
	"math"
)

type trimmedGlyph struct {
	Code uint32

	// OffsetX and OffsetY is the position of the cropped
	// image inside the original glyph cell.
	OffsetX int
	OffsetY int

	Img *grid

	// X is a glyph placement inside the part strip.
	// It's initialized by fontPart.layout().
	X int
}

func (g trimmedGlyph) Width() int  { return g.Img.Width() }
func (g trimmedGlyph) Height() int { return g.Img.Height() }

// GlyphOverride replaces the automatic glyph trimming with
// an explicit crop rectangle.
//
// Size.X is a width and Size.Y is a height.
// A non-positive width or height produces an empty glyph
// that still gets its offset from Pos (this is useful for space).
type GlyphOverride struct {
	Pos  image.Point
	Size image.Point
}

func (o GlyphOverride) isEmpty() bool {
	return o.Size.X <= 0 || o.Size.Y <= 0
}

// trimGlyph reduces the glyph image to its ink bounding box.
//
// Glyphs with an override are never scanned.
// A glyph without any ink becomes an empty glyph with a zero offset.
func trimGlyph(code uint32, img *grid, overrides map[uint32]GlyphOverride) trimmedGlyph {
	result := trimmedGlyph{Code: code}

	if o, ok := overrides[code]; ok {
		result.OffsetX = o.Pos.X
		result.OffsetY = o.Pos.Y
		if o.isEmpty() {
			result.Img = newGrid(0, 0)
		} else {
			result.Img = img.Crop(o.Pos.X, o.Pos.Y, o.Size.X, o.Size.Y)
		}
		return result
	}

	bounds, ok := inkBounds(img)
	if !ok {
		result.Img = newGrid(0, 0)
		return result
	}
	result.OffsetX = bounds.Min.X
	result.OffsetY = bounds.Min.Y
	result.Img = img.Crop(bounds.Min.X, bounds.Min.Y, bounds.Dx(), bounds.Dy())
	return result
}

// inkBounds returns a minimal rectangle that contains all ink pixels.
// The returned rectangle has an exclusive Max like any image.Rectangle.
func inkBounds(img *grid) (image.Rectangle, bool) {
	minX := math.MaxInt
	minY := math.MaxInt
	maxX := -1
	maxY := -1

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if !img.Get(x, y) {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	if maxX == -1 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
