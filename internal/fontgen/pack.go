package fontgen

// ByteLayout selects the axis along which 8 consecutive
// pixels are packed into a single byte.
type ByteLayout int

const (
	// ByteVertical packs 8 pixels of a column into a byte.
	// Bit 0 is the top pixel.
	ByteVertical ByteLayout = iota

	// ByteHorizontal packs 8 pixels of a row into a byte.
	// Bit 0 is the leftmost pixel.
	ByteHorizontal
)

func (l ByteLayout) String() string {
	switch l {
	case ByteVertical:
		return "vertical"
	case ByteHorizontal:
		return "horizontal"
	default:
		return "?"
	}
}

// GraphicsFormat returns the firmware graphics format token for the layout.
func (l ByteLayout) GraphicsFormat() string {
	if l == ByteHorizontal {
		return "GRAPHICS_FORMAT_BW_1_H"
	}
	return "GRAPHICS_FORMAT_BW_1_V"
}

type glyphDescr struct {
	Code    uint32
	X       int
	Y       int
	Width   int
	Height  int
	OffsetX int
	OffsetY int
}

type packedPart struct {
	*fontPart

	Layout ByteLayout

	// Width and Height are the strip dimensions after padding.
	// Only the packing axis is padded.
	Width  int
	Height int

	Descrs []glyphDescr
	Data   []byte
}

// packPart serializes the part strip into bytes.
//
// For the vertical layout, the bytes go in row bands of 8 pixels,
// every band is a sequence of columns.
// For the horizontal layout, the bytes go row by row,
// every row is a sequence of 8-pixel column bands.
// Pixels beyond the strip (the padding) are always zero.
func packPart(part *fontPart, layout ByteLayout) *packedPart {
	result := &packedPart{
		fontPart: part,
		Layout:   layout,
		Width:    part.StripWidth,
		Height:   part.StripHeight,
	}
	if layout == ByteHorizontal {
		result.Width = roundUp8(part.StripWidth)
	} else {
		result.Height = roundUp8(part.StripHeight)
	}

	result.Descrs = make([]glyphDescr, len(part.Glyphs))
	for i, g := range part.Glyphs {
		result.Descrs[i] = glyphDescr{
			Code:    g.Code,
			X:       g.X,
			Y:       0,
			Width:   g.Width(),
			Height:  g.Height(),
			OffsetX: g.OffsetX,
			OffsetY: g.OffsetY,
		}
	}

	img := part.strip()
	data := make([]byte, 0, result.Width*result.Height/8)
	switch layout {
	case ByteHorizontal:
		for y := 0; y < result.Height; y++ {
			for x := 0; x < result.Width; x += 8 {
				data = append(data, packByte(img, x, y, 1, 0))
			}
		}
	default:
		for y := 0; y < result.Height; y += 8 {
			for x := 0; x < result.Width; x++ {
				data = append(data, packByte(img, x, y, 0, 1))
			}
		}
	}
	result.Data = data

	return result
}

// packByte collects 8 pixels starting from (x, y) and moving by (dx, dy).
// The first pixel goes into the least significant bit.
func packByte(img *grid, x, y, dx, dy int) byte {
	var b byte
	for i := 0; i < 8; i++ {
		if img.Get(x, y) {
			b |= 1 << i
		}
		x += dx
		y += dy
	}
	return b
}

func roundUp8(n int) int {
	if n&0x7 == 0 {
		return n
	}
	return (n &^ 0x7) + 8
}
