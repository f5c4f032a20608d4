package bitstrip

import (
	"github.com/quasilyte/bitstrip/internal/fontgen"
)

// Config contains all exported font compiler options.
type Config = fontgen.Config

// ByteLayout selects the bit packing orientation of the font bitmaps.
type ByteLayout = fontgen.ByteLayout

const (
	// ByteVertical packs 8 vertically consecutive pixels into a byte
	// (GRAPHICS_FORMAT_BW_1_V).
	ByteVertical = fontgen.ByteVertical

	// ByteHorizontal packs 8 horizontally consecutive pixels into a byte
	// (GRAPHICS_FORMAT_BW_1_H).
	ByteHorizontal = fontgen.ByteHorizontal
)

type Compiler = fontgen.Compiler

// Source is a font dump path with an inclusive accepted char codes range.
type Source = fontgen.Source

// GlyphOverride is an explicit glyph crop rectangle.
type GlyphOverride = fontgen.GlyphOverride

type CompileResult = fontgen.CompileResult

type PartInfo = fontgen.PartInfo

var (
	ErrNoInputs              = fontgen.ErrNoInputs
	ErrSourceUnreadable      = fontgen.ErrSourceUnreadable
	ErrDestinationUnwritable = fontgen.ErrDestinationUnwritable
	ErrMalformedPixelData    = fontgen.ErrMalformedPixelData
	ErrMalformedSource       = fontgen.ErrMalformedSource
	ErrEmptyFont             = fontgen.ErrEmptyFont
	ErrBadFontName           = fontgen.ErrBadFontName
)

// DefaultConfig returns a config with the firmware defaults:
// vertical byte layout, horizontal spacing of 1 and 127 as a default char.
func DefaultConfig() Config {
	return fontgen.DefaultConfig()
}

// NewCompiler creates a font compiler.
//
// Add the inputs with [Compiler.AddSource] and [Compiler.AddGlyphOverride],
// then call [Compiler.Compile] to produce a C header.
func NewCompiler(config Config) *Compiler {
	return fontgen.NewCompiler(config)
}
