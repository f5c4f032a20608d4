package fontgen

import (
	"image"
)

// Config contains the compiler options that are not related
// to the inputs list.
type Config struct {
	ByteLayout ByteLayout

	// HSpace and VSpace are the default spacing values
	// written to the font header.
	HSpace int
	VSpace int

	// DefaultChar is a glyph code that firmware renders
	// in place of the missing glyphs.
	DefaultChar uint32

	// EmitFontDecl makes the font bitmaps table and the font
	// declaration a live code instead of a commented out example.
	EmitFontDecl bool

	DebugPrint func(message string)
}

// DefaultConfig returns a config with the values expected
// by the firmware graphics library.
func DefaultConfig() Config {
	return Config{
		ByteLayout:  ByteVertical,
		HSpace:      1,
		VSpace:      0,
		DefaultChar: 127,
	}
}

// Source is a font dump file with an inclusive range of accepted char codes.
type Source struct {
	Path      string
	FirstChar uint32
	LastChar  uint32
}

// PartInfo describes one compiled part of the font.
// Width and Height are the padded strip dimensions.
type PartInfo struct {
	SourcePath string
	FirstChar  uint32
	LastChar   uint32
	NumGlyphs  int
	Width      int
	Height     int
	DataSize   int
}

// CompileResult holds the warnings and the parts summary of a Compile call.
type CompileResult struct {
	Warnings []string
	Parts    []PartInfo
}

// Compiler collects the font inputs and compiles them into a C header.
//
// A Compiler is not safe for a concurrent use,
// but every Compile call is independent from the others.
type Compiler struct {
	config    Config
	sources   []Source
	overrides map[uint32]GlyphOverride
}

func NewCompiler(config Config) *Compiler {
	return &Compiler{
		config:    config,
		overrides: make(map[uint32]GlyphOverride),
	}
}

// Clear removes all sources and glyph overrides.
// The byte layout and other config values are kept.
func (c *Compiler) Clear() {
	c.sources = c.sources[:0]
	clear(c.overrides)
}

// SetByteLayout selects the bit packing orientation for all parts.
func (c *Compiler) SetByteLayout(layout ByteLayout) {
	c.config.ByteLayout = layout
}

// AddSource adds a font dump file; only glyphs with codes
// inside [firstChar, lastChar] will be imported from it.
//
// Every FONT block of the file becomes a separate part,
// so one source can produce several parts in the result.
func (c *Compiler) AddSource(path string, firstChar, lastChar uint32) {
	if firstChar > lastChar {
		firstChar, lastChar = lastChar, firstChar
	}
	c.sources = append(c.sources, Source{
		Path:      path,
		FirstChar: firstChar,
		LastChar:  lastChar,
	})
}

// AddGlyphOverride sets an explicit crop rectangle for the glyph.
// size.X is a width and size.Y is a height.
//
// A zero size (or any size with a non-positive dimension)
// turns the glyph into an empty one, it's a common way to define a space.
// Size dimensions larger than maxGridSide are clamped.
func (c *Compiler) AddGlyphOverride(code uint32, pos, size image.Point) {
	size = image.Pt(min(size.X, maxGridSide), min(size.Y, maxGridSide))
	c.overrides[code] = GlyphOverride{Pos: pos, Size: size}
}

// Compile reads all sources and writes the resulting header into dst.
// fontName is used for the C symbols and must be a valid C identifier.
//
// Nothing is written to dst if any of the compilation steps fails.
func (c *Compiler) Compile(dst, fontName string) (CompileResult, error) {
	g := newGenerator(c.config, c.sources, c.overrides)
	return g.Generate(dst, fontName)
}
