package fontgen

import "errors"

var (
	// ErrNoInputs is returned when Compile is called without any sources.
	ErrNoInputs = errors.New("no font sources configured")
	// ErrSourceUnreadable indicates an I/O failure while opening or reading a source.
	ErrSourceUnreadable = errors.New("font source is unreadable")
	// ErrDestinationUnwritable indicates an I/O failure while writing the output.
	ErrDestinationUnwritable = errors.New("destination is unwritable")
	// ErrMalformedPixelData means a glyph pixel list has a wrong number of values
	// or contains a non-integer value.
	ErrMalformedPixelData = errors.New("malformed glyph pixel data")
	// ErrMalformedSource is reported for XML syntax errors and invalid numeric attributes.
	ErrMalformedSource = errors.New("malformed font source")
	// ErrEmptyFont means that all sources yielded zero usable glyphs.
	ErrEmptyFont = errors.New("font has no glyphs to export")
	// ErrBadFontName means the font name can't be used as a C identifier.
	ErrBadFontName = errors.New("font name is not a valid C identifier")
)
