package comment

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Generator builds decorated comment lines for a given comment syntax.
// Lines are padded to LineLength (when set) with a fill character and may
// carry fixed end-of-line text, producing the boxed header style used in
// generated file headers.
type Generator struct {
	markers       Markers
	lineLength    int
	eolText       string
	useSingleLine bool
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLineLength pads every generated line to the given total width,
// including the comment markers and end-of-line text.
func WithLineLength(n int) GeneratorOption {
	return func(g *Generator) { g.lineLength = n }
}

// WithEOLText appends the given text at the end of every padded line.
func WithEOLText(text string) GeneratorOption {
	return func(g *Generator) { g.eolText = text }
}

// WithSingleLine forces single-line comment markers even when the syntax
// has block markers.
func WithSingleLine() GeneratorOption {
	return func(g *Generator) { g.useSingleLine = true }
}

// NewGenerator returns a comment generator for the given syntax. Syntaxes
// without block markers always emit single-line comments.
func NewGenerator(markers Markers, opts ...GeneratorOption) *Generator {
	g := &Generator{markers: markers}
	for _, opt := range opts {
		opt(g)
	}
	if !markers.HasBlock() {
		g.useSingleLine = true
	}
	return g
}

// BlockHeader builds the opening lines of a comment block. The first line
// carries the block-start marker when the syntax has one; fill lines use
// the block line prefix or the single-line marker.
func (g *Generator) BlockHeader(lines int, fill byte) []string {
	var header []string
	blockStarted := false

	for ; lines > 0; lines-- {
		var line string
		switch {
		case g.useSingleLine:
			line = g.markers.SingleLine
		case blockStarted:
			line = g.markers.BlockLineStart
		default:
			line = g.markers.BlockStart
			blockStarted = true
		}
		header = append(header, g.padAndAppendEOL(line, fill, len(g.eolText)))
	}
	return header
}

// BlockFooter builds the closing lines of a comment block; the last line
// carries the block-end marker when the syntax has one.
func (g *Generator) BlockFooter(lines int, fill byte) []string {
	var footer []string

	endLines := 0
	lineStart := g.markers.SingleLine
	if !g.useSingleLine {
		endLines = 1
		lineStart = g.markers.BlockLineStart
	}

	for ; lines > endLines; lines-- {
		footer = append(footer, g.padAndAppendEOL(lineStart, fill, len(g.eolText)))
	}

	if lines > 0 {
		line := g.pad(g.markers.BlockLineStart, fill, len(g.markers.BlockEnd))
		footer = append(footer, line+g.markers.BlockEnd)
	}
	return footer
}

// Wrap decorates one comment text line with the syntax's line markers,
// padding and end-of-line text.
func (g *Generator) Wrap(text string, fill byte) string {
	var line string
	if g.useSingleLine {
		line = g.markers.SingleLine + " "
	} else {
		line = g.markers.BlockLineStart
	}
	return g.padAndAppendEOL(line+text, fill, len(g.eolText))
}

// SingleLine returns the text as a bare single-line comment.
func (g *Generator) SingleLine(text string) string {
	return g.markers.SingleLine + " " + text
}

func (g *Generator) pad(line string, fill byte, reserve int) string {
	if g.lineLength == 0 {
		return line
	}
	width := runewidth.StringWidth(line)
	if g.lineLength <= width+reserve {
		return line
	}
	return line + strings.Repeat(string(fill), g.lineLength-reserve-width)
}

func (g *Generator) padAndAppendEOL(line string, fill byte, reserve int) string {
	return g.pad(line, fill, reserve) + g.eolText
}
