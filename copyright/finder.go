package copyright

import (
	"bufio"
	"io"
)

// Location records where a copyright line was found in a stream.
type Location struct {
	// LineOffset is the byte offset of the line's start.
	LineOffset int64
	// Text is the raw line including its line terminator.
	Text string
}

// Finder scans a seekable text stream for copyright lines. The caller
// owns the stream; each scan call seeks explicitly and never reads past
// the end of input.
type Finder struct {
	parser *Parser
	rs     io.ReadSeeker
}

// NewFinder returns a finder over the stream; a nil parser selects the
// English default.
func NewFinder(rs io.ReadSeeker, parser *Parser) *Finder {
	if parser == nil {
		parser = NewEnglish()
	}
	return &Finder{parser: parser, rs: rs}
}

// FindNext scans from startOffset for the next copyright line. The scan
// stops at a line starting at or beyond endOffset; a negative endOffset
// scans to end of input. Reaching the end without a match is a normal
// not-found outcome.
func (f *Finder) FindNext(startOffset, endOffset int64) (Location, bool) {
	if _, err := f.rs.Seek(startOffset, io.SeekStart); err != nil {
		return Location{}, false
	}

	reader := bufio.NewReader(f.rs)
	pos := startOffset

	for {
		lineOffset := pos
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return Location{}, false
		}
		pos += int64(len(line))

		if endOffset >= 0 && lineOffset >= endOffset {
			return Location{}, false
		}

		if f.parser.IsCopyrightLine(line) {
			return Location{LineOffset: lineOffset, Text: line}, true
		}

		if err != nil {
			return Location{}, false
		}
	}
}

// Find scans the whole stream for the first copyright line.
func (f *Finder) Find() (Location, bool) {
	return f.FindNext(0, -1)
}

// FindAll collects every copyright line in the stream. Each scan resumes
// after the previous match, so the whole pass stays linear.
func (f *Finder) FindAll() []Location {
	var locations []Location
	var start int64

	for {
		loc, found := f.FindNext(start, -1)
		if !found {
			break
		}
		locations = append(locations, loc)
		start = loc.LineOffset + int64(len(loc.Text))
	}
	return locations
}
