package comment

import (
	"bufio"
	"io"
	"strings"
)

// Block is the located span of one comment block. Start is the byte
// offset of the block's first line, End the exclusive offset at the end
// of its last line. LastLineStart holds the offset of the last line's
// start when known, -1 otherwise.
type Block struct {
	Start         int64
	End           int64
	LastLineStart int64
}

// BlockScanner finds comment blocks in a seekable text stream. The caller
// owns the stream; the scanner only reads forward line by line from the
// stream's current position and leaves the cursor just past the last line
// it consumed, so repeated FindNext calls walk the whole file.
type BlockScanner struct {
	rs      io.ReadSeeker
	markers Markers
}

// NewBlockScanner returns a scanner using the given comment markers.
func NewBlockScanner(rs io.ReadSeeker, markers Markers) *BlockScanner {
	return &BlockScanner{rs: rs, markers: markers}
}

// FindNext scans forward from the stream's current position for the next
// comment block. A block opens on a line starting with the block-start
// marker, or on two consecutive lines starting with the single-line
// marker (the block then starts at the first of the two). It closes on a
// line containing the block-end marker, or when a single-line run ends.
// Reaching end of input before the block closes reports not found.
func (s *BlockScanner) FindNext() (Block, bool) {
	block := Block{Start: -1, End: -1, LastLineStart: -1}
	found := false

	pos, err := s.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return block, false
	}

	reader := bufio.NewReader(s.rs)
	previousLine := ""
	var previousOffset int64 = -1

	for !found {
		lineOffset := pos
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			break
		}
		pos += int64(len(line))

		if block.Start < 0 {
			if s.isBlockStart(line) {
				block.Start = lineOffset
			} else if s.isSingleLineRunStart(previousLine, line) {
				block.Start = previousOffset
			}
		} else {
			if s.isBlockEnd(line) {
				block.LastLineStart = lineOffset
				block.End = lineOffset + int64(len(line))
				found = true
			} else if s.isSingleLineRunEnd(previousLine, line) {
				block.LastLineStart = previousOffset
				block.End = previousOffset + int64(len(previousLine))
				found = true
			}
		}

		previousLine = line
		previousOffset = lineOffset
	}

	// Leave the cursor at the line boundary after the last consumed line.
	_, _ = s.rs.Seek(pos, io.SeekStart)
	return block, found
}

func (s *BlockScanner) isBlockStart(line string) bool {
	return s.markers.BlockStart != "" && strings.HasPrefix(line, s.markers.BlockStart)
}

func (s *BlockScanner) isSingleLineRunStart(previousLine, line string) bool {
	if s.markers.SingleLine == "" || previousLine == "" {
		return false
	}
	return strings.HasPrefix(previousLine, s.markers.SingleLine) &&
		strings.HasPrefix(line, s.markers.SingleLine)
}

func (s *BlockScanner) isBlockEnd(line string) bool {
	return s.markers.BlockEnd != "" && strings.Contains(line, s.markers.BlockEnd)
}

func (s *BlockScanner) isSingleLineRunEnd(previousLine, line string) bool {
	if s.markers.SingleLine == "" || previousLine == "" {
		return false
	}
	return strings.HasPrefix(previousLine, s.markers.SingleLine) &&
		!strings.HasPrefix(line, s.markers.SingleLine)
}

// TextBlockScanner finds degenerate comment blocks in plain text files:
// a block runs from the first line containing non-blank text to the next
// fully-blank line. End of input closes an open block.
type TextBlockScanner struct {
	rs io.ReadSeeker
}

// NewTextBlockScanner returns a scanner for plain text streams.
func NewTextBlockScanner(rs io.ReadSeeker) *TextBlockScanner {
	return &TextBlockScanner{rs: rs}
}

// FindNext scans forward from the stream's current position for the next
// text block, leaving the cursor just past the last line consumed.
func (s *TextBlockScanner) FindNext() (Block, bool) {
	block := Block{Start: -1, End: -1, LastLineStart: -1}
	found := false

	pos, err := s.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return block, false
	}

	reader := bufio.NewReader(s.rs)
	previousLine := ""
	var previousOffset int64 = -1

	for !found {
		lineOffset := pos
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			// An open block closes at end of input.
			if block.Start >= 0 && block.End < 0 && previousOffset >= 0 {
				block.LastLineStart = previousOffset
				block.End = previousOffset + int64(len(previousLine))
				found = true
			}
			break
		}
		pos += int64(len(line))

		if block.Start < 0 {
			if strings.TrimSpace(line) != "" {
				block.Start = lineOffset
			}
		} else if strings.TrimSpace(line) == "" {
			block.End = lineOffset + int64(len(line))
			found = true
		}

		previousLine = line
		previousOffset = lineOffset
	}

	_, _ = s.rs.Seek(pos, io.SeekStart)
	return block, found
}
