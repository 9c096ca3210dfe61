package comment

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestMarkersForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     Markers
		wantOk   bool
	}{
		{"parser.c", cMarkers, true},
		{"parser.cpp", cMarkers, true},
		{"parser.h", cMarkers, true},
		{"parser.hpp", cMarkers, true},
		{"app.js", cMarkers, true},
		{"app.ts", cMarkers, true},
		{"tool.py", pyMarkers, true},
		{"build.sh", shMarkers, true},
		{"build.bat", batMarkers, true},
		{"README.md", Markers{}, false},
		{"Makefile", Markers{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			m, ok := MarkersForFile(tt.filename)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestBlockScannerCBlock(t *testing.T) {
	source := "/* a\n * b\n */\nCODE"

	scanner := NewBlockScanner(strings.NewReader(source), cMarkers)
	block, found := scanner.FindNext()

	assert.True(t, found)
	assert.Equal(t, int64(0), block.Start)
	// End includes the closing line's newline.
	assert.Equal(t, int64(14), block.End)
	assert.Equal(t, int64(10), block.LastLineStart)

	// No further block before EOF.
	_, found = scanner.FindNext()
	assert.False(t, found)
}

func TestBlockScannerBlockAfterCode(t *testing.T) {
	source := "int x;\n\n/* header\n */\nint y;\n"

	scanner := NewBlockScanner(strings.NewReader(source), cMarkers)
	block, found := scanner.FindNext()

	assert.True(t, found)
	assert.Equal(t, int64(8), block.Start)
	assert.Equal(t, int64(22), block.End)
}

func TestBlockScannerSingleLineRun(t *testing.T) {
	// Two contiguous single-line comments improvise a block that starts
	// at the first of the pair and ends at the last commented line.
	source := "// one\n// two\n// three\ncode\n"

	scanner := NewBlockScanner(strings.NewReader(source), cMarkers)
	block, found := scanner.FindNext()

	assert.True(t, found)
	assert.Equal(t, int64(0), block.Start)
	assert.Equal(t, int64(23), block.End)
	assert.Equal(t, int64(14), block.LastLineStart)
}

func TestBlockScannerShellRun(t *testing.T) {
	source := "# first\n# second\necho hi\n"

	scanner := NewBlockScanner(strings.NewReader(source), shMarkers)
	block, found := scanner.FindNext()

	assert.True(t, found)
	assert.Equal(t, int64(0), block.Start)
	assert.Equal(t, int64(17), block.End)
}

func TestBlockScannerUnterminated(t *testing.T) {
	source := "/* opened but never closed\nstill inside\n"

	scanner := NewBlockScanner(strings.NewReader(source), cMarkers)
	_, found := scanner.FindNext()
	assert.False(t, found)
}

func TestBlockScannerNoComment(t *testing.T) {
	source := "int main() {\nreturn 0;\n}\n"

	scanner := NewBlockScanner(strings.NewReader(source), cMarkers)
	_, found := scanner.FindNext()
	assert.False(t, found)
}

func TestBlockScannerFindAll(t *testing.T) {
	source := "/* one\n */\ncode\n/* two\n */\nmore\n"

	scanner := NewBlockScanner(strings.NewReader(source), cMarkers)

	first, found := scanner.FindNext()
	assert.True(t, found)
	assert.Equal(t, int64(0), first.Start)
	assert.Equal(t, int64(11), first.End)

	second, found := scanner.FindNext()
	assert.True(t, found)
	assert.Equal(t, int64(16), second.Start)
	assert.Equal(t, int64(27), second.End)

	_, found = scanner.FindNext()
	assert.False(t, found)
}

func TestBlockScannerPython(t *testing.T) {
	source := "\"\"\"module doc\nmore text\n\"\"\"\nimport os\n"

	scanner := NewBlockScanner(strings.NewReader(source), pyMarkers)
	block, found := scanner.FindNext()

	assert.True(t, found)
	assert.Equal(t, int64(0), block.Start)
	assert.Equal(t, int64(28), block.End)
}

func TestTextBlockScanner(t *testing.T) {
	t.Run("BlankLineCloses", func(t *testing.T) {
		source := "First paragraph line\nsecond line\n\nnext paragraph\n"

		scanner := NewTextBlockScanner(strings.NewReader(source))
		block, found := scanner.FindNext()

		assert.True(t, found)
		assert.Equal(t, int64(0), block.Start)
		assert.Equal(t, int64(34), block.End)
	})

	t.Run("EOFCloses", func(t *testing.T) {
		source := "only paragraph\nno trailing blank"

		scanner := NewTextBlockScanner(strings.NewReader(source))
		block, found := scanner.FindNext()

		assert.True(t, found)
		assert.Equal(t, int64(0), block.Start)
		assert.Equal(t, int64(32), block.End)
	})

	t.Run("LeadingBlankLines", func(t *testing.T) {
		source := "\n\ntext starts here\n\n"

		scanner := NewTextBlockScanner(strings.NewReader(source))
		block, found := scanner.FindNext()

		assert.True(t, found)
		assert.Equal(t, int64(2), block.Start)
		assert.Equal(t, int64(20), block.End)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		scanner := NewTextBlockScanner(strings.NewReader(""))
		_, found := scanner.FindNext()
		assert.False(t, found)
	})
}
