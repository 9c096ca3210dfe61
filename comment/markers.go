// Package comment locates comment blocks in source file streams and
// generates decorated comment text for the supported file syntaxes.
package comment

import "path/filepath"

// Markers describes the comment syntax of one file type. BlockStart and
// BlockEnd are empty for syntaxes without block comments; those rely on
// contiguous SingleLine runs instead.
type Markers struct {
	BlockStart     string
	BlockEnd       string
	BlockLineStart string
	SingleLine     string
}

// HasBlock reports whether the syntax defines real block comment markers.
func (m Markers) HasBlock() bool {
	return m.BlockStart != "" && m.BlockEnd != ""
}

var (
	cMarkers   = Markers{BlockStart: "/*", BlockEnd: "*/", SingleLine: "//"}
	pyMarkers  = Markers{BlockStart: `"""`, BlockEnd: `"""`, SingleLine: "#"}
	shMarkers  = Markers{BlockLineStart: "#", SingleLine: "#"}
	batMarkers = Markers{BlockLineStart: "REM ", SingleLine: "REM "}
)

// markersByExtension is the fixed comment syntax table keyed by file
// extension.
var markersByExtension = map[string]Markers{
	".c":   cMarkers,
	".cpp": cMarkers,
	".h":   cMarkers,
	".hpp": cMarkers,
	".js":  cMarkers,
	".ts":  cMarkers,
	".py":  pyMarkers,
	".sh":  shMarkers,
	".bat": batMarkers,
}

// MarkersForFile returns the comment markers for the file's extension.
// The second return is false for unsupported extensions.
func MarkersForFile(filename string) (Markers, bool) {
	m, ok := markersByExtension[filepath.Ext(filename)]
	return m, ok
}
