package generator

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// File is one generated output file. Path is relative to the output
// root, Lines hold the content without trailing newlines.
type File struct {
	Path  string
	Lines []string
}

// Content renders the file body.
func (f *File) Content() string {
	return strings.Join(f.Lines, "\n") + "\n"
}

// FileSet collects generated files before they are flushed to disk, so
// a generation failure leaves the output tree untouched.
type FileSet struct {
	files map[string]*File
	order []string
}

// NewFileSet returns an empty file collection.
func NewFileSet() *FileSet {
	return &FileSet{files: map[string]*File{}}
}

// Add stores a generated file, replacing any prior file at the same path.
func (fs *FileSet) Add(path string, lines []string) {
	if _, exists := fs.files[path]; !exists {
		fs.order = append(fs.order, path)
	}
	fs.files[path] = &File{Path: path, Lines: lines}
}

// Files returns the collected files in insertion order.
func (fs *FileSet) Files() []*File {
	out := make([]*File, 0, len(fs.order))
	for _, path := range fs.order {
		out = append(out, fs.files[path])
	}
	return out
}

// Paths returns the collected relative paths, sorted.
func (fs *FileSet) Paths() []string {
	paths := append([]string(nil), fs.order...)
	sort.Strings(paths)
	return paths
}

// Len returns the number of collected files.
func (fs *FileSet) Len() int { return len(fs.files) }

// Write flushes every collected file beneath root, creating directories
// as needed. All write failures are aggregated before returning.
func (fs *FileSet) Write(root string) error {
	var result *multierror.Error
	for _, file := range fs.Files() {
		target := filepath.Join(root, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if err := os.WriteFile(target, []byte(file.Content()), 0o644); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
