package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/randaleike/argparse-language-autogen/comment"
	"github.com/randaleike/argparse-language-autogen/copyright"
)

type CopyrightCmd struct {
	Update CopyrightUpdateCmd `cmd:"" help:"Update the copyright dates in source file headers."`
}

type CopyrightUpdateCmd struct {
	Files []string `help:"Source files to check." arg:"" type:"existingfile"`
	Write bool     `help:"Rewrite files whose copyright dates are stale."`
}

func (cmd *CopyrightUpdateCmd) Run(ctx *kong.Context, globals *Globals) error {
	failed := 0
	for _, path := range cmd.Files {
		if err := cmd.updateFile(ctx, path); err != nil {
			printError(ctx.Stderr, fmt.Sprintf("%s: %v", path, err))
			failed++
		}
	}
	if failed > 0 {
		return NewCommandError(1)
	}
	return nil
}

// updateFile checks the first header comment block of path and, with
// --write, rewrites a stale copyright line in place.
func (cmd *CopyrightUpdateCmd) updateFile(ctx *kong.Context, path string) error {
	markers, ok := comment.MarkersForFile(path)
	if !ok {
		return fmt.Errorf("unsupported file type")
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	modYear := info.ModTime().Year()

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	block, found := comment.NewBlockScanner(file, markers).FindNext()
	if !found {
		printInfof(ctx.Stdout, "%s: no header comment block", path)
		return nil
	}

	parser := copyright.NewEnglish()
	loc, found := copyright.NewFinder(file, parser).FindNext(block.Start, block.End)
	if !found {
		printInfof(ctx.Stdout, "%s: no copyright line in header", path)
		return nil
	}

	// The finder only matches the line; parse it to capture the years
	// and owner before rebuilding.
	if !parser.ParseLine(strings.TrimRight(loc.Text, "\r\n")) {
		return fmt.Errorf("failed to parse copyright line %q", loc.Text)
	}

	years := parser.Years()
	createYear := modYear
	if len(years) > 0 {
		createYear = years[0]
	}

	changed, text := copyright.NewGenerator(parser).NewMsg(createYear, modYear)
	if !changed {
		printSuccess(ctx.Stdout, fmt.Sprintf("%s: copyright up to date", path))
		return nil
	}

	if !cmd.Write {
		printInfof(ctx.Stdout, "%s: stale copyright, would become %q", path, text)
		return nil
	}
	if err := replaceLine(path, loc, text); err != nil {
		return err
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("%s: copyright updated to %q", path, text))
	return nil
}

// replaceLine splices text over the located line, keeping the original
// line terminator.
func replaceLine(path string, loc copyright.Location, text string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	terminator := ""
	if strings.HasSuffix(loc.Text, "\r\n") {
		terminator = "\r\n"
	} else if strings.HasSuffix(loc.Text, "\n") {
		terminator = "\n"
	}

	end := loc.LineOffset + int64(len(loc.Text))
	var out []byte
	out = append(out, data[:loc.LineOffset]...)
	out = append(out, []byte(text+terminator)...)
	out = append(out, data[end:]...)

	return os.WriteFile(path, out, info(path))
}

func info(path string) os.FileMode {
	stat, err := os.Stat(path)
	if err != nil {
		return 0o644
	}
	return stat.Mode().Perm()
}
