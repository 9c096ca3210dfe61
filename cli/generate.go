package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/randaleike/argparse-language-autogen/generator"
	"github.com/randaleike/argparse-language-autogen/output"
	"github.com/randaleike/argparse-language-autogen/telemetry"
)

type GenerateCmd struct {
	Outpath string `help:"Destination directory for the generated files." short:"o" required:"" type:"path"`
	Owner   string `help:"Owner name used in the generated file copyright headers."`
	Eula    string `help:"EULA name used in the generated file headers, defaults to the MIT license." default:""`
	Force   bool   `help:"Overwrite existing generated files without confirmation."`
	Watch   bool   `help:"Watch the JSON description files and regenerate on change." short:"w"`
}

func (cmd *GenerateCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	if !cmd.Watch {
		return cmd.generate(runCtx, ctx, globals)
	}

	if err := cmd.generate(runCtx, ctx, globals); err != nil {
		return err
	}
	return cmd.watch(runCtx, ctx, globals)
}

// generate runs one full generation pass into the output directory.
func (cmd *GenerateCmd) generate(runCtx context.Context, ctx *kong.Context, globals *Globals) error {
	timer := telemetry.FromContext(runCtx).Start(fmt.Sprintf("generate %s", filepath.Base(cmd.Outpath)))
	defer timer.End()

	loadTimer := timer.Child("load descriptions")
	langs, err := globals.loadLanguageList()
	if err != nil {
		return err
	}
	class, err := globals.loadStringClass()
	if err != nil {
		return err
	}
	loadTimer.End()

	if len(langs.Names()) == 0 {
		return fmt.Errorf("no languages defined in %s, run 'lang createdefault' or 'lang add' first",
			globals.LanguageListPath())
	}
	if len(class.TranslateMethodNames()) == 0 && len(class.PropertyMethodNames()) == 0 {
		return fmt.Errorf("no methods defined in %s, run 'strings createdefault' first",
			globals.StringClassPath())
	}

	suite := generator.NewSuite(langs, class, cmd.Owner, cmd.Eula)
	suite.BaseDirName = filepath.Base(cmd.Outpath)

	emitTimer := timer.Child("emit files")
	fs, err := suite.Generate()
	if err != nil {
		return err
	}
	emitTimer.End()

	if !cmd.Force && !cmd.Watch {
		if overwriting(cmd.Outpath, fs.Paths()) {
			confirmed, err := promptYesNo(fmt.Sprintf("Generated files exist in %q. Overwrite?", cmd.Outpath))
			if err != nil {
				return err
			}
			if !confirmed {
				printError(ctx.Stderr, "generation cancelled")
				return NewCommandError(1)
			}
		}
	}

	writeTimer := timer.Child("write output")
	if err := fs.Write(cmd.Outpath); err != nil {
		return fmt.Errorf("failed to write generated files: %w", err)
	}
	writeTimer.End()

	printSuccess(ctx.Stdout, fmt.Sprintf("generated %d files in %s",
		fs.Len(), pathStyle.Render(cmd.Outpath)))
	return nil
}

// overwriting reports whether any generated file already exists.
func overwriting(root string, paths []string) bool {
	for _, path := range paths {
		if _, err := os.Stat(filepath.Join(root, path)); err == nil {
			return true
		}
	}
	return false
}

// watch regenerates the output whenever a description file changes,
// until interrupted.
func (cmd *GenerateCmd) watch(runCtx context.Context, ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory; editors replace files instead of writing in
	// place, so watching the file itself misses renames.
	if err := watcher.Add(globals.JSON); err != nil {
		return fmt.Errorf("failed to watch %s: %w", globals.JSON, err)
	}

	watched := map[string]bool{
		filepath.Clean(globals.LanguageListPath()): true,
		filepath.Clean(globals.StringClassPath()):  true,
	}

	sigCtx, stop := signal.NotifyContext(runCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	printInfof(ctx.Stdout, "Watching %s for changes", pathStyle.Render(globals.JSON))

	for {
		select {
		case <-sigCtx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			printInfof(ctx.Stdout, "%s changed, regenerating", filepath.Base(event.Name))
			if err := cmd.generate(runCtx, ctx, globals); err != nil {
				printError(ctx.Stderr, err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}
