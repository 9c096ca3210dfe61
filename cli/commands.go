package cli

import (
	"fmt"
	"path/filepath"

	"github.com/randaleike/argparse-language-autogen/descriptions"
	"github.com/randaleike/argparse-language-autogen/generator"
)

// Globals defines global flags available to all commands.
type Globals struct {
	JSON      string `help:"Path to the description JSON files." default:"data" type:"path"`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

// LanguageListPath is the language description file location.
func (g *Globals) LanguageListPath() string {
	return filepath.Join(g.JSON, generator.LanguageListFileName())
}

// StringClassPath is the string class description file location.
func (g *Globals) StringClassPath() string {
	return filepath.Join(g.JSON, generator.StringClassFileName())
}

// loadLanguageList loads the language description file.
func (g *Globals) loadLanguageList() (*descriptions.LanguageList, error) {
	langs, err := descriptions.LoadLanguageList(g.LanguageListPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load language list: %w", err)
	}
	return langs, nil
}

// loadStringClass loads the string class description file.
func (g *Globals) loadStringClass() (*descriptions.StringClass, error) {
	class, err := descriptions.LoadStringClass(g.StringClassPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load string class description: %w", err)
	}
	return class, nil
}

type Commands struct {
	Globals

	Generate  GenerateCmd  `cmd:"" help:"Generate the language string class source, test and cmake files."`
	Lang      LangCmd      `cmd:"" help:"Maintain the language description list file."`
	Strings   StringsCmd   `cmd:"" help:"Maintain the string class description file."`
	Copyright CopyrightCmd `cmd:"" help:"Copyright header maintenance utilities."`
}
