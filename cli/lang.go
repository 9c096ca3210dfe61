package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/randaleike/argparse-language-autogen/descriptions"
)

type LangCmd struct {
	List          LangListCmd          `cmd:"" help:"List the defined languages."`
	Add           LangAddCmd           `cmd:"" help:"Interactively add a new language."`
	Default       LangDefaultCmd       `cmd:"" help:"Set the default language."`
	Print         LangPrintCmd         `cmd:"" help:"Print a language entry."`
	CreateDefault LangCreateDefaultCmd `cmd:"" name:"createdefault" help:"Create the stock language description file."`
}

type LangListCmd struct{}

func (cmd *LangListCmd) Run(ctx *kong.Context, globals *Globals) error {
	langs, err := globals.loadLanguageList()
	if err != nil {
		return err
	}

	for _, name := range langs.Names() {
		entry, _ := langs.Entry(name)
		marker := " "
		if name == langs.DefaultLang {
			marker = "*"
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %-20s %s\n", marker, name, entry.IsoCode)
	}
	return nil
}

// Input validation patterns for the interactive add flow.
var (
	languageNamePattern = regexp.MustCompile(`^[a-z]+$`)
	twoLowerPattern     = regexp.MustCompile(`^[a-z]{2}$`)
	regionPattern       = regexp.MustCompile(`^[A-Z]{2}$`)
)

func validatePattern(pattern *regexp.Regexp, message string) func(string) error {
	return func(value string) error {
		if !pattern.MatchString(value) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// parseRegionList splits a comma separated list of two character
// region codes.
func parseRegionList(value string) ([]string, error) {
	var regions []string
	for _, part := range strings.Split(value, ",") {
		region := strings.ToUpper(strings.TrimSpace(part))
		if region == "" {
			continue
		}
		if !regionPattern.MatchString(region) {
			return nil, fmt.Errorf("invalid region code %q, only two characters A-Z are allowed", region)
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// parseLangIDList splits a comma separated list of Windows LANGID
// values into the unique low byte codes and the full region values.
func parseLangIDList(value string) (codes []int, regions []int, err error) {
	seenCode := map[int]bool{}
	seenRegion := map[int]bool{}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, nil, fmt.Errorf("invalid LANGID value %q", part)
		}

		if id > 0x0FF && !seenRegion[id] {
			seenRegion[id] = true
			regions = append(regions, id)
		}
		code := id & 0x0FF
		if !seenCode[code] {
			seenCode[code] = true
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return nil, nil, fmt.Errorf("at least one LANGID value is required")
	}
	return codes, regions, nil
}

type LangAddCmd struct{}

func (cmd *LangAddCmd) Run(ctx *kong.Context, globals *Globals) error {
	if !isTerminal() {
		return fmt.Errorf("lang add requires an interactive terminal")
	}

	langs, err := globals.loadLanguageList()
	if err != nil {
		return err
	}
	class, err := globals.loadStringClass()
	if err != nil {
		return err
	}

	for {
		name, entry, err := cmd.promptEntry()
		if err != nil {
			return err
		}

		repr.Println(entry)
		confirmed, err := promptYesNo("Is this correct?")
		if err != nil {
			return err
		}
		if !confirmed {
			continue
		}

		if _, exists := langs.Entry(name); exists {
			overwrite, err := promptYesNo(fmt.Sprintf("Language %q already exists. Overwrite?", name))
			if err != nil {
				return err
			}
			if !overwrite {
				printError(ctx.Stderr, "language not added")
				return NewCommandError(1)
			}
		}

		langs.Add(name, entry)
		if err := langs.Save(); err != nil {
			return fmt.Errorf("failed to save language list: %w", err)
		}
		printSuccess(ctx.Stdout, fmt.Sprintf("added language %q", name))

		// New languages start without translations; the generator falls
		// back to the base language text until they are filled in.
		missing := 0
		for _, method := range class.TranslateMethodNames() {
			if _, ok := class.Translation(method, entry.IsoCode); !ok {
				missing++
			}
		}
		if missing > 0 {
			printInfof(ctx.Stdout,
				"%d methods have no %q translation yet, base language text will be used",
				missing, entry.IsoCode)
		}
		return nil
	}
}

// promptEntry collects one language definition from the user.
func (cmd *LangAddCmd) promptEntry() (string, descriptions.LanguageEntry, error) {
	name, err := promptInput(
		"Enter language name value to be used for class<lang> generation",
		validatePattern(languageNamePattern, "only characters a-z are allowed in the name"))
	if err != nil {
		return "", descriptions.LanguageEntry{}, err
	}

	isoCode, err := promptInput(
		"Enter ISO 639-1 translate language code (2 lower case characters)",
		validatePattern(twoLowerPattern, "only two characters a-z are allowed in the code"))
	if err != nil {
		return "", descriptions.LanguageEntry{}, err
	}

	langCode, err := promptInput(
		"Enter linux language code (first 2 chars of 'LANG' environment value)",
		validatePattern(twoLowerPattern, "only two characters a-z are allowed in the code"))
	if err != nil {
		return "", descriptions.LanguageEntry{}, err
	}

	var regions []string
	_, err = promptInput(
		"Enter linux region codes, comma separated (2 chars following the _ in the 'LANG' environment value)",
		func(value string) error {
			parsed, err := parseRegionList(value)
			if err != nil {
				return err
			}
			regions = parsed
			return nil
		})
	if err != nil {
		return "", descriptions.LanguageEntry{}, err
	}

	var idCodes, idRegions []int
	_, err = promptInput(
		"Enter Windows LANGID values, comma separated",
		func(value string) error {
			codes, fullIDs, err := parseLangIDList(value)
			if err != nil {
				return err
			}
			idCodes, idRegions = codes, fullIDs
			return nil
		})
	if err != nil {
		return "", descriptions.LanguageEntry{}, err
	}

	entry := descriptions.LanguageEntry{
		GoogleCode:    isoCode,
		LangCode:      langCode,
		LangRegions:   regions,
		LangIDCodes:   idCodes,
		LangIDRegions: idRegions,
		IsoCode:       isoCode,
		CompileSwitch: strings.ToUpper(name) + "_ERRORS",
	}
	return name, entry, nil
}

type LangDefaultCmd struct {
	Name string `help:"Language name to set as the default." arg:""`
}

func (cmd *LangDefaultCmd) Run(ctx *kong.Context, globals *Globals) error {
	langs, err := globals.loadLanguageList()
	if err != nil {
		return err
	}
	if err := langs.SetDefault(cmd.Name); err != nil {
		return err
	}
	if err := langs.Save(); err != nil {
		return fmt.Errorf("failed to save language list: %w", err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("default language set to %q", cmd.Name))
	return nil
}

type LangPrintCmd struct {
	Name string `help:"Language name to print." arg:""`
}

func (cmd *LangPrintCmd) Run(ctx *kong.Context, globals *Globals) error {
	langs, err := globals.loadLanguageList()
	if err != nil {
		return err
	}
	entry, ok := langs.Entry(cmd.Name)
	if !ok {
		return fmt.Errorf("unknown language %q", cmd.Name)
	}
	repr.Println(entry)
	return nil
}

type LangCreateDefaultCmd struct {
	Force bool `help:"Overwrite an existing language description file."`
}

func (cmd *LangCreateDefaultCmd) Run(ctx *kong.Context, globals *Globals) error {
	langs, err := globals.loadLanguageList()
	if err != nil {
		return err
	}
	if len(langs.Names()) > 0 && !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("%s already defines languages. Replace it?",
			globals.LanguageListPath()))
		if err != nil {
			return err
		}
		if !confirmed {
			printError(ctx.Stderr, "language file unchanged")
			return NewCommandError(1)
		}
	}

	fresh := descriptions.NewLanguageList(globals.LanguageListPath())
	descriptions.SeedLanguages(fresh)
	if err := fresh.Save(); err != nil {
		return fmt.Errorf("failed to save language list: %w", err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("created %s with %d languages",
		pathStyle.Render(globals.LanguageListPath()), len(fresh.Names())))
	return nil
}
