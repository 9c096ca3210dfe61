package cli

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/randaleike/argparse-language-autogen/descriptions"
)

type StringsCmd struct {
	List          StringsListCmd          `cmd:"" help:"List the defined string class methods."`
	AddTranslate  StringsAddTranslateCmd  `cmd:"" name:"add-translate" help:"Interactively add a translated message method."`
	AddProperty   StringsAddPropertyCmd   `cmd:"" name:"add-property" help:"Add a language property accessor method."`
	Print         StringsPrintCmd         `cmd:"" help:"Print a string class method."`
	CreateDefault StringsCreateDefaultCmd `cmd:"" name:"createdefault" help:"Create the stock string class description file."`
}

type StringsListCmd struct{}

func (cmd *StringsListCmd) Run(ctx *kong.Context, globals *Globals) error {
	class, err := globals.loadStringClass()
	if err != nil {
		return err
	}
	langs, err := globals.loadLanguageList()
	if err != nil {
		return err
	}

	for _, name := range class.PropertyMethodNames() {
		method := class.PropertyMethods[name]
		_, _ = fmt.Fprintf(ctx.Stdout, "property   %-32s %s\n", name, method.Property)
	}
	for _, name := range class.TranslateMethodNames() {
		line := fmt.Sprintf("translate  %-32s %d translation(s)",
			name, len(class.TranslateMethods[name].Translations))
		if missing := class.MissingTranslations(name, langs); len(missing) > 0 {
			line += fmt.Sprintf(", missing %v", missing)
		}
		_, _ = fmt.Fprintln(ctx.Stdout, line)
	}
	return nil
}

// paramTypeNames lists the generic parameter types the generated code
// knows how to render.
var paramTypeNames = []string{"string", "integer", "size", "unsigned"}

type StringsAddTranslateCmd struct{}

func (cmd *StringsAddTranslateCmd) Run(ctx *kong.Context, globals *Globals) error {
	if !isTerminal() {
		return fmt.Errorf("strings add-translate requires an interactive terminal")
	}

	class, err := globals.loadStringClass()
	if err != nil {
		return err
	}
	langs, err := globals.loadLanguageList()
	if err != nil {
		return err
	}
	baseName, baseEntry, ok := langs.Default()
	if !ok {
		return fmt.Errorf("no languages defined in %s, run 'lang createdefault' or 'lang add' first",
			globals.LanguageListPath())
	}

	name, err := promptInput("Enter the method name", validateMethodName)
	if err != nil {
		return err
	}
	brief, err := promptInput("Enter brief method description for doxygen comment", notEmpty)
	if err != nil {
		return err
	}
	retDesc, err := promptInput("Enter brief description of the return value for doxygen comment", notEmpty)
	if err != nil {
		return err
	}

	params, err := cmd.promptParams()
	if err != nil {
		return err
	}

	// Reprompt until the template's @name@ markers line up with the
	// declared parameter list.
	rawTemplate, err := promptInput(
		fmt.Sprintf("Enter the %s message text, mark parameters as @name@", baseName),
		func(value string) error {
			_, err := descriptions.ParseTranslateText(params, value)
			var tmplErr *descriptions.TemplateError
			if errors.As(err, &tmplErr) {
				return fmt.Errorf("matched %d of %d declared parameters, found %d markers",
					tmplErr.Matched, tmplErr.Expected, tmplErr.Found)
			}
			return err
		})
	if err != nil {
		return err
	}

	if err := class.AddTranslateMethod(name, brief, params, retDesc,
		baseEntry.IsoCode, rawTemplate); err != nil {
		return err
	}

	repr.Println(class.TranslateMethods[name])
	confirmed, err := promptYesNo("Is this correct?")
	if err != nil {
		return err
	}
	if !confirmed {
		printError(ctx.Stderr, "method not added")
		return NewCommandError(1)
	}

	if err := class.Save(); err != nil {
		return fmt.Errorf("failed to save string class description: %w", err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("added translate method %q", name))
	if missing := class.MissingTranslations(name, langs); len(missing) > 0 {
		printInfof(ctx.Stdout, "translations still needed for %v, base language text will be used", missing)
	}
	return nil
}

// promptParams collects the parameter list. An empty name ends the loop.
func (cmd *StringsAddTranslateCmd) promptParams() ([]descriptions.ParamDesc, error) {
	var params []descriptions.ParamDesc
	for {
		name, err := promptInput("Enter parameter name (empty to finish)", func(value string) error {
			if value == "" {
				return nil
			}
			return validateMethodName(value)
		})
		if err != nil {
			return nil, err
		}
		if name == "" {
			return params, nil
		}

		paramType, err := promptSelect("Select the parameter type", paramTypeNames)
		if err != nil {
			return nil, err
		}
		desc, err := promptInput("Enter brief parameter description for doxygen comment", notEmpty)
		if err != nil {
			return nil, err
		}
		params = append(params, descriptions.ParamDesc{Name: name, Type: paramType, Desc: desc})
	}
}

func validateMethodName(value string) error {
	if value == "" {
		return fmt.Errorf("a name is required")
	}
	for i, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9', r == '_':
			if i == 0 {
				return fmt.Errorf("names must start with a letter")
			}
		default:
			return fmt.Errorf("only letters, digits and underscore are allowed")
		}
	}
	return nil
}

func notEmpty(value string) error {
	if value == "" {
		return fmt.Errorf("a value is required")
	}
	return nil
}

type StringsAddPropertyCmd struct{}

func (cmd *StringsAddPropertyCmd) Run(ctx *kong.Context, globals *Globals) error {
	if !isTerminal() {
		return fmt.Errorf("strings add-property requires an interactive terminal")
	}

	class, err := globals.loadStringClass()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(descriptions.Properties()))
	for _, prop := range descriptions.Properties() {
		keys = append(keys, prop.Key)
	}
	key, err := promptSelect("Select the language property", keys)
	if err != nil {
		return err
	}
	prop, _ := descriptions.PropertyByKey(key)

	class.AddPropertyMethod(prop)
	if err := class.Save(); err != nil {
		return fmt.Errorf("failed to save string class description: %w", err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("added property accessor %q", prop.MethodName))
	return nil
}

type StringsPrintCmd struct {
	Name string `help:"Method name to print." arg:""`
}

func (cmd *StringsPrintCmd) Run(ctx *kong.Context, globals *Globals) error {
	class, err := globals.loadStringClass()
	if err != nil {
		return err
	}
	if method, ok := class.PropertyMethods[cmd.Name]; ok {
		repr.Println(method)
		return nil
	}
	if method, ok := class.TranslateMethods[cmd.Name]; ok {
		repr.Println(method)
		return nil
	}
	return fmt.Errorf("unknown method %q", cmd.Name)
}

type StringsCreateDefaultCmd struct {
	Force bool `help:"Overwrite an existing string class description file."`
}

func (cmd *StringsCreateDefaultCmd) Run(ctx *kong.Context, globals *Globals) error {
	class, err := globals.loadStringClass()
	if err != nil {
		return err
	}
	defined := len(class.PropertyMethodNames()) + len(class.TranslateMethodNames())
	if defined > 0 && !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("%s already defines methods. Replace it?",
			globals.StringClassPath()))
		if err != nil {
			return err
		}
		if !confirmed {
			printError(ctx.Stderr, "string class file unchanged")
			return NewCommandError(1)
		}
	}

	fresh := descriptions.NewStringClass(globals.StringClassPath())
	if err := descriptions.SeedStringClass(fresh); err != nil {
		return err
	}
	if err := fresh.Save(); err != nil {
		return fmt.Errorf("failed to save string class description: %w", err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("created %s with %d methods",
		pathStyle.Render(globals.StringClassPath()),
		len(fresh.PropertyMethodNames())+len(fresh.TranslateMethodNames())))
	return nil
}
