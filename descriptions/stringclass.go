package descriptions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/randaleike/argparse-language-autogen/template"
)

// TranslateText is a parsed message template persisted as a tagged
// token list.
type TranslateText []template.Token

type tokenJSON struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// MarshalJSON renders each token as {"type":..., "value":...}.
func (t TranslateText) MarshalJSON() ([]byte, error) {
	out := make([]tokenJSON, 0, len(t))
	for _, tok := range t {
		var kind string
		switch tok.Type {
		case template.TEXT:
			kind = "text"
		case template.PARAM:
			kind = "param"
		case template.SPECIAL:
			kind = "special"
		default:
			return nil, fmt.Errorf("unknown token type %d", tok.Type)
		}
		out = append(out, tokenJSON{Type: kind, Value: tok.Value})
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the tagged token list form.
func (t *TranslateText) UnmarshalJSON(data []byte) error {
	var raw []tokenJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tokens := make(TranslateText, 0, len(raw))
	for _, entry := range raw {
		switch entry.Type {
		case "text":
			tokens = append(tokens, template.Text(entry.Value))
		case "param":
			tokens = append(tokens, template.Param(entry.Value))
		case "special":
			if len(entry.Value) != 1 {
				return fmt.Errorf("special token value %q is not a single character", entry.Value)
			}
			tokens = append(tokens, template.Special(entry.Value[0]))
		default:
			return fmt.Errorf("unknown token type %q", entry.Type)
		}
	}
	*t = tokens
	return nil
}

// PropertyMethod is a generated accessor returning language description
// data. The Property key ties it back to a LanguageEntry field.
type PropertyMethod struct {
	Property string      `json:"name"`
	Brief    string      `json:"briefDesc"`
	Params   []ParamDesc `json:"params"`
	Return   ReturnDesc  `json:"return"`
}

// TranslateMethod is a generated message builder with one parsed
// template per translated language, keyed by ISO 639 code.
type TranslateMethod struct {
	Brief        string                   `json:"briefDesc"`
	Params       []ParamDesc              `json:"params"`
	Return       ReturnDesc               `json:"return"`
	Translations map[string]TranslateText `json:"translateDesc"`
}

// StringClass is the JSON-backed description of the generated parser
// string class: its property accessors and translated message builders.
type StringClass struct {
	path string

	PropertyMethods  map[string]PropertyMethod  `json:"propertyMethods"`
	TranslateMethods map[string]TranslateMethod `json:"translateMethods"`
}

// NewStringClass returns an empty description bound to path.
func NewStringClass(path string) *StringClass {
	return &StringClass{
		path:             path,
		PropertyMethods:  map[string]PropertyMethod{},
		TranslateMethods: map[string]TranslateMethod{},
	}
}

// LoadStringClass reads the class description JSON file at path. A
// missing file yields an empty description bound to path.
func LoadStringClass(path string) (*StringClass, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewStringClass(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read string class description: %w", err)
	}
	class := NewStringClass(path)
	if err := json.Unmarshal(data, class); err != nil {
		return nil, fmt.Errorf("parse string class description %s: %w", path, err)
	}
	return class, nil
}

// Save writes the description back to its JSON file.
func (s *StringClass) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, append(data, '\n'), 0o644)
}

// Path returns the backing file path.
func (s *StringClass) Path() string { return s.path }

// PropertyMethodNames returns the accessor method names in sorted order.
func (s *StringClass) PropertyMethodNames() []string {
	names := make([]string, 0, len(s.PropertyMethods))
	for name := range s.PropertyMethods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TranslateMethodNames returns the message builder names in sorted order.
func (s *StringClass) TranslateMethodNames() []string {
	names := make([]string, 0, len(s.TranslateMethods))
	for name := range s.TranslateMethods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsoPropertyMethodName returns the accessor method name bound to the
// isoCode property, falling back to the stock name when no accessor
// has been defined yet.
func (s *StringClass) IsoPropertyMethodName() string {
	for _, name := range s.PropertyMethodNames() {
		if s.PropertyMethods[name].Property == "isoCode" {
			return name
		}
	}
	return IsoPropertyMethodName()
}

// AddPropertyMethod adds the accessor entry for the given language
// property table row.
func (s *StringClass) AddPropertyMethod(prop LanguageProperty) {
	s.PropertyMethods[prop.MethodName] = PropertyMethod{
		Property: prop.Key,
		Brief:    "Get the " + prop.Return.Desc + " for this object",
		Params:   nil,
		Return:   prop.Return,
	}
}

// TemplateError reports a message template whose parameter markers do
// not line up with the declared parameter list.
type TemplateError struct {
	Template string
	Expected int
	Matched  int
	Found    int
}

func (e *TemplateError) Error() string {
	switch {
	case e.Matched != e.Expected:
		return fmt.Sprintf("template %q matched %d of %d expected parameters",
			e.Template, e.Matched, e.Expected)
	case e.Found > e.Matched:
		return fmt.Sprintf("template %q references %d undeclared parameter(s)",
			e.Template, e.Found-e.Matched)
	default:
		return fmt.Sprintf("template %q failed parameter validation", e.Template)
	}
}

// ParseTranslateText parses raw against the declared parameter list and
// returns the token form, or a *TemplateError when the parameter markers
// do not match.
func ParseTranslateText(params []ParamDesc, raw string) (TranslateText, error) {
	tokens := template.Parse(raw)
	names := ParamNames(params)
	ok, matched, found := template.Validate(names, tokens)
	if !ok {
		return nil, &TemplateError{
			Template: raw,
			Expected: len(names),
			Matched:  matched,
			Found:    found,
		}
	}
	return TranslateText(tokens), nil
}

// AddTranslateMethod adds a message builder whose baseLang translation
// is parsed from rawTemplate. The template must reference exactly the
// declared parameters.
func (s *StringClass) AddTranslateMethod(name, brief string, params []ParamDesc,
	retDesc, baseLang, rawTemplate string) error {
	tokens, err := ParseTranslateText(params, rawTemplate)
	if err != nil {
		return err
	}
	s.TranslateMethods[name] = TranslateMethod{
		Brief:        brief,
		Params:       params,
		Return:       ReturnDesc{Type: "text", Desc: retDesc},
		Translations: map[string]TranslateText{baseLang: tokens},
	}
	return nil
}

// AddManualTranslation attaches a pre-parsed translation for isoCode to
// an existing method.
func (s *StringClass) AddManualTranslation(methodName, isoCode string, text TranslateText) error {
	method, ok := s.TranslateMethods[methodName]
	if !ok {
		return fmt.Errorf("unknown translate method %q", methodName)
	}
	if text == nil {
		return fmt.Errorf("translate method %q: no text supplied", methodName)
	}
	names := ParamNames(method.Params)
	if ok, matched, found := template.Validate(names, []template.Token(text)); !ok {
		return &TemplateError{
			Template: template.AssembleTemplate(text),
			Expected: len(names),
			Matched:  matched,
			Found:    found,
		}
	}
	// Methods loaded from JSON without a translateDesc key carry a nil map.
	if method.Translations == nil {
		method.Translations = map[string]TranslateText{}
	}
	method.Translations[isoCode] = text
	s.TranslateMethods[methodName] = method
	return nil
}

// Translation returns the parsed text for methodName in isoCode.
func (s *StringClass) Translation(methodName, isoCode string) (TranslateText, bool) {
	method, ok := s.TranslateMethods[methodName]
	if !ok {
		return nil, false
	}
	text, ok := method.Translations[isoCode]
	return text, ok
}

// TranslationOrBase returns the isoCode translation, or falls back to
// the first available translation in sorted ISO code order when no
// translation for isoCode exists.
func (s *StringClass) TranslationOrBase(methodName, isoCode string) (TranslateText, string, bool) {
	method, ok := s.TranslateMethods[methodName]
	if !ok || len(method.Translations) == 0 {
		return nil, "", false
	}
	if text, ok := method.Translations[isoCode]; ok {
		return text, isoCode, true
	}
	codes := make([]string, 0, len(method.Translations))
	for code := range method.Translations {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return method.Translations[codes[0]], codes[0], true
}

// MissingTranslations lists the defined languages that methodName has
// no translation for.
func (s *StringClass) MissingTranslations(methodName string, langs *LanguageList) []string {
	method, ok := s.TranslateMethods[methodName]
	if !ok {
		return nil
	}
	var missing []string
	for _, name := range langs.Names() {
		entry := langs.Languages[name]
		if _, ok := method.Translations[entry.IsoCode]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
