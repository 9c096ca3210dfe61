package descriptions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LanguageEntry holds the OS and translation codes for one supported
// language. LANG codes select the language on Linux, LANGID codes on
// Windows.
type LanguageEntry struct {
	GoogleCode    string   `json:"googleCode"`
	LangCode      string   `json:"LANG"`
	LangRegions   []string `json:"LANG_regions"`
	LangIDCodes   []int    `json:"LANGID"`
	LangIDRegions []int    `json:"LANGID_regions"`
	IsoCode       string   `json:"isoCode"`
	CompileSwitch string   `json:"compileSwitch"`
}

// LanguageList is the JSON-backed list of supported languages.
type LanguageList struct {
	path string

	DefaultLang string                   `json:"default"`
	Languages   map[string]LanguageEntry `json:"languages"`
}

// NewLanguageList returns an empty list bound to path.
func NewLanguageList(path string) *LanguageList {
	return &LanguageList{
		path:      path,
		Languages: map[string]LanguageEntry{},
	}
}

// LoadLanguageList reads the language list JSON file at path. A missing
// file yields an empty list bound to path.
func LoadLanguageList(path string) (*LanguageList, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewLanguageList(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read language list: %w", err)
	}
	list := NewLanguageList(path)
	if err := json.Unmarshal(data, list); err != nil {
		return nil, fmt.Errorf("parse language list %s: %w", path, err)
	}
	return list, nil
}

// Save writes the list back to its JSON file.
func (l *LanguageList) Save() error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(l.path, append(data, '\n'), 0o644)
}

// Path returns the backing file path.
func (l *LanguageList) Path() string { return l.path }

// Names returns the defined language names in sorted order.
func (l *LanguageList) Names() []string {
	names := make([]string, 0, len(l.Languages))
	for name := range l.Languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entry returns the language entry for name.
func (l *LanguageList) Entry(name string) (LanguageEntry, bool) {
	entry, ok := l.Languages[name]
	return entry, ok
}

// Add inserts or replaces a language entry.
func (l *LanguageList) Add(name string, entry LanguageEntry) {
	l.Languages[name] = entry
}

// SetDefault marks name as the default language. The language must
// already be defined.
func (l *LanguageList) SetDefault(name string) error {
	if _, ok := l.Languages[name]; !ok {
		return fmt.Errorf("unknown language %q", name)
	}
	l.DefaultLang = name
	return nil
}

// Default returns the default language name and its entry. Falls back
// to the first defined language when no default is set.
func (l *LanguageList) Default() (string, LanguageEntry, bool) {
	if entry, ok := l.Languages[l.DefaultLang]; ok {
		return l.DefaultLang, entry, true
	}
	names := l.Names()
	if len(names) == 0 {
		return "", LanguageEntry{}, false
	}
	return names[0], l.Languages[names[0]], true
}

// LanguageProperty describes one LanguageEntry field exposed as a
// generated accessor method.
type LanguageProperty struct {
	Key        string
	MethodName string
	Return     ReturnDesc
}

// languageProperties is ordered the way the accessors appear in the
// generated interface. compileSwitch is build plumbing, not an accessor.
var languageProperties = []LanguageProperty{
	{Key: "googleCode", MethodName: "getGoogleTranslateCode",
		Return: ReturnDesc{Type: "string", Desc: "Google translate language code"}},
	{Key: "LANG", MethodName: "getLANGLanguage",
		Return: ReturnDesc{Type: "string", Desc: "Linux environment language code"}},
	{Key: "LANG_regions", MethodName: "getLANGRegionList",
		Return: ReturnDesc{Type: "string", Desc: "Linux environment region codes for this language code", IsList: true}},
	{Key: "LANGID", MethodName: "getLANGIDCode",
		Return: ReturnDesc{Type: "LANGID", Desc: "Windows LANGID & 0xFF language code(s)", IsList: true}},
	{Key: "LANGID_regions", MethodName: "getLANGIDList",
		Return: ReturnDesc{Type: "LANGID", Desc: "Windows full LANGID language code(s)", IsList: true}},
	{Key: "isoCode", MethodName: "getLangIsoCode",
		Return: ReturnDesc{Type: "string", Desc: "ISO 639 set 3 language code"}},
}

// Properties returns the accessor property table in declaration order.
func Properties() []LanguageProperty {
	props := make([]LanguageProperty, len(languageProperties))
	copy(props, languageProperties)
	return props
}

// PropertyByKey looks up a property table row by its JSON key.
func PropertyByKey(key string) (LanguageProperty, bool) {
	for _, p := range languageProperties {
		if p.Key == key {
			return p, true
		}
	}
	return LanguageProperty{}, false
}

// IsoPropertyMethodName returns the accessor name for the ISO 639 code.
// The base class language-select logic dispatches on it.
func IsoPropertyMethodName() string {
	prop, _ := PropertyByKey("isoCode")
	return prop.MethodName
}

// PropertyValues returns the raw string values of property prop for
// language name. Numeric properties are rendered in decimal, scalar
// properties as a single-element slice.
func (l *LanguageList) PropertyValues(name, key string) ([]string, error) {
	entry, ok := l.Languages[name]
	if !ok {
		return nil, fmt.Errorf("unknown language %q", name)
	}
	switch key {
	case "googleCode":
		return []string{entry.GoogleCode}, nil
	case "LANG":
		return []string{entry.LangCode}, nil
	case "LANG_regions":
		return append([]string(nil), entry.LangRegions...), nil
	case "LANGID":
		return intStrings(entry.LangIDCodes), nil
	case "LANGID_regions":
		return intStrings(entry.LangIDRegions), nil
	case "isoCode":
		return []string{entry.IsoCode}, nil
	case "compileSwitch":
		return []string{entry.CompileSwitch}, nil
	}
	return nil, fmt.Errorf("unknown language property %q", key)
}

func intStrings(values []int) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprintf("%d", v))
	}
	return out
}

// SeedLanguages populates list with the stock language definitions and
// marks english as the default.
func SeedLanguages(list *LanguageList) {
	list.Add("english", LanguageEntry{
		GoogleCode:  "en",
		LangCode:    "en",
		LangRegions: []string{"AU", "BZ", "CA", "CB", "GB", "IE", "JM", "NZ", "PH", "TT", "US", "ZA", "ZW"},
		LangIDCodes: []int{0x09},
		LangIDRegions: []int{3081, 10249, 4105, 9225, 2057, 16393, 6153,
			8201, 5129, 13321, 7177, 11273, 1033, 12297},
		IsoCode:       "en",
		CompileSwitch: "ENGLISH_ERRORS",
	})
	list.Add("spanish", LanguageEntry{
		GoogleCode: "es",
		LangCode:   "es",
		LangRegions: []string{"AR", "BO", "CL", "CO", "CR", "DO", "EC", "ES", "GT", "HN",
			"MX", "NI", "PA", "PE", "PR", "PY", "SV", "UY", "VE"},
		LangIDCodes: []int{0x0A},
		LangIDRegions: []int{11274, 16394, 13322, 9226, 5130, 7178, 12298, 17418, 4106,
			18442, 2058, 19466, 6154, 15370, 10250, 20490, 1034, 14346, 8202},
		IsoCode:       "es",
		CompileSwitch: "SPANISH_ERRORS",
	})
	list.Add("french", LanguageEntry{
		GoogleCode:    "fr",
		LangCode:      "fr",
		LangRegions:   []string{"BE", "CA", "CH", "FR", "LU", "MC"},
		LangIDCodes:   []int{0x0C},
		LangIDRegions: []int{2060, 11276, 3084, 9228, 12300, 1036, 5132, 13324, 6156, 14348, 10252, 4108, 7180},
		IsoCode:       "fr",
		CompileSwitch: "FRENCH_ERRORS",
	})
	list.Add("SimplifiedChinese", LanguageEntry{
		GoogleCode:    "zh",
		LangCode:      "zh",
		LangRegions:   []string{"CN", "HK", "MO", "SG", "TW"},
		LangIDCodes:   []int{0x04},
		LangIDRegions: []int{2052, 3076, 5124, 4100, 1028},
		IsoCode:       "zh",
		CompileSwitch: "CHINESE_ERRORS",
	})
	_ = list.SetDefault("english")
}
