package generator

import "fmt"

// Eula holds an end user license agreement for generated file headers.
type Eula struct {
	name string
	text []string
}

var eulaTexts = map[string][]string{
	"MIT_open": {
		"Permission is hereby granted, free of charge, to any person obtaining a",
		"copy of this software and associated documentation files (the \"Software\"),",
		"to deal in the Software without restriction, including without limitation",
		"the rights to use, copy, modify, merge, publish, distribute, sublicense,",
		"and/or sell copies of the Software, and to permit persons to whom the",
		"Software is furnished to do so, subject to the following conditions:",
		"",
		"The above copyright notice and this permission notice shall be included",
		"in all copies or substantial portions of the Software.",
		"",
		"THE SOFTWARE IS PROVIDED \"AS IS\", WITHOUT WARRANTY OF ANY KIND,",
		"EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF",
		"MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.",
		"IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY",
		"CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,",
		"TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE",
		"SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.",
	},
}

var eulaDisplayNames = map[string]string{
	"MIT_open": "MIT License",
}

// DefaultEulaName is used when no EULA is requested explicitly.
const DefaultEulaName = "MIT_open"

// NewEula looks up the named EULA text.
func NewEula(name string) (*Eula, error) {
	if name == "" {
		name = DefaultEulaName
	}
	text, ok := eulaTexts[name]
	if !ok {
		return nil, fmt.Errorf("unknown EULA %q", name)
	}
	return &Eula{name: name, text: text}, nil
}

// EulaNames lists the available EULA identifiers.
func EulaNames() []string {
	return []string{"MIT_open"}
}

// FormatName returns the display heading for the EULA.
func (e *Eula) FormatName() string {
	if display, ok := eulaDisplayNames[e.name]; ok {
		return display
	}
	return e.name
}

// FormatText returns the EULA body lines.
func (e *Eula) FormatText() []string {
	return append([]string(nil), e.text...)
}
