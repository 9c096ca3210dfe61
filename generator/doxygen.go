package generator

import (
	"strings"

	"github.com/randaleike/argparse-language-autogen/descriptions"
)

const doxyFormatMax = 120

// wrapText splits text into lines no longer than max characters,
// breaking at word boundaries. Words longer than max stand alone.
func wrapText(text string, max int) []string {
	if max <= 0 || len(text) <= max {
		return []string{text}
	}
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= max:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// DoxyGenerator builds doxygen comment blocks for C style files.
type DoxyGenerator struct {
	blockStart   string
	lineStart    string
	blockEnd     string
	addParamType bool
	groupCount   int
}

// NewDoxyGenerator returns a doxygen generator using C comment markers.
func NewDoxyGenerator() *DoxyGenerator {
	return &DoxyGenerator{
		blockStart: "/*!",
		lineStart:  " * ",
		blockEnd:   " */",
	}
}

func (d *DoxyGenerator) descMax() int {
	return doxyFormatMax - len(d.lineStart)
}

func (d *DoxyGenerator) briefLines(brief, prefix string) []string {
	const briefStart = "@brief "
	var lines []string
	for i, part := range wrapText(brief, d.descMax()-len(briefStart)) {
		if i == 0 {
			lines = append(lines, prefix+briefStart+part)
		} else {
			lines = append(lines, prefix+strings.Repeat(" ", len(briefStart))+part)
		}
	}
	return lines
}

func (d *DoxyGenerator) paramLines(param descriptions.ParamDesc, prefix string) []string {
	lead := "@param " + param.Name
	if d.addParamType {
		lead += " {" + param.Type + "}"
	}
	lead += " "
	var lines []string
	for i, part := range wrapText(param.Desc, d.descMax()-len(lead)) {
		if i == 0 {
			lines = append(lines, prefix+lead+part)
		} else {
			lines = append(lines, prefix+strings.Repeat(" ", len(lead))+part)
		}
	}
	return lines
}

func (d *DoxyGenerator) returnLines(ret descriptions.ReturnDesc, prefix string) []string {
	lead := "@return " + ret.Type + " - "
	var lines []string
	for i, part := range wrapText(ret.Desc, d.descMax()-len(lead)) {
		if i == 0 {
			lines = append(lines, prefix+lead+part)
		} else {
			lines = append(lines, prefix+strings.Repeat(" ", len(lead))+part)
		}
	}
	return lines
}

// MethodComment builds a doxygen method comment block indented by
// indent spaces. ret may be nil for constructors and void methods.
func (d *DoxyGenerator) MethodComment(brief string, params []descriptions.ParamDesc,
	ret *descriptions.ReturnDesc, longDesc string, indent int) []string {
	pad := strings.Repeat(" ", indent)
	prefix := pad + d.lineStart

	block := []string{pad + d.blockStart}
	block = append(block, d.briefLines(brief, prefix)...)
	block = append(block, strings.TrimRight(prefix, " "))

	if longDesc != "" {
		for _, part := range wrapText(longDesc, d.descMax()) {
			block = append(block, prefix+part)
		}
		block = append(block, strings.TrimRight(prefix, " "))
	}
	if len(params) > 0 {
		for _, param := range params {
			block = append(block, d.paramLines(param, prefix)...)
		}
		block = append(block, strings.TrimRight(prefix, " "))
	}
	if ret != nil {
		block = append(block, d.returnLines(*ret, prefix)...)
	}
	return append(block, pad+d.blockEnd)
}

// ClassComment builds a doxygen class comment block.
func (d *DoxyGenerator) ClassComment(brief string, indent int) []string {
	pad := strings.Repeat(" ", indent)
	prefix := pad + d.lineStart

	block := []string{pad + d.blockStart}
	block = append(block, d.briefLines(brief, prefix)...)
	return append(block, pad+d.blockEnd)
}

// Defgroup builds the @file/@defgroup block opening a doxygen group.
func (d *DoxyGenerator) Defgroup(fileName, group, groupDesc string) []string {
	block := []string{d.blockStart}
	block = append(block, d.lineStart+"@file "+fileName)
	if group != "" {
		if groupDesc != "" {
			block = append(block, d.lineStart+"@defgroup "+group+" "+groupDesc)
		}
		block = append(block, d.lineStart+"@ingroup "+group)
		block = append(block, d.lineStart+"@{")
		d.groupCount++
	}
	return append(block, d.blockEnd)
}

// GroupEnd closes the innermost open doxygen group, returning no lines
// when no group is open.
func (d *DoxyGenerator) GroupEnd() []string {
	if d.groupCount == 0 {
		return nil
	}
	d.groupCount--
	return []string{d.blockStart + "@}" + d.blockEnd}
}
