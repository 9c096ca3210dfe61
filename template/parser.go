// Package template parses translation template strings into typed token
// sequences and reassembles those sequences into templates, target-language
// stream expressions, or literal expected-output strings.
//
// A template is a human-authored message with @name@ parameter markers:
//
//	Found argument key @keyString@
//
// Parsing never fails; malformed markers degrade to literal text. The
// round-trip AssembleTemplate(Parse(s)) == s holds for every input string.
package template

import "regexp"

// paramMarker matches a @name@ parameter reference. Identifier rules are
// case-sensitive C naming, so a stray @ or a marker with an invalid name
// stays literal text.
var paramMarker = regexp.MustCompile(`@[A-Za-z_][A-Za-z0-9_]*@`)

// specialChars are the characters that become SPECIAL tokens because they
// need a backslash escape when emitted inside a quoted string literal.
const specialChars = "\\\""

// Parse splits a translation template into its ordered token sequence.
// Parameter markers become PARAM tokens, the backslash and double quote
// characters become SPECIAL tokens, and everything else becomes TEXT
// tokens. Zero-length runs are omitted. An empty template yields nil.
func Parse(template string) []Token {
	var tokens []Token
	last := 0
	for _, loc := range paramMarker.FindAllStringIndex(template, -1) {
		tokens = appendTextRun(tokens, template[last:loc[0]])
		tokens = append(tokens, Param(template[loc[0]+1:loc[1]-1]))
		last = loc[1]
	}
	return appendTextRun(tokens, template[last:])
}

// appendTextRun splits the gap between parameter markers on special
// characters, appending the resulting TEXT and SPECIAL tokens in order.
func appendTextRun(tokens []Token, gap string) []Token {
	start := 0
	for i := 0; i < len(gap); i++ {
		if !isSpecial(gap[i]) {
			continue
		}
		if i > start {
			tokens = append(tokens, Text(gap[start:i]))
		}
		tokens = append(tokens, Special(gap[i]))
		start = i + 1
	}
	if start < len(gap) {
		tokens = append(tokens, Text(gap[start:]))
	}
	return tokens
}

func isSpecial(c byte) bool {
	for i := 0; i < len(specialChars); i++ {
		if specialChars[i] == c {
			return true
		}
	}
	return false
}
