package template

import (
	"fmt"
	"strings"
)

// AssembleTemplate reconstructs the original template string from a token
// sequence. This is the exact inverse of Parse.
func AssembleTemplate(tokens []Token) string {
	var buf strings.Builder
	for _, tok := range tokens {
		switch tok.Type {
		case PARAM:
			buf.WriteByte('@')
			buf.WriteString(tok.Value)
			buf.WriteByte('@')
		case TEXT, SPECIAL:
			buf.WriteString(tok.Value)
		}
	}
	return buf.String()
}

// AssembleStream emits a target-language expression that concatenates
// quoted literal segments and bare parameter references with concatOp
// between operands. Contiguous TEXT and SPECIAL tokens collapse into a
// single quoted literal, with SPECIAL characters backslash-escaped inside
// the quotes. Quotes are always balanced and an empty token sequence
// yields an empty string.
//
//	AssembleStream(Parse(`Key "@key@" found`), "<<")
//	  => `"Key \"" << key << "\" found"`
func AssembleStream(tokens []Token, concatOp string) string {
	var buf strings.Builder
	inQuote := false

	openRun := func() {
		if inQuote {
			return
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
			buf.WriteString(concatOp)
			buf.WriteByte(' ')
		}
		buf.WriteByte('"')
		inQuote = true
	}
	closeRun := func() {
		if inQuote {
			buf.WriteByte('"')
			inQuote = false
		}
	}

	for _, tok := range tokens {
		switch tok.Type {
		case TEXT:
			openRun()
			buf.WriteString(tok.Value)
		case SPECIAL:
			openRun()
			buf.WriteByte('\\')
			buf.WriteString(tok.Value)
		case PARAM:
			closeRun()
			if buf.Len() > 0 {
				buf.WriteByte(' ')
				buf.WriteString(concatOp)
				buf.WriteByte(' ')
			}
			buf.WriteString(tok.Value)
		}
	}
	closeRun()
	return buf.String()
}

// AssembleTestReturn builds the literal expected-output string for a token
// sequence given concrete parameter values. TEXT tokens are emitted as-is,
// SPECIAL tokens are backslash-escaped, and PARAM tokens are replaced by
// values[name]. A missing value is a caller contract violation and panics;
// callers gate stored templates through Validate first.
func AssembleTestReturn(tokens []Token, values map[string]string) string {
	var buf strings.Builder
	for _, tok := range tokens {
		switch tok.Type {
		case TEXT:
			buf.WriteString(tok.Value)
		case SPECIAL:
			buf.WriteByte('\\')
			buf.WriteString(tok.Value)
		case PARAM:
			value, ok := values[tok.Value]
			if !ok {
				panic(fmt.Sprintf("template: no test value for parameter %q", tok.Value))
			}
			buf.WriteString(value)
		}
	}
	return buf.String()
}

// Validate counts how many PARAM tokens reference a declared parameter
// name. It returns ok when every declared parameter appears exactly once
// and no undeclared parameter appears: matched == len(paramNames) == found.
// This is the acceptance gate before a template is stored against a method
// signature; the counts drive the CLI's re-enter diagnostics.
func Validate(paramNames []string, tokens []Token) (ok bool, matched, found int) {
	declared := make(map[string]struct{}, len(paramNames))
	for _, name := range paramNames {
		declared[name] = struct{}{}
	}

	for _, tok := range tokens {
		if tok.Type != PARAM {
			continue
		}
		found++
		if _, hit := declared[tok.Value]; hit {
			matched++
		}
	}

	ok = matched == len(paramNames) && found == matched
	return ok, matched, found
}
