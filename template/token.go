package template

// TokenType represents the type of token parsed from a translation
// template string.
type TokenType uint8

const (
	// TEXT is a run of literal text between parameter markers.
	TEXT TokenType = iota
	// PARAM is a @name@ parameter reference, stored without the markers.
	PARAM
	// SPECIAL is a single character that must be escaped when the token
	// sequence is emitted inside a quoted string literal.
	SPECIAL
)

var tokenNames = map[TokenType]string{
	TEXT:    "TEXT",
	PARAM:   "PARAM",
	SPECIAL: "SPECIAL",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is one parsed unit of a translation template string. The Value
// holds the raw text: the parameter name for PARAM tokens (markers
// stripped), the literal run for TEXT tokens, and the bare unescaped
// character for SPECIAL tokens.
type Token struct {
	Type  TokenType
	Value string
}

// Text returns a TEXT token holding the given literal run.
func Text(value string) Token {
	return Token{Type: TEXT, Value: value}
}

// Param returns a PARAM token referencing the named parameter.
func Param(name string) Token {
	return Token{Type: PARAM, Value: name}
}

// Special returns a SPECIAL token for the given character.
func Special(c byte) Token {
	return Token{Type: SPECIAL, Value: string(c)}
}
