package template

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestAssembleStream(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		concatOp string
		want     string
	}{
		{
			name:     "Empty",
			input:    "",
			concatOp: "<<",
			want:     "",
		},
		{
			name:     "TextOnly",
			input:    "Usage:",
			concatOp: "<<",
			want:     `"Usage:"`,
		},
		{
			name:     "ParamOnly",
			input:    "@keyString@",
			concatOp: "<<",
			want:     "keyString",
		},
		{
			name:     "TextThenParam",
			input:    "Unknown argument: @keyString@",
			concatOp: "<<",
			want:     `"Unknown argument: " << keyString`,
		},
		{
			name:     "ParamBetweenText",
			input:    "Expected: @nargsExpected@ arguments",
			concatOp: "<<",
			want:     `"Expected: " << nargsExpected << " arguments"`,
		},
		{
			name:     "QuotedParam",
			input:    `"@keyString@" invalid assignment`,
			concatOp: "<<",
			want:     `"\"" << keyString << "\" invalid assignment"`,
		},
		{
			name:     "SpecialMergesWithTextRun",
			input:    `key "@keyString@"`,
			concatOp: "<<",
			want:     `"key \"" << keyString << "\""`,
		},
		{
			name:     "AdjacentParams",
			input:    "@first@@second@",
			concatOp: "<<",
			want:     "first << second",
		},
		{
			name:     "PlusOperator",
			input:    "Unknown argument: @keyString@",
			concatOp: "+",
			want:     `"Unknown argument: " + keyString`,
		},
		{
			name:     "Backslash",
			input:    `dir\@name@`,
			concatOp: "<<",
			want:     `"dir\\" << name`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssembleStream(Parse(tt.input), tt.concatOp))
		})
	}
}

func TestAssembleStreamQuotesBalanced(t *testing.T) {
	inputs := []string{
		"",
		"text only",
		"@param@",
		`trailing text after @param@`,
		`"@key@", "@value@" assignment failed`,
		`ends with quote "`,
		`\`,
	}

	for _, input := range inputs {
		out := AssembleStream(Parse(input), "<<")

		// Count unescaped quotes; a quote is escaped only when preceded
		// by an odd run of backslashes.
		quotes := 0
		for i := 0; i < len(out); i++ {
			if out[i] != '"' {
				continue
			}
			backslashes := 0
			for j := i - 1; j >= 0 && out[j] == '\\'; j-- {
				backslashes++
			}
			if backslashes%2 == 0 {
				quotes++
			}
		}
		assert.Equal(t, 0, quotes%2, "unbalanced quotes in %q", out)
		assert.False(t, strings.HasSuffix(out, "<< "), "dangling operator in %q", out)
	}
}

func TestAssembleTestReturn(t *testing.T) {
	values := map[string]string{
		"keyString":     "--myKey",
		"valueString":   "23",
		"nargsExpected": "2",
		"nargsFound":    "1",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "TextOnly",
			input: "Usage:",
			want:  "Usage:",
		},
		{
			name:  "SingleSubstitution",
			input: "Unknown argument: @keyString@",
			want:  "Unknown argument: --myKey",
		},
		{
			name:  "MultipleSubstitutions",
			input: `"@keyString@" missing assignment value(s). Expected: @nargsExpected@ found: @nargsFound@ arguments`,
			want:  `\"--myKey\" missing assignment value(s). Expected: 2 found: 1 arguments`,
		},
		{
			name:  "SpecialsEscaped",
			input: `"@keyString@", "@valueString@" assignment failed`,
			want:  `\"--myKey\", \"23\" assignment failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssembleTestReturn(Parse(tt.input), values))
		})
	}
}

func TestAssembleTestReturnMissingValuePanics(t *testing.T) {
	defer func() {
		assert.NotEqual(t, nil, recover())
	}()
	AssembleTestReturn(Parse("@unbound@"), map[string]string{})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		params      []string
		input       string
		wantOk      bool
		wantMatched int
		wantFound   int
	}{
		{
			name:        "ExactMatch",
			params:      []string{"keyString"},
			input:       "Unknown argument: @keyString@",
			wantOk:      true,
			wantMatched: 1,
			wantFound:   1,
		},
		{
			name:        "NoParamsNoMarkers",
			params:      nil,
			input:       "Usage:",
			wantOk:      true,
			wantMatched: 0,
			wantFound:   0,
		},
		{
			name:        "MultipleExact",
			params:      []string{"keyString", "nargsExpected", "nargsFound"},
			input:       `"@keyString@" expected @nargsExpected@ found @nargsFound@`,
			wantOk:      true,
			wantMatched: 3,
			wantFound:   3,
		},
		{
			name:        "MissingParam",
			params:      []string{"keyString", "valueString"},
			input:       "Unknown argument: @keyString@",
			wantOk:      false,
			wantMatched: 1,
			wantFound:   1,
		},
		{
			name:        "MisspelledParam",
			params:      []string{"keyString"},
			input:       "Unknown argument: @keystring@",
			wantOk:      false,
			wantMatched: 0,
			wantFound:   1,
		},
		{
			name:        "UnexpectedExtraParam",
			params:      []string{"keyString"},
			input:       "@keyString@ and @extra@",
			wantOk:      false,
			wantMatched: 1,
			wantFound:   2,
		},
		{
			name:        "DuplicatedParam",
			params:      []string{"keyString"},
			input:       "@keyString@ twice @keyString@",
			wantOk:      false,
			wantMatched: 2,
			wantFound:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, matched, found := Validate(tt.params, Parse(tt.input))
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantMatched, matched)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}
