package copyright

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func mustOrder2(t *testing.T) *Parser {
	t.Helper()
	p, err := New(Order2, Config{})
	assert.NoError(t, err)
	return p
}

func TestIsCopyrightLineOrder1(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{
			name: "SingleYear",
			line: "Copyright (c) 2022 Randal Eike",
			want: true,
		},
		{
			name: "YearRange",
			line: "Copyright (c) 2020-2024 Jane Doe",
			want: true,
		},
		{
			name: "UpperCaseTag",
			line: "COPYRIGHT (C) 2022 Acme Corp.",
			want: true,
		},
		{
			name: "CommentDecoration",
			line: " * Copyright (c) 2022 Randal Eike",
			want: true,
		},
		{
			name: "MissingTag",
			line: "Copyright 2022 Randal Eike",
			want: false,
		},
		{
			name: "MissingYear",
			line: "Copyright (c) Randal Eike",
			want: false,
		},
		{
			name: "MissingOwner",
			line: "Copyright (c) 2022",
			want: false,
		},
		{
			name: "WrongOrder",
			line: "Jane Doe Copyright (c) 2020",
			want: false,
		},
		{
			name: "NotACopyright",
			line: "int main(void)",
			want: false,
		},
	}

	parser := NewEnglish()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.IsCopyrightLine(tt.line))
		})
	}
}

func TestIsCopyrightLineOrder2(t *testing.T) {
	parser := mustOrder2(t)

	assert.True(t, parser.IsCopyrightLine("Jane Doe Copyright (c) 2020"))
	assert.False(t, parser.IsCopyrightLine("Copyright (c) 2020 Jane Doe"))
}

func TestParseLineOrder1(t *testing.T) {
	parser := NewEnglish()

	ok := parser.ParseLine("Copyright (c) 2020-2024 Jane Doe")
	assert.True(t, ok)
	assert.True(t, parser.Valid())
	assert.Equal(t, []int{2020, 2024}, parser.Years())
	assert.Equal(t, "Jane Doe", parser.Owner())
	assert.Equal(t, "Copyright (c) 2020-2024 Jane Doe", parser.Text())
}

func TestParseLineOrder2(t *testing.T) {
	parser := mustOrder2(t)

	ok := parser.ParseLine("Jane Doe Copyright (c) 2020 Acme")
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", parser.Owner())
	assert.Equal(t, []int{2020}, parser.Years())
}

func TestParseLineInvalid(t *testing.T) {
	parser := NewEnglish()

	assert.False(t, parser.ParseLine("no copyright here"))
	assert.False(t, parser.Valid())
}

func TestParseLineResetsState(t *testing.T) {
	parser := NewEnglish()

	assert.True(t, parser.ParseLine("Copyright (c) 2020 Jane Doe"))
	assert.False(t, parser.ParseLine("plain text"))
	assert.False(t, parser.Valid())
}

func TestParseLineDecoration(t *testing.T) {
	parser := NewEnglish()

	ok := parser.ParseLine("# Copyright (c) 2022 Randal Eike")
	assert.True(t, ok)
	assert.Equal(t, "Randal Eike", parser.Owner())

	rebuilt := parser.BuildNewMsg(2022, 2024, true)
	assert.Equal(t, "# Copyright (c) 2022-2024 Randal Eike", rebuilt)
}

func TestBuildNewMsg(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		createYear  int
		lastModYear int
		decorated   bool
		want        string
	}{
		{
			name:        "SingleYear",
			line:        "Copyright (c) 2020 Jane Doe",
			createYear:  2020,
			lastModYear: 0,
			decorated:   false,
			want:        "Copyright (c) 2020 Jane Doe",
		},
		{
			name:        "ExpandToRange",
			line:        "Copyright (c) 2020 Jane Doe",
			createYear:  2020,
			lastModYear: 2024,
			decorated:   false,
			want:        "Copyright (c) 2020-2024 Jane Doe",
		},
		{
			name:        "EqualYearsCollapse",
			line:        "Copyright (c) 2020-2022 Jane Doe",
			createYear:  2022,
			lastModYear: 2022,
			decorated:   false,
			want:        "Copyright (c) 2022 Jane Doe",
		},
		{
			name:        "KeepsLeadingDecoration",
			line:        " * Copyright (c) 2020 Jane Doe",
			createYear:  2020,
			lastModYear: 2021,
			decorated:   true,
			want:        " * Copyright (c) 2020-2021 Jane Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewEnglish()
			assert.True(t, parser.ParseLine(tt.line))
			assert.Equal(t, tt.want, parser.BuildNewMsg(tt.createYear, tt.lastModYear, tt.decorated))
		})
	}
}

func TestBuildNewMsgTrailingDecoration(t *testing.T) {
	parser := NewEnglish()

	line := " * Copyright (c) 2020 Jane Doe           *"
	assert.True(t, parser.ParseLine(line))

	// Rebuilding with the same years keeps the trailing marker at its
	// original column.
	assert.Equal(t, line, parser.BuildNewMsg(2020, 0, true))

	// Growing the year range pushes the marker right; alignment is best
	// effort but the marker survives with at least one separating space.
	grown := parser.BuildNewMsg(2020, 2024, true)
	assert.Equal(t, " * Copyright (c) 2020-2024 Jane Doe      *", grown)
}

func TestBuildNewMsgWithoutParse(t *testing.T) {
	parser := NewEnglish()
	assert.Equal(t, "", parser.BuildNewMsg(2020, 0, true))
}

func TestBuildNewMsgOrder2(t *testing.T) {
	parser := mustOrder2(t)

	assert.True(t, parser.ParseLine("Jane Doe Copyright (c) 2020"))
	assert.Equal(t, "Jane Doe Copyright (c) 2020-2024", parser.BuildNewMsg(2020, 2024, false))
}

func TestOwnerMutation(t *testing.T) {
	t.Run("AddOwner", func(t *testing.T) {
		parser := NewEnglish()
		assert.True(t, parser.ParseLine("Copyright (c) 2020 Jane Doe"))
		assert.True(t, parser.AddOwner("Acme Corp."))
		assert.Equal(t, "Jane Doe, Acme Corp.", parser.Owner())
	})

	t.Run("AddOwnerRequiresParse", func(t *testing.T) {
		parser := NewEnglish()
		assert.False(t, parser.AddOwner("Acme Corp."))
	})

	t.Run("ReplaceOwner", func(t *testing.T) {
		parser := NewEnglish()
		assert.True(t, parser.ParseLine("Copyright (c) 2020 Jane Doe"))
		assert.True(t, parser.ReplaceOwner("Acme Corp."))
		assert.Equal(t, "Copyright (c) 2020 Acme Corp.", parser.BuildNewMsg(2020, 0, false))
	})
}

func TestCreateMsg(t *testing.T) {
	parser := NewEnglish()

	assert.Equal(t, "Copyright (c) 2025 Randal Eike", parser.CreateMsg("Randal Eike", 2025, 0))
	assert.Equal(t, "Copyright (c) 2020-2025 Randal Eike", parser.CreateMsg("Randal Eike", 2020, 2025))
}

func TestNewRejectsBadPatterns(t *testing.T) {
	_, err := New(Order1, Config{MessagePattern: "("})
	assert.Error(t, err)
}
