package copyright

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewMsgUnchanged(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		createYear  int
		lastModYear int
	}{
		{
			name:       "SingleYearMatch",
			line:       "Copyright (c) 2020 Jane Doe",
			createYear: 2020,
		},
		{
			name:        "RangeMatch",
			line:        "Copyright (c) 2020-2024 Jane Doe",
			createYear:  2020,
			lastModYear: 2024,
		},
		{
			name:        "SameYearNotMulti",
			line:        "Copyright (c) 2020 Jane Doe",
			createYear:  2020,
			lastModYear: 2020,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(nil)
			assert.True(t, gen.Parser().ParseLine(tt.line))

			changed, text := gen.NewMsg(tt.createYear, tt.lastModYear)
			assert.False(t, changed)
			assert.Equal(t, tt.line, text)
		})
	}
}

func TestNewMsgRewrites(t *testing.T) {
	gen := NewGenerator(nil)
	assert.True(t, gen.Parser().ParseLine("Copyright (c) 2020 Jane Doe"))

	changed, text := gen.NewMsg(2020, 2024)
	assert.True(t, changed)
	assert.Equal(t, "Copyright (c) 2020-2024 Jane Doe", text)
}

func TestNewMsgMonotonicYearFloor(t *testing.T) {
	gen := NewGenerator(nil)
	assert.True(t, gen.Parser().ParseLine("Copyright (c) 2015 Jane Doe"))

	// A later creation year must not move the recorded start forward.
	changed, text := gen.NewMsg(2019, 0)
	assert.False(t, changed)
	assert.Equal(t, "Copyright (c) 2015 Jane Doe", text)

	// Even combined with a modification year the start stays at 2015.
	changed, text = gen.NewMsg(2019, 2024)
	assert.True(t, changed)
	assert.Equal(t, "Copyright (c) 2015-2024 Jane Doe", text)
}

func TestNewMsgIdempotent(t *testing.T) {
	gen := NewGenerator(nil)
	assert.True(t, gen.Parser().ParseLine("Copyright (c) 2020 Jane Doe"))

	changed, text := gen.NewMsg(2020, 2024)
	assert.True(t, changed)

	// The rewrite is absorbed, so repeating the call is a no-op.
	changed, again := gen.NewMsg(2020, 2024)
	assert.False(t, changed)
	assert.Equal(t, text, again)
}

func TestNewMsgWithoutParse(t *testing.T) {
	gen := NewGenerator(nil)

	changed, text := gen.NewMsg(2025, 0)
	assert.True(t, changed)
	assert.Equal(t, "Copyright (c) 2025 None", text)
}

func TestCreateTransition(t *testing.T) {
	gen := NewGenerator(nil)
	assert.True(t, gen.Parser().ParseLine("Copyright (c) 2015 Jane Doe"))

	changed, original, next := gen.CreateTransition(2015, 2020, 2024, "Acme Corp.")
	assert.True(t, changed)
	assert.Equal(t, "Copyright (c) 2015-2020 Jane Doe", original)
	assert.Equal(t, "Copyright (c) 2020-2024 Acme Corp.", next)
}

func TestAddCopyrightOwner(t *testing.T) {
	t.Run("Appends", func(t *testing.T) {
		gen := NewGenerator(nil)
		assert.True(t, gen.Parser().ParseLine("Copyright (c) 2020 Jane Doe"))

		ok, text := gen.AddCopyrightOwner(2020, 2024, "Acme Corp.")
		assert.True(t, ok)
		assert.Equal(t, "Copyright (c) 2020-2024 Jane Doe, Acme Corp.", text)
	})

	t.Run("RequiresParse", func(t *testing.T) {
		gen := NewGenerator(nil)
		ok, text := gen.AddCopyrightOwner(2020, 2024, "Acme Corp.")
		assert.False(t, ok)
		assert.Equal(t, "", text)
	})
}

func TestCreateNew(t *testing.T) {
	gen := NewGenerator(nil)
	assert.Equal(t, "Copyright (c) 2021-2025 Randal Eike", gen.CreateNew("Randal Eike", 2021, 2025))
}
