package generator

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewEula(t *testing.T) {
	eula, err := NewEula("")
	assert.NoError(t, err)
	assert.Equal(t, "MIT License", eula.FormatName())

	text := strings.Join(eula.FormatText(), "\n")
	assert.Contains(t, text, "Permission is hereby granted, free of charge")
	assert.Contains(t, text, `THE SOFTWARE IS PROVIDED "AS IS"`)

	_, err = NewEula("MIT_open")
	assert.NoError(t, err)

	_, err = NewEula("GPL9")
	assert.Error(t, err)
}

func TestEulaNames(t *testing.T) {
	assert.SliceContains(t, EulaNames(), "MIT_open")
}
