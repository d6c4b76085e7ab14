package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genesis/pkg/compiler"
)

func TestSessionSharesNamesAcrossLines(t *testing.T) {
	var out bytes.Buffer
	s, err := newSession(&out, logr.Discard(), compiler.WithSkipWhitespace())
	require.NoError(t, err)

	require.NoError(t, s.handle("while x"))
	require.NoError(t, s.handle("x + y"))

	// if, for, while, x, y
	assert.Equal(t, 5, s.names.Count())
	assert.Contains(t, out.String(), "while (keyword)")
	assert.Contains(t, out.String(), "'+'")
}

func TestSessionCommands(t *testing.T) {
	var out bytes.Buffer
	s, err := newSession(&out, logr.Discard())
	require.NoError(t, err)

	require.NoError(t, s.handle(":count"))
	assert.Equal(t, "3 names\n", out.String())

	out.Reset()
	require.NoError(t, s.handle(":names"))
	assert.Equal(t, "#1    if\n#2    for\n#3    while\n", out.String())

	assert.ErrorIs(t, s.handle(":quit"), errQuit)
}

func TestSessionReportsOverflow(t *testing.T) {
	var out bytes.Buffer
	s, err := newSession(&out, logr.Discard())
	require.NoError(t, err)

	require.NoError(t, s.handle("99999999999999999999"))
	assert.Contains(t, out.String(), "error:")
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	s, err := newSession(&out, logr.Discard(), compiler.WithSkipWhitespace())
	require.NoError(t, err)

	require.NoError(t, s.run(strings.NewReader("a b\n:quit\nnever lexed\n")))
	assert.Equal(t, 5, s.names.Count())
	assert.NotContains(t, out.String(), "never")
}
