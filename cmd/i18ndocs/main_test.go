package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIParsesBuildCommand(t *testing.T) {
	parser, err := kong.New(&CLI)
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"build", "-o", "public", "-c", "docs.yaml", "-v"})
	require.NoError(t, err)
	assert.Equal(t, "build", ctx.Command())
	assert.Equal(t, "public", CLI.Build.Output)
	assert.Equal(t, "docs.yaml", CLI.Config)
	assert.True(t, CLI.Verbose)
}

func TestCLIParsesServeCommand(t *testing.T) {
	parser, err := kong.New(&CLI)
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"serve", "-p", "9000", "--metrics"})
	require.NoError(t, err)
	assert.Equal(t, "serve", ctx.Command())
	assert.Equal(t, 9000, CLI.Serve.Port)
	assert.True(t, CLI.Serve.Metrics)
}

func TestCLIRejectsUnknownCommand(t *testing.T) {
	parser, err := kong.New(&CLI)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"deploy"})
	require.Error(t, err)
}
