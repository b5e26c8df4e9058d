package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"serve", "scrape", "search", "ask", "models"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "pagechat", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func TestScrapeCommand_Flags(t *testing.T) {
	require.NotNil(t, scrapeCmd.Flags().Lookup("max-length"))
	format := scrapeCmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "json", format.DefValue)
}

func TestSearchCommand_Flags(t *testing.T) {
	flag := searchCmd.Flags().ShorthandLookup("n")
	require.NotNil(t, flag)
	assert.Equal(t, "num", flag.Name)
}

func TestAskCommand_Args(t *testing.T) {
	require.NotNil(t, askCmd.Flags().Lookup("model"))
	assert.Error(t, askCmd.Args(askCmd, []string{"https://example.com"}))
	assert.NoError(t, askCmd.Args(askCmd, []string{"https://example.com", "what", "is", "this?"}))
}
