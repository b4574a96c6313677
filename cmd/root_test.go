package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasSessionSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"birthdays", "cars", "library"} {
		require.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	for _, want := range []string{"config", "debug", "data-dir", "log-file"} {
		require.NotNil(t, flags.Lookup(want), "missing flag %q", want)
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	require.Equal(t, "1.2.3", rootCmd.Version)
}
