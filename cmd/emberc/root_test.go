package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSourceFlags(t *testing.T) {
	t.Helper()
	require.NoError(t, rootCmd.Flags().Set("code", ""))
	require.NoError(t, rootCmd.Flags().Set("stdin", "false"))
	rootCmd.Flags().Lookup("code").Changed = false
	viper.Set("stdin", false)
	viper.Set("code", "")
}

func TestGetSourceFromCodeFlag(t *testing.T) {
	resetSourceFlags(t)
	defer resetSourceFlags(t)

	require.NoError(t, rootCmd.Flags().Set("code", "var x = 1"))
	rootCmd.Flags().Lookup("code").Changed = true
	viper.Set("code", "var x = 1")

	source, err := getSource(rootCmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "var x = 1", source)
}

func TestGetSourceNoInputIsError(t *testing.T) {
	resetSourceFlags(t)
	defer resetSourceFlags(t)

	_, err := getSource(rootCmd, nil)
	assert.Error(t, err)
}

func TestGetSourceConflictingInputsIsError(t *testing.T) {
	resetSourceFlags(t)
	defer resetSourceFlags(t)

	require.NoError(t, rootCmd.Flags().Set("code", "1"))
	rootCmd.Flags().Lookup("code").Changed = true
	viper.Set("code", "1")
	viper.Set("stdin", true)

	_, err := getSource(rootCmd, []string{"somefile.ember"})
	assert.Error(t, err)
}
