package main

import (
	"context"
	"testing"

	"github.com/Yaghost/FitGoal/internal/config"
	"github.com/Yaghost/FitGoal/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["ensure-indexes"])

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	flag := serveCmd.Flags().Lookup("in-memory")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestNewFileStorageDisabledIsNilInterface(t *testing.T) {
	fs, err := newFileStorage(context.Background(), config.S3Config{}, logger.NewNop())
	require.NoError(t, err)
	assert.True(t, fs == nil)
}
