package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/alsa-audiotool/board"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"cards", "defaults", "config", "save", "restore", "monitor", "controls"})

	for _, flag := range []string{"config", "card", "profile", "profiles-dir", "log-level", "log-format", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
	assert.Equal(t, "D", root.PersistentFlags().Lookup("card").Shorthand)
}

func TestConfigArgs(t *testing.T) {
	cmd := newConfigCmd(&app{})

	require.NoError(t, cmd.Args(cmd, nil))
	require.NoError(t, cmd.Args(cmd, []string{"play", "Multimedia", "Headset", "1"}))
	assert.ErrorIs(t, cmd.Args(cmd, []string{"play", "Multimedia"}), board.ErrInvalidArgument)
}

func TestParsePathArgs(t *testing.T) {
	req, err := parsePathArgs([]string{"cap", "Voice", "DMic", "enable"})
	require.NoError(t, err)
	assert.Equal(t, board.Capture, req.dir)
	assert.Equal(t, "Voice", req.frontend)
	assert.Equal(t, "DMic", req.backend)
	assert.True(t, req.enable)

	_, err = parsePathArgs([]string{"foo", "Voice", "DMic", "1"})
	assert.ErrorIs(t, err, board.ErrInvalidArgument)

	_, err = parsePathArgs([]string{"play", "Voice", "Headset", "maybe"})
	assert.ErrorIs(t, err, board.ErrInvalidArgument)
}

func TestConfigValidatesBeforeOpen(t *testing.T) {
	cmd := newConfigCmd(&app{})

	// A bad direction fails before the card lookup, which would need a config.
	err := cmd.RunE(cmd, []string{"foo", "Multimedia", "Headset", "1"})
	assert.ErrorIs(t, err, board.ErrInvalidArgument)
	assert.Equal(t, 2, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(fmt.Errorf("wrapped: %w", board.ErrInvalidArgument)))
	assert.Equal(t, 1, exitCode(board.ErrNoProfile))
	assert.Equal(t, "CAPTURE", directionTitle(board.Capture))
	assert.Equal(t, "PLAYBACK", directionTitle(board.Playback))
}
