package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI against an isolated config dir so a developer's real
// ~/.config/glint never leaks into test outcomes.
func execute(t *testing.T, args ...string) (string, error) {
	return executeWithConfig(t, "", args...)
}

func executeWithConfig(t *testing.T, cfgYAML string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgPath := filepath.Join(dir, "config.yaml")
	if cfgYAML != "" {
		require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))
	}

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "glint")
	assert.Contains(t, out, "commit:")
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "particles-linked")
	assert.Contains(t, out, "buttons")
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, "show", "buttons", "--frames", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Save")
}

func TestShowUnknownStory(t *testing.T) {
	_, err := execute(t, "show", "does-not-exist")
	require.Error(t, err)
}

func TestShowParticleStoryRendersFrame(t *testing.T) {
	out, err := execute(t, "show", "particles-minimal", "--width", "40", "--height", "10", "--frames", "3")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestConfigFlagControlsParticles(t *testing.T) {
	// Zero particles: the frame renders, but no particle glyph appears.
	out, err := executeWithConfig(t, "particles:\n  count: 0\n",
		"show", "particles-minimal", "--width", "30", "--height", "8", "--frames", "2")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.NotContains(t, out, "●")
	assert.NotContains(t, out, "•")
	assert.NotContains(t, out, "·")
}
