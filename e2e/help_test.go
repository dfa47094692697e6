//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Not through PTY since it exits quickly
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "browse")
	require.Contains(t, output, "serve")
	require.Contains(t, output, "--dir", "Help should list the data directory flag")
}

func TestProfilesCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	out, err := tf.RunCommand("profiles")
	require.NoError(t, err, out)
	require.Contains(t, out, "windows")
	require.Contains(t, out, "list_mac.json")

	out, err = tf.RunCommand("profiles", "print", "mac")
	require.NoError(t, err, out)
	require.Contains(t, out, "primary_source: list_mac.json")
}
