//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithCatalog(), "Failed to start app")
	require.True(t, tf.Ready(), "Catalog should load")
	require.True(t, tf.SeePlain("Windows Downloads"), "Should show profile title")

	tf.Quit()
	if tf.WaitForExit(1500 * time.Millisecond) {
		return
	}

	t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
	tf.SendCtrlC()
	if !tf.WaitForExit(750 * time.Millisecond) {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("Application did not exit within total timeout")
	}
}

func TestQuitIgnoredWhileSearching(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithCatalog())
	require.True(t, tf.Ready())

	// q is typed into the search box, not treated as quit
	require.NoError(t, tf.Search("q"))
	require.True(t, tf.SeePlain("Search: q"))
	require.False(t, tf.WaitForExit(500*time.Millisecond), "App should keep running")
}

func TestMissingListShowsError(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("browse", "-d", workspace))
	require.True(t, tf.SeePlain("Failed to load catalog"), "Missing list should surface as an error")
}
