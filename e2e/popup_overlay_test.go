//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManifestOverlay(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithCatalog())
	require.True(t, tf.Ready())

	tf.Select()
	tf.Confirm()

	require.True(t, tf.SeePlain("Download manifest"), "Confirm should open the manifest")
	require.True(t, tf.SeePlain("https://mirror-a.example/editor"))
	require.True(t, tf.SeePlain("https://mirror-b.example/editor"))
	require.True(t, tf.SeePlain("Archive password: EDITINGSTUFF"))

	// Closing returns to the browser with the selection intact
	mark := tf.Mark()
	tf.Escape()
	require.True(t, tf.SeePlainSince(mark, "1 selected"))
}

func TestManifestLegacyLink(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithCatalog())
	require.True(t, tf.Ready())

	tf.SendKeys("2")
	require.True(t, tf.SeePlain("Color Plugin"))
	tf.Select()
	tf.Confirm()

	require.True(t, tf.SeePlain("https://legacy.example/color"))
}
