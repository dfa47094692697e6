//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFiltersLive(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithCatalog())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("sound"))
	require.True(t, tf.SeePlain("Search: sound"))

	// Select-all only covers what the filter left visible
	tf.Confirm()
	tf.SendKeys(KeyAll)
	require.True(t, tf.SeePlain("1 selected · 300 MB"), "Search should hide non-matching entries")
}

func TestSearchIgnoresCategory(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithCatalog())
	require.True(t, tf.Ready())

	// Color Plugin lives in the Plugins tab but matches from Software
	require.NoError(t, tf.Search("color"))
	require.True(t, tf.SeePlain("Color Plugin"))
}

func TestSearchNoMatches(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithCatalog())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("zzz"))
	require.True(t, tf.SeePlain(`No entries match "zzz"`))
}

func TestSearchSubmitKeepsQuery(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithCatalog())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("editor"))
	tf.Confirm()

	// Back in normal mode, space selects the filtered entry
	tf.Select()
	require.True(t, tf.SeePlain("1 selected · 1.2 GB"))
	require.True(t, tf.SeePlain("[Search: editor]"))
}
