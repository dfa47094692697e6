//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigInit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	configPath := filepath.Join(workspace, "mirrorpick.toml")

	out, err := tf.RunCommand("config", "init", "--config", configPath)
	require.NoError(t, err, out)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err, "Config file should be created")
	require.Contains(t, string(content), "version = 1")
	require.Contains(t, string(content), "list_presets.json")

	// Refuses to overwrite without --force
	out, err = tf.RunCommand("config", "init", "--config", configPath)
	require.Error(t, err)
	require.Contains(t, out, "already exists")
}

func TestConfigPathUsesUserConfigDir(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	out, err := tf.RunCommand("config", "path")
	require.NoError(t, err, out)
	require.True(t, strings.HasPrefix(strings.TrimSpace(out), workspace), "Config should live under the isolated config dir")
}

func TestConfigSelectsPlatform(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	macList := `[{"id": 7, "filename": "Mac Editor", "category": "SOFTWARE", "os_min": "11", "size": "2 GB"}]`
	require.NoError(t, tf.WriteCatalog(WithList("list_mac.json", macList)))

	configPath := filepath.Join(workspace, "mirrorpick.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("version = 1\nplatform = \"mac\"\ndata_dir = \""+workspace+"\"\n"), 0644))

	require.NoError(t, tf.StartApp("browse", "--config", configPath))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Mac Editor"))
	require.True(t, tf.SeePlain("Big Sur"), "Mac profile should label the minimum OS")
}

func TestDotEnvOverridesPlatform(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	macList := `[{"id": 7, "filename": "Mac Editor", "category": "SOFTWARE", "os_min": "11", "size": "2 GB"}]`
	require.NoError(t, tf.WriteCatalog(WithList("list_mac.json", macList)))
	require.NoError(t, os.WriteFile(filepath.Join(workspace, ".env"), []byte("MIRRORPICK_PLATFORM=mac\n"), 0644))

	require.NoError(t, tf.StartApp("browse"))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Mac Editor"))
}
