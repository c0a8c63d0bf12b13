//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuitKeys(t *testing.T) {
	quit := map[string]func(*TUITestFramework) error{
		"q":      (*TUITestFramework).Quit,
		"ctrl+c": (*TUITestFramework).SendCtrlC,
	}
	for name, send := range quit {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tf := NewTUITest(t)
			defer tf.Cleanup()

			workspace, err := tf.CreateTestWorkspace()
			require.NoError(t, err)
			require.NoError(t, tf.WriteFiles(sources))

			require.NoError(t, tf.StartApp("todo", workspace))
			require.True(t, tf.Ready())

			require.NoError(t, send(tf))
			exited, exitErr := tf.WaitExit(3 * time.Second)
			require.True(t, exited, "application should exit")
			assert.NoError(t, exitErr)
		})
	}
}

func TestEditorNotConfigured(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.WriteFiles(sources))

	require.NoError(t, tf.StartApp("todo", workspace))
	require.True(t, tf.Ready())

	require.NoError(t, tf.Choose("1"))
	require.NoError(t, tf.Choose("1"))

	exited, exitErr := tf.WaitExit(3 * time.Second)
	require.True(t, exited)
	assert.NoError(t, exitErr)
	assert.True(t, tf.SeePlain("The $EDITOR environment variable is not set."))
}

func TestNoMatch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.WriteFiles(sources))

	require.NoError(t, tf.StartApp("search", "nothing-like-this", workspace))
	require.True(t, tf.SeePlain("No match found"))

	exited, exitErr := tf.WaitExit(3 * time.Second)
	require.True(t, exited)
	assert.NoError(t, exitErr)
}
