//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWatchReloadsFile(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	path, err := tf.WriteItems("todo.txt", "write tests", "fix bug", "ship")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--watch", path))
	require.True(t, tf.Ready(), "Should draw the list")
	require.True(t, tf.SeePlain("1/3"))

	_, err = tf.WriteItems("todo.txt", "write tests", "fix bug", "ship", "celebrate")
	require.NoError(t, err)
	require.True(t, tf.SeePlain("reloaded 4 items"))
	require.True(t, tf.SeePlain("celebrate"))
}
