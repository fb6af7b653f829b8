package util

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBinary_OnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix test")
	}

	// sh is present on every unix system
	path, err := FindBinary("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestFindBinary_NotFound(t *testing.T) {
	_, err := FindBinary("definitely-not-a-real-binary-name")
	assert.Error(t, err)
}

func TestIsExecutable(t *testing.T) {
	dir := t.TempDir()

	exe := filepath.Join(dir, "runnable")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	assert.True(t, isExecutable(exe))

	plain := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0o644))
	assert.False(t, isExecutable(plain))

	assert.False(t, isExecutable(dir))
	assert.False(t, isExecutable(filepath.Join(dir, "missing")))
}
