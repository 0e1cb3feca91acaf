package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFolder(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "a", "b")

	require.NoError(t, CreateFolder(nested, ""))
	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(base, "a"), ParentDir(nested))
}

func TestPanicIfNeeded(t *testing.T) {
	assert.NotPanics(t, func() { PanicIfNeeded(nil) })
	assert.PanicsWithError(t, "boom", func() { PanicIfNeeded(errors.New("boom")) })
}
