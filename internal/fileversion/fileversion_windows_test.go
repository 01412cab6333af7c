//go:build windows

package fileversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSystemLibrary(t *testing.T) {
	for _, name := range []string{"kernel32.dll", "kernelbase.dll"} {
		fi, err := Get(name)
		require.NoError(t, err, name)
		assert.NotZero(t, fi.Major, name)
	}
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("winver-no-such-library.dll")
	assert.Error(t, err)
}
