//go:build windows

package winver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsSameInstance(t *testing.T) {
	const callers = 8

	var wg sync.WaitGroup
	results := make([]*OSInfo, callers)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Get()
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		require.Same(t, results[0], results[i])
	}
}

func TestSnapshotIsConsistent(t *testing.T) {
	info := Get()

	n := info.VersionNumber
	assert.Equal(t, majorMinorBuildToVersion(n.Major, n.Minor, n.Build), info.Version)
	assert.NotZero(t, info.Processors)
	assert.NotZero(t, info.AllocationGranularity)
}

func TestWindowsVersionMatchesSnapshot(t *testing.T) {
	assert.Equal(t, Get().Version, WindowsVersion())
}

func TestReadUBRNeverFails(t *testing.T) {
	// Absence of the value must come back as 0, not an error; on systems
	// that have it the read and the snapshot must agree.
	assert.Equal(t, readUBR(), Get().VersionNumber.Patch)
}

func TestProcessorModelNameMemoized(t *testing.T) {
	info := Get()
	first := info.ProcessorModelName()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, first, info.ProcessorModelName())
		}()
	}
	wg.Wait()
}

func TestKernel32VersionClassifies(t *testing.T) {
	v := Kernel32Version()
	n := Kernel32VersionNumber()

	require.NotZero(t, n.Major)
	assert.Equal(t, majorMinorBuildToVersion(n.Major, n.Minor, n.Build), v)

	// Second probe must come from the memoized result.
	assert.Equal(t, v, Kernel32Version())
	assert.Equal(t, n, Kernel32VersionNumber())
}
