//go:build windows

package winver

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/winver/go-winver/internal/fileversion"
)

var (
	k32Once    sync.Once
	k32Number  VersionNumber
	k32Version Version
)

// Kernel32Version classifies the version stamped on kernel32.dll. When the
// process runs in compatibility mode for a down-level Windows, RtlGetVersion
// reports the shimmed version while the file stamp still carries the real
// one. Computed at most once per process.
func Kernel32Version() Version {
	kernel32Probe()
	return k32Version
}

// Kernel32VersionNumber returns the raw four-component stamp behind
// Kernel32Version.
func Kernel32VersionNumber() VersionNumber {
	kernel32Probe()
	return k32Number
}

func kernel32Probe() {
	k32Once.Do(func() {
		fv, err := fileversion.Get("kernel32.dll")
		if err != nil {
			// On some systems kernel32.dll is corrupted or otherwise
			// not in a state to report version info; kernelbase.dll
			// carries the same stamp.
			fv, err = fileversion.Get("kernelbase.dll")
		}
		if err != nil {
			panic(errors.Wrap(err, "winver: no readable version stamp on kernel32.dll or kernelbase.dll"))
		}

		k32Number = VersionNumber{
			Major: fv.Major,
			Minor: fv.Minor,
			Build: fv.Build,
			Patch: fv.Patch,
		}
		k32Version = majorMinorBuildToVersion(fv.Major, fv.Minor, fv.Build)
	})
}
