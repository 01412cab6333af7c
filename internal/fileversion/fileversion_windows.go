//go:build windows

// Package fileversion reads the fixed version stamp embedded in a PE
// file's VS_VERSIONINFO resource.
package fileversion

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// Info is a four-component file version stamp.
type Info struct {
	Major uint32
	Minor uint32
	Build uint32
	Patch uint32
}

// Get reads the fixed file version of the named file. Bare names are
// resolved the way LoadLibrary resolves them, so system DLLs can be probed
// without a path.
func Get(name string) (Info, error) {
	size, err := windows.GetFileVersionInfoSize(name, nil)
	if err != nil {
		return Info{}, errors.Wrapf(err, "failed calling GetFileVersionInfoSize(%s)", name)
	}
	if size == 0 {
		return Info{}, errors.Errorf("no version resource in %s", name)
	}

	block := make([]byte, size)
	if err := windows.GetFileVersionInfo(name, 0, size, unsafe.Pointer(&block[0])); err != nil {
		return Info{}, errors.Wrapf(err, "failed calling GetFileVersionInfo(%s)", name)
	}

	var fixed *windows.VS_FIXEDFILEINFO
	var fixedLen uint32
	if err := windows.VerQueryValue(unsafe.Pointer(&block[0]), `\`, unsafe.Pointer(&fixed), &fixedLen); err != nil {
		return Info{}, errors.Wrapf(err, "failed calling VerQueryValue(%s)", name)
	}
	if fixed == nil || fixedLen == 0 {
		return Info{}, errors.Errorf("empty VS_FIXEDFILEINFO in %s", name)
	}

	return Info{
		Major: fixed.FileVersionMS >> 16,
		Minor: fixed.FileVersionMS & 0xffff,
		Build: fixed.FileVersionLS >> 16,
		Patch: fixed.FileVersionLS & 0xffff,
	}, nil
}
