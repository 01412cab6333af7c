//go:build windows

package winver

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// OSInfo is the process-wide snapshot of the running system's identity.
// It is immutable once built: every caller of Get observes the same
// instance for the lifetime of the process.
type OSInfo struct {
	VersionNumber VersionNumber
	ServicePack   ServicePack
	Version       Version
	Suite         Suite
	Architecture  Architecture

	Processors            uint32
	AllocationGranularity uint32
	WOW64                 WOW64Status

	procNameOnce sync.Once
	procName     string
}

var (
	info     *OSInfo
	infoOnce sync.Once
)

// Get returns the snapshot, building it on first call. Concurrent first
// callers all receive the same fully built instance.
func Get() *OSInfo {
	infoOnce.Do(func() {
		info = newOSInfo()
	})
	return info
}

// WindowsVersion returns the release generation of the running system.
func WindowsVersion() Version {
	return Get().Version
}

var (
	kernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procGetProductInfo = kernel32.NewProc("GetProductInfo")
	procIsWow64Process = kernel32.NewProc("IsWow64Process")
)

func newOSInfo() *OSInfo {
	vi := windows.RtlGetVersion()
	if vi == nil {
		// RtlGetVersion cannot fail on a supported system. Refuse to
		// publish a partial snapshot if it somehow does.
		panic("winver: RtlGetVersion returned nil")
	}

	var si windows.SystemInfo
	windows.GetNativeSystemInfo(&si)

	arch := archFromCode(si.ProcessorArchitecture)
	osType := productInfo(vi.MajorVersion, vi.MinorVersion)

	return &OSInfo{
		VersionNumber: VersionNumber{
			Major: vi.MajorVersion,
			Minor: vi.MinorVersion,
			Build: vi.BuildNumber,
			Patch: readUBR(),
		},
		ServicePack: ServicePack{
			Major: vi.ServicePackMajor,
			Minor: vi.ServicePackMinor,
			Text:  windows.UTF16ToString(vi.CsdVersion[:]),
		},
		Version:               majorMinorBuildToVersion(vi.MajorVersion, vi.MinorVersion, vi.BuildNumber),
		Suite:                 suiteFor(vi.MajorVersion, vi.MinorVersion, osType, vi.ProductType, vi.SuiteMask, arch),
		Architecture:          arch,
		Processors:            si.NumberOfProcessors,
		AllocationGranularity: si.AllocationGranularity,
		WOW64:                 wow64StatusForProcess(windows.CurrentProcess()),
	}
}

// readUBR returns the "UBR" revision counter from the registry. Introduced
// in Windows 10, this undocumented value acts as a patch number beyond
// major.minor.build. Returns 0 when the value does not exist or cannot be
// read; absence is never an error.
func readUBR() uint32 {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return 0
	}
	defer k.Close()

	ubr, _, err := k.GetIntegerValue("UBR")
	if err != nil {
		return 0
	}
	return uint32(ubr)
}

// productInfo returns the GetProductInfo code for the running system, or 0
// when the entry point is unavailable (pre-Vista) or the call fails. The
// code is only defined for the 6.x and 10 generations.
func productInfo(major, minor uint32) uint32 {
	if major != 6 && major != 10 {
		return 0
	}
	if err := procGetProductInfo.Find(); err != nil {
		return 0
	}

	var osType uint32
	r1, _, _ := procGetProductInfo.Call(
		uintptr(major), uintptr(minor), 0, 0,
		uintptr(unsafe.Pointer(&osType)))
	if r1 == 0 {
		return 0
	}
	return osType
}

// wow64StatusForProcess reports whether the given process runs under the
// 32-on-64 compatibility layer. A kernel32 without IsWow64Process cannot
// be running WOW64 at all.
func wow64StatusForProcess(h windows.Handle) WOW64Status {
	if err := procIsWow64Process.Find(); err != nil {
		return WOW64Disabled
	}

	var wow64 int32
	r1, _, _ := procIsWow64Process.Call(uintptr(h), uintptr(unsafe.Pointer(&wow64)))
	if r1 == 0 {
		return WOW64Unknown
	}
	if wow64 != 0 {
		return WOW64Enabled
	}
	return WOW64Disabled
}

// ProcessorModelName returns the CPU model string from the registry. It is
// read on first call and memoized for the snapshot's lifetime; a failed
// read memoizes the empty string.
func (o *OSInfo) ProcessorModelName() string {
	o.procNameOnce.Do(func() {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE,
			`HARDWARE\DESCRIPTION\System\CentralProcessor\0`, registry.QUERY_VALUE)
		if err != nil {
			return
		}
		defer k.Close()

		name, _, err := k.GetStringValue("ProcessorNameString")
		if err != nil {
			return
		}
		o.procName = name
	})
	return o.procName
}
