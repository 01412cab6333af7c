// Package winver reports the version identity of the running Windows
// system — release generation, edition, processor architecture and WOW64
// status — as a single process-wide immutable snapshot. The snapshot is
// built lazily on first access and shared for the process lifetime.
package winver

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Version identifies a Windows release generation. Server releases that
// share a kernel with a desktop release share its generation (Server 2008
// with Vista, Server 2008 R2 with 7, Server 2012 with 8, and so on).
type Version int

// Release generations, ordered oldest to newest.
const (
	// VersionPreXP covers anything older than 5.1.
	VersionPreXP Version = iota
	VersionXP
	// VersionServer2003 also covers XP Pro x64, Home Server, and
	// Server 2003 R2.
	VersionServer2003
	VersionVista
	VersionWin7
	VersionWin8
	VersionWin81
	VersionWin10    // builds below 10586
	VersionWin10TH2 // builds 10586..14392
	VersionWin10RS1 // builds 14393..15062
	VersionWin10RS2 // builds 15063..16298
	VersionWin10RS3 // builds 16299..17133
	VersionWin10RS4 // builds 17134 and up
	// VersionWinLast marks a system newer than any release this package
	// knows how to classify.
	VersionWinLast
)

var _ fmt.Stringer = Version(0)

func (v Version) String() string {
	switch v {
	case VersionPreXP:
		return "pre-XP Windows"
	case VersionXP:
		return "Windows XP"
	case VersionServer2003:
		return "Windows Server 2003"
	case VersionVista:
		return "Windows Vista"
	case VersionWin7:
		return "Windows 7"
	case VersionWin8:
		return "Windows 8"
	case VersionWin81:
		return "Windows 8.1"
	case VersionWin10:
		return "Windows 10"
	case VersionWin10TH2:
		return "Windows 10 TH2"
	case VersionWin10RS1:
		return "Windows 10 RS1"
	case VersionWin10RS2:
		return "Windows 10 RS2"
	case VersionWin10RS3:
		return "Windows 10 RS3"
	case VersionWin10RS4:
		return "Windows 10 RS4"
	case VersionWinLast:
		return "unknown newer Windows"
	}
	return "unknown Windows"
}

// VersionNumber is the full four-component version of the running system.
// Patch is the UBR revision counter; it is 0 when the counter cannot be
// read, which is not an error.
type VersionNumber struct {
	Major uint32
	Minor uint32
	Build uint32
	Patch uint32
}

var _ fmt.Stringer = VersionNumber{}

// String returns the version formatted the way `cmd /c ver` prints it,
// e.g. "10.0.17763.864".
func (v VersionNumber) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Patch)
}

// Compare compares the version to another, component by component.
// The result is 0 if they are equal, -1 if v is lower, and +1 otherwise.
func (v VersionNumber) Compare(other VersionNumber) int {
	cmp := func(a, b uint32) int {
		if a > b {
			return 1
		} else if a < b {
			return -1
		}
		return 0
	}

	if c := cmp(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := cmp(v.Build, other.Build); c != 0 {
		return c
	}
	return cmp(v.Patch, other.Patch)
}

// ServicePack describes the installed service pack, if any.
type ServicePack struct {
	Major uint16
	Minor uint16
	Text  string
}

// Suite identifies the licensing tier of the install.
type Suite int

const (
	SuiteHome Suite = iota
	SuiteProfessional
	SuiteEnterprise
	SuiteEducation
	SuiteServer
)

var _ fmt.Stringer = Suite(0)

func (s Suite) String() string {
	switch s {
	case SuiteHome:
		return "Home"
	case SuiteProfessional:
		return "Professional"
	case SuiteEnterprise:
		return "Enterprise"
	case SuiteEducation:
		return "Education"
	case SuiteServer:
		return "Server"
	}
	return "unknown"
}

// Architecture is the native processor architecture of the system, which
// may differ from that of the current process when running under WOW64.
type Architecture int

const (
	ArchOther Architecture = iota
	ArchX86
	ArchX64
	ArchIA64
)

var _ fmt.Stringer = Architecture(0)

func (a Architecture) String() string {
	switch a {
	case ArchX86:
		return "x86"
	case ArchX64:
		return "x64"
	case ArchIA64:
		return "ia64"
	}
	return "other"
}

// WOW64Status reports whether a process runs 32-bit under a 64-bit kernel.
type WOW64Status int

const (
	WOW64Disabled WOW64Status = iota
	WOW64Enabled
	WOW64Unknown
)

var _ fmt.Stringer = WOW64Status(0)

func (w WOW64Status) String() string {
	switch w {
	case WOW64Disabled:
		return "disabled"
	case WOW64Enabled:
		return "enabled"
	}
	return "unknown"
}

// Public build numbers of successive Windows 10 feature updates, used as
// half-open classification thresholds.
const (
	buildTH2 = 10586
	buildRS1 = 14393
	buildRS2 = 15063
	buildRS3 = 16299
	buildRS4 = 17134
)

// majorMinorBuildToVersion maps a raw major.minor.build triple to a release
// generation. First matching rule wins.
func majorMinorBuildToVersion(major, minor, build uint32) Version {
	switch {
	case major == 5 && minor > 0:
		// Treat XP Pro x64, Home Server, and Server 2003 R2 as Server 2003.
		if minor == 1 {
			return VersionXP
		}
		return VersionServer2003
	case major == 6:
		switch minor {
		case 0:
			// Server 2008 also reports 6.0.
			return VersionVista
		case 1:
			return VersionWin7
		case 2:
			return VersionWin8
		case 3:
			return VersionWin81
		default:
			logrus.WithFields(logrus.Fields{
				"major": major,
				"minor": minor,
				"build": build,
			}).Error("unexpected minor version under 6.x, classifying as 8.1")
			return VersionWin81
		}
	case major == 10:
		switch {
		case build < buildTH2:
			return VersionWin10
		case build < buildRS1:
			return VersionWin10TH2
		case build < buildRS2:
			return VersionWin10RS1
		case build < buildRS3:
			return VersionWin10RS2
		case build < buildRS4:
			return VersionWin10RS3
		default:
			return VersionWin10RS4
		}
	case major > 10:
		logrus.WithFields(logrus.Fields{
			"major": major,
			"minor": minor,
			"build": build,
		}).Error("major version newer than any known release")
		return VersionWinLast
	default:
		// major < 5, or 5.0.
		return VersionPreXP
	}
}

// Product-type codes returned by GetProductInfo, from winnt.h. Only defined
// for the 6.x and 10 generations.
const (
	productUltimate                   = 0x01
	productHomeBasic                  = 0x02
	productHomePremium                = 0x03
	productEnterprise                 = 0x04
	productBusiness                   = 0x06
	productStandardServer             = 0x07
	productDatacenterServer           = 0x08
	productSmallBusinessServer        = 0x09
	productEnterpriseServer           = 0x0a
	productStarter                    = 0x0b
	productDatacenterServerCore       = 0x0c
	productStandardServerCore         = 0x0d
	productEnterpriseServerCore       = 0x0e
	productEnterpriseServerIA64       = 0x0f
	productBusinessN                  = 0x10
	productWebServer                  = 0x11
	productClusterServer              = 0x12
	productSmallBusinessServerPremium = 0x19
	productEnterpriseN                = 0x1b
	productProfessional               = 0x30
	productEnterpriseE                = 0x46
	productEnterpriseEvaluation       = 0x48
	productEnterpriseNEvaluation      = 0x54
	productEducation                  = 0x79
	productEducationN                 = 0x7a
	productEnterpriseS                = 0x7d
	productEnterpriseSN               = 0x7e
	productEnterpriseSEvaluation      = 0x81
	productEnterpriseSNEvaluation     = 0x82
)

// NT product type and suite-mask bits from OSVERSIONINFOEX, used by the
// legacy (5.x) branches.
const (
	verNTWorkstation byte = 0x01

	verSuitePersonal uint16 = 0x0200
	verSuiteWHServer uint16 = 0x8000
)

// Raw processor architecture codes from SYSTEM_INFO.
const (
	archCodeIntel uint16 = 0
	archCodeIA64  uint16 = 6
	archCodeAMD64 uint16 = 9
)

func archFromCode(code uint16) Architecture {
	switch code {
	case archCodeIntel:
		return ArchX86
	case archCodeAMD64:
		return ArchX64
	case archCodeIA64:
		return ArchIA64
	default:
		return ArchOther
	}
}

// suiteFor derives the licensing tier of the install. osType is the
// GetProductInfo code, meaningful only on 6.x and 10 (0 when unavailable);
// the legacy generations classify from the NT product type and suite mask
// instead.
func suiteFor(major, minor, osType uint32, productType byte, suiteMask uint16, arch Architecture) Suite {
	switch {
	case major == 6 || major == 10:
		switch osType {
		case productClusterServer, productDatacenterServer, productDatacenterServerCore,
			productEnterpriseServer, productEnterpriseServerCore, productEnterpriseServerIA64,
			productSmallBusinessServer, productSmallBusinessServerPremium,
			productStandardServer, productStandardServerCore, productWebServer:
			return SuiteServer
		case productProfessional, productUltimate:
			return SuiteProfessional
		case productEnterprise, productEnterpriseE, productEnterpriseEvaluation,
			productEnterpriseN, productEnterpriseNEvaluation,
			productEnterpriseS, productEnterpriseSN,
			productEnterpriseSEvaluation, productEnterpriseSNEvaluation,
			productBusiness, productBusinessN:
			return SuiteEnterprise
		case productEducation, productEducationN:
			return SuiteEducation
		default:
			// Home Basic, Home Premium, Starter, and every code we
			// don't recognize.
			return SuiteHome
		}
	case major == 5 && minor == 2:
		if productType == verNTWorkstation && arch == ArchX64 {
			// XP Pro x64.
			return SuiteProfessional
		}
		if suiteMask&verSuiteWHServer != 0 {
			return SuiteHome
		}
		return SuiteServer
	case major == 5 && minor == 1:
		if suiteMask&verSuitePersonal != 0 {
			return SuiteHome
		}
		return SuiteProfessional
	default:
		// Pre-XP; no finer distinction is defined for that era.
		return SuiteHome
	}
}
