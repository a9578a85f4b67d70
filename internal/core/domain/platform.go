package domain

import "go.trai.ch/zerr"

// Platform identifies the operating system an environment file was exported on.
type Platform string

const (
	// PlatformWindows marks an environment exported on Windows.
	PlatformWindows Platform = "Windows"

	// PlatformLinux marks an environment exported on Linux.
	PlatformLinux Platform = "Linux"

	// PlatformMacOS marks an environment exported on macOS.
	PlatformMacOS Platform = "MacOS"
)

// Platforms returns all recognized platforms in display order.
func Platforms() []Platform {
	return []Platform{PlatformWindows, PlatformLinux, PlatformMacOS}
}

// ParsePlatform converts a user-supplied platform name into a Platform.
// Matching is exact: lowercase or alternate spellings are rejected.
func ParsePlatform(name string) (Platform, error) {
	for _, p := range Platforms() {
		if name == string(p) {
			return p, nil
		}
	}
	return "", zerr.With(ErrUnknownPlatform, "platform", name)
}

// MarkerName returns the value Python's platform.system() reports on this
// platform, which is what PEP 508 platform_system markers compare against.
func (p Platform) MarkerName() string {
	if p == PlatformMacOS {
		return "Darwin"
	}
	return string(p)
}

// MarkerClause returns the PEP 508 marker clause restricting a pip
// requirement to this platform.
func (p Platform) MarkerClause() string {
	return `platform_system == "` + p.MarkerName() + `"`
}

func (p Platform) String() string {
	return string(p)
}
