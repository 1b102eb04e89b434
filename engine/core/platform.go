package core

import "runtime"

// Platform is the OS family, used where native conventions differ.
type Platform int

const (
	PlatformLinux Platform = iota // also the BSDs
	PlatformWindows
	PlatformMacOS
)

// CurrentPlatform maps runtime.GOOS to a Platform.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "darwin", "ios":
		return PlatformMacOS
	default:
		return PlatformLinux
	}
}

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformMacOS:
		return "macos"
	default:
		return "linux"
	}
}
