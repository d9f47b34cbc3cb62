package version

import (
	"fmt"
	"runtime"
)

// Build information. These variables are set via -ldflags during build.
var (
	Version   = "dev"     // Semantic version (e.g., "1.0.0")
	Commit    = "none"    // Git commit hash
	Date      = "unknown" // Build date
	GoVersion = runtime.Version()
)

// Info returns the multi-line version block printed by `cinemax version`.
func Info() string {
	return fmt.Sprintf("cinemax version %s\n  commit: %s\n  built: %s\n  go: %s",
		Version, Commit, Date, GoVersion)
}

// Summary returns a one-line version string for the UI footer.
func Summary() string {
	if Commit == "none" || Commit == "" {
		return fmt.Sprintf("cinemax %s", Version)
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("cinemax %s (%s)", Version, short)
}
