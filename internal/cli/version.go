// Package cli holds the small pieces shared by every cmd/sigil subcommand:
// version metadata, the --require-version compatibility gate, and the
// check/run pipeline with its diagnostics rendering. Command
// wiring itself (flags, usage text, subcommand tree) is cobra's job, so the
// teacher's hand-rolled CommandInfo/PrintUsage machinery has no home here
// (see DESIGN.md).
package cli

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Version information for sigil builds.
const (
	Version   = "0.1.0"
	BuildDate = "2026-07-31"
	CommitSHA = "unknown"
)

// VersionInfo is the structured form of the above, printed by `sigil --version`.
type VersionInfo struct {
	Version   string
	BuildDate string
	CommitSHA string
	GoVersion string
	Platform  string
	Arch      string
}

// GetVersionInfo returns the running binary's version metadata.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String renders the version info the way `sigil --version` prints it.
func (v VersionInfo) String() string {
	return fmt.Sprintf("sigil v%s (%s, %s/%s, commit %s)", v.Version, v.GoVersion, v.Platform, v.Arch, v.CommitSHA)
}

// CheckRequiredVersion validates the running binary's version against a
// user-supplied semver constraint (the CLI's --require-version flag),
// letting CI pin a minimum interpreter version for a script.
func CheckRequiredVersion(constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid --require-version constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("internal: sigil's own version %q is not valid semver: %w", Version, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("sigil v%s does not satisfy required version %q", Version, constraint)
	}

	return nil
}
