package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionError reports a build that does not satisfy requiredVersion.
type VersionError struct {
	Required string
	Current  string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("This project requires version %s of the generator, but you are running %s.\nPlease upgrade and try again.", e.Required, e.Current)
}

// CheckVersion verifies that current satisfies the semver constraint
// required. An empty constraint always passes, and so does a current version
// that is not semver (e.g. "dev" builds).
func CheckVersion(required, current string) error {
	if strings.TrimSpace(required) == "" {
		return nil
	}
	c, err := semver.NewConstraint(required)
	if err != nil {
		return fmt.Errorf("parsing requiredVersion %q: %w", required, err)
	}
	v, err := parseSemver(current)
	if err != nil {
		return nil
	}
	if !c.Check(v) {
		return &VersionError{Required: required, Current: current}
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
