package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// supportedVersions is the range of config schema versions this build reads.
const supportedVersions = "^1.0.0"

// ErrUnsupportedVersion is returned for config files written by an
// incompatible release.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// CheckVersion verifies a config file's version field. An empty version is
// accepted and treated as CurrentVersion.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version: %w", ErrUnsupportedVersion, version, err)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, supportedVersions)
	}
	return nil
}
