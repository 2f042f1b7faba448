package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dev is the version reported by builds without ldflags.
const Dev = "dev"

// IsDev reports whether v is an unreleased build that cannot be compared.
func IsDev(v string) bool {
	return v == "" || v == Dev
}

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parse(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// Satisfies reports whether current meets constraint. An empty constraint
// and dev builds always pass.
func Satisfies(constraint, current string) (bool, error) {
	if strings.TrimSpace(constraint) == "" || IsDev(current) {
		return true, nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := parse(current)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", current, err)
	}
	return c.Check(v), nil
}

// Require is Satisfies as an error, for callers that only need to stop.
func Require(constraint, current string) error {
	ok, err := Satisfies(constraint, current)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("project requires bleperm %s, running %s", constraint, current)
	}
	return nil
}

// parse strips a leading "v" and parses the version string.
func parse(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
