// Package version holds a numeric major.minor.patch version with an
// optional qualifier.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

var ErrInvalid = errors.New("invalid version")

// Version orders like semantic versions: a qualified version sorts before
// the same unqualified one.
type Version struct {
	Major     int
	Minor     int
	Patch     int
	Qualifier string
}

// Parse accepts a leading v, missing minor or patch numbers and a
// -qualifier suffix. Build metadata after + is discarded.
func Parse(s string) (Version, error) {
	sv, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return Version{}, errors.Wrapf(ErrInvalid, "%q: %v", s, err)
	}
	return Version{
		Major:     int(sv.Major()),
		Minor:     int(sv.Minor()),
		Patch:     int(sv.Patch()),
		Qualifier: sv.Prerelease(),
	}, nil
}

func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) semver() *semver.Version {
	return semver.New(uint64(max(v.Major, 0)), uint64(max(v.Minor, 0)), uint64(max(v.Patch, 0)), v.Qualifier, "")
}

// Compare returns -1, 0 or 1.
func Compare(a, b Version) int {
	return a.semver().Compare(b.semver())
}

func (v Version) Compare(o Version) int {
	return Compare(v, o)
}

func (v Version) Less(o Version) bool {
	return Compare(v, o) < 0
}

func (v Version) IsZero() bool {
	return v == Version{}
}

// Satisfies reports whether v matches a constraint such as ">= 1.2, < 2".
func (v Version) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, errors.Wrapf(ErrInvalid, "constraint %q: %v", constraint, err)
	}
	return c.Check(v.semver()), nil
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Qualifier != "" {
		s += "-" + v.Qualifier
	}
	return s
}

const componentMask = 0xFFFF

// Packed encodes the numeric components in 16 bits each, major highest.
// Components above 65535 saturate and the qualifier is dropped.
func (v Version) Packed() uint64 {
	clamp := func(n int) uint64 {
		return uint64(min(max(n, 0), componentMask))
	}
	return clamp(v.Major)<<32 | clamp(v.Minor)<<16 | clamp(v.Patch)
}

func FromPacked(p uint64) Version {
	return Version{
		Major: int(p >> 32 & componentMask),
		Minor: int(p >> 16 & componentMask),
		Patch: int(p & componentMask),
	}
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
