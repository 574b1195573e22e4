package emoji

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errInvalidVersion = errors.New("emoji: invalid version")

// ErrInvalidVersion is returned by ParseVersion for malformed input.
var ErrInvalidVersion = errInvalidVersion

// Version identifies an emoji revision (E15.1) or a platform release (17.4).
type Version struct {
	Major int
	Minor int
}

// V is shorthand for Version{major, minor}.
func V(major, minor int) Version {
	return Version{Major: major, Minor: minor}
}

// ParseVersion parses "18", "18.4" or "18.4.1"; patch components are ignored.
func ParseVersion(value string) (Version, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Version{}, errInvalidVersion
	}
	parts := strings.SplitN(trimmed, ".", 3)
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return Version{}, fmt.Errorf("%w: %q", errInvalidVersion, value)
	}
	minor := 0
	if len(parts) > 1 {
		minor, err = strconv.Atoi(parts[1])
		if err != nil || minor < 0 {
			return Version{}, fmt.Errorf("%w: %q", errInvalidVersion, value)
		}
	}
	if len(parts) > 2 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return Version{}, fmt.Errorf("%w: %q", errInvalidVersion, value)
		}
	}
	return Version{Major: major, Minor: minor}, nil
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or greater than other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major < other.Major:
		return -1
	case v.Major > other.Major:
		return 1
	case v.Minor < other.Minor:
		return -1
	case v.Minor > other.Minor:
		return 1
	}
	return 0
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// AtLeast reports whether v is equal to or newer than other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}
