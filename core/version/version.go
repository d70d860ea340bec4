package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a version string or component sequence cannot
// be interpreted as a dotted sequence of non-negative integers.
var ErrInvalid = errors.New("invalid version")

// overflowLane marks a minor component that exceeded one byte.
const overflowLane = 0x00FF0000

// Version is an ordered sequence of non-negative version components,
// e.g. "2.528.3" parses to Version{2, 528, 3}.
type Version []int

// Parse splits a dotted version string into its numeric components.
// Every component must be a non-negative integer; anything else fails
// with ErrInvalid.
func Parse(s string) (Version, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalid)
	}

	parts := strings.Split(s, ".")
	v := make(Version, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q is not a number", ErrInvalid, part)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: component %q is negative", ErrInvalid, part)
		}
		v = append(v, n)
	}
	return v, nil
}

// String returns the dotted representation of the parsed components.
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Encode packs the version into the installer's DWORD layout.
//
// With one or two components and minor <= 255 only the major lane is set;
// minor values above 255 switch to the 0xFF sentinel lane with minor*10
// (+patch) packed into the low 16 bits. Components past the third are
// ignored. See the package documentation for why the lossy branches are
// kept as-is.
func (v Version) Encode() (uint32, error) {
	if len(v) == 0 {
		return 0, fmt.Errorf("%w: no components", ErrInvalid)
	}
	for _, n := range v {
		if n < 0 {
			return 0, fmt.Errorf("%w: component %d is negative", ErrInvalid, n)
		}
	}

	major := uint32(v[0]&0xFF) << 24

	if len(v) <= 2 {
		minor := 0
		if len(v) == 2 {
			minor = v[1]
		}
		if minor > 255 {
			return major | overflowLane | uint32((minor*10)&0xFFFF), nil
		}
		// Legacy short form: minor and patch are not encoded at all.
		return major, nil
	}

	minor := v[1]
	patch := v[2]
	if minor > 255 {
		return major | overflowLane | uint32((minor*10+patch)&0xFFFF), nil
	}
	return major | uint32(minor&0xFF)<<16 | uint32(patch&0xFFFF), nil
}

// Decode renders the byte lanes of an encoded version as a dotted
// "major.minor.patch" string. For overflow-encoded values this is not the
// original version; the 0xFF minor lane and the packed low word surface
// verbatim.
func Decode(encoded uint32) string {
	major, minor, patch := Lanes(encoded)
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}

// Lanes extracts the individual byte lanes of an encoded version.
func Lanes(encoded uint32) (major, minor, patch uint32) {
	return (encoded >> 24) & 0xFF, (encoded >> 16) & 0xFF, encoded & 0xFFFF
}
