// Package toolversion parses and compares concrete tool versions and the
// specifications a ToolRequest carries ("20", "20.1", "^20", "latest"),
// built on hashicorp/go-version for exact/major/minor matching and
// Masterminds/semver/v3 for "^"/"~" ranges, which go-version's API
// doesn't express directly.
package toolversion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	hcversion "github.com/hashicorp/go-version"
)

// Constraint names the kind of match a Spec performs.
type Constraint string

const (
	ConstraintLatest Constraint = "latest"
	ConstraintExact  Constraint = "exact"
	ConstraintMajor  Constraint = "major"
	ConstraintMinor  Constraint = "minor"
	ConstraintRange  Constraint = "range"
)

// Spec is a version specification that can match multiple concrete versions.
type Spec struct {
	Raw        string
	Constraint Constraint
	version    *hcversion.Version // set for exact/major/minor
	constraint *semver.Constraints // set for range
}

// ParseSpec parses a version specification string.
func ParseSpec(spec string) (*Spec, error) {
	spec = strings.TrimSpace(spec)

	if spec == "" || spec == "latest" || spec == "lts" {
		return &Spec{Raw: spec, Constraint: ConstraintLatest}, nil
	}

	if strings.ContainsAny(spec, "^~<>=") {
		c, err := semver.NewConstraint(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid range specification %q: %w", spec, err)
		}
		return &Spec{Raw: spec, Constraint: ConstraintRange, constraint: c}, nil
	}

	v, err := hcversion.NewVersion(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid version format %q: %w", spec, err)
	}

	constraint := ConstraintExact
	switch strings.Count(spec, ".") {
	case 0:
		constraint = ConstraintMajor
	case 1:
		constraint = ConstraintMinor
	}

	return &Spec{Raw: spec, Constraint: constraint, version: v}, nil
}

// Matches reports whether a concrete version string satisfies the spec.
func (s *Spec) Matches(versionStr string) bool {
	switch s.Constraint {
	case ConstraintLatest:
		return true
	case ConstraintRange:
		v, err := semver.NewVersion(versionStr)
		if err != nil {
			return false
		}
		return s.constraint.Check(v)
	case ConstraintExact:
		v, err := hcversion.NewVersion(versionStr)
		if err != nil {
			return false
		}
		return v.Equal(s.version)
	case ConstraintMajor:
		v, err := hcversion.NewVersion(versionStr)
		if err != nil {
			return false
		}
		return segment(v, 0) == segment(s.version, 0)
	case ConstraintMinor:
		v, err := hcversion.NewVersion(versionStr)
		if err != nil {
			return false
		}
		return segment(v, 0) == segment(s.version, 0) && segment(v, 1) == segment(s.version, 1)
	default:
		return false
	}
}

func segment(v *hcversion.Version, i int) int64 {
	segs := v.Segments64()
	if i < len(segs) {
		return segs[i]
	}
	return 0
}

// Resolve finds the best (highest) matching version among availableVersions.
func (s *Spec) Resolve(availableVersions []string) (string, error) {
	if len(availableVersions) == 0 {
		return "", fmt.Errorf("no versions available")
	}

	var matching []*hcversion.Version
	byString := make(map[string]string, len(availableVersions))
	for _, raw := range availableVersions {
		v, err := hcversion.NewVersion(raw)
		if err != nil {
			continue
		}
		if s.Matches(raw) {
			matching = append(matching, v)
			byString[v.String()] = raw
		}
	}
	if len(matching) == 0 {
		return "", fmt.Errorf("no versions match specification %s", s.Raw)
	}

	sort.Sort(hcversion.Collection(matching))
	best := matching[len(matching)-1]
	if orig, ok := byString[best.String()]; ok {
		return orig, nil
	}
	return best.String(), nil
}

// SortVersions sorts version strings in descending order (newest first).
// Unparsable entries are dropped.
func SortVersions(versions []string) []string {
	var parsed []*hcversion.Version
	byString := make(map[string]string, len(versions))
	for _, raw := range versions {
		v, err := hcversion.NewVersion(raw)
		if err != nil {
			continue
		}
		parsed = append(parsed, v)
		byString[v.String()] = raw
	}
	sort.Sort(sort.Reverse(hcversion.Collection(parsed)))
	out := make([]string, 0, len(parsed))
	for _, v := range parsed {
		if orig, ok := byString[v.String()]; ok {
			out = append(out, orig)
		} else {
			out = append(out, v.String())
		}
	}
	return out
}

// Compare compares two concrete version strings. If either one is
// unparsable, it falls back to a plain string comparison.
func Compare(a, b string) int {
	va, errA := hcversion.NewVersion(a)
	vb, errB := hcversion.NewVersion(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return va.Compare(vb)
}
