package pyver

import (
	"fmt"
	"strings"
)

// Specifier is a single version clause, e.g. ">=61.0" or "==1.26.*".
type Specifier struct {
	// Op is the comparison operator: ==, !=, >=, <=, >, <, ~= or ===.
	Op string

	// Value is the raw version text after the operator.
	Value string

	// Wildcard reports whether Value carries a trailing ".*" (only valid
	// with == and !=).
	Wildcard bool

	version Version
}

// operators in match order: two-character operators before their one-character
// prefixes.
var operators = []string{"===", "==", "!=", "<=", ">=", "~=", "<", ">"}

// ParseSpecifier parses a single version clause.
func ParseSpecifier(s string) (Specifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Specifier{}, fmt.Errorf("empty specifier")
	}

	var op string
	for _, candidate := range operators {
		if strings.HasPrefix(s, candidate) {
			op = candidate
			break
		}
	}
	if op == "" {
		return Specifier{}, fmt.Errorf("specifier %q: missing operator", s)
	}

	value := strings.TrimSpace(s[len(op):])
	if value == "" {
		return Specifier{}, fmt.Errorf("specifier %q: missing version", s)
	}

	spec := Specifier{Op: op, Value: value}

	// Arbitrary equality compares raw strings; no version parsing.
	if op == "===" {
		return spec, nil
	}

	if strings.HasSuffix(value, ".*") {
		if op != "==" && op != "!=" {
			return Specifier{}, fmt.Errorf("specifier %q: wildcard requires == or !=", s)
		}
		spec.Wildcard = true
		value = strings.TrimSuffix(value, ".*")
	}

	v, err := Parse(value)
	if err != nil {
		return Specifier{}, fmt.Errorf("specifier %q: %w", s, err)
	}
	if op == "~=" && len(v.Release) < 2 {
		return Specifier{}, fmt.Errorf("specifier %q: ~= requires at least two release segments", s)
	}
	spec.version = v

	return spec, nil
}

// Check reports whether v satisfies the specifier.
func (s Specifier) Check(v Version) bool {
	switch s.Op {
	case "===":
		return strings.TrimSpace(v.Original()) == s.Value || v.String() == s.Value
	case "==":
		if s.Wildcard {
			return matchesPrefix(v, s.version)
		}
		return Compare(stripLocal(v, s.version), s.version) == 0
	case "!=":
		if s.Wildcard {
			return !matchesPrefix(v, s.version)
		}
		return Compare(stripLocal(v, s.version), s.version) != 0
	case ">=":
		return Compare(v, s.version) >= 0
	case "<=":
		return Compare(v, s.version) <= 0
	case ">":
		if Compare(v, s.version) <= 0 {
			return false
		}
		// An exclusive lower bound never admits a post-release or local
		// variant of the bound itself.
		if baseEqual(v, s.version) && (v.Post != nil && s.version.Post == nil || v.Local != "") {
			return false
		}
		return true
	case "<":
		if Compare(v, s.version) >= 0 {
			return false
		}
		// An exclusive upper bound never admits a pre-release of the bound
		// itself unless the bound is one.
		if baseEqual(v, s.version) && v.IsPreRelease() && !s.version.IsPreRelease() {
			return false
		}
		return true
	case "~=":
		// ~= X.Y.Z is shorthand for >= X.Y.Z, == X.Y.*
		if Compare(v, s.version) < 0 {
			return false
		}
		truncated := s.version
		truncated.Release = truncated.Release[:len(truncated.Release)-1]
		truncated.Pre = nil
		truncated.Post = nil
		truncated.Dev = nil
		return matchesPrefix(v, truncated)
	}
	return false
}

// stripLocal drops v's local label when the specifier's version carries none,
// so "==1.0" matches "1.0+anything" while "==1.0+abc" stays exact.
func stripLocal(v, spec Version) Version {
	if spec.Local == "" {
		v.Local = ""
	}
	return v
}

// baseEqual reports whether two versions share the same epoch and release
// segments, ignoring pre/post/dev/local parts.
func baseEqual(a, b Version) bool {
	if a.Epoch != b.Epoch {
		return false
	}
	return compareRelease(a.Release, b.Release) == 0
}

// matchesPrefix reports whether v's release matches prefix's release
// segment-for-segment, padding v with zeros when shorter.
func matchesPrefix(v, prefix Version) bool {
	if v.Epoch != prefix.Epoch {
		return false
	}
	for i, want := range prefix.Release {
		have := 0
		if i < len(v.Release) {
			have = v.Release[i]
		}
		if have != want {
			return false
		}
	}
	return true
}

// String returns the normalized clause text.
func (s Specifier) String() string {
	if s.Wildcard {
		return s.Op + s.version.String() + ".*"
	}
	if s.Op == "===" {
		return s.Op + s.Value
	}
	return s.Op + s.version.String()
}

// SpecifierSet is a comma-separated conjunction of clauses, e.g.
// ">=3.8, <4". The empty set matches every version.
type SpecifierSet struct {
	Specifiers []Specifier
}

// ParseSpecifierSet parses a comma-separated list of clauses.
func ParseSpecifierSet(s string) (SpecifierSet, error) {
	var set SpecifierSet

	s = strings.TrimSpace(s)
	if s == "" {
		return set, nil
	}

	for _, clause := range strings.Split(s, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		spec, err := ParseSpecifier(clause)
		if err != nil {
			return SpecifierSet{}, err
		}
		set.Specifiers = append(set.Specifiers, spec)
	}

	return set, nil
}

// Check reports whether v satisfies every clause in the set.
func (ss SpecifierSet) Check(v Version) bool {
	for _, spec := range ss.Specifiers {
		if !spec.Check(v) {
			return false
		}
	}
	return true
}

// String returns the normalized comma-joined form.
func (ss SpecifierSet) String() string {
	parts := make([]string, len(ss.Specifiers))
	for i, spec := range ss.Specifiers {
		parts[i] = spec.String()
	}
	return strings.Join(parts, ",")
}

// IsEmpty reports whether the set has no clauses.
func (ss SpecifierSet) IsEmpty() bool {
	return len(ss.Specifiers) == 0
}
