// Package pyver implements Python-style version identifiers, specifier sets,
// and requirement lines as used by package descriptors.
package pyver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a parsed version identifier.
//
// The grammar is [N!]N(.N)*[{a|b|rc}N][.postN][.devN][+local] with the usual
// spelling variants (alpha, beta, c, preview, rev, r, "v" prefix) normalized
// during parsing.
type Version struct {
	// Epoch is the version epoch (0 unless an explicit "N!" prefix is given).
	Epoch int

	// Release is the dotted release segment (e.g. [1, 26, 0]).
	Release []int

	// Pre is the pre-release segment, nil for non-pre-releases.
	Pre *PreRelease

	// Post is the post-release number, nil if absent.
	Post *int

	// Dev is the development-release number, nil if absent.
	Dev *int

	// Local is the local version label after "+", empty if absent.
	Local string

	original string
}

// PreRelease is a pre-release segment.
type PreRelease struct {
	// Phase is the normalized phase: "a", "b" or "rc".
	Phase string

	// Number is the pre-release number.
	Number int
}

// versionRe matches the full version grammar after lowercasing. Groups:
// 1 epoch, 2 release, 3 pre phase, 4 pre num, 5 post shorthand num,
// 6 post word, 7 post num, 8 dev word, 9 dev num, 10 local.
var versionRe = regexp.MustCompile(
	`^v?(?:(\d+)!)?(\d+(?:\.\d+)*)` +
		`(?:[-._]?(a|b|c|rc|alpha|beta|pre|preview)[-._]?(\d*))?` +
		`(?:-(\d+)|[-._]?(post|rev|r)[-._]?(\d*))?` +
		`(?:[-._]?(dev)[-._]?(\d*))?` +
		`(?:\+([a-z0-9]+(?:[-._][a-z0-9]+)*))?$`)

// Parse parses a version identifier. The input may carry surrounding
// whitespace and a "v" prefix; spelling variants are normalized.
func Parse(s string) (Version, error) {
	original := s
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Version{}, fmt.Errorf("empty version")
	}

	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q", original)
	}

	v := Version{original: strings.TrimSpace(original)}

	if m[1] != "" {
		epoch, err := strconv.Atoi(m[1])
		if err != nil {
			return Version{}, fmt.Errorf("invalid epoch in %q", original)
		}
		v.Epoch = epoch
	}

	for _, part := range strings.Split(m[2], ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("invalid release segment in %q", original)
		}
		v.Release = append(v.Release, n)
	}

	if m[3] != "" {
		v.Pre = &PreRelease{
			Phase:  normalizePhase(m[3]),
			Number: atoiDefault(m[4], 0),
		}
	}

	// Post-release: either the "-N" shorthand or an explicit post/rev/r.
	if m[5] != "" {
		n := atoiDefault(m[5], 0)
		v.Post = &n
	} else if m[6] != "" {
		n := atoiDefault(m[7], 0)
		v.Post = &n
	}

	if m[8] != "" {
		n := atoiDefault(m[9], 0)
		v.Dev = &n
	}

	v.Local = m[10]

	return v, nil
}

// MustParse parses a version and panics on error. For tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsValid reports whether s parses as a version identifier.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func normalizePhase(phase string) string {
	switch phase {
	case "alpha":
		return "a"
	case "beta":
		return "b"
	case "c", "pre", "preview":
		return "rc"
	default:
		return phase
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// IsPreRelease reports whether the version is a pre- or dev-release.
func (v Version) IsPreRelease() bool {
	return v.Pre != nil || v.Dev != nil
}

// String returns the normalized form of the version.
func (v Version) String() string {
	var b strings.Builder

	if v.Epoch != 0 {
		fmt.Fprintf(&b, "%d!", v.Epoch)
	}

	parts := make([]string, len(v.Release))
	for i, n := range v.Release {
		parts[i] = strconv.Itoa(n)
	}
	b.WriteString(strings.Join(parts, "."))

	if v.Pre != nil {
		fmt.Fprintf(&b, "%s%d", v.Pre.Phase, v.Pre.Number)
	}
	if v.Post != nil {
		fmt.Fprintf(&b, ".post%d", *v.Post)
	}
	if v.Dev != nil {
		fmt.Fprintf(&b, ".dev%d", *v.Dev)
	}
	if v.Local != "" {
		fmt.Fprintf(&b, "+%s", normalizeLocal(v.Local))
	}

	return b.String()
}

// Original returns the version string as it appeared in the source.
func (v Version) Original() string {
	return v.original
}

func normalizeLocal(local string) string {
	return strings.NewReplacer("-", ".", "_", ".").Replace(local)
}

// Phase ordering for pre-release comparison.
var phaseOrder = map[string]int{"a": 0, "b": 1, "rc": 2}

// Compare returns -1, 0 or 1 ordering a against b.
//
// Ordering follows the ecosystem rules: epoch first, then the release
// segments compared pairwise with zero padding, then dev < pre < final <
// post, with local labels as the final tiebreaker.
func Compare(a, b Version) int {
	if a.Epoch != b.Epoch {
		return cmpInt(a.Epoch, b.Epoch)
	}

	if c := compareRelease(a.Release, b.Release); c != 0 {
		return c
	}

	if c := cmpInt(preCategory(a), preCategory(b)); c != 0 {
		return c
	}
	if a.Pre != nil && b.Pre != nil {
		if c := cmpInt(phaseOrder[a.Pre.Phase], phaseOrder[b.Pre.Phase]); c != 0 {
			return c
		}
		if c := cmpInt(a.Pre.Number, b.Pre.Number); c != 0 {
			return c
		}
	}

	if c := cmpOptional(a.Post, b.Post, -1); c != 0 {
		return c
	}
	if c := cmpOptional(a.Dev, b.Dev, 1); c != 0 {
		return c
	}

	return compareLocal(a.Local, b.Local)
}

// preCategory buckets a version for the dev < pre < everything-else step.
func preCategory(v Version) int {
	switch {
	case v.Pre == nil && v.Post == nil && v.Dev != nil:
		return 0 // pure dev release sorts before pre-releases
	case v.Pre != nil:
		return 1
	default:
		return 2
	}
}

func compareRelease(a, b []int) int {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	for i := 0; i < maxLen; i++ {
		av, bv := 0, 0
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			return cmpInt(av, bv)
		}
	}
	return 0
}

// cmpOptional compares two optional numbers where nil sorts according to
// nilDir: -1 puts nil first (post releases), 1 puts nil last (dev releases).
func cmpOptional(a, b *int, nilDir int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return nilDir
	case b == nil:
		return -nilDir
	default:
		return cmpInt(*a, *b)
	}
}

func compareLocal(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}

	aSegs := splitLocal(a)
	bSegs := splitLocal(b)

	for i := 0; i < len(aSegs) && i < len(bSegs); i++ {
		aNum, aIsNum := parseNum(aSegs[i])
		bNum, bIsNum := parseNum(bSegs[i])

		switch {
		case aIsNum && bIsNum:
			if aNum != bNum {
				return cmpInt(aNum, bNum)
			}
		case aIsNum:
			return 1 // numeric segments order after alphanumeric ones
		case bIsNum:
			return -1
		default:
			if aSegs[i] != bSegs[i] {
				return strings.Compare(aSegs[i], bSegs[i])
			}
		}
	}

	return cmpInt(len(aSegs), len(bSegs))
}

func splitLocal(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})
}

func parseNum(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
