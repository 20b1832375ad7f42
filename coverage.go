package udfc

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// MaxCodePoint is the largest character an archive entry name can hold.
const MaxCodePoint = 0xFFFF

// CharacterRange is an inclusive range of code points.
type CharacterRange struct {
	First, Last rune
}

// Valid reports whether First <= Last.
func (r CharacterRange) Valid() bool { return r.First <= r.Last }

// Len returns the number of code points in the range, 0 if invalid.
func (r CharacterRange) Len() int {
	if !r.Valid() {
		return 0
	}
	return int(r.Last-r.First) + 1
}

// String formats the range as "U+0041..U+005A".
func (r CharacterRange) String() string {
	return fmt.Sprintf("%U..%U", r.First, r.Last)
}

// Named script coverages.
var (
	Latin              = CharacterRange{0x0000, 0x00FF}
	LatinExtended      = CharacterRange{0x0100, 0x024F}
	Greek              = CharacterRange{0x0370, 0x03FF}
	Cyrillic           = CharacterRange{0x0400, 0x04FF}
	Hebrew             = CharacterRange{0x0590, 0x05FF}
	GeneralPunctuation = CharacterRange{0x2000, 0x206F}
)

var namedCoverages = []struct {
	name string
	r    CharacterRange
}{
	{"Latin", Latin},
	{"LatinExtended", LatinExtended},
	{"Greek", Greek},
	{"Cyrillic", Cyrillic},
	{"Hebrew", Hebrew},
	{"GeneralPunctuation", GeneralPunctuation},
}

// CoverageNames returns the names accepted by CoverageByName.
func CoverageNames() []string {
	names := make([]string, len(namedCoverages))
	for i, c := range namedCoverages {
		names[i] = c.name
	}
	return names
}

// CoverageByName looks up a named coverage. Matching ignores case,
// spaces, dashes and underscores, so "latin-extended" works.
func CoverageByName(name string) (CharacterRange, bool) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
	for _, c := range namedCoverages {
		if strings.EqualFold(c.name, key) {
			return c.r, true
		}
	}
	return CharacterRange{}, false
}

// CoverageSet is a user selection of character ranges. Ranges may be
// given in any order and may overlap.
type CoverageSet []CharacterRange

// Sorted returns a copy of the set ordered by First.
func (s CoverageSet) Sorted() CoverageSet {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b CharacterRange) int {
		return cmp.Compare(a.First, b.First)
	})
	return out
}

// All yields the code points of the sorted ranges in ascending order.
// A code point covered by more than one range is yielded once.
func (s CoverageSet) All() iter.Seq[rune] {
	sorted := s.Sorted()
	return func(yield func(rune) bool) {
		next := rune(-1) // lowest code point not yet yielded
		for _, r := range sorted {
			if !r.Valid() {
				continue
			}
			for c := max(r.First, next); c <= r.Last; c++ {
				if !yield(c) {
					return
				}
			}
			next = max(next, r.Last+1)
		}
	}
}

// Count returns the number of code points All yields.
func (s CoverageSet) Count() int {
	n := 0
	next := rune(-1)
	for _, r := range s.Sorted() {
		if !r.Valid() {
			continue
		}
		if first := max(r.First, next); first <= r.Last {
			n += int(r.Last-first) + 1
		}
		next = max(next, r.Last+1)
	}
	return n
}

// validate checks that every range is valid and fits an entry name.
func (s CoverageSet) validate() error {
	for _, r := range s {
		if err := validateRange(r); err != nil {
			return err
		}
	}
	return nil
}

func validateRange(r CharacterRange) error {
	switch {
	case !r.Valid():
		return &ConfigError{Field: "coverage range", Value: r, Reason: "first is after last"}
	case r.First < 0:
		return &ConfigError{Field: "coverage range", Value: r, Reason: "negative code point"}
	case r.Last > MaxCodePoint:
		return &ConfigError{Field: "coverage range", Value: r, Reason: "code points above U+FFFF are not supported"}
	}
	return nil
}
