// Package ordering groups river records by continent and fixes the order in
// which continents and rivers appear in the grid.
//
// Continents are ordered by river count, largest first. Rivers inside a
// continent are ordered by length, longest first; rivers of equal length keep
// their input order. Continents with the same river count are ordered by the
// configured [TieBreak]:
//
//	groups := ordering.Group(records, ordering.TieAlphabetical)
//	for _, g := range groups {
//	    fmt.Println(g.Continent, len(g.Records))
//	}
package ordering

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/riverspiral/pkg/dataset"
)

// TieBreak decides the order of continents that have the same number of rivers.
type TieBreak int

const (
	// TieAlphabetical orders equal-sized continents by name.
	TieAlphabetical TieBreak = iota
	// TieFirstSeen orders equal-sized continents by first appearance in the input.
	TieFirstSeen
)

// String returns the flag/config spelling of the tie-break.
func (t TieBreak) String() string {
	switch t {
	case TieAlphabetical:
		return "alphabetical"
	case TieFirstSeen:
		return "first-seen"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak parses "alphabetical" or "first-seen". The empty string maps
// to TieAlphabetical.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alphabetical", "alpha":
		return TieAlphabetical, nil
	case "first-seen", "firstseen", "stable":
		return TieFirstSeen, nil
	default:
		return 0, fmt.Errorf("unknown tie-break %q (must be alphabetical or first-seen)", s)
	}
}

// ContinentGroup is one continent and its rivers in display order.
type ContinentGroup struct {
	Continent string
	Records   []dataset.Record
}

// Len returns the number of rivers in the group.
func (g ContinentGroup) Len() int { return len(g.Records) }

// Group partitions records by exact continent name and orders the result.
// The input slice is not modified.
func Group(records []dataset.Record, tie TieBreak) []ContinentGroup {
	index := make(map[string]int)
	var groups []ContinentGroup
	for _, r := range records {
		i, ok := index[r.Continent]
		if !ok {
			i = len(groups)
			index[r.Continent] = i
			groups = append(groups, ContinentGroup{Continent: r.Continent})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	for i := range groups {
		slices.SortStableFunc(groups[i].Records, func(a, b dataset.Record) int {
			return cmp.Compare(b.Length, a.Length)
		})
	}

	slices.SortStableFunc(groups, func(a, b ContinentGroup) int {
		if c := cmp.Compare(b.Len(), a.Len()); c != 0 {
			return c
		}
		if tie == TieAlphabetical {
			return cmp.Compare(a.Continent, b.Continent)
		}
		return 0
	})
	return groups
}

// Sizes returns the river count of each group, in group order.
func Sizes(groups []ContinentGroup) []int {
	sizes := make([]int, len(groups))
	for i, g := range groups {
		sizes[i] = g.Len()
	}
	return sizes
}
