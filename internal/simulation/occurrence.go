package simulation

import "sort"

// OccurrenceMap counts how many times each birthday appears within a single
// trial. The counts always sum to the trial's group size.
type OccurrenceMap map[Day]int

// MatchSummary maps an occurrence count c (c >= 2) to the number of distinct
// days that appeared exactly c times. Days seen once are not matches and
// never appear here.
type MatchSummary map[int]int

// Occurrence is one sorted entry of an OccurrenceMap.
type Occurrence struct {
	Day   Day
	Count int
}

// MatchGroup is one sorted entry of a MatchSummary.
type MatchGroup struct {
	Count int // how many times the days in this group occurred
	Days  int // how many distinct days occurred that many times
}

// CountOccurrences tallies each distinct birthday's frequency.
// The result depends only on the multiset of days, not their order.
func CountOccurrences(days []Day) OccurrenceMap {
	counts := make(OccurrenceMap, len(days))
	for _, d := range days {
		counts[d]++
	}
	return counts
}

// HasDuplicate reports whether at least two birthdays in the trial fall on
// the same day. Empty and single-element trials never contain a duplicate.
func HasDuplicate(days []Day) bool {
	if len(days) < 2 {
		return false
	}

	seen := make(map[Day]struct{}, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			return true
		}
		seen[d] = struct{}{}
	}
	return false
}

// Summarize buckets the occurrence map by count, keeping only shared days.
func Summarize(occurrences OccurrenceMap) MatchSummary {
	summary := make(MatchSummary)
	for _, count := range occurrences {
		if count > 1 {
			summary[count]++
		}
	}
	return summary
}

// Sorted returns the occurrence entries ascending by day, the deterministic
// order required for display.
func (m OccurrenceMap) Sorted() []Occurrence {
	entries := make([]Occurrence, 0, len(m))
	for day, count := range m {
		entries = append(entries, Occurrence{Day: day, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Day < entries[j].Day
	})
	return entries
}

// Sorted returns the match groups ascending by occurrence count.
func (s MatchSummary) Sorted() []MatchGroup {
	groups := make([]MatchGroup, 0, len(s))
	for count, days := range s {
		groups = append(groups, MatchGroup{Count: count, Days: days})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Count < groups[j].Count
	})
	return groups
}
