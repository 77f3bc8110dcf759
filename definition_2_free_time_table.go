package scheduler

import (
	"sort"
	"strings"
)

// FreeTimeTable holds free spans sorted ascending by start, pairwise disjoint.
// Adjacent spans are kept distinct, never merged.
type FreeTimeTable []TimeSpan

func NewFreeTimeTable() FreeTimeTable {
	return FreeTimeTable{WholeDay}
}

// lowerBound returns the index of the last span starting at or before timeStart,
// or -1 if every span starts after it.
func (table FreeTimeTable) lowerBound(timeStart int64) int {
	return sort.Search(
		len(table),
		func(i int) bool {
			return table[i].start > timeStart
		},
	) - 1
}

// Subtract returns the table with busy removed.
// The receiver is not modified.
//
// Possible cases:
//
//	table:   [--------------------------]
//	busy:               [-----]
//	result:  [----------]     [---------]
//
//	table:   [------]   ...   [---------]
//	busy:         [-------------]
//	result:  [----]             [-------]
//
//	table:   [------]   ...  [----------]
//	busy:              [-----]
//	result:  [------]        [----------]
//
//	table:   [------]           [-------]
//	busy:              [-----]
//	result:  [------]           [-------]
func (table FreeTimeTable) Subtract(busy TimeSpan) FreeTimeTable {
	if len(table) == 0 {
		return table
	}

	result := make(FreeTimeTable, 0, len(table)+1)

	ix := table.lowerBound(busy.start)

	if ix >= 0 && table[ix].Contains(busy) {
		original := table[ix]

		result = append(result, table[:ix]...)

		if original.start < busy.start {
			result = append(
				result,
				TimeSpan{
					start: original.start,
					end:   busy.start,
				},
			)
		}

		if busy.end < original.end {
			result = append(
				result,
				TimeSpan{
					start: busy.end,
					end:   original.end,
				},
			)
		}

		return append(result, table[ix+1:]...)
	}

	next := 0

	if ix >= 0 {
		result = append(result, table[:ix]...)

		leading := table[ix]

		switch {
		case !leading.Overlaps(busy):
			result = append(result, leading)

		case leading.start < busy.start:
			result = append(
				result,
				TimeSpan{
					start: leading.start,
					end:   busy.start,
				},
			)
		}

		next = ix + 1
	}

	for next < len(table) && busy.Contains(table[next]) {
		next++
	}

	if next < len(table) && table[next].Overlaps(busy) {
		result = append(
			result,
			TimeSpan{
				start: busy.end,
				end:   table[next].end,
			},
		)

		next++
	}

	return append(result, table[next:]...)
}

// FilterByDuration keeps, in order, the spans lasting at least duration minutes.
// The result is never nil.
func (table FreeTimeTable) FilterByDuration(duration int64) []TimeSpan {
	result := make([]TimeSpan, 0, len(table))

	for _, span := range table {
		if span.Duration() >= duration {
			result = append(result, span)
		}
	}

	return result
}

func (table FreeTimeTable) String() string {
	if len(table) == 0 {
		return "FreeTimeTable: (empty)"
	}

	var sb strings.Builder

	sb.WriteString("FreeTimeTable:\n")

	for _, span := range table {
		sb.WriteString("- " + span.String() + "\n")
	}

	return sb.String()
}
