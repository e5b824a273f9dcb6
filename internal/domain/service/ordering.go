package service

import (
	"cmp"
	"slices"

	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortLane orders the entries of one (day, truck) lane in place:
//  1. deliveries before everything else
//  2. ascending sort index when both entries have one
//  3. entries with a sort index before those without
//  4. order number, then project name, in Swedish collation
//  5. row id
func SortLane(entries []*entity.LaneEntry) {
	// A Collator keeps internal buffers and must not be shared between goroutines.
	col := collate.New(language.Swedish)
	slices.SortStableFunc(entries, func(a, b *entity.LaneEntry) int {
		return compareEntries(col, a, b)
	})
}

func compareEntries(col *collate.Collator, a, b *entity.LaneEntry) int {
	aDelivery := domain.IsDeliveryJobType(a.Segment.JobType)
	bDelivery := domain.IsDeliveryJobType(b.Segment.JobType)
	if aDelivery != bDelivery {
		if aDelivery {
			return -1
		}
		return 1
	}

	ai, bi := a.Segment.SortIndex, b.Segment.SortIndex
	switch {
	case ai != nil && bi != nil:
		if c := cmp.Compare(*ai, *bi); c != 0 {
			return c
		}
	case ai != nil:
		return -1
	case bi != nil:
		return 1
	}

	if c := col.CompareString(a.OrderNumber(), b.OrderNumber()); c != 0 {
		return c
	}
	if c := col.CompareString(a.ProjectName(), b.ProjectName()); c != 0 {
		return c
	}
	return cmp.Compare(a.Segment.ID, b.Segment.ID)
}

// MarkSpans returns the span role of every row, keyed by row id. Rows must
// include every day-row of the spans they belong to. The chronologically first
// row of a multi-row span is its start; single rows have no role.
func MarkSpans(rows []*entity.ScheduledSegment) map[int64]entity.SpanRole {
	bySpan := make(map[string][]*entity.ScheduledSegment)
	for _, row := range rows {
		bySpan[row.SegmentID] = append(bySpan[row.SegmentID], row)
	}

	roles := make(map[int64]entity.SpanRole, len(rows))
	for _, span := range bySpan {
		if len(span) == 1 {
			roles[span[0].ID] = entity.SpanNone
			continue
		}
		first := span[0]
		for _, row := range span[1:] {
			if row.Day.Before(first.Day) || (row.Day.Equal(first.Day) && row.ID < first.ID) {
				first = row
			}
		}
		for _, row := range span {
			if row == first {
				roles[row.ID] = entity.SpanStart
			} else {
				roles[row.ID] = entity.SpanMiddle
			}
		}
	}
	return roles
}
