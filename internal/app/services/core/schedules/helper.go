package schedules

import (
	"errors"
	"fmt"
	"senehorario-service/internal/app/models"
	"senehorario-service/internal/pkg/exceptions"
)

// MeetingsConflict reports whether two weekly meetings collide. Meetings on
// different days never collide. On the same day the intervals are half-open
// [start, end): back-to-back meetings share a boundary instant and do not
// overlap, so a class ending 10:00 and one starting 10:00 can both be taken.
func MeetingsConflict(a, b models.Meeting) bool {
	if a.Day != b.Day {
		return false
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// SectionsConflict reports whether any meeting of one section collides with
// any meeting of the other. A section with no meetings conflicts with nothing.
func SectionsConflict(a, b models.Section) bool {
	for _, ma := range a.Meetings {
		for _, mb := range b.Meetings {
			if MeetingsConflict(ma, mb) {
				return true
			}
		}
	}
	return false
}

// VerifyCandidates checks the candidate set before any search work starts.
// It fails fast on the first problem: a nil set, or a course slot with zero
// sections (such a slot can never appear in a schedule, which is an input
// error rather than an empty result). Repeated sections or NRCs are not
// deduplicated here; catalog integrity belongs to the loading layer.
func VerifyCandidates(candidates [][]models.Section) error {
	if candidates == nil {
		return exceptions.ErrCandidatesNil(errors.New("candidate sections are nil"))
	}
	for i, slot := range candidates {
		if len(slot) == 0 {
			return exceptions.ErrCandidateSlotEmpty(fmt.Errorf("course slot %d has no sections", i), i)
		}
	}
	return nil
}

// GenerateAllSchedules builds every conflict-free combination that picks
// exactly one section per course slot. Results keep the slot order of the
// input and enumerate candidates in the given order with the last slot
// varying fastest, so identical input always yields the identical sequence.
// Zero course slots yields zero schedules. The caller is expected to have
// run VerifyCandidates first.
func GenerateAllSchedules(candidates [][]models.Section) []models.Schedule {
	generated := make([]models.Schedule, 0)
	if len(candidates) == 0 {
		return generated
	}
	collectSchedules(candidates, 0, make([]models.Section, 0, len(candidates)), &generated)
	return generated
}

// collectSchedules walks the candidate slots depth-first. A candidate is
// admissible when it does not conflict with any section already picked;
// admissible picks extend the partial selection and recurse into the next
// slot. A full-depth selection is copied before being accumulated because
// the partial slice is reused across branches.
func collectSchedules(candidates [][]models.Section, slot int, partial []models.Section, generated *[]models.Schedule) {
	if slot == len(candidates) {
		complete := make(models.Schedule, len(partial))
		copy(complete, partial)
		*generated = append(*generated, complete)
		return
	}

	for _, candidate := range candidates[slot] {
		if conflictsWithChosen(candidate, partial) {
			continue
		}
		collectSchedules(candidates, slot+1, append(partial, candidate), generated)
	}
}

func conflictsWithChosen(candidate models.Section, chosen []models.Section) bool {
	for _, picked := range chosen {
		if SectionsConflict(candidate, picked) {
			return true
		}
	}
	return false
}
