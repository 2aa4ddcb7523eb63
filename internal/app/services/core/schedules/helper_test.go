package schedules

import (
	"fmt"
	"senehorario-service/internal/app/models"
	"senehorario-service/internal/pkg/constvars"
	"senehorario-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func meetingOn(day time.Weekday, startHour, startMinute, endHour, endMinute int) models.Meeting {
	return models.Meeting{
		Day:   day,
		Start: models.Clock{Hour: startHour, Minute: startMinute},
		End:   models.Clock{Hour: endHour, Minute: endMinute},
	}
}

func sectionWithMeetings(nrc string, meetings ...models.Meeting) models.Section {
	return models.Section{
		NRC:      nrc,
		Label:    "1",
		Meetings: meetings,
	}
}

func TestMeetingsConflict(t *testing.T) {
	t.Run("Overlapping Same Day", func(t *testing.T) {
		a := meetingOn(time.Monday, 9, 0, 10, 0)
		b := meetingOn(time.Monday, 9, 30, 10, 30)

		assert.True(t, MeetingsConflict(a, b), "overlapping meetings on the same day should conflict")
		assert.True(t, MeetingsConflict(b, a), "conflict detection should be symmetric")
	})

	t.Run("Back To Back Meetings", func(t *testing.T) {
		a := meetingOn(time.Monday, 10, 0, 11, 0)
		b := meetingOn(time.Monday, 11, 0, 12, 0)

		assert.False(t, MeetingsConflict(a, b), "a meeting ending exactly when the next starts should not conflict")
		assert.False(t, MeetingsConflict(b, a), "the back-to-back exemption should be symmetric")
	})

	t.Run("Identical Times On Different Days", func(t *testing.T) {
		a := meetingOn(time.Monday, 9, 0, 10, 0)
		b := meetingOn(time.Tuesday, 9, 0, 10, 0)

		assert.False(t, MeetingsConflict(a, b), "meetings on different days should never conflict")
	})

	t.Run("Contained Interval", func(t *testing.T) {
		outer := meetingOn(time.Wednesday, 8, 0, 12, 0)
		inner := meetingOn(time.Wednesday, 9, 30, 10, 30)

		assert.True(t, MeetingsConflict(outer, inner), "a meeting fully inside another should conflict")
		assert.True(t, MeetingsConflict(inner, outer), "containment should conflict regardless of argument order")
	})

	t.Run("Identical Meetings", func(t *testing.T) {
		a := meetingOn(time.Friday, 14, 0, 16, 0)

		assert.True(t, MeetingsConflict(a, a), "a meeting should conflict with itself")
	})
}

func TestSectionsConflict(t *testing.T) {
	t.Run("Disjoint Sections", func(t *testing.T) {
		a := sectionWithMeetings("10001",
			meetingOn(time.Monday, 9, 0, 10, 0),
			meetingOn(time.Wednesday, 9, 0, 10, 0),
		)
		b := sectionWithMeetings("20001",
			meetingOn(time.Tuesday, 9, 0, 10, 0),
			meetingOn(time.Thursday, 9, 0, 10, 0),
		)

		assert.False(t, SectionsConflict(a, b), "sections with disjoint meetings should not conflict")
	})

	t.Run("Single Overlapping Pair", func(t *testing.T) {
		a := sectionWithMeetings("10001",
			meetingOn(time.Monday, 9, 0, 10, 0),
			meetingOn(time.Wednesday, 9, 0, 10, 0),
		)
		b := sectionWithMeetings("20001",
			meetingOn(time.Tuesday, 9, 0, 10, 0),
			meetingOn(time.Wednesday, 9, 30, 10, 30),
		)

		assert.True(t, SectionsConflict(a, b), "one colliding meeting pair should make the sections conflict")
	})

	t.Run("Section Without Meetings", func(t *testing.T) {
		study := sectionWithMeetings("90001")
		full := sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0))

		assert.False(t, SectionsConflict(study, full), "a section with no meetings should conflict with nothing")
		assert.False(t, SectionsConflict(full, study), "the exemption should hold regardless of argument order")
		assert.False(t, SectionsConflict(study, study), "a section with no meetings should not conflict with itself")
	})

	t.Run("Section With Meetings Conflicts With Itself", func(t *testing.T) {
		a := sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0))

		assert.True(t, SectionsConflict(a, a), "a scheduled section overlaps itself completely")
	})
}

func TestVerifyCandidates(t *testing.T) {
	t.Run("Nil Candidate Set", func(t *testing.T) {
		err := VerifyCandidates(nil)

		assert.Error(t, err, "a nil candidate set should fail validation")
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "validation failures should be CustomErrors")
		if ok {
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "a nil candidate set is a bad request")
		}
	})

	t.Run("Empty Course Slot", func(t *testing.T) {
		candidates := [][]models.Section{
			{sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0))},
			{},
		}

		err := VerifyCandidates(candidates)

		assert.Error(t, err, "an empty course slot should fail validation")
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "validation failures should be CustomErrors")
		if ok {
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "an empty slot is a bad request")
			assert.Contains(t, customErr.ClientMessage, "slot 1", "the failure should name the offending slot")
		}
	})

	t.Run("Nil Course Slot", func(t *testing.T) {
		candidates := [][]models.Section{
			nil,
			{sectionWithMeetings("20001", meetingOn(time.Tuesday, 9, 0, 10, 0))},
		}

		err := VerifyCandidates(candidates)

		assert.Error(t, err, "a nil course slot should fail validation like an empty one")
	})

	t.Run("Valid Candidates", func(t *testing.T) {
		candidates := [][]models.Section{
			{sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0))},
			{sectionWithMeetings("20001", meetingOn(time.Tuesday, 9, 0, 10, 0))},
		}

		assert.NoError(t, VerifyCandidates(candidates), "well-formed candidates should pass validation")
	})

	t.Run("Duplicate Sections Are Accepted", func(t *testing.T) {
		duplicated := sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0))
		candidates := [][]models.Section{
			{duplicated, duplicated},
			{duplicated},
		}

		assert.NoError(t, VerifyCandidates(candidates), "validation should not deduplicate repeated sections or NRCs")
	})

	t.Run("Zero Slots Are Valid", func(t *testing.T) {
		assert.NoError(t, VerifyCandidates([][]models.Section{}), "an empty, non-nil candidate set is valid input")
	})
}

func TestGenerateAllSchedules(t *testing.T) {
	t.Run("Zero Course Slots", func(t *testing.T) {
		generated := GenerateAllSchedules([][]models.Section{})

		assert.NotNil(t, generated, "the result should be an empty slice rather than nil")
		assert.Len(t, generated, 0, "zero course slots should yield zero schedules, not one empty schedule")
	})

	t.Run("Single Slot Cardinality", func(t *testing.T) {
		candidates := [][]models.Section{{
			sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0)),
			sectionWithMeetings("10002", meetingOn(time.Tuesday, 9, 0, 10, 0)),
			sectionWithMeetings("10003", meetingOn(time.Wednesday, 9, 0, 10, 0)),
		}}

		generated := GenerateAllSchedules(candidates)

		assert.Len(t, generated, 3, "one slot with three sections should yield three single-section schedules")
		for i, schedule := range generated {
			assert.Len(t, schedule, 1, "each schedule should hold exactly one section")
			assert.Equal(t, candidates[0][i].NRC, schedule[0].NRC, "schedules should follow candidate order")
		}
	})

	t.Run("Compatible Chain Including Back To Back", func(t *testing.T) {
		candidates := [][]models.Section{
			{sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0))},
			{sectionWithMeetings("20001", meetingOn(time.Monday, 10, 0, 11, 0))},
			{sectionWithMeetings("30001", meetingOn(time.Tuesday, 11, 0, 12, 0))},
		}

		generated := GenerateAllSchedules(candidates)

		assert.Len(t, generated, 1, "back-to-back and different-day sections should form exactly one schedule")
		if len(generated) == 1 {
			assert.Equal(t, "10001", generated[0][0].NRC, "sections should keep slot order")
			assert.Equal(t, "20001", generated[0][1].NRC, "sections should keep slot order")
			assert.Equal(t, "30001", generated[0][2].NRC, "sections should keep slot order")
		}
	})

	t.Run("Unsatisfiable Single Candidates", func(t *testing.T) {
		candidates := [][]models.Section{
			{sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0))},
			{sectionWithMeetings("20001", meetingOn(time.Monday, 9, 30, 10, 30))},
		}

		generated := GenerateAllSchedules(candidates)

		assert.Len(t, generated, 0, "two conflicting single-candidate slots should yield no schedule")
	})

	t.Run("Last Slot Varies Fastest", func(t *testing.T) {
		first := []models.Section{
			sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0)),
			sectionWithMeetings("10002", meetingOn(time.Monday, 11, 0, 12, 0)),
		}
		second := []models.Section{
			sectionWithMeetings("20001", meetingOn(time.Tuesday, 9, 0, 10, 0)),
			sectionWithMeetings("20002", meetingOn(time.Tuesday, 11, 0, 12, 0)),
		}

		generated := GenerateAllSchedules([][]models.Section{first, second})

		got := make([][2]string, 0, len(generated))
		for _, schedule := range generated {
			got = append(got, [2]string{schedule[0].NRC, schedule[1].NRC})
		}
		expected := [][2]string{
			{"10001", "20001"},
			{"10001", "20002"},
			{"10002", "20001"},
			{"10002", "20002"},
		}
		assert.Equal(t, expected, got, "enumeration should vary the last slot fastest")
	})

	t.Run("Prunes Only Conflicting Combinations", func(t *testing.T) {
		algebra := []models.Section{
			sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 11, 0)),
			sectionWithMeetings("10002", meetingOn(time.Wednesday, 9, 0, 11, 0)),
		}
		physics := []models.Section{
			sectionWithMeetings("20001", meetingOn(time.Monday, 10, 0, 12, 0)),
			sectionWithMeetings("20002", meetingOn(time.Thursday, 10, 0, 12, 0)),
		}

		generated := GenerateAllSchedules([][]models.Section{algebra, physics})

		assert.Len(t, generated, 3, "only the colliding combination should be pruned")
		for _, schedule := range generated {
			for i := 0; i < len(schedule); i++ {
				for j := i + 1; j < len(schedule); j++ {
					assert.False(t, SectionsConflict(schedule[i], schedule[j]), "every returned schedule must be pairwise conflict-free")
				}
			}
		}
	})

	t.Run("Deterministic Enumeration", func(t *testing.T) {
		candidates := [][]models.Section{
			{
				sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 11, 0)),
				sectionWithMeetings("10002", meetingOn(time.Wednesday, 9, 0, 11, 0)),
			},
			{
				sectionWithMeetings("20001", meetingOn(time.Monday, 10, 0, 12, 0)),
				sectionWithMeetings("20002", meetingOn(time.Thursday, 10, 0, 12, 0)),
			},
		}

		first := GenerateAllSchedules(candidates)
		second := GenerateAllSchedules(candidates)

		assert.Equal(t, first, second, "identical input should yield the identical output sequence")
	})

	t.Run("Duplicate Scheduled Section Never Pairs With Itself", func(t *testing.T) {
		duplicated := sectionWithMeetings("10001", meetingOn(time.Monday, 9, 0, 10, 0))
		other := sectionWithMeetings("10002", meetingOn(time.Tuesday, 9, 0, 10, 0))
		candidates := [][]models.Section{
			{duplicated, other},
			{duplicated},
		}

		generated := GenerateAllSchedules(candidates)

		assert.Len(t, generated, 1, "the self-overlapping duplicate should be pruned like any conflicting pair")
		if len(generated) == 1 {
			assert.Equal(t, "10002", generated[0][0].NRC, "only the non-duplicate may fill the first slot")
			assert.Equal(t, "10001", generated[0][1].NRC, "the duplicate still fills its own slot")
		}
	})

	t.Run("Duplicate Meeting Free Section Can Repeat", func(t *testing.T) {
		study := sectionWithMeetings("90001")
		candidates := [][]models.Section{{study}, {study}}

		generated := GenerateAllSchedules(candidates)

		assert.Len(t, generated, 1, "a meeting-free duplicate conflicts with nothing, itself included")
		if len(generated) == 1 {
			assert.Equal(t, "90001", generated[0][0].NRC, "the duplicate should appear in the first slot")
			assert.Equal(t, "90001", generated[0][1].NRC, "the duplicate should appear in the second slot too")
		}
	})

	t.Run("Full Cross Product When Nothing Conflicts", func(t *testing.T) {
		days := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}
		candidates := make([][]models.Section, 0, len(days))
		for slot, day := range days {
			sections := make([]models.Section, 0, 3)
			for option := 0; option < 3; option++ {
				nrc := fmt.Sprintf("%d%04d", slot+1, option)
				sections = append(sections, sectionWithMeetings(nrc, meetingOn(day, 8+2*option, 0, 9+2*option, 0)))
			}
			candidates = append(candidates, sections)
		}

		generated := GenerateAllSchedules(candidates)

		assert.Len(t, generated, 27, "three slots of three compatible sections should yield the full cross product")
	})
}
