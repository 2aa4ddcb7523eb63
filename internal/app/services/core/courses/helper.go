package courses

import (
	"senehorario-service/internal/app/models"
	"senehorario-service/internal/pkg/catalog_dto"
	"senehorario-service/internal/pkg/exceptions"
	"strconv"
	"strings"
	"time"
)

// BuildCoursesFromOfferings groups raw catalog records into Course
// aggregates. Records sharing a class+course code pair belong to one course,
// in first-seen order; the course title and credits come from the first
// record of its group and every record contributes exactly one section.
// It fails fast on the first malformed record so the cache never stores a
// partially parsed result.
func BuildCoursesFromOfferings(offerings []catalog_dto.CourseOffering) ([]models.Course, error) {
	courses := make([]models.Course, 0, len(offerings))
	courseIndexByCode := make(map[string]int, len(offerings))

	for _, offering := range offerings {
		code := offering.Class + offering.Course
		index, seen := courseIndexByCode[code]
		if !seen {
			credits, err := strconv.Atoi(offering.Credits)
			if err != nil {
				return nil, exceptions.ErrCatalogBadNumericField(err, "credits", offering.Credits)
			}
			courses = append(courses, *models.NewCourse(code, offering.Title, credits))
			index = len(courses) - 1
			courseIndexByCode[code] = index
		}

		section, err := buildSection(offering)
		if err != nil {
			return nil, err
		}
		courses[index].AddSection(section)
	}

	return courses, nil
}

// buildSection maps one offering record to a Section. Each schedule entry
// produces one meeting per active day flag, all sharing the entry's time
// range; an entry with no active days contributes nothing and its times are
// never parsed, so independent-study offerings come out with zero meetings.
func buildSection(offering catalog_dto.CourseOffering) (models.Section, error) {
	meetings := make([]models.Meeting, 0, len(offering.Schedules))
	for _, entry := range offering.Schedules {
		days := expandDayFlags(entry)
		if len(days) == 0 {
			continue
		}

		start, err := parseCatalogClock(entry.TimeIni)
		if err != nil {
			return models.Section{}, err
		}
		end, err := parseCatalogClock(entry.TimeFin)
		if err != nil {
			return models.Section{}, err
		}

		location := entry.Building + " " + entry.Classroom
		for _, day := range days {
			meeting, err := models.NewMeeting(day, start, end, location)
			if err != nil {
				return models.Section{}, exceptions.ErrCatalogBadMeetingWindow(err)
			}
			meetings = append(meetings, meeting)
		}
	}

	instructors := make([]string, 0, len(offering.Instructors))
	for _, instructor := range offering.Instructors {
		instructors = append(instructors, ReorderInstructorName(instructor.Name))
	}

	availableSeats, err := strconv.Atoi(offering.SeatsAvail)
	if err != nil {
		return models.Section{}, exceptions.ErrCatalogBadNumericField(err, "seatsavail", offering.SeatsAvail)
	}
	totalSeats, err := strconv.Atoi(offering.MaxEnrol)
	if err != nil {
		return models.Section{}, exceptions.ErrCatalogBadNumericField(err, "maxenrol", offering.MaxEnrol)
	}

	return models.Section{
		NRC:            offering.NRC,
		Label:          offering.Section,
		Term:           offering.Term,
		PTRM:           offering.PTRM,
		Campus:         offering.Campus,
		Meetings:       meetings,
		Instructors:    instructors,
		AvailableSeats: availableSeats,
		TotalSeats:     totalSeats,
	}, nil
}

// parseCatalogClock parses the catalog's 4-digit 24-hour "hhmm" strings.
// Anything shorter than 4 characters is malformed.
func parseCatalogClock(raw string) (models.Clock, error) {
	if len(raw) < 4 {
		return models.Clock{}, exceptions.ErrCatalogBadTimeString(nil, raw)
	}
	hour, err := strconv.Atoi(raw[:2])
	if err != nil {
		return models.Clock{}, exceptions.ErrCatalogBadTimeString(err, raw)
	}
	minute, err := strconv.Atoi(raw[2:4])
	if err != nil {
		return models.Clock{}, exceptions.ErrCatalogBadTimeString(err, raw)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return models.Clock{}, exceptions.ErrCatalogBadTimeString(nil, raw)
	}
	return models.Clock{Hour: hour, Minute: minute}, nil
}

// expandDayFlags returns the active weekdays of one schedule entry, Monday
// through Saturday. A flag is active when its field holds the day's own
// letter, case-insensitive; the catalog has no Sunday flag.
func expandDayFlags(entry catalog_dto.OfferingSchedule) []time.Weekday {
	days := make([]time.Weekday, 0, 6)
	if strings.EqualFold(entry.L, "L") {
		days = append(days, time.Monday)
	}
	if strings.EqualFold(entry.M, "M") {
		days = append(days, time.Tuesday)
	}
	if strings.EqualFold(entry.I, "I") {
		days = append(days, time.Wednesday)
	}
	if strings.EqualFold(entry.J, "J") {
		days = append(days, time.Thursday)
	}
	if strings.EqualFold(entry.V, "V") {
		days = append(days, time.Friday)
	}
	if strings.EqualFold(entry.S, "S") {
		days = append(days, time.Saturday)
	}
	return days
}

// ReorderInstructorName converts the catalog's surname-first form into
// given-name-first. Two tokens swap; three tokens put the final given name
// first; four tokens assume two given names after two surnames. Any other
// shape passes through unchanged because the original ordering cannot be
// inferred.
func ReorderInstructorName(name string) string {
	if strings.TrimSpace(name) == "" {
		return name
	}
	parts := strings.Fields(name)
	switch len(parts) {
	case 2:
		return parts[1] + " " + parts[0]
	case 3:
		return parts[2] + " " + parts[0] + " " + parts[1]
	case 4:
		return parts[2] + " " + parts[3] + " " + parts[0] + " " + parts[1]
	default:
		return name
	}
}
