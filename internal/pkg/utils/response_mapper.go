package utils

import (
	"senehorario-service/internal/app/models"
	"senehorario-service/internal/pkg/dto/responses"
)

func ToMeetingResponse(meeting models.Meeting) responses.Meeting {
	return responses.Meeting{
		Day:      meeting.Day.String(),
		Start:    meeting.Start.String(),
		End:      meeting.End.String(),
		Location: meeting.Location,
	}
}

func ToSectionResponse(section models.Section) responses.Section {
	meetings := make([]responses.Meeting, 0, len(section.Meetings))
	for _, meeting := range section.Meetings {
		meetings = append(meetings, ToMeetingResponse(meeting))
	}
	return responses.Section{
		NRC:            section.NRC,
		Label:          section.Label,
		Term:           section.Term,
		PTRM:           section.PTRM,
		Campus:         section.Campus,
		Meetings:       meetings,
		Instructors:    section.Instructors,
		AvailableSeats: section.AvailableSeats,
		TotalSeats:     section.TotalSeats,
	}
}

func ToCourseResponse(course models.Course) responses.Course {
	sections := make([]responses.Section, 0, len(course.Sections))
	for _, section := range course.Sections {
		sections = append(sections, ToSectionResponse(section))
	}
	return responses.Course{
		Code:     course.Code,
		Title:    course.Title,
		Credits:  course.Credits,
		Sections: sections,
	}
}

func ToScheduleResponse(schedule models.Schedule) responses.Schedule {
	sections := make([]responses.Section, 0, len(schedule))
	for _, section := range schedule {
		sections = append(sections, ToSectionResponse(section))
	}
	return responses.Schedule{Sections: sections}
}
