package models

import (
	"fmt"
	"time"
)

// Meeting is one recurring weekly time block of a section. Values are
// treated as read-only once constructed.
type Meeting struct {
	Day      time.Weekday `json:"day"`
	Start    Clock        `json:"start"`
	End      Clock        `json:"end"`
	Location string       `json:"location"`
}

// NewMeeting builds a Meeting and enforces that the start time is strictly
// earlier than the end time.
func NewMeeting(day time.Weekday, start, end Clock, location string) (Meeting, error) {
	if !start.Before(end) {
		return Meeting{}, fmt.Errorf("meeting start %s must be earlier than end %s", start, end)
	}
	return Meeting{
		Day:      day,
		Start:    start,
		End:      end,
		Location: location,
	}, nil
}

// Section is one offering of a course. Meetings may be empty for offerings
// without a scheduled pattern (independent study); such a section never
// conflicts with anything. Shared read-only wherever referenced.
type Section struct {
	NRC            string    `json:"nrc"`
	Label          string    `json:"label"`
	Term           string    `json:"term"`
	PTRM           string    `json:"ptrm"`
	Campus         string    `json:"campus"`
	Meetings       []Meeting `json:"meetings"`
	Instructors    []string  `json:"instructors"`
	AvailableSeats int       `json:"availableSeats"`
	TotalSeats     int       `json:"totalSeats"`
}

// Course is a named, credited subject. Sections are appended during loading
// and the aggregate is read-only afterwards.
type Course struct {
	Code     string    `json:"code"`
	Title    string    `json:"title"`
	Credits  int       `json:"credits"`
	Sections []Section `json:"sections"`
}

func NewCourse(code, title string, credits int) *Course {
	return &Course{
		Code:    code,
		Title:   title,
		Credits: credits,
	}
}

// AddSection appends one section to the course. Only the loading layer calls
// this; consumers receive the finished aggregate.
func (c *Course) AddSection(section Section) {
	c.Sections = append(c.Sections, section)
}
