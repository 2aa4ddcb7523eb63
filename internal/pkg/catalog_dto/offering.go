package catalog_dto

// CourseOffering is one raw record from the university course-offering
// search endpoint. Every record maps to exactly one section; records sharing
// a class+course code pair belong to the same course.
type CourseOffering struct {
	NRC         string               `json:"nrc"`
	Class       string               `json:"class"`
	Course      string               `json:"course"`
	Section     string               `json:"section"`
	Title       string               `json:"title"`
	Credits     string               `json:"credits"`
	Term        string               `json:"term"`
	PTRM        string               `json:"ptrm"`
	Campus      string               `json:"campus"`
	SeatsAvail  string               `json:"seatsavail"`
	MaxEnrol    string               `json:"maxenrol"`
	Schedules   []OfferingSchedule   `json:"schedules"`
	Instructors []OfferingInstructor `json:"instructors"`
}

// OfferingSchedule carries one meeting pattern of an offering. The weekday
// fields are presence flags: a day is active when its field holds the day's
// own letter (the catalog sends the letter or an empty string). TimeIni and
// TimeFin are 4-digit 24-hour strings, e.g. "0900".
type OfferingSchedule struct {
	TimeIni   string `json:"time_ini"`
	TimeFin   string `json:"time_fin"`
	Classroom string `json:"classroom"`
	Building  string `json:"building"`
	L         string `json:"l"`
	M         string `json:"m"`
	I         string `json:"i"`
	J         string `json:"j"`
	V         string `json:"v"`
	S         string `json:"s"`
}

type OfferingInstructor struct {
	Name string `json:"name"`
}
