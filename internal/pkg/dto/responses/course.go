package responses

type Meeting struct {
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location"`
}

type Section struct {
	NRC            string    `json:"nrc"`
	Label          string    `json:"label"`
	Term           string    `json:"term"`
	PTRM           string    `json:"ptrm"`
	Campus         string    `json:"campus"`
	Meetings       []Meeting `json:"meetings"`
	Instructors    []string  `json:"instructors"`
	AvailableSeats int       `json:"available_seats"`
	TotalSeats     int       `json:"total_seats"`
}

type Course struct {
	Code     string    `json:"code"`
	Title    string    `json:"title"`
	Credits  int       `json:"credits"`
	Sections []Section `json:"sections"`
}
