package responses

type Schedule struct {
	Sections []Section `json:"sections"`
}

type GenerateSchedules struct {
	Count     int        `json:"count"`
	Schedules []Schedule `json:"schedules"`
}
