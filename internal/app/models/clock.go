package models

import "fmt"

// Clock holds a local wall time (hour and minute).
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
