package models

// Schedule is one complete conflict-free selection, exactly one section per
// requested course slot, in slot order.
type Schedule []Section
