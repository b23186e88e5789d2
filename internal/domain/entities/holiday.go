package entities

import "time"

// Holiday is a non-working calendar date (feriado).
type Holiday struct {
	Date time.Time `json:"data"`
	Name string    `json:"nome"`
}
