package models

import "time"

// Entry is a single journal record, always owned by exactly one user.
type Entry struct {
	ID     string
	UserID string
	Title  string
	Body   string
	Score  int
	Mood   string
	Date   time.Time
}
