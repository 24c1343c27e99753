package postings

import "time"

// Posting is a persisted job posting record: the extracted structure plus the
// raw text it was derived from.
type Posting struct {
	ID              string
	Title           string
	Company         string
	Skills          []string
	ExperienceLevel string
	Location        string
	SalaryRange     string
	Summary         string
	RawText         string
	CreatedAt       time.Time
}
