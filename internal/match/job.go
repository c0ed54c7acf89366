package match

import (
	"strings"
	"time"
)

type Job struct {
	ID          int64
	Title       string
	Company     string
	Location    string
	Experience  string
	Skills      string
	Salary      string
	Description string
	JobType     string
	Education   string
	URL         string
	PostedDate  time.Time
}

// Valid reports whether the record belongs in the searchable corpus.
func (j Job) Valid() bool {
	return strings.TrimSpace(j.Title) != "" && strings.TrimSpace(j.Company) != ""
}

// SearchText is the document side of the similarity comparison.
func (j Job) SearchText() string {
	return j.Title + " " + j.Company + " " + j.Skills + " " + j.Description
}
