package stats

import (
	"sort"
	"strings"
	"time"

	"job-scout/internal/match"
)

type Count struct {
	Name  string
	Count int
}

type Summary struct {
	TotalJobs              int
	RecentJobs             int
	TopCompanies           []Count
	TopLocations           []Count
	TopSkills              []Count
	ExperienceDistribution []Count
}

var trackedSkills = []string{
	"python", "java", "javascript", "react", "angular", "sql", "aws",
	"docker", "kubernetes", "git", "html", "css", "php", "node.js",
}

// Summarize computes corpus statistics over one snapshot. Pure: same
// snapshot and reference time always yield the same summary.
func Summarize(jobs []match.Job, now time.Time) Summary {
	companies := map[string]int{}
	locations := map[string]int{}
	skills := map[string]int{}
	experience := map[string]int{}
	recent := 0

	today := now.UTC().Truncate(24 * time.Hour)

	for _, j := range jobs {
		if c := strings.TrimSpace(j.Company); c != "" {
			companies[c]++
		}
		if l := strings.TrimSpace(j.Location); l != "" {
			locations[l]++
		}
		if e := strings.TrimSpace(j.Experience); e != "" {
			experience[e]++
		}

		jobSkills := strings.ToLower(j.Skills)
		for _, s := range trackedSkills {
			if strings.Contains(jobSkills, s) {
				skills[s]++
			}
		}

		if !j.PostedDate.IsZero() && !j.PostedDate.Before(today) {
			recent++
		}
	}

	return Summary{
		TotalJobs:              len(jobs),
		RecentJobs:             recent,
		TopCompanies:           topCounts(companies, 10),
		TopLocations:           topCounts(locations, 10),
		TopSkills:              topCounts(skills, 15),
		ExperienceDistribution: topCounts(experience, 0),
	}
}

// topCounts orders by count descending, name ascending for equal counts,
// and keeps the first limit entries (limit <= 0 keeps all).
func topCounts(m map[string]int, limit int) []Count {
	out := make([]Count, 0, len(m))
	for name, n := range m {
		out = append(out, Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
