package chat

import (
	"fmt"
	"strings"

	"job-scout/internal/stats"
)

var greetingMessages = []string{
	"Hello! I can help you find jobs that match your skills and preferences.",
	"Hi there! Tell me what kind of role you are looking for.",
	"Welcome! Describe your dream job and I'll search for a match.",
	"Hello! Ready to find your next opportunity? Ask me anything about open roles.",
}

// GreetingMessage rotates through the canned greetings by turn count, so
// replies vary across a session without hidden randomness.
func GreetingMessage(turn int) string {
	if turn < 0 {
		turn = 0
	}
	return greetingMessages[turn%len(greetingMessages)]
}

var suggestionsByIntent = map[Intent][]string{
	IntentGreeting: {
		"Find Python developer jobs",
		"Show me remote opportunities",
		"Jobs for freshers",
		"What can you help me with?",
	},
	IntentJobSearch: {
		"Show me more similar jobs",
		"Filter by location",
		"Get job statistics",
	},
	IntentSkill: {
		"Show more jobs with these skills",
		"Filter by experience level",
		"Find jobs in specific locations",
	},
	IntentLocation: {
		"Show more jobs in this area",
		"Filter by skill requirements",
		"Remote work opportunities",
	},
	IntentExperience: {
		"Show entry-level positions",
		"Senior level opportunities",
	},
	IntentStatistics: {
		"Show trending skills",
		"Top hiring companies",
		"Popular job locations",
	},
	IntentHelp: {
		"Find Python jobs",
		"Show remote opportunities",
		"Jobs for freshers",
		"Get job market stats",
	},
	IntentGeneral: {
		"Find jobs by skills",
		"Search by location",
		"Filter by experience",
		"Get help with search",
	},
}

func Suggestions(intent Intent) []string {
	if s, ok := suggestionsByIntent[intent]; ok {
		out := make([]string, len(s))
		copy(out, s)
		return out
	}
	return nil
}

const goodbyeMessage = "Thanks for stopping by! Good luck with your job search, come back anytime."

func GoodbyeMessage() string { return goodbyeMessage }

func HelpMessage() string {
	return strings.TrimSpace(`
I can help you find jobs. Try:
- "Find Python developer jobs"
- "Jobs for freshers in Bangalore"
- "2 years experience openings"
- "Remote work opportunities"
- "Show job market statistics"
Just describe what you are looking for.`)
}

// FormatStatistics renders a summary as chat text.
func FormatStatistics(s stats.Summary) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Job Market Statistics\n\n")
	fmt.Fprintf(&b, "Total jobs available: %d\n", s.TotalJobs)
	fmt.Fprintf(&b, "Recently posted: %d\n", s.RecentJobs)

	writeSection := func(title string, counts []stats.Count, limit int) {
		if len(counts) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		for i, c := range counts {
			if limit > 0 && i >= limit {
				break
			}
			fmt.Fprintf(&b, "  - %s: %d jobs\n", c.Name, c.Count)
		}
	}

	writeSection("Top hiring companies", s.TopCompanies, 5)
	writeSection("Popular locations", s.TopLocations, 5)
	writeSection("In-demand skills", s.TopSkills, 5)

	return strings.TrimRight(b.String(), "\n")
}
