package chat

import (
	"regexp"
	"strings"
)

type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentJobSearch  Intent = "job_search"
	IntentSkill      Intent = "skill_based"
	IntentLocation   Intent = "location_based"
	IntentExperience Intent = "experience_based"
	IntentSalary     Intent = "salary_based"
	IntentCompany    Intent = "company_based"
	IntentHelp       Intent = "help"
	IntentStatistics Intent = "statistics"
	IntentGoodbye    Intent = "goodbye"
	IntentGeneral    Intent = "general"
)

type intentRule struct {
	Intent   Intent
	Patterns []*regexp.Regexp
}

// Rules are evaluated in order; the first matching pattern decides the
// intent, so broader categories must come after narrower ones.
var intentRules = []intentRule{
	{IntentGreeting, compileAll(
		`\b(hi|hello|hey|good morning|good afternoon|good evening)\b`,
		`\b(start|begin)\b`,
	)},
	{IntentJobSearch, compileAll(
		`\b(find|search|looking for|want|need)\b.*\b(job|position|role|career|work|employment)\b`,
		`\b(job|position|role)\b.*\b(in|for|with)\b`,
		`\b(hiring|openings|opportunities|vacancies)\b`,
	)},
	{IntentSkill, compileAll(
		`\b(python|java|javascript|react|angular|php|sql|aws|docker|kubernetes)\b`,
		`\b(developer|engineer|programmer|analyst|designer|manager)\b`,
		`\b(experience|skills|expertise|knowledge)\b.*\b(in|with)\b`,
	)},
	{IntentLocation, compileAll(
		`\b(in|at|from)\b.*\b(bangalore|mumbai|delhi|hyderabad|pune|chennai|remote)\b`,
		`\b(location|city|place|area)\b`,
		`\b(work from home|remote|onsite)\b`,
	)},
	{IntentExperience, compileAll(
		`\b(fresher|entry level|junior|senior|experienced)\b`,
		`\b(\d+)\s*(years?|yrs?)\b.*\b(experience|exp)\b`,
		`\b(experience|exp)\b.*\b(\d+)\s*(years?|yrs?)\b`,
	)},
	{IntentSalary, compileAll(
		`\b(salary|pay|compensation|package|ctc)\b`,
		`\b(\d+)\s*(lpa|lakhs?|k|thousand)\b`,
		`\b(budget|range|expectation)\b`,
	)},
	{IntentCompany, compileAll(
		`\b(company|organization|firm|startup|mnc)\b`,
		`\b(google|microsoft|amazon|infosys|tcs|wipro|accenture)\b`,
	)},
	{IntentHelp, compileAll(
		`\b(help|assist|support|guide|how)\b`,
		`\b(what can you do|capabilities|features)\b`,
	)},
	{IntentStatistics, compileAll(
		`\b(stats|statistics|data|numbers|trends)\b`,
		`\b(how many|total|count)\b.*\b(jobs|positions|openings)\b`,
	)},
	{IntentGoodbye, compileAll(
		`\b(bye|goodbye|thanks|thank you|exit|quit)\b`,
		`\b(that's all|done|finished)\b`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// DetectIntent classifies a message against the ordered rule table and
// falls through to IntentGeneral.
func DetectIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, re := range rule.Patterns {
			if re.MatchString(lower) {
				return rule.Intent
			}
		}
	}
	return IntentGeneral
}
