package match

import (
	"regexp"
	"strings"
	"unicode"
)

type Requirements struct {
	Skills     []string
	Locations  []string
	Experience string
	Salary     string
	JobType    string
}

// skillVocabulary is matched by substring against the lowercased query.
// Substring matching is deliberately recall-biased: "reactive" matches
// "react". Tightening this is a product decision, not a cleanup.
var skillVocabulary = []string{
	"python", "java", "javascript", "react", "angular", "node.js", "php",
	"sql", "mysql", "postgresql", "mongodb", "aws", "azure", "docker",
	"kubernetes", "git", "html", "css", "bootstrap", "django", "flask",
	"spring", "hibernate", "rest", "api", "microservices", "devops",
	"machine learning", "ai", "data science", "analytics", "tableau",
	"power bi", "excel", "salesforce", "sap", "oracle", "testing",
	"selenium", "junit", "android", "ios", "swift", "kotlin", "flutter",
	"react native", "unity", "game development", "blockchain", "web3",
}

var locationVocabulary = []string{
	"bangalore", "mumbai", "delhi", "hyderabad", "pune", "chennai",
	"kolkata", "ahmedabad", "gurgaon", "noida", "remote", "work from home",
}

// Pattern order is significant: a query carrying both a number and
// "fresher" must keep the numeric signal.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(\d+)-(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`fresher`),
	regexp.MustCompile(`entry level`),
	regexp.MustCompile(`junior`),
	regexp.MustCompile(`senior`),
}

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:lpa|lakhs?|k|thousand)`),
	regexp.MustCompile(`salary\s*(?:of\s*)?(\d+)`),
	regexp.MustCompile(`(\d+)\s*(?:to|-)?\s*(\d+)\s*(?:lpa|lakhs?)`),
}

type jobTypeRule struct {
	JobType  string
	Keywords []string
}

// Evaluated in order, first rule with any keyword hit wins.
var jobTypeRules = []jobTypeRule{
	{JobType: "full-time", Keywords: []string{"full time", "full-time", "permanent"}},
	{JobType: "part-time", Keywords: []string{"part time", "part-time"}},
	{JobType: "internship", Keywords: []string{"internship", "intern"}},
	{JobType: "contract", Keywords: []string{"contract", "freelance"}},
}

// Extract derives a requirement set from a free-text query. It is pure and
// deterministic; an empty or nonsensical query yields zero-valued fields.
func Extract(query string) Requirements {
	req := Requirements{}
	q := strings.ToLower(query)

	for _, skill := range skillVocabulary {
		if strings.Contains(q, skill) {
			req.Skills = append(req.Skills, skill)
		}
	}
	req.Skills = expandSkillAliases(q, req.Skills)

	for _, loc := range locationVocabulary {
		if strings.Contains(q, loc) {
			req.Locations = append(req.Locations, loc)
		}
	}

	for _, re := range experiencePatterns {
		if m := re.FindString(q); m != "" {
			req.Experience = m
			break
		}
	}

	for _, re := range salaryPatterns {
		if m := re.FindString(q); m != "" {
			req.Salary = m
			break
		}
	}

	for _, rule := range jobTypeRules {
		if anyKeyword(q, rule.Keywords) {
			req.JobType = rule.JobType
			break
		}
	}

	return req
}

func anyKeyword(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// NormalizeQuery lowercases and strips everything except letters, digits
// and single spaces.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}
