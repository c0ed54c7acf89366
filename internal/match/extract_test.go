package match

import (
	"reflect"
	"testing"
)

func TestExtract_SkillsAndLocations(t *testing.T) {
	req := Extract("Python developer in Bangalore with Django and SQL")

	wantSkills := []string{"python", "sql", "django"}
	if !reflect.DeepEqual(req.Skills, wantSkills) {
		t.Fatalf("skills: got %v, want %v", req.Skills, wantSkills)
	}
	if !reflect.DeepEqual(req.Locations, []string{"bangalore"}) {
		t.Fatalf("locations: got %v", req.Locations)
	}
}

func TestExtract_SubstringMatchIsRecallBiased(t *testing.T) {
	// "reactive" contains "react"; preserved as-observed behavior.
	req := Extract("reactive programming role")
	if len(req.Skills) != 1 || req.Skills[0] != "react" {
		t.Fatalf("expected react to match by substring, got %v", req.Skills)
	}
}

func TestExtract_ExperienceOrdering(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"3 years experience", "3 years experience"},
		{"2-3 yrs role", "2-3 yrs"},
		{"fresher role", "fresher"},
		{"entry level opening", "entry level"},
		// Numeric pattern outranks the bare keyword.
		{"fresher with 2 years experience", "2 years experience"},
		{"senior position", "senior"},
		{"no experience mentioned here at all", ""},
	}
	for _, tt := range tests {
		if got := Extract(tt.query).Experience; got != tt.want {
			t.Fatalf("query %q: experience=%q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestExtract_Salary(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"looking for 6 lpa package", "6 lpa"},
		{"salary of 500000", "salary of 500000"},
		{"around 40k per month", "40k"},
		{"no numbers", ""},
	}
	for _, tt := range tests {
		if got := Extract(tt.query).Salary; got != tt.want {
			t.Fatalf("query %q: salary=%q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestExtract_JobTypeCascade(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"permanent position", "full-time"},
		{"part time evening work", "part-time"},
		{"summer internship", "internship"},
		{"freelance contract gig", "contract"},
		// First matching group wins over later ones.
		{"full time internship", "full-time"},
		{"just a job", ""},
	}
	for _, tt := range tests {
		if got := Extract(tt.query).JobType; got != tt.want {
			t.Fatalf("query %q: jobType=%q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestExtract_DegenerateQuery(t *testing.T) {
	req := Extract("asdkfj")
	if len(req.Skills) != 0 || len(req.Locations) != 0 ||
		req.Experience != "" || req.Salary != "" || req.JobType != "" {
		t.Fatalf("expected empty requirements, got %+v", req)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	q := "java developer 2 years experience in pune, full time, 5 lpa"
	first := Extract(q)
	for i := 0; i < 5; i++ {
		if got := Extract(q); !reflect.DeepEqual(got, first) {
			t.Fatalf("extraction not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestExtract_SkillAliases(t *testing.T) {
	req := Extract("postgres and k8s admin")
	want := []string{"postgresql", "kubernetes"}
	if !reflect.DeepEqual(req.Skills, want) {
		t.Fatalf("aliases not mapped: got %v, want %v", req.Skills, want)
	}

	// Canonical form present: alias must not duplicate it. The substring
	// scan also picks up "sql" inside "postgresql".
	req = Extract("postgresql or postgres")
	want = []string{"sql", "postgresql"}
	if !reflect.DeepEqual(req.Skills, want) {
		t.Fatalf("expected %v, got %v", want, req.Skills)
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Python, Developer!  ", "python developer"},
		{"node.js & SQL", "nodejs sql"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeQuery(tt.in); got != tt.want {
			t.Fatalf("NormalizeQuery(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
