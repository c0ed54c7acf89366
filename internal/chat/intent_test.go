package chat

import "testing"

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"Hello", IntentGreeting},
		{"good morning", IntentGreeting},
		{"I'm looking for a python job", IntentJobSearch},
		{"any openings right now?", IntentJobSearch},
		{"fresher opportunities", IntentJobSearch},
		{"react developer", IntentSkill},
		{"jobs in bangalore", IntentLocation},
		{"work from home options", IntentLocation},
		{"entry level", IntentExperience},
		{"what is the salary range", IntentSalary},
		{"which mnc is best", IntentCompany},
		{"help me out", IntentHelp},
		{"show me statistics", IntentStatistics},
		{"bye", IntentGoodbye},
		{"asdkfj", IntentGeneral},
		{"", IntentGeneral},
	}

	for _, tt := range tests {
		if got := DetectIntent(tt.message); got != tt.want {
			t.Fatalf("DetectIntent(%q)=%s, want %s", tt.message, got, tt.want)
		}
	}
}

func TestDetectIntent_OrderMatters(t *testing.T) {
	// Greeting outranks job search when both could match.
	if got := DetectIntent("hi, I need a job"); got != IntentGreeting {
		t.Fatalf("got %s, want greeting", got)
	}
	// Skill mentions inside a search phrase stay job_search.
	if got := DetectIntent("find a python job for me"); got != IntentJobSearch {
		t.Fatalf("got %s, want job_search", got)
	}
}

func TestGreetingRotationIsDeterministic(t *testing.T) {
	if GreetingMessage(0) != GreetingMessage(len(greetingMessages)) {
		t.Fatalf("rotation should wrap around")
	}
	if GreetingMessage(-1) != GreetingMessage(0) {
		t.Fatalf("negative turn should clamp")
	}
}

func TestSuggestionsCopyIsDetached(t *testing.T) {
	a := Suggestions(IntentGreeting)
	if len(a) == 0 {
		t.Fatalf("expected suggestions for greeting")
	}
	a[0] = "mutated"
	if b := Suggestions(IntentGreeting); b[0] == "mutated" {
		t.Fatalf("suggestions slice must not alias the shared table")
	}
}
