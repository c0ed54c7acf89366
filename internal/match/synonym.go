package match

import "strings"

type skillAlias struct {
	Alias     string
	Canonical string
}

// skillAliases maps spellings seen in queries to the canonical vocabulary
// entry. Only aliases the substring scan would otherwise miss belong here;
// "reactjs" already matches "react" and needs no entry. Kept as an ordered
// slice so extraction output is deterministic.
var skillAliases = []skillAlias{
	{"postgres", "postgresql"},
	{"k8s", "kubernetes"},
	{"nodejs", "node.js"},
	{"node js", "node.js"},
	{"ecmascript", "javascript"},
}

func expandSkillAliases(q string, skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		seen[s] = struct{}{}
	}
	for _, a := range skillAliases {
		if !strings.Contains(q, a.Alias) {
			continue
		}
		if _, ok := seen[a.Canonical]; ok {
			continue
		}
		seen[a.Canonical] = struct{}{}
		skills = append(skills, a.Canonical)
	}
	return skills
}
