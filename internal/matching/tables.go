// Package matching implements the multi-dimensional candidate scoring engine:
// TF-IDF similarity, eight independent dimension scorers, and the weighted
// aggregation that produces ranked, explainable match results.
package matching

import "github.com/hiresight/talentd/internal/types"

// Weights are the fixed per-dimension contributions to the overall score.
// They must sum to 1.0.
type Weights struct {
	Skill        float64
	Experience   float64
	Seniority    float64
	Location     float64
	Compensation float64
	Recency      float64
	Domain       float64
	Availability float64
}

// Tables is the immutable lookup data the scorers consult. It is injected into
// the engine rather than read from package globals so tests can substitute
// fixed tables.
type Tables struct {
	Weights           Weights
	SeniorityLadder   []string
	SkillRelations    map[string][]string
	DomainSkills      map[string][]string
	RelatedIndustries [][]string
}

// DefaultTables returns the production rule tables.
func DefaultTables() Tables {
	return Tables{
		Weights: Weights{
			Skill:        0.30,
			Experience:   0.15,
			Seniority:    0.10,
			Location:     0.10,
			Compensation: 0.10,
			Recency:      0.10,
			Domain:       0.10,
			Availability: 0.05,
		},
		SeniorityLadder: []string{
			types.SeniorityIntern,
			types.SeniorityJunior,
			types.SeniorityMid,
			types.SenioritySenior,
			types.SeniorityLead,
			types.SeniorityPrincipal,
			types.SeniorityManager,
		},
		// Skills considered adjacent to a requirement: possessing one of the
		// values counts as transferable toward the missing key.
		SkillRelations: map[string][]string{
			"python":     {"django", "flask", "fastapi"},
			"java":       {"spring", "spring boot", "kotlin"},
			"javascript": {"typescript", "react", "angular", "vue", "node.js"},
			"typescript": {"javascript", "react", "angular"},
			"react":      {"next.js", "javascript", "typescript"},
			"angular":    {"typescript", "javascript"},
			"aws":        {"cloud", "gcp", "azure"},
			"gcp":        {"cloud", "aws", "azure"},
			"azure":      {"cloud", "gcp", "aws"},
			"postgresql": {"mysql", "sql", "databases"},
			"mysql":      {"postgresql", "sql", "databases"},
			"mongodb":    {"databases", "nosql"},
			"docker":     {"kubernetes", "devops"},
			"kubernetes": {"docker", "devops"},
		},
		DomainSkills: map[string][]string{
			"backend":   {"python", "java", "go", "django", "flask", "spring", "fastapi", "express"},
			"frontend":  {"react", "angular", "vue", "javascript", "typescript", "css", "html"},
			"fullstack": {"react", "python", "javascript", "typescript", "node.js"},
			"devops":    {"docker", "kubernetes", "terraform", "aws", "gcp", "azure", "jenkins"},
			"data":      {"python", "sql", "spark", "hadoop", "airflow", "pandas"},
			"mobile":    {"swift", "kotlin", "react native", "flutter", "dart"},
			"ml":        {"python", "tensorflow", "pytorch", "scikit-learn", "machine learning"},
		},
		RelatedIndustries: [][]string{
			{"fintech", "saas", "ecommerce"},
			{"healthcare", "biotech"},
			{"edtech", "saas"},
			{"ai", "saas", "data"},
		},
	}
}

// industriesRelated reports whether two industry tags belong to the same
// related-industries group.
func (t Tables) industriesRelated(a, b string) bool {
	for _, group := range t.RelatedIndustries {
		inA, inB := false, false
		for _, industry := range group {
			if industry == a {
				inA = true
			}
			if industry == b {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}
