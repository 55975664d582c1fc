package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequirementSkillSet_UnionLowercasedDeduplicated(t *testing.T) {
	r := &RequirementProfile{
		MandatorySkills: []string{"Python", "  FastAPI ", "python"},
		OptionalSkills:  []string{"Redis", "fastapi", ""},
	}

	set := r.SkillSet()

	assert.Equal(t, map[string]bool{
		"python":  true,
		"fastapi": true,
		"redis":   true,
	}, set)
}

func TestRequirementSkillSet_Empty(t *testing.T) {
	r := &RequirementProfile{Title: "Engineer"}

	assert.Empty(t, r.SkillSet())
}

func TestCandidateSkillSet_LowercasedDeduplicated(t *testing.T) {
	c := &CandidateProfile{Skills: []string{"Go", "go", " Kubernetes ", ""}}

	set := c.SkillSet()

	assert.Equal(t, map[string]bool{"go": true, "kubernetes": true}, set)
}
