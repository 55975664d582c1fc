package db

import (
	"testing"

	"github.com/hiresight/talentd/internal/types"
)

func TestJob_HasRequirement(t *testing.T) {
	tests := []struct {
		name     string
		job      *Job
		expected bool
	}{
		{"nil job", nil, false},
		{"unparsed job", &Job{Title: "Engineer"}, false},
		{"parsed job", &Job{Title: "Engineer", Requirement: &types.RequirementProfile{Title: "Engineer"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.job.HasRequirement(); result != tt.expected {
				t.Errorf("HasRequirement() = %v, want %v", result, tt.expected)
			}
		})
	}
}
