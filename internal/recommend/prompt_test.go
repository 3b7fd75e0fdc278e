package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shifra-server/internal/models"
)

func TestBuildPrompt_FullProfile(t *testing.T) {
	prompt := BuildPrompt(Profile{
		EducationLevel: "Bachelor's",
		Interests:      []string{"AI", "design"},
		CategoryScores: models.CategoryScores{"creative": 80.5, "analytical": 66.67},
		FieldScores:    models.FieldScores{"ux_design": 78, "data_science": 65},
	})

	assert.Contains(t, prompt, "Education level: Bachelor's")
	assert.Contains(t, prompt, "Stated interests: AI, design")
	assert.Contains(t, prompt, "- analytical: 66.67")
	assert.Contains(t, prompt, "- ux_design: 78")
	assert.Contains(t, prompt, `{"careers":[{"name":`)
}

func TestBuildPrompt_EmptyProfileStillAsksForJSON(t *testing.T) {
	prompt := BuildPrompt(Profile{})

	assert.NotContains(t, prompt, "Education level:")
	assert.NotContains(t, prompt, "Aptitude scores")
	assert.Contains(t, prompt, "Respond with JSON only")
}

func TestBuildPrompt_ScoresAreSorted(t *testing.T) {
	prompt := BuildPrompt(Profile{
		CategoryScores: models.CategoryScores{"verbal": 10, "analytical": 20, "creative": 30},
	})

	assert.Less(t, strings.Index(prompt, "analytical"), strings.Index(prompt, "creative"))
	assert.Less(t, strings.Index(prompt, "creative"), strings.Index(prompt, "verbal"))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	p := Profile{
		CategoryScores: models.CategoryScores{"verbal": 10, "analytical": 20, "creative": 30},
		FieldScores:    models.FieldScores{"marketing": 40, "data_science": 60},
	}

	assert.Equal(t, BuildPrompt(p), BuildPrompt(p))
}
