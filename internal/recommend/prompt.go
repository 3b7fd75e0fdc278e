package recommend

import (
	"fmt"
	"sort"
	"strings"

	"shifra-server/internal/models"
)

// Profile is everything the recommendation prompt knows about the user.
type Profile struct {
	EducationLevel string
	Interests      []string
	CategoryScores models.CategoryScores
	FieldScores    models.FieldScores
}

// BuildPrompt renders the recommendation request. The model is asked for
// pure JSON in a fixed shape; the parser still tolerates prose around it.
func BuildPrompt(p Profile) string {
	var b strings.Builder

	b.WriteString("You are SHIFRA, a career counseling assistant. ")
	b.WriteString("Based on the aptitude profile below, recommend 4 to 6 careers that fit this person.\n\n")

	if p.EducationLevel != "" {
		fmt.Fprintf(&b, "Education level: %s\n", p.EducationLevel)
	}
	if len(p.Interests) > 0 {
		fmt.Fprintf(&b, "Stated interests: %s\n", strings.Join(p.Interests, ", "))
	}

	if len(p.CategoryScores) > 0 {
		b.WriteString("\nAptitude scores (0-100):\n")
		for _, category := range sortedKeys(p.CategoryScores) {
			fmt.Fprintf(&b, "- %s: %.2f\n", category, p.CategoryScores[category])
		}
	}

	if len(p.FieldScores) > 0 {
		b.WriteString("\nPreliminary field matches (0-100):\n")
		fields := make([]string, 0, len(p.FieldScores))
		for field := range p.FieldScores {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(&b, "- %s: %d\n", field, p.FieldScores[field])
		}
	}

	b.WriteString("\nRespond with JSON only, no commentary, in exactly this shape:\n")
	b.WriteString(`{"careers":[{"name":"...","description":"...","matchPercentage":85,"skills":["..."],"avgSalary":"..."}]}`)
	b.WriteString("\nmatchPercentage must be an integer between 0 and 100. ")
	b.WriteString("Order the careers from best match to worst.")

	return b.String()
}

func sortedKeys(scores models.CategoryScores) []string {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
