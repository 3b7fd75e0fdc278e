package recommend

import (
	"shifra-server/internal/assessment"
	"shifra-server/internal/models"
)

// FallbackCareers converts the pre-authored fallback list into served
// recommendations. When field scores are available, each entry whose field
// tag has a locally computed score gets its match percentage backfilled
// from that score so the numbers still reflect the user's answers.
func FallbackCareers(configured []assessment.FallbackCareer, fieldScores models.FieldScores) []models.RecommendedCareer {
	out := make([]models.RecommendedCareer, 0, len(configured))
	for _, fb := range configured {
		career := models.RecommendedCareer{
			Name:            fb.Name,
			Description:     fb.Description,
			MatchPercentage: fb.MatchPercentage,
			Skills:          append([]string(nil), fb.Skills...),
			AvgSalary:       fb.AvgSalary,
		}
		if score, ok := fieldScores[fb.Field]; ok {
			career.MatchPercentage = score
		}
		out = append(out, career)
	}
	return out
}
