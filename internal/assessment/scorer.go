package assessment

import (
	"math"

	"shifra-server/internal/models"
)

// ScoreCategories reduces an answer set into one normalized score per
// category.
//
// Normalization is position-based: each answered question contributes
// 1 - optionIndex/(optionCount-1), so the first option counts as full
// signal and the last as none. Per-category contributions are averaged and
// expressed on a 0-100 scale. A category with no answered questions scores
// exactly 0; division by zero cannot occur.
//
// The result is keyed over every category present in the question list,
// answered or not. Answers pointing at unknown question indexes are ignored.
func ScoreCategories(questions []Question, answers models.AnswerSet) models.CategoryScores {
	scores := make(models.CategoryScores)
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, q := range questions {
		scores[q.Category] = 0
	}

	for i, q := range questions {
		opt, ok := answers[i]
		if !ok {
			continue
		}
		if opt < 0 || opt >= len(q.Options) {
			continue
		}
		contribution := 1.0
		if len(q.Options) > 1 {
			contribution = 1 - float64(opt)/float64(len(q.Options)-1)
		}
		sums[q.Category] += contribution
		counts[q.Category]++
	}

	for category, n := range counts {
		if n == 0 {
			continue
		}
		score := sums[category] / float64(n) * 100
		// Two decimals is plenty for a percentage shown in the UI.
		scores[category] = math.Round(score*100) / 100
	}

	return scores
}
