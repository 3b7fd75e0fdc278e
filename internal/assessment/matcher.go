package assessment

import (
	"math"

	"shifra-server/internal/models"
)

// ComputeFieldScores maps category scores onto career fields using the
// weight matrix. For each field the result is the weighted average of the
// category scores, rounded to the nearest integer and clamped to [0,100].
//
// Categories present in the scores but absent from a field's weight row
// contribute nothing; a field whose weights are all zero (or whose
// categories are all unscored) yields 0 rather than an error. The function
// is deterministic: no randomness, same inputs always produce the same map.
func ComputeFieldScores(scores models.CategoryScores, matrix WeightMatrix) models.FieldScores {
	out := make(models.FieldScores, len(matrix))

	for field, weights := range matrix {
		var weightedSum, weightSum float64
		for category, weight := range weights {
			score, ok := scores[category]
			if !ok || weight <= 0 {
				continue
			}
			weightedSum += score * weight
			weightSum += weight
		}

		if weightSum <= 0 {
			out[field] = 0
			continue
		}

		value := int(math.Round(weightedSum / weightSum))
		if value < 0 {
			value = 0
		} else if value > 100 {
			value = 100
		}
		out[field] = value
	}

	return out
}

// TopCategories returns the category tags scoring at or above threshold,
// ordered best first. Used to build the LLM profile prompt.
func TopCategories(scores models.CategoryScores, threshold float64) []string {
	type entry struct {
		category string
		score    float64
	}
	entries := make([]entry, 0, len(scores))
	for category, score := range scores {
		if score >= threshold {
			entries = append(entries, entry{category, score})
		}
	}
	// Insertion sort keeps ties stable by category name for determinism.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			if entries[j].score > entries[j-1].score ||
				(entries[j].score == entries[j-1].score && entries[j].category < entries[j-1].category) {
				entries[j], entries[j-1] = entries[j-1], entries[j]
			} else {
				break
			}
		}
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.category
	}
	return out
}
