package recommend

import (
	"encoding/json"
	"strings"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// careerPayload mirrors the JSON shape the recommendation prompt asks the
// model for.
type careerPayload struct {
	Careers []models.RecommendedCareer `json:"careers"`
}

// ParseCareers extracts the career list from raw model output. The model is
// asked for pure JSON but routinely wraps it in prose or markdown fences,
// so the parser scans for the first balanced top-level JSON object and
// decodes that. A response with no such object, or one whose object decodes
// to an empty career list, is a malformed-response error.
func ParseCareers(raw string) ([]models.RecommendedCareer, error) {
	candidate := extractJSONObject(raw)
	if candidate == "" {
		return nil, stderrors.NewLLMMalformedResponseError("no JSON object in response")
	}

	var payload careerPayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, stderrors.NewLLMMalformedResponseError("JSON object did not decode: " + err.Error())
	}
	if len(payload.Careers) == 0 {
		return nil, stderrors.NewLLMMalformedResponseError("decoded object has no careers")
	}

	careers := make([]models.RecommendedCareer, 0, len(payload.Careers))
	for _, c := range payload.Careers {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		if c.MatchPercentage < 0 {
			c.MatchPercentage = 0
		} else if c.MatchPercentage > 100 {
			c.MatchPercentage = 100
		}
		if c.Skills == nil {
			c.Skills = []string{}
		}
		careers = append(careers, c)
	}
	if len(careers) == 0 {
		return nil, stderrors.NewLLMMalformedResponseError("every decoded career was missing a name")
	}

	return careers, nil
}

// extractJSONObject returns the first balanced {...} span in s, respecting
// string literals and escapes, or "" when none exists.
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
