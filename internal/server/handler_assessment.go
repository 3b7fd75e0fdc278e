package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shifra-server/internal/assessment"
	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/common/metrics"
	"shifra-server/internal/common/validation"
	"shifra-server/internal/models"
)

// assessmentSchema validates the submission body before any typed
// decoding happens.
var assessmentSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"type": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{"personality", "aptitude", "interest"},
		},
		"answers": map[string]interface{}{
			"type": "object",
			"additionalProperties": map[string]interface{}{
				"type":    "integer",
				"minimum": 0,
			},
		},
	},
	"required":             []interface{}{"type", "answers"},
	"additionalProperties": false,
}

func (s *Server) getQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, s.questions)
}

func (s *Server) listAssessments(c *gin.Context) {
	userID, err := s.currentUserID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	assessments, err := s.assessments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, assessments)
}

// createAssessment scores and stores a completed answer set. Scoring is
// deterministic so the stored snapshot can be recomputed from the answers.
func (s *Server) createAssessment(c *gin.Context) {
	userID, err := s.currentUserID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, stderrors.NewInvalidInputError("request body must be JSON"))
		return
	}

	result, err := validation.Validate(body, assessmentSchema)
	if err != nil {
		s.fail(c, stderrors.NewInternalError(err))
		return
	}
	if !result.Valid {
		s.fail(c, stderrors.NewInvalidInputError(strings.Join(result.ErrorStrings(), "; ")))
		return
	}

	answers, err := decodeAnswers(body["answers"].(map[string]interface{}), len(s.questions))
	if err != nil {
		s.fail(c, err)
		return
	}

	a := &models.Assessment{
		UserID:  userID,
		Type:    models.AssessmentType(body["type"].(string)),
		Answers: answers,
		Scores:  assessment.ScoreCategories(s.questions, answers),
	}
	a, err = s.assessments.Create(c.Request.Context(), a)
	if err != nil {
		s.fail(c, err)
		return
	}

	metrics.AssessmentsCompletedTotal.WithLabelValues(string(a.Type)).Inc()
	c.JSON(http.StatusCreated, a)
}

// decodeAnswers converts the JSON object keys into question indexes and
// checks every answer against the catalog bounds.
func decodeAnswers(raw map[string]interface{}, questionCount int) (models.AnswerSet, error) {
	answers := make(models.AnswerSet, len(raw))
	for key, value := range raw {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= questionCount {
			return nil, stderrors.NewInvalidInputError("answer key " + key + " is not a valid question index")
		}
		opt, ok := value.(float64)
		if !ok || opt != float64(int(opt)) || opt < 0 {
			return nil, stderrors.NewInvalidInputError("answer for question " + key + " must be a non-negative integer")
		}
		answers[idx] = int(opt)
	}
	if len(answers) == 0 {
		return nil, stderrors.NewInvalidInputError("answers must not be empty")
	}
	return answers, nil
}
