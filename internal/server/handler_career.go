package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

type createSuggestionRequest struct {
	// RecommendedCareers, when present, is stored as-is. When absent the
	// server generates a fresh set from the user's latest assessment.
	RecommendedCareers []models.RecommendedCareer `json:"recommendedCareers"`
}

func (s *Server) listCareers(c *gin.Context) {
	careers, err := s.careers.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, careers)
}

func (s *Server) listCareerCourses(c *gin.Context) {
	careerID, err := pathID(c, "careerId")
	if err != nil {
		s.fail(c, err)
		return
	}

	if _, err := s.careers.GetByID(c.Request.Context(), careerID); err != nil {
		s.fail(c, err)
		return
	}

	courses, err := s.careers.ListCourses(c.Request.Context(), careerID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (s *Server) createCareerSuggestion(c *gin.Context) {
	userID, err := s.currentUserID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	var req createSuggestionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			s.fail(c, stderrors.NewInvalidInputError("request body must be JSON"))
			return
		}
	}

	var suggestion *models.CareerSuggestion
	if len(req.RecommendedCareers) > 0 {
		suggestion, err = s.recommender.Save(c.Request.Context(), userID, req.RecommendedCareers)
	} else {
		suggestion, err = s.recommender.Generate(c.Request.Context(), userID)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, suggestion)
}

func (s *Server) listCareerSuggestions(c *gin.Context) {
	userID, err := s.currentUserID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	suggestions, err := s.recommender.History(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

func (s *Server) getLatestCareerSuggestion(c *gin.Context) {
	userID, err := s.currentUserID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	suggestion, err := s.recommender.Latest(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func (s *Server) listQuickOptions(c *gin.Context) {
	options, err := s.quickOptions.ListActive(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}
