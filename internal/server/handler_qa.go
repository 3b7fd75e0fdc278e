package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	stderrors "shifra-server/internal/common/errors"
)

type createQARequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// findAnswer resolves ?question= against the curated corpus.
func (s *Server) findAnswer(c *gin.Context) {
	question := c.Query("question")
	if question == "" {
		s.fail(c, stderrors.NewInvalidInputError("question query parameter is required"))
		return
	}

	answer, err := s.qa.FindAnswer(c.Request.Context(), question)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

func (s *Server) listQA(c *gin.Context) {
	entries, err := s.qa.ListAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) createQA(c *gin.Context) {
	var req createQARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, stderrors.NewInvalidInputError("request body must be JSON"))
		return
	}

	entry, err := s.qa.Create(c.Request.Context(), req.Question, req.Answer, req.Category)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
