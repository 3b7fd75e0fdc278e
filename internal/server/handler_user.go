package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

type createUserRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Age            *int     `json:"age"`
	EducationLevel string   `json:"educationLevel"`
	Interests      []string `json:"interests"`
}

func (s *Server) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, stderrors.NewInvalidInputError("request body must be JSON"))
		return
	}
	if req.Name == "" || req.Email == "" {
		s.fail(c, stderrors.NewInvalidInputError("name and email are required"))
		return
	}

	user, err := s.users.Create(c.Request.Context(), &models.User{
		Name:           req.Name,
		Email:          req.Email,
		Age:            req.Age,
		EducationLevel: req.EducationLevel,
		Interests:      req.Interests,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) getUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.fail(c, err)
		return
	}

	user, err := s.users.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
