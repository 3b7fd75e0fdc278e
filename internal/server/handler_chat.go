package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	stderrors "shifra-server/internal/common/errors"
)

type createChatRequest struct {
	Title string `json:"title"`
}

type postMessageRequest struct {
	Content string `json:"content"`
}

func (s *Server) listChats(c *gin.Context) {
	userID, err := s.currentUserID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	chats, err := s.chats.ListChats(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

func (s *Server) createChat(c *gin.Context) {
	userID, err := s.currentUserID(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	var req createChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, stderrors.NewInvalidInputError("request body must be JSON"))
		return
	}

	chat, err := s.chats.StartChat(c.Request.Context(), userID, req.Title)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, chat)
}

func (s *Server) getChat(c *gin.Context) {
	chatID, err := pathID(c, "id")
	if err != nil {
		s.fail(c, err)
		return
	}

	history, err := s.chats.History(c.Request.Context(), chatID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": history})
}

func (s *Server) getChatMessages(c *gin.Context) {
	chatID, err := pathID(c, "id")
	if err != nil {
		s.fail(c, err)
		return
	}

	messages, err := s.chats.History(c.Request.Context(), chatID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// postChatMessage appends the user's message and returns the assistant
// reply. A degraded reply still returns 201; the client cannot tell a
// fallback apart from a real answer.
func (s *Server) postChatMessage(c *gin.Context) {
	chatID, err := pathID(c, "id")
	if err != nil {
		s.fail(c, err)
		return
	}

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, stderrors.NewInvalidInputError("request body must be JSON"))
		return
	}

	reply, err := s.chats.Send(c.Request.Context(), chatID, req.Content)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// fail renders an error with the standard wire mapping.
func (s *Server) fail(c *gin.Context, err error) {
	status, body := stderrors.ToResponse(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		})
	}
	c.JSON(status, body)
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, stderrors.NewInvalidInputError(name + " must be a positive integer")
	}
	return id, nil
}
