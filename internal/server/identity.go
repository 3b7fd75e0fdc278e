package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	stderrors "shifra-server/internal/common/errors"
)

const userIDHeader = "X-User-ID"

// currentUserID resolves the caller's identity. There is no authentication
// layer; callers pass an explicit user id in the X-User-ID header, and
// when it is absent the configured demo user fills in.
func (s *Server) currentUserID(c *gin.Context) (int64, error) {
	raw := c.GetHeader(userIDHeader)
	if raw == "" {
		if s.demoUserID > 0 {
			return s.demoUserID, nil
		}
		return 0, stderrors.NewInvalidInputError("X-User-ID header is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, stderrors.NewInvalidInputError("X-User-ID must be a positive integer")
	}
	return id, nil
}
