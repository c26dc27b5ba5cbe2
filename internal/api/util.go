package api

import (
	"errors"
	"net/http"

	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/game"
	"github.com/ericogr/saber-duel/internal/logging"
	"github.com/ericogr/saber-duel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionIDParam returns the validated :sessionID path parameter. It writes
// a 400 response and returns false when the id is not a UUID.
func sessionIDParam(c *gin.Context) (string, bool) {
	id := c.Param("sessionID")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionID})
		return "", false
	}
	return id, true
}

// invalidRequest answers 400 with the binding error as details.
func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		constants.JSONKeyError:   constants.ErrInvalidRequest,
		constants.JSONKeyDetails: err.Error(),
	})
}

// writeServiceError maps controller errors to HTTP responses. When s is not
// nil the current session view is included so the shell can re-render.
func writeServiceError(c *gin.Context, err error, s *game.Session) {
	body := gin.H{}
	if s != nil {
		body[constants.JSONKeySession] = NewSessionView(s)
	}
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
		body[constants.JSONKeyError] = constants.ErrSessionNotFound
	case errors.Is(err, game.ErrNoTarget):
		status = http.StatusConflict
		body[constants.JSONKeyError] = game.MsgSelectEnemy
	case errors.Is(err, game.ErrUnknownCharacter):
		status = http.StatusBadRequest
		body[constants.JSONKeyError] = constants.ErrUnknownCharacter
	case errors.Is(err, game.ErrCharacterUnavailable):
		status = http.StatusConflict
		body[constants.JSONKeyError] = constants.ErrCharacterUnavailable
	default:
		logging.Error("session operation failed", err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		if c.Request.Method == http.MethodGet {
			body[constants.JSONKeyError] = constants.ErrFailedLoadSession
		} else {
			body[constants.JSONKeyError] = constants.ErrFailedUpdateSession
		}
	}
	c.JSON(status, body)
}
