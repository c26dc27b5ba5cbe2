package api

import (
	"errors"
	"net/http"

	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/logging"
	"github.com/ericogr/saber-duel/internal/service"

	"github.com/gin-gonic/gin"
)

type SelectRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateSession starts a new game and issues the session token as a cookie.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	s, err := h.ctrl.CreateSession()
	if err != nil {
		logging.Error("failed to create session", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateSession})
		return
	}
	token, err := h.tokens.Issue(s.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateSession})
		return
	}
	setSessionCookie(c, token, h.tokens.TTL(), h.secureCookie)
	c.JSON(http.StatusCreated, gin.H{
		constants.JSONKeySession: NewSessionView(s),
		constants.JSONKeyToken:   token,
	})
}

// GetSession returns the current view of a session.
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	s, err := h.ctrl.GetSession(id)
	if err != nil {
		writeServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, NewSessionView(s))
}

// SelectPlayer picks the player character. A second pick is ignored and
// reported with changed=false.
func (h *SessionHandler) SelectPlayer(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	s, changed, err := h.ctrl.SelectPlayer(id, req.Name)
	if err != nil {
		writeServiceError(c, err, s)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySession: NewSessionView(s), constants.JSONKeyChanged: changed})
}

// SelectEnemy picks the next opponent. A pick while an enemy is in combat
// is ignored and reported with changed=false.
func (h *SessionHandler) SelectEnemy(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	s, changed, err := h.ctrl.SelectEnemy(id, req.Name)
	if err != nil {
		writeServiceError(c, err, s)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySession: NewSessionView(s), constants.JSONKeyChanged: changed})
}

// Attack resolves one round. Without an opponent it answers 409 with the
// "Select an enemy!" prompt.
func (h *SessionHandler) Attack(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	s, res, err := h.ctrl.Attack(id)
	if err != nil {
		writeServiceError(c, err, s)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySession: NewSessionView(s), constants.JSONKeyRound: res})
}

// Reset restarts the session from the original roster.
func (h *SessionHandler) Reset(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	s, err := h.ctrl.Reset(id)
	if err != nil {
		writeServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySession: NewSessionView(s)})
}

// EndSession deletes the session and clears the caller's session cookie.
func (h *SessionHandler) EndSession(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	if err := h.ctrl.EndSession(id); err != nil {
		if !errors.Is(err, service.ErrSessionNotFound) {
			logging.Error("failed to end session", err, logging.Fields{constants.LogFieldSessionID: id})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEndSession})
			return
		}
		writeServiceError(c, err, nil)
		return
	}
	clearSessionCookie(c, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgSessionEnded})
}
