package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRoster returns the characters every session starts with.
func (h *SessionHandler) ListRoster(c *gin.Context) {
	c.JSON(http.StatusOK, newCharacterViews(h.ctrl.Roster()))
}
