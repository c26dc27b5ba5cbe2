package api

import (
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/keys"
	"github.com/ericogr/saber-duel/internal/logging"
	"github.com/ericogr/saber-duel/internal/portrait"

	"github.com/gin-gonic/gin"
)

// ServePortrait serves a character portrait. URL format:
// /api/assets/portraits/<character key>.png
func (h *SessionHandler) ServePortrait(c *gin.Context) {
	file := strings.TrimPrefix(c.Param("file"), "/")
	if file == "" || path.Ext(file) != ".png" {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPortraitNotFound})
		return
	}
	key := strings.TrimSuffix(file, ".png")

	image := ""
	for _, ch := range h.ctrl.Roster() {
		if keys.CharacterKey(ch.Name) == key {
			image = ch.Image
			break
		}
	}
	if image == "" {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPortraitNotFound})
		return
	}

	b, err := h.portraits.PNG(image)
	if err != nil {
		if errors.Is(err, portrait.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPortraitNotFound})
			return
		}
		logging.Error("failed to render portrait", err, logging.Fields{constants.LogFieldKey: key})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRenderPortrait})
		return
	}
	c.Header(constants.CacheControlHeader, constants.CacheControlAssets)
	c.Data(http.StatusOK, constants.ContentTypePNG, b)
}
