package api

import (
	"net/http"

	"github.com/ericogr/saber-duel/internal/version"
	"github.com/gin-gonic/gin"
)

// Version returns build and VCS metadata.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}
