package api

import (
	"github.com/ericogr/saber-duel/internal/constants"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API on router.
func RegisterRoutes(router *gin.Engine, h *SessionHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteRoster, h.ListRoster)
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteAssetsPortraits+"/*file", h.ServePortrait)
		apiRoutes.POST(constants.RouteSessions, h.CreateSession)

		// Endpoints bound to the caller's session token
		protected := apiRoutes.Group("")
		protected.Use(SessionRequired(h.tokens))

		protected.GET(constants.RouteSessionByID, h.GetSession)
		protected.DELETE(constants.RouteSessionByID, h.EndSession)
		protected.POST(constants.RouteSessionPlayer, h.SelectPlayer)
		protected.POST(constants.RouteSessionEnemy, h.SelectEnemy)
		protected.POST(constants.RouteSessionAttack, h.Attack)
		protected.POST(constants.RouteSessionReset, h.Reset)
	}
}
