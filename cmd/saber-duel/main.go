package main

import (
	"net/http"

	"github.com/ericogr/saber-duel/internal/api"
	"github.com/ericogr/saber-duel/internal/config"
	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/logging"
	"github.com/ericogr/saber-duel/internal/portrait"
	"github.com/ericogr/saber-duel/internal/service"
	"github.com/ericogr/saber-duel/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := config.LoadEnv(".env")
	if err != nil {
		logging.Fatal("Invalid environment", err, nil)
	}
	logging.SetLevel(logging.ParseLevel(env.LogLevel))

	cfg := loadConfigOrExit(env.ConfigPath)
	repo := createRepositoryOrExit(env.DBPath)
	ctrl := service.NewController(repo, cfg.Roster)

	tokens, err := api.NewTokenIssuer(env.SessionSecret, env.SessionTTL)
	if err != nil {
		logging.Fatal("Failed to initialize session tokens", err, nil)
	}
	handler := api.NewSessionHandler(ctrl, portrait.NewStore(env.AssetsDir, constants.PortraitSize), tokens, env.SecureCookie)

	startIdleSweeper(ctrl, env.IdleSessionTTL)

	router := newRouter(env.GinMode)
	router.GET(constants.RouteHealth, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	api.RegisterRoutes(router, handler)

	addr := env.ServerAddress
	if cfg.ServerAddress != "" {
		addr = cfg.ServerAddress
	}
	info := version.Get()
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: addr,
		"version":              info.Version,
		"roster_size":          len(cfg.Roster),
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
