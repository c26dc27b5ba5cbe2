package main

import (
	"github.com/ericogr/saber-duel/internal/config"
	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/logging"
	"github.com/ericogr/saber-duel/internal/storage"

	"github.com/gin-gonic/gin"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid roster configuration", err, logging.Fields{
			constants.LogFieldConfig: path,
			"hint":                   "provide a JSON file with a 'character_list' array of {name,health_points,attack_power,image} and optional server.address",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}

// newRouter keeps gin's request logger outside release mode.
func newRouter(mode string) *gin.Engine {
	if mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery())
		return r
	}
	return gin.Default()
}
