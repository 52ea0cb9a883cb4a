package main

import (
	"blogly/config"
	"blogly/models"
	"blogly/routes"
	"blogly/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// Auto-migrate the three entity tables; the posts_tags join table comes along
	db := config.InitDatabase(&models.User{}, &models.Post{}, &models.Tag{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
