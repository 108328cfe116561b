package main

import (
	"log"
	"os"

	"github.com/JUN1078/game-based-learning/config"
	"github.com/JUN1078/game-based-learning/routes"
	"github.com/JUN1078/game-based-learning/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
