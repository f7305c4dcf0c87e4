package config

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

var Ctx = context.Background()

// InitApp loads the environment, connects the backing services and returns
// the router plus the melody/cron instances main wires into jobs and routes.
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	if err := ConnectDatabase(); err != nil {
		return nil, nil, nil, err
	}

	// Redis and Cloudinary are optional at boot; handlers degrade without them.
	if _, err := ConnectRedis(); err != nil {
		log.Printf("Redis unavailable: %v", err)
	}
	if err := InitCloudinary(); err != nil {
		log.Printf("Cloudinary unavailable: %v", err)
	}

	m := melody.New()
	c := cron.New()

	return router, m, c, nil
}

// Port returns the listen address, defaulting to :8083.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8083"
}
