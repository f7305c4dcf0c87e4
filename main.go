package main

import (
	"log"
	"net/http"

	"vaultpay/config"
	_ "vaultpay/docs"
	"vaultpay/jobs"
	"vaultpay/routes"

	"github.com/gin-gonic/gin"
)

// @title VaultPay API
// @version 1.0
// @description Deposit/withdrawal platform backend serving the admin back-office and user dashboard.
// @BasePath /
func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)
	config.InitSwagger(router)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	addr := config.Port()
	log.Printf("Server starting on %s...", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
