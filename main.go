package main

import (
	"fmt"
	"log"

	"github.com/gustavogalazzo/YummyGo/configs"
	"github.com/gustavogalazzo/YummyGo/middlewares"
	"github.com/gustavogalazzo/YummyGo/pkg/payments"
	"github.com/gustavogalazzo/YummyGo/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedDemoData(); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	// Payment processor
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, gateway)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
