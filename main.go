package main

import (
	"fmt"
	"log"

	"github.com/Mikjohns10/instabite-backend/configs"
	"github.com/Mikjohns10/instabite-backend/middlewares"
	"github.com/Mikjohns10/instabite-backend/routes"
	"github.com/Mikjohns10/instabite-backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed demo failed: %v", err)
	}

	// live order feed
	feed := ws.NewOrderFeedHub()
	go feed.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, feed)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
