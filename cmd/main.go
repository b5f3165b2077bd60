package main

import (
	"log"

	"uniapi/internal/config"
	"uniapi/internal/db"
	"uniapi/internal/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	store, err := db.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		// Keep serving without a database: writes fail with 503,
		// reads return empty results, /test reports the state.
		log.Printf("MongoDB unavailable: %v", err)
		store = db.Unconnected(cfg.DBName)
	} else {
		log.Println("✅ Connected to MongoDB")
	}

	router.Setup(app, store, cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
