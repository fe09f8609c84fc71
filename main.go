package main

import (
	"log"
	"theatre_manager/config"
	"theatre_manager/database"
	"theatre_manager/helper"
	"theatre_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.StartEventStatusScheduler()
	defer helper.StopEventStatusScheduler()
	helper.StartCleanupScheduler()
	defer helper.StopCleanupScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8000")))
}
