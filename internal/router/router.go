package router

import (
	"uniapi/internal/config"
	"uniapi/internal/db"
	"uniapi/internal/handlers"
	"uniapi/internal/middleware"
	"uniapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Setup wires every route onto the app. The store is injected rather
// than held in a package global so tests can run against an unconnected
// instance.
func Setup(app *fiber.App, store *db.Store, cfg *config.Config) {
	authService := services.NewAuthService(store, cfg.JWTSecret)
	courseService := services.NewCourseService(store)
	enrollmentService := services.NewEnrollmentService(store)

	system := handlers.NewSystemHandler(store)
	authHandler := handlers.NewAuthHandler(authService)
	courseHandler := handlers.NewCourseHandler(courseService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)

	app.Get("/", system.Root)
	app.Get("/test", system.Test)

	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.Auth(cfg.JWTSecret), authHandler.Me)

	app.Post("/courses", courseHandler.Create)
	app.Get("/courses", courseHandler.List)

	app.Post("/enroll", enrollmentHandler.Enroll)
	app.Get("/users/:user_id/enrollments", enrollmentHandler.ListForUser)
}
