package main

import (
	"log"

	"github.com/joblyhq/jobly/internal/auth"
	"github.com/joblyhq/jobly/internal/config"
	"github.com/joblyhq/jobly/internal/database"
	"github.com/joblyhq/jobly/internal/handlers"
	"github.com/joblyhq/jobly/internal/middleware"
	"github.com/joblyhq/jobly/internal/server"
	"github.com/joblyhq/jobly/internal/services"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Database connection established")

	// 3. Core Services
	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	userService := services.NewUserService(db, cfg.BcryptCost)
	companyService := services.NewCompanyService(db)
	jobService := services.NewJobService(db)

	// 4. Handlers & Middleware
	h := server.Handlers{
		Auth:      handlers.NewAuthHandler(userService, tokens),
		Companies: handlers.NewCompanyHandler(companyService),
		Jobs:      handlers.NewJobHandler(jobService),
		Users:     handlers.NewUserHandler(userService, tokens),
	}
	authmw := middleware.NewAuth(tokens)

	// 5. Router
	r := server.NewRouter(h, authmw, cfg.AllowedOrigins)

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
