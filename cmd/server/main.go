package main

import (
	"log"
	"net/http"
	"os"

	_ "dailydiet/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dailydiet/internal/cache"
	"dailydiet/internal/config"
	"dailydiet/internal/db"
	"dailydiet/internal/handler"
	"dailydiet/internal/model"
	"dailydiet/internal/repository"
	"dailydiet/internal/router"
	"dailydiet/internal/service"
	"dailydiet/internal/session"
)

// @title Daily Diet API
// @version 1.0
// @description Diet tracking API with cookie-session users, meal CRUD, and streak analytics.
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Meal{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Meal{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	mealRepo := repository.NewMealRepository(gormDB)

	// Session resolver
	resolver := session.NewResolver(userRepo)

	// Services
	userService := service.NewUserService(userRepo)
	mealService := service.NewMealService(mealRepo, cacheClient)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	mealHandler := handler.NewMealHandler(mealService)

	// Routes
	router.Register(e, resolver, userHandler, mealHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
