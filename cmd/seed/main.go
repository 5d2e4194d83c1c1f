package main

import (
	"context"
	"log"
	"time"

	"dailydiet/internal/config"
	"dailydiet/internal/db"
	"dailydiet/internal/model"
	"dailydiet/internal/repository"
	"dailydiet/internal/service"
	"dailydiet/internal/session"
)

// seedMeal describes one demo meal relative to a base timestamp.
type seedMeal struct {
	name        string
	description string
	isOnDiet    bool
	offset      time.Duration
}

var demoMeals = []seedMeal{
	{"Oatmeal", "Oats with banana and cinnamon", true, 0},
	{"Grilled chicken salad", "Chicken breast, greens, olive oil", true, 5 * time.Hour},
	{"Pizza night", "Four slices of pepperoni", false, 12 * time.Hour},
	{"Omelette", "Three eggs with spinach", true, 24 * time.Hour},
	{"Tuna wrap", "Whole wheat wrap with tuna", true, 29 * time.Hour},
	{"Baked salmon", "Salmon with roasted vegetables", true, 36 * time.Hour},
	{"Ice cream", "Two scoops of chocolate", false, 38 * time.Hour},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Meal{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	mealRepo := repository.NewMealRepository(gormDB)
	userService := service.NewUserService(userRepo)
	mealService := service.NewMealService(mealRepo, nil)

	ctx := context.Background()

	// Two users on one shared session, one on their own.
	shared := session.NewToken()
	alice, _, _, err := userService.Register(ctx, "Alice", "alice@example.com", shared)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	if _, _, _, err := userService.Register(ctx, "Alice (work)", "alice@work.example.com", shared); err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	bob, bobToken, _, err := userService.Register(ctx, "Bob", "bob@example.com", "")
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	base := time.Now().AddDate(0, 0, -2).Truncate(time.Second)
	seeded := 0
	for _, m := range demoMeals {
		input := service.MealInput{
			Name:        m.name,
			Description: m.description,
			IsOnDiet:    m.isOnDiet,
			Date:        base.Add(m.offset),
		}
		if _, err := mealService.CreateMeal(ctx, alice.ID, input); err != nil {
			log.Fatalf("Failed to seed meal %q: %v", m.name, err)
		}
		seeded++
	}

	// One off-diet meal for Bob so ownership scoping is visible in demos.
	if _, err := mealService.CreateMeal(ctx, bob.ID, service.MealInput{
		Name:     "Burger",
		IsOnDiet: false,
		Date:     base.Add(2 * time.Hour),
	}); err != nil {
		log.Fatalf("Failed to seed meal: %v", err)
	}
	seeded++

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: 3 (session %q shared by two)", shared)
	log.Printf("  - Bob's session token: %s", bobToken)
	log.Printf("  - Meals created: %d", seeded)
}
