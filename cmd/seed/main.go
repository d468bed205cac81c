// One-shot seeding of the category table (and an optional demo user).
package main

import (
	"context"
	"flag"
	"log"

	"github.com/agnesederberg/Final-project-2/internal/auth"
	"github.com/agnesederberg/Final-project-2/internal/config"
	"github.com/agnesederberg/Final-project-2/internal/database"
	"github.com/agnesederberg/Final-project-2/internal/models"
	"github.com/agnesederberg/Final-project-2/internal/repository"

	"github.com/joho/godotenv"
)

var defaultCategories = []string{"Personal", "Work", "Study", "Ideas"}

func main() {
	withDemoUser := flag.Bool("demo-user", false, "also create a demo user")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	repo := repository.NewGorm(db)
	ctx := context.Background()

	existing, err := repo.ListCategories(ctx)
	if err != nil {
		log.Fatal("Failed to list categories:", err)
	}
	present := make(map[string]bool, len(existing))
	for _, c := range existing {
		present[c.Name] = true
	}

	for _, name := range defaultCategories {
		if present[name] {
			continue
		}
		if err := repo.CreateCategory(ctx, &models.Category{Name: name}); err != nil {
			log.Fatal("Failed to create category:", err)
		}
		log.Printf("Created category %q", name)
	}

	if *withDemoUser {
		hash, err := auth.HashPassword("demo1234")
		if err != nil {
			log.Fatal("Failed to hash demo password:", err)
		}
		user := models.User{Name: "Demo User", Email: "demo@example.com", PasswordHash: hash}
		if err := repo.CreateUser(ctx, &user); err != nil {
			log.Println("Demo user not created (may already exist):", err)
		} else {
			log.Printf("Created demo user %s", user.Email)
		}
	}

	log.Println("Seeding done")
}
