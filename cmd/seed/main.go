package main

import (
	"flag"
	"log"

	"github.com/forkful/recipe-api/config"
	"github.com/forkful/recipe-api/internal/database"
	"github.com/forkful/recipe-api/internal/seed"
)

func main() {
	path := flag.String("file", "sample_data/recipes.json", "path to the recipes JSON dump")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Database close error: %v", err)
		}
	}()

	recipes, err := seed.Load(*path)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	if err := seed.Import(db, recipes); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d recipes", len(recipes))
}
