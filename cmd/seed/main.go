package main

import (
	"log"

	"github.com/Tw1zzzzz/CisBot2/internal/config"
	"github.com/Tw1zzzzz/CisBot2/internal/db"
)

func main() {
	cfg := config.New()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	if err := db.SeedDemoData(database); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}
