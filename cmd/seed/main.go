// Command main runs the database seeder for the caregiver platform.
package main

import (
	"flag"
	"log"

	"carelink/internal/config"
	"carelink/internal/database"
	"carelink/internal/seed"
)

func main() {
	numCaregivers := flag.Int("caregivers", 8, "Number of caregivers to create")
	numMembers := flag.Int("members", 6, "Number of members to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d caregivers, %d members, clean=%v\n",
		*numCaregivers, *numMembers, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumCaregivers: *numCaregivers,
		NumMembers:    *numMembers,
		ShouldClean:   *shouldClean,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
