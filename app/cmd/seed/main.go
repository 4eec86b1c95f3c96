package main

import (
	"fmt"
	"log"

	"videopull/app/config"
	"videopull/app/database"
)

// Seeds the fleet reference data so the swap form has buses and drives to
// choose from on a fresh database. Safe to run more than once.
func main() {
	cfg := config.Load()

	db, driver, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, driver); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	if err := database.SeedDefaults(db); err != nil {
		log.Fatal("Failed to seed reference data: ", err)
	}

	busNumbers := []string{"1201", "1202", "1203", "1204", "1205"}
	for _, number := range busNumbers {
		if _, err := database.CreateBus(db, number); err != nil {
			if database.IsUniqueViolation(err) {
				continue
			}
			log.Fatalf("Failed to create bus %s: %v", number, err)
		}
		fmt.Printf("Created bus %s\n", number)
	}

	good, err := database.GetConditionByName(db, "good")
	if err != nil {
		log.Fatal("Condition 'good' missing: ", err)
	}

	for i := 1; i <= 10; i++ {
		serial := fmt.Sprintf("CT-HD-%04d", i)
		if _, err := database.CreateHardDrive(db, serial, good.ID); err != nil {
			if database.IsUniqueViolation(err) {
				continue
			}
			log.Fatalf("Failed to create drive %s: %v", serial, err)
		}
		fmt.Printf("Created hard drive %s\n", serial)
	}

	fmt.Println("Seeding complete")
}
