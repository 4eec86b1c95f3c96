package main

import (
	"log"

	"videopull/app/config"
	"videopull/app/database"
	"videopull/app/mail"
	"videopull/app/server"
)

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
	if err := database.DeleteExpiredSessions(db); err != nil {
		log.Printf("Failed to clear expired sessions: %v", err)
	}

	mailer := mail.New(cfg.SMTP)
	app := server.New(cfg, db, mailer)

	log.Println("Server starting on", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}
