package main

import (
	"log"

	"github.com/Brundha-2004/smartspend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	if cfg.DSN == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	if !cfg.AutoMigrate {
		return
	}
	// Migrate models individually so a failure on one doesn't block others.
	// The budgets migration also applies the composite unique index that
	// closes the duplicate-budget race.
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Printf("migration warning (users): %v", err)
	}
	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		log.Printf("migration warning (transactions): %v", err)
	}
	if err := db.AutoMigrate(&models.Budget{}); err != nil {
		log.Printf("migration warning (budgets): %v", err)
	}
}
