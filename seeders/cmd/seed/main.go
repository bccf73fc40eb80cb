package main

import (
	"log"

	"equipment-system/pkg/config"
	"equipment-system/pkg/database/postgresql"
	"equipment-system/seeders"
)

func main() {
	cfg := config.New()

	if err := postgresql.RunMigrations(cfg.Postgres.DSN); err != nil {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedDemoData(db)
}
