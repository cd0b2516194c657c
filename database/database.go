package database

import (
	"fmt"
	"log"

	"github.com/cliente/crudpb/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the shared gorm connection, set by Connect.
var DB *gorm.DB

// Connect opens the Postgres connection pool and keeps it in DB.
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	DB = db
	log.Println("✅ Database connection established")
	return db
}
