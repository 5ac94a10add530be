package configs

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func buildDSN() string {
	if LoadENV.DatabaseURL != "" {
		return LoadENV.DatabaseURL
	}

	sslmode := LoadENV.DBSSLMode
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		LoadENV.DBHost,
		LoadENV.DBUser,
		LoadENV.DBPassword,
		LoadENV.DBName,
		LoadENV.DBPort,
		sslmode,
	)
}

func OpenConnection() (*gorm.DB, error) {

	dsn := buildDSN()

	maxRetries := 10
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		log.Printf("Attempting to connect to database (Attempt %d/%d)", i+1, maxRetries)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {

			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					log.Println("✅ Database connection successful!")
					return db, nil
				}
			}

			log.Printf("❌ Failed to ping database: %v. Retrying in %v...", pingErr, retryDelay)
		} else {
			log.Printf("❌ Failed to open GORM connection: %v. Retrying in %v...", err, retryDelay)
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries", maxRetries)
}
