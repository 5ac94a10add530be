package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	DBSSLMode         string
	DatabaseURL       string
	Port              string
	SESSION_KEY       string
	AppAuthKey        string
	AppEncKey         string
	CanonicalHost     string
	CSRFTrustedOrigin string
	ContactNumber     string
	AdminUser         string
	AdminPasswordHash string
	APP_ENV           string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		DBSSLMode:         os.Getenv("DB_SSLMODE"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Port:              os.Getenv("APP_PORT"),
		SESSION_KEY:       os.Getenv("SESSION_KEY"),
		AppAuthKey:        os.Getenv("APP_AUTH_KEY"),
		AppEncKey:         os.Getenv("APP_ENC_KEY"),
		CanonicalHost:     os.Getenv("CANONICAL_HOST"),
		CSRFTrustedOrigin: os.Getenv("CSRF_TRUSTED_ORIGIN"),
		ContactNumber:     os.Getenv("CONTACT_NUMBER"),
		AdminUser:         os.Getenv("ADMIN_USER"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		APP_ENV:           os.Getenv("APP_ENV"),
	}

}

var LoadENV = LoadEnv()
