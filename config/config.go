package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is everything main needs to wire the process.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	BlobBackend string // "disk" or "s3"
	BlobRoot    string // disk backend root
	S3Region    string
	S3Bucket    string

	Port string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment as-is")
	}

	cfg := Config{
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
		BlobBackend: os.Getenv("BLOB_BACKEND"),
		BlobRoot:    os.Getenv("BLOB_ROOT"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.BlobBackend == "" {
		cfg.BlobBackend = "disk"
	}
	if cfg.BlobRoot == "" {
		cfg.BlobRoot = "public"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = os.Getenv("AWS_REGION") // fallback
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

// ConnectDB opens the meals database and migrates the schema. The returned
// handle is the single shared DB resource; main owns closing it.
// TranslateError is on so a unique-key violation surfaces as
// gorm.ErrDuplicatedKey regardless of driver.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Meal{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
