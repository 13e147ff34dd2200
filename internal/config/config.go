package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port           string
	ProductionType string
	LogPath        string

	Database Database
	Storage  ObjectStorage
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ObjectStorage - настройки S3-совместимого хранилища скриншотов
type ObjectStorage struct {
	Bucket       string
	Region       string
	Endpoint     string // непустой для MinIO/localstack
	PresignTTL   string // например "15m"
	UsePathStyle bool
}

func NewEnvConfig() *Config {
	return &Config{
		Port:           os.Getenv("APP_PORT"),
		ProductionType: os.Getenv("APP_PRODUCTION_TYPE"),
		LogPath:        os.Getenv("APP_LOG_PATH"),

		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},

		Storage: ObjectStorage{
			Bucket:       os.Getenv("S3_BUCKET"),
			Region:       os.Getenv("S3_REGION"),
			Endpoint:     os.Getenv("S3_ENDPOINT"),
			PresignTTL:   os.Getenv("S3_PRESIGN_TTL"),
			UsePathStyle: os.Getenv("S3_USE_PATH_STYLE") == "true",
		},
	}
}

func (config *Config) PrintConfigWithHiddenSecrets() {
	// Функция для маскировки секретов
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return strings.Repeat("*", len(s))
	}

	fmt.Println("========== Configuration ==========")

	fmt.Println("App Configuration:")
	fmt.Printf("\tPort: %s\n", config.Port)
	fmt.Printf("\tProductionType: %s\n", config.ProductionType)
	fmt.Printf("\tLogPath: %s\n", config.LogPath)

	fmt.Println("\nDatabase Configuration:")
	fmt.Printf("\tHost: %s\n", config.Database.Host)
	fmt.Printf("\tPort: %s\n", config.Database.Port)
	fmt.Printf("\tUser: %s\n", config.Database.User)
	fmt.Printf("\tPassword: %s\n", mask(config.Database.Password))
	fmt.Printf("\tName: %s\n", config.Database.Name)
	fmt.Printf("\tSSLMode: %s\n", config.Database.SSLMode)

	fmt.Println("\nObject Storage Configuration:")
	fmt.Printf("\tBucket: %s\n", config.Storage.Bucket)
	fmt.Printf("\tRegion: %s\n", config.Storage.Region)
	fmt.Printf("\tEndpoint: %s\n", config.Storage.Endpoint)
	fmt.Printf("\tPresignTTL: %s\n", config.Storage.PresignTTL)

	fmt.Println("\n===================================")
}
