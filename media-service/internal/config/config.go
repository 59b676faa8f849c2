package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	RedisURL       string
	Port           string
	AuthServiceURL string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioPublicURL string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return &Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        os.Getenv("MONGO_DB"),
		RedisURL:       os.Getenv("REDIS_URL"),
		Port:           os.Getenv("SERVER_PORT"),
		AuthServiceURL: os.Getenv("AUTH_SERVICE_URL"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		MinioPublicURL: os.Getenv("MINIO_PUBLIC_URL"),
	}, nil
}
