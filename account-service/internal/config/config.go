package config

import (
	"github.com/joho/godotenv"
	"os"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	RedisURL       string
	Port           string
	AuthServiceURL string
	ServiceToken   string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		return nil, err
	}

	return &Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        os.Getenv("MONGO_DB"),
		RedisURL:       os.Getenv("REDIS_URL"),
		Port:           os.Getenv("PORT"),
		AuthServiceURL: os.Getenv("AUTH_SERVICE_URL"),
		ServiceToken:   os.Getenv("SERVICE_TOKEN"),
	}, nil
}
