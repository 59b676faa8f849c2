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
	ServiceToken   string
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPass       string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		return nil, err
	}
	return &Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        os.Getenv("MONGO_DB"),
		RedisURL:       os.Getenv("REDIS_URL"),
		Port:           os.Getenv("SERVER_PORT"),
		AuthServiceURL: os.Getenv("AUTH_SERVICE_URL"),
		ServiceToken:   os.Getenv("SERVICE_TOKEN"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       os.Getenv("SMTP_PORT"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
	}, nil
}
