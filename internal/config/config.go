package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string   `env:"PORT" envDefault:"5000"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	MongoURI    string   `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDBName string   `env:"MONGO_DB_NAME" envDefault:"phonekart"`
	JWTSecret   string   `env:"ACCESS_TOKEN_SECRET"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	RazorpayKeyID  string `env:"RAZORPAY_API_KEY"`
	RazorpaySecret string `env:"RAZORPAY_API_SECRET"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_SECRET is empty")
	}
	return cfg, nil
}
