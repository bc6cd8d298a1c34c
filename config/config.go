package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	DB        DB     `envPrefix:"DB_"`
	JWTSecret string `env:"JWT_SECRET"`
	AdminKey  string `env:"ADMIN_API_KEY"`

	UploadsDir string `env:"UPLOADS_DIR" envDefault:"./uploads"`
	BackupDir  string `env:"BACKUP_DIR" envDefault:"./backup/uploads"`
}

type DB struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN builds the postgres connection string when DATABASE_URL is not set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port,
	)
}
