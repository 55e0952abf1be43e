package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Razorpay *Razorpay
	Redis    *Redis
	Auth     *Auth
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `validate:"oneof=PROD DEV"`
}

type Database struct {
	DSN string `env:"DATABASE_URI" validate:"required"`

	ConnectAttempts int           `env:"DATABASE_CONNECT_ATTEMPTS" envDefault:"5"`
	ConnectBackoff  time.Duration `env:"DATABASE_CONNECT_BACKOFF" envDefault:"500ms"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
}

type Razorpay struct {
	KeyID     string `env:"RAZORPAY_KEY_ID" validate:"required"`
	KeySecret string `env:"RAZORPAY_KEY_SECRET" validate:"required"`
	BaseURL   string `env:"RAZORPAY_BASE_URL" envDefault:"https://api.razorpay.com"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
}

type Auth struct {
	AdminSecret    string `env:"ADMIN_SECRET" validate:"required"`
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`
}

func NewConfig() (*Config, error) {
	// Missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	var db Database
	var http HTTP
	var razorpay Razorpay
	var redis Redis
	var auth Auth
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	for name, target := range map[string]interface{}{
		"database": &db,
		"http":     &http,
		"razorpay": &razorpay,
		"redis":    &redis,
		"auth":     &auth,
		"app":      &app,
	} {
		if err := env.Parse(target); err != nil {
			return nil, fmt.Errorf("error parsing %s config: %w", name, err)
		}
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Razorpay: &razorpay,
		Redis:    &redis,
		Auth:     &auth,
		App:      &app,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	for _, section := range []interface{}{c.Database, c.HTTP, c.Razorpay, c.Redis, c.Auth, c.App} {
		if err := validate.Struct(section); err != nil {
			return err
		}
	}
	return nil
}
