package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Gateway  *Gateway
	Mailer   *Mailer
	Auth     *Auth
	Feed     *Feed
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Gateway struct {
	HostString string `env:"PAYMENT_GATEWAY_ADDRESS"`
	MerchantID string `env:"PAYMENT_MERCHANT_ID"`
	APIKey     string `env:"PAYMENT_API_KEY"`
}

type Mailer struct {
	HostString string `env:"MAILER_ADDRESS"`
	APIKey     string `env:"MAILER_API_KEY"`
	From       string `env:"MAILER_FROM" envDefault:"orders@vitrine.shop"`
	AdminEmail string `env:"ADMIN_EMAIL"`
}

type Auth struct {
	AdminLogin    string `env:"ADMIN_LOGIN"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

type Feed struct {
	WatchLimit   int           `env:"FEED_WATCH_LIMIT" envDefault:"5"`
	PollInterval time.Duration `env:"FEED_POLL_INTERVAL" envDefault:"2s"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var gateway Gateway
	var mailer Mailer
	var auth Auth
	var feed Feed
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&gateway.HostString, "p", "", "Payment gateway address")
	flag.StringVar(&mailer.HostString, "e", "", "Mailer service address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&mailer)
	if err != nil {
		return nil, fmt.Errorf("error parsing mailer config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&feed)
	if err != nil {
		return nil, fmt.Errorf("error parsing feed config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Gateway:  &gateway,
		Mailer:   &mailer,
		Auth:     &auth,
		Feed:     &feed,
		App:      &app,
	}

	return &config, nil
}
