package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Bot      Bot
	Postgres Postgres
	Ton      Ton
	Session  Session
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}

	return config, nil
}
