package config

import "time"

type Session struct {
	// memory либо redis
	Backend string        `env:"SESSION_BACKEND" envDefault:"memory" validate:"oneof=memory redis"`
	TTL     time.Duration `env:"SESSION_TTL" envDefault:"30m" validate:"gt=0"`

	RedisAddress  string `env:"SESSION_REDIS_ADDRESS"`
	RedisPassword string `env:"SESSION_REDIS_PASSWORD"`
	RedisDB       int    `env:"SESSION_REDIS_DB" envDefault:"0"`
}
