package config

import "time"

type App struct {
	Name                 string        `env:"APP_NAME" envDefault:"gift-shop-bot"`
	Version              string        `env:"APP_VERSION" envDefault:"dev"`
	DefaultLang          string        `env:"DEFAULT_LANG" envDefault:"ru"`
	HTTPListenAddress    string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":8082"`
	StatsInterval        time.Duration `env:"STATS_INTERVAL" envDefault:"1m" validate:"gt=0"`
}
