package config

type Bot struct {
	Token string `env:"BOT_TOKEN,required"`

	// Таймаут long polling в секундах
	PollTimeout int `env:"BOT_POLL_TIMEOUT" envDefault:"60"`
}
