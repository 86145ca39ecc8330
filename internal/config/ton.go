package config

type Ton struct {
	BaseURL       string `env:"TON_API_URL" envDefault:"https://toncenter.com/api/v2"`
	APIKey        string `env:"TONCENTER_API_KEY"`
	WalletAddress string `env:"TON_WALLET_ADDRESS,required"`
	LogRequests   bool   `env:"TON_LOG_REQUESTS" envDefault:"false"`
}
