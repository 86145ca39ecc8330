package ledger

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"gift_shop/internal/config"
	"gift_shop/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	apiKeyHeader   = "X-API-Key"
	requestTimeout = 10 * time.Second
)

// TonCenterClient читает балансы кошельков через HTTP API toncenter.
// Это только проверка: перевод TON покупатель-продавец выполняется
// кошельком вне бота, клиент денег не двигает.
type TonCenterClient struct {
	baseURL       string
	walletAddress string
	httpClient    *http.Client
}

func NewTonCenterClient(cfg config.Ton) *TonCenterClient {
	transport := http.RoundTripper(httpx.NewAPIKeyRoundTripper(
		http.DefaultTransport, apiKeyHeader, cfg.APIKey,
	))
	if cfg.LogRequests {
		transport = httpx.NewLoggingRoundTripper(transport)
	}

	return &TonCenterClient{
		baseURL:       cfg.BaseURL,
		walletAddress: cfg.WalletAddress,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
		},
	}
}

// Balance возвращает доступный баланс счёта пользователя в нанотонах.
// Пока кошельки пользователей не привязаны, проверяется настроенный
// кошелёк магазина.
func (c *TonCenterClient) Balance(ctx context.Context, _ int64) (int64, error) {
	return c.addressBalance(ctx, c.walletAddress)
}

type balanceResponse struct {
	OK     bool   `json:"ok"`
	Result string `json:"result"`
	Error  string `json:"error"`
}

func (c *TonCenterClient) addressBalance(ctx context.Context, address string) (int64, error) {
	endpoint := fmt.Sprintf("%s/getAddressBalance?address=%s", c.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("http.NewRequest: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	var body balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("json.Decode: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !body.OK {
		return 0, fmt.Errorf("toncenter: status %d: %s", resp.StatusCode, body.Error)
	}

	balance, err := strconv.ParseInt(body.Result, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse balance %q: %w", body.Result, err)
	}

	return balance, nil
}
