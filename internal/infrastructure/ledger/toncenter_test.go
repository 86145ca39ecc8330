package ledger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"gift_shop/internal/config"
	"gift_shop/internal/infrastructure/ledger"
)

func TestBalance(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/getAddressBalance", r.URL.Path)
		rq.Equal("EQTestWallet", r.URL.Query().Get("address"))
		rq.Equal("secret", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":"2500000000"}`))
	}))
	defer srv.Close()

	client := ledger.NewTonCenterClient(config.Ton{
		BaseURL:       srv.URL,
		APIKey:        "secret",
		WalletAddress: "EQTestWallet",
	})

	balance, err := client.Balance(ctx, 1)
	rq.NoError(err)
	rq.Equal(int64(2_500_000_000), balance)
}

func TestBalanceAPIError(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"ok":false,"error":"Incorrect address"}`))
	}))
	defer srv.Close()

	client := ledger.NewTonCenterClient(config.Ton{
		BaseURL:       srv.URL,
		WalletAddress: "garbage",
	})

	_, err := client.Balance(ctx, 1)
	rq.ErrorContains(err, "Incorrect address")
}

func TestBalanceBadPayload(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":"not-a-number"}`))
	}))
	defer srv.Close()

	client := ledger.NewTonCenterClient(config.Ton{
		BaseURL:       srv.URL,
		WalletAddress: "EQTestWallet",
	})

	_, err := client.Balance(ctx, 1)
	rq.ErrorContains(err, "parse balance")
}
