package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"gift_shop/internal/domain"
	"gift_shop/internal/domain/entity"
	"gift_shop/internal/domain/value"
	"gift_shop/internal/server"
	"gift_shop/pkg/errcodes"
	"gift_shop/pkg/rest"
	"gift_shop/pkg/tests"
)

type fakeMarket struct {
	catalog   []entity.Gift
	inventory map[int64][]entity.Gift
	createErr error
}

func (f *fakeMarket) Catalog(context.Context) ([]entity.Gift, error) {
	return f.catalog, nil
}

func (f *fakeMarket) Inventory(_ context.Context, ownerID int64) ([]entity.Gift, error) {
	return f.inventory[ownerID], nil
}

func (f *fakeMarket) Create(
	_ context.Context,
	ownerID int64,
	name, description string,
	rarity value.Rarity,
	fileID string,
) (*entity.Gift, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	return &entity.Gift{
		ID:          42,
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Rarity:      rarity,
		FileID:      fileID,
		CreatedAt:   time.Now(),
	}, nil
}

func newTestServer(market *fakeMarket) *httptest.Server {
	router := chi.NewRouter()
	server.NewServer(market).RegisterRoutes(router)

	return httptest.NewServer(router)
}

func TestGetV1Gifts(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	market := &fakeMarket{catalog: []entity.Gift{
		{
			ID:        1,
			OwnerID:   10,
			Name:      "Cap",
			Rarity:    value.RarityRare,
			Price:     lo.ToPtr(2.5),
			IsForSale: true,
		},
	}}

	srv := newTestServer(market)
	defer srv.Close()

	client := tests.NewAPIClient(srv.URL, nil)

	var gifts []rest.Gift
	resp, err := client.Get(ctx, "/v1/gifts", nil, &gifts, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(gifts, 1)
	rq.Equal("Cap", gifts[0].Name)
	rq.Equal("rare", gifts[0].Rarity)
	rq.InDelta(2.5, *gifts[0].Price, 1e-9)
}

func TestGetV1UserGifts(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	market := &fakeMarket{inventory: map[int64][]entity.Gift{
		10: {{ID: 1, OwnerID: 10, Name: "Cap", Rarity: value.RarityCommon}},
	}}

	srv := newTestServer(market)
	defer srv.Close()

	client := tests.NewAPIClient(srv.URL, nil)

	var gifts []rest.Gift
	resp, err := client.Get(ctx, "/v1/users/10/gifts", nil, &gifts, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(gifts, 1)

	var empty []rest.Gift
	resp, err = client.Get(ctx, "/v1/users/20/gifts", nil, &empty, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Empty(empty)

	var restErr rest.Error
	resp, err = client.Get(ctx, "/v1/users/abc/gifts", nil, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestPostV1Gifts(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	market := &fakeMarket{}

	srv := newTestServer(market)
	defer srv.Close()

	client := tests.NewAPIClient(srv.URL, nil)

	request := rest.CreateGiftRequest{
		OwnerID:     10,
		Name:        "Cap",
		Description: "Red cap",
		Rarity:      "rare",
	}

	var gift rest.Gift
	resp, err := client.Post(ctx, "/v1/gifts", nil, request, &gift, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal(int64(42), gift.ID)
	rq.Equal("rare", gift.Rarity)
}

func TestPostV1GiftsValidation(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	market := &fakeMarket{}

	srv := newTestServer(market)
	defer srv.Close()

	client := tests.NewAPIClient(srv.URL, nil)

	var restErr rest.Error

	// Редкость вне перечисления
	request := rest.CreateGiftRequest{OwnerID: 10, Name: "Cap", Description: "d", Rarity: "epic"}
	resp, err := client.Post(ctx, "/v1/gifts", nil, request, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, err = client.PostJSON(ctx, "/v1/gifts", nil, "{broken", nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestPostV1GiftsDomainError(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	market := &fakeMarket{
		createErr: domain.NewError(errcodes.InvalidInput, "name and description are required"),
	}

	srv := newTestServer(market)
	defer srv.Close()

	client := tests.NewAPIClient(srv.URL, nil)

	request := rest.CreateGiftRequest{OwnerID: 10, Name: "x", Description: "y", Rarity: "common"}

	var restErr rest.Error
	resp, err := client.Post(ctx, "/v1/gifts", nil, request, nil, &restErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.InvalidInput), restErr.Code)
}
