package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"gift_shop/internal/domain/entity"
	"gift_shop/internal/domain/value"
	"gift_shop/pkg/errcodes"
	"gift_shop/pkg/httpx/reply"
	"gift_shop/pkg/httpx/req"
	"gift_shop/pkg/rest"
)

// marketService — то, что серверу нужно от торгового сервиса.
type marketService interface {
	Catalog(ctx context.Context) ([]entity.Gift, error)
	Inventory(ctx context.Context, ownerID int64) ([]entity.Gift, error)
	Create(
		ctx context.Context,
		ownerID int64,
		name, description string,
		rarity value.Rarity,
		fileID string,
	) (*entity.Gift, error)
}

// Server — read-mostly HTTP витрина поверх того же сервиса, которым
// пользуется бот.
type Server struct {
	market marketService
}

func NewServer(market marketService) Server {
	return Server{
		market: market,
	}
}

func (s Server) getV1Gifts(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	gifts, err := s.market.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("market.Catalog: %w", httpError(err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTGifts(gifts))

	return nil
}

func (s Server) getV1UserGifts(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	ownerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("strconv.ParseInt: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid user id"),
		)
	}

	gifts, err := s.market.Inventory(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("market.Inventory: %w", httpError(err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTGifts(gifts))

	return nil
}

func (s Server) postV1Gifts(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateGiftRequest
	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	rarity, ok := value.ParseRarity(request.Rarity)
	if !ok {
		return failure.NewInvalidArgumentError(
			"unknown rarity",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Unknown rarity"),
		)
	}

	gift, err := s.market.Create(ctx,
		request.OwnerID, request.Name, request.Description, rarity, request.FileID)
	if err != nil {
		return fmt.Errorf("market.Create: %w", httpError(err))
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTGift(*gift))

	return nil
}
