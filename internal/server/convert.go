package server

import (
	"git.appkode.ru/pub/go/failure"

	"gift_shop/internal/domain"
	"gift_shop/internal/domain/entity"
	"gift_shop/pkg/errcodes"
	"gift_shop/pkg/lox"
	"gift_shop/pkg/rest"
)

func newRESTGift(gift entity.Gift) rest.Gift {
	return rest.Gift{
		ID:          gift.ID,
		OwnerID:     gift.OwnerID,
		Name:        gift.Name,
		Description: gift.Description,
		Rarity:      gift.Rarity.String(),
		Price:       gift.Price,
		IsForSale:   gift.IsForSale,
		CreatedAt:   gift.CreatedAt,
	}
}

func newRESTGifts(gifts []entity.Gift) []rest.Gift {
	return lox.Map(gifts, newRESTGift)
}

// httpError переводит доменную ошибку в классифицированную ошибку
// failure, чтобы reply.Error подобрал правильный HTTP-статус.
func httpError(err error) error {
	code, ok := domain.GetCode(err)
	if !ok {
		return err
	}

	switch code {
	case errcodes.InvalidInput, errcodes.InvalidPrice, errcodes.InvalidGiftID:
		return failure.NewInvalidArgumentError(err.Error(),
			failure.WithCode(code), failure.WithDescription(err.Error()))
	case errcodes.GiftNotFound, errcodes.NotFound, errcodes.NotAvailable:
		return failure.NewNotFoundError(err.Error(),
			failure.WithCode(code), failure.WithDescription(err.Error()))
	case errcodes.NotOwner, errcodes.SelfPurchase:
		return failure.NewForbiddenError(err.Error(),
			failure.WithCode(code), failure.WithDescription(err.Error()))
	case errcodes.AlreadyForSale, errcodes.AlreadySold:
		return failure.NewConflictError(err.Error(),
			failure.WithCode(code), failure.WithDescription(err.Error()))
	case errcodes.InsufficientFunds:
		return failure.NewUnprocessableEntityError(err.Error(),
			failure.WithCode(code), failure.WithDescription(err.Error()))
	default:
		return err
	}
}
