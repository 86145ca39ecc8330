package handler

import (
	"gift_shop/internal/domain/service/market"
	"gift_shop/internal/domain/service/user"
	"gift_shop/internal/infrastructure/session"
	"gift_shop/internal/localization"
	"gift_shop/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Handler struct {
	market   *market.Service
	users    *user.Service
	sessions session.Store
	locales  *localization.Bundle
}

func New(
	marketSvc *market.Service,
	userSvc *user.Service,
	sessions session.Store,
	locales *localization.Bundle,
) *Handler {
	return &Handler{
		market:   marketSvc,
		users:    userSvc,
		sessions: sessions,
		locales:  locales,
	}
}
