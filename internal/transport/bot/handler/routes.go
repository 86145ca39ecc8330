package handler

import (
	"context"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler) {
	// Команда /start
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))

	// Стикер запускает визард создания подарка
	bh.HandleMessage(h.OnSticker, anyStickerMessage())

	// Прочий текст: кнопки меню и шаги активного визарда
	bh.HandleMessage(h.OnText, th.AnyMessage())

	// Inline-кнопки
	bh.HandleCallbackQuery(h.OnCallback, th.AnyCallbackQuery())
}

func anyStickerMessage() th.Predicate {
	return func(_ context.Context, update telego.Update) bool {
		return update.Message != nil && update.Message.Sticker != nil
	}
}
