package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"gift_shop/internal/localization"
	"gift_shop/internal/transport/bot/view"
	"gift_shop/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	lang := h.users.Lang(ctx, msg.From.ID)

	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: tu.ID(msg.Chat.ID),
		Text:   h.locales.Resolve(lang, localization.KeyStart),
	})
	if err != nil {
		return err
	}

	return h.sendMainMenu(ctx, msg.Chat.ID, lang)
}

func (h *Handler) sendMainMenu(ctx *th.Context, chatID int64, lang string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: tu.ID(chatID),
		Text:   h.locales.Resolve(lang, localization.KeyMenu),
		ReplyMarkup: view.MainMenuKeyboard(
			h.locales.Resolve(lang, localization.KeyButtonCatalog),
			h.locales.Resolve(lang, localization.KeyButtonInventory),
			h.locales.Resolve(lang, localization.KeyButtonLanguage),
		),
	})

	return err
}

// showCatalog шлёт витрину: для каждого лота стикер, следом подпись
// с кнопкой покупки.
func (h *Handler) showCatalog(ctx *th.Context, chatID, userID int64, lang string) error {
	gifts, err := h.market.Catalog(ctx)
	if err != nil {
		return h.replyError(ctx, chatID, userID, lang, err)
	}

	if len(gifts) == 0 {
		return h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyNoGifts))
	}

	if err := h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyCatalog)); err != nil {
		return err
	}

	for _, gift := range gifts {
		h.sendSticker(ctx, chatID, gift.FileID)

		_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
			ChatID:      tu.ID(chatID),
			Text:        view.CatalogCaption(gift, h.rarityLabel(lang, gift.Rarity)),
			ReplyMarkup: view.BuyKeyboard(gift.ID, h.locales.Resolve(lang, localization.KeyButtonBuy)),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) showInventory(ctx *th.Context, chatID, userID int64, lang string) error {
	gifts, err := h.market.Inventory(ctx, userID)
	if err != nil {
		return h.replyError(ctx, chatID, userID, lang, err)
	}

	if len(gifts) == 0 {
		return h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyNoGifts))
	}

	if err := h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyInventory)); err != nil {
		return err
	}

	for _, gift := range gifts {
		h.sendSticker(ctx, chatID, gift.FileID)

		_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
			ChatID: tu.ID(chatID),
			Text: view.InventoryCaption(gift,
				h.rarityLabel(lang, gift.Rarity),
				h.locales.Resolve(lang, localization.KeyOnSale)),
			ReplyMarkup: view.InventoryKeyboard(gift,
				h.locales.Resolve(lang, localization.KeyButtonSell),
				h.locales.Resolve(lang, localization.KeyButtonUnsell)),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) showLanguages(ctx *th.Context, chatID int64, lang string) error {
	options := make([]view.LangOption, 0, 2)
	for _, code := range h.locales.Languages() {
		options = append(options, view.LangOption{
			Code:  code,
			Label: h.locales.Resolve(lang, langNameKey(code)),
		})
	}

	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      tu.ID(chatID),
		Text:        h.locales.Resolve(lang, localization.KeyChooseLanguage),
		ReplyMarkup: view.LanguageKeyboard(options),
	})

	return err
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: tu.ID(chatID),
		Text:   text,
	})

	return err
}

// sendSticker — best effort: протухший file_id не должен ломать
// выдачу подписи и кнопок.
func (h *Handler) sendSticker(ctx *th.Context, chatID int64, fileID string) {
	if fileID == "" {
		return
	}

	_, err := ctx.Bot().SendSticker(ctx, &telego.SendStickerParams{
		ChatID:  tu.ID(chatID),
		Sticker: tu.FileFromID(fileID),
	})
	if err != nil {
		logger(ctx).Warn("failed to send sticker", "chat_id", chatID, logx.Error(err))
	}
}
