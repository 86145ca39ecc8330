package handler

import (
	"strconv"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"gift_shop/internal/domain/entity"
	"gift_shop/internal/domain/value"
	"gift_shop/internal/localization"
	"gift_shop/pkg/logx"
)

// OnCallback — единственная точка входа inline-кнопок. Токен
// разбирается один раз, дальше диспетчеризация по глаголу.
func (h *Handler) OnCallback(ctx *th.Context, query telego.CallbackQuery) error {
	// Часики убираем всегда, даже если команда не распознана.
	defer func() {
		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
	}()

	cmd, ok := value.ParseCommand(query.Data)
	if !ok {
		logger(ctx).Warn("unknown callback token", "data", query.Data)
		return nil
	}

	if query.Message == nil {
		return nil
	}

	userID := query.From.ID
	chatID := query.Message.GetChat().ID
	lang := h.users.Lang(ctx, userID)

	switch cmd.Verb {
	case value.CommandLang:
		return h.onLang(ctx, chatID, userID, cmd.Arg)
	case value.CommandRarity:
		return h.onRarity(ctx, chatID, userID, lang, cmd.Arg)
	case value.CommandSell:
		return h.onSell(ctx, chatID, userID, lang, cmd.Arg)
	case value.CommandUnsell:
		return h.onUnsell(ctx, chatID, userID, lang, cmd.Arg)
	case value.CommandBuy:
		return h.onBuy(ctx, chatID, userID, lang, cmd.Arg)
	}

	return nil
}

func (h *Handler) onLang(ctx *th.Context, chatID, userID int64, code string) error {
	if err := h.users.SetLang(ctx, userID, code); err != nil {
		return h.replyError(ctx, chatID, userID, h.users.Lang(ctx, userID), err)
	}

	// Отвечаем уже на новом языке и перерисовываем меню.
	if err := h.send(ctx, chatID, h.locales.Resolve(code, localization.KeySuccess)); err != nil {
		return err
	}

	return h.sendMainMenu(ctx, chatID, code)
}

// onRarity завершает визард создания: редкость — последний
// недостающий кусок черновика.
func (h *Handler) onRarity(ctx *th.Context, chatID, userID int64, lang, arg string) error {
	s, err := h.sessions.Get(ctx, userID)
	if err != nil {
		logger(ctx).Error("failed to load session", "user_id", userID, logx.Error(err))
		return h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyInternalError))
	}

	// Устаревшая кнопка от прошлого визарда
	if s.Step != entity.StepAwaitingRarity {
		return nil
	}

	rarity, ok := value.ParseRarity(arg)
	if !ok {
		logger(ctx).Warn("unknown rarity in callback", "arg", arg)
		return nil
	}

	if _, err := h.market.Create(ctx, userID, s.Name, s.Description, rarity, s.FileID); err != nil {
		if isTerminalRejection(err) {
			h.clearSession(ctx, userID)
		}

		return h.replyError(ctx, chatID, userID, lang, err)
	}

	h.clearSession(ctx, userID)

	if err := h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyAdded)); err != nil {
		return err
	}

	return h.sendMainMenu(ctx, chatID, lang)
}

// onSell переводит визард в ожидание цены для выбранного подарка.
func (h *Handler) onSell(ctx *th.Context, chatID, userID int64, lang, arg string) error {
	giftID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		logger(ctx).Warn("bad gift id in callback", "arg", arg)
		return nil
	}

	s := entity.Session{
		Step:         entity.StepAwaitingPrice,
		TargetGiftID: giftID,
	}
	if err := h.sessions.Put(ctx, userID, s); err != nil {
		logger(ctx).Error("failed to store session", "user_id", userID, logx.Error(err))
		return h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyInternalError))
	}

	return h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyEnterPrice))
}

func (h *Handler) onUnsell(ctx *th.Context, chatID, userID int64, lang, arg string) error {
	giftID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		logger(ctx).Warn("bad gift id in callback", "arg", arg)
		return nil
	}

	if err := h.market.Delist(ctx, giftID, userID); err != nil {
		return h.replyError(ctx, chatID, userID, lang, err)
	}

	if err := h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyRemovedFromSale)); err != nil {
		return err
	}

	return h.sendMainMenu(ctx, chatID, lang)
}

func (h *Handler) onBuy(ctx *th.Context, chatID, userID int64, lang, arg string) error {
	giftID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		logger(ctx).Warn("bad gift id in callback", "arg", arg)
		return nil
	}

	if err := h.market.Purchase(ctx, giftID, userID); err != nil {
		return h.replyError(ctx, chatID, userID, lang, err)
	}

	if err := h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyPurchaseSuccess)); err != nil {
		return err
	}

	return h.sendMainMenu(ctx, chatID, lang)
}

func (h *Handler) rarityLabel(lang string, rarity value.Rarity) string {
	return h.locales.Resolve(lang, rarityKey(rarity))
}

func (h *Handler) rarityLabels(lang string) map[value.Rarity]string {
	labels := make(map[value.Rarity]string, len(value.Rarities()))
	for _, rarity := range value.Rarities() {
		labels[rarity] = h.rarityLabel(lang, rarity)
	}

	return labels
}

func rarityKey(rarity value.Rarity) string {
	switch rarity {
	case value.RarityRare:
		return localization.KeyRarityRare
	case value.RarityLegendary:
		return localization.KeyRarityLegendary
	default:
		return localization.KeyRarityCommon
	}
}

func langNameKey(code string) string {
	if code == "en" {
		return localization.KeyLangNameEn
	}

	return localization.KeyLangNameRu
}
