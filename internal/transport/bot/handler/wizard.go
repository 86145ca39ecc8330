package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gift_shop/internal/domain"
	"gift_shop/internal/domain/entity"
	"gift_shop/internal/domain/service/market"
	"gift_shop/internal/localization"
	"gift_shop/internal/transport/bot/view"
	"gift_shop/pkg/errcodes"
	"gift_shop/pkg/logx"
)

// OnSticker начинает визард создания подарка: стикер становится
// картинкой будущего лота, дальше бот спрашивает имя.
func (h *Handler) OnSticker(ctx *th.Context, msg telego.Message) error {
	userID := msg.From.ID
	lang := h.users.Lang(ctx, userID)

	s := entity.Session{
		Step:   entity.StepAwaitingName,
		FileID: msg.Sticker.FileID,
	}
	if err := h.sessions.Put(ctx, userID, s); err != nil {
		logger(ctx).Error("failed to store session", "user_id", userID, logx.Error(err))
		return h.send(ctx, msg.Chat.ID, h.locales.Resolve(lang, localization.KeyInternalError))
	}

	return h.send(ctx, msg.Chat.ID, h.locales.Resolve(lang, localization.KeyEnterName))
}

// OnText обслуживает кнопки главного меню и текстовые шаги визарда.
// Кнопки матчатся по всем языкам сразу: reply-клавиатура переживает
// смену языка.
func (h *Handler) OnText(ctx *th.Context, msg telego.Message) error {
	if msg.Text == "" {
		return nil
	}

	userID := msg.From.ID
	chatID := msg.Chat.ID
	lang := h.users.Lang(ctx, userID)

	switch {
	case h.locales.MatchButton(msg.Text, localization.KeyButtonCatalog):
		return h.showCatalog(ctx, chatID, userID, lang)
	case h.locales.MatchButton(msg.Text, localization.KeyButtonInventory):
		return h.showInventory(ctx, chatID, userID, lang)
	case h.locales.MatchButton(msg.Text, localization.KeyButtonLanguage):
		return h.showLanguages(ctx, chatID, lang)
	}

	s, err := h.sessions.Get(ctx, userID)
	if err != nil {
		logger(ctx).Error("failed to load session", "user_id", userID, logx.Error(err))
		return h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyInternalError))
	}

	switch s.Step {
	case entity.StepAwaitingName:
		s.Name = msg.Text
		s.Step = entity.StepAwaitingDescription

		return h.advance(ctx, chatID, userID, lang, s, localization.KeyEnterDescription)

	case entity.StepAwaitingDescription:
		s.Description = msg.Text
		s.Step = entity.StepAwaitingRarity

		if err := h.sessions.Put(ctx, userID, s); err != nil {
			logger(ctx).Error("failed to store session", "user_id", userID, logx.Error(err))
			return h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyInternalError))
		}

		_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
			ChatID:      telego.ChatID{ID: chatID},
			Text:        h.locales.Resolve(lang, localization.KeyChooseRarity),
			ReplyMarkup: view.RarityKeyboard(h.rarityLabels(lang)),
		})

		return err

	case entity.StepAwaitingPrice:
		return h.finishListing(ctx, chatID, userID, lang, s, msg.Text)
	}

	// Текст вне визарда и мимо кнопок — молча игнорируем.
	return nil
}

// advance сохраняет сессию и задаёт следующий вопрос. Если сессия не
// сохранилась, вопрос не задаётся: иначе ответ пользователя попадёт
// не на тот шаг.
func (h *Handler) advance(
	ctx *th.Context,
	chatID, userID int64,
	lang string,
	s entity.Session,
	promptKey string,
) error {
	if err := h.sessions.Put(ctx, userID, s); err != nil {
		logger(ctx).Error("failed to store session", "user_id", userID, logx.Error(err))
		return h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyInternalError))
	}

	return h.send(ctx, chatID, h.locales.Resolve(lang, promptKey))
}

// finishListing — последний шаг визарда продажи: разбор цены и
// условная запись. На кривой цене шаг не сбрасывается, пользователь
// пробует ещё раз.
func (h *Handler) finishListing(
	ctx *th.Context,
	chatID, userID int64,
	lang string,
	s entity.Session,
	text string,
) error {
	price, err := market.ParsePrice(text)
	if err != nil {
		return h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyInvalidPrice))
	}

	if err := h.market.ListForSale(ctx, s.TargetGiftID, userID, price); err != nil {
		// Бизнес-отказ терминален для визарда, отказ коллаборатора — нет:
		// после восстановления хранилища пользователь продолжит с того же шага.
		if isTerminalRejection(err) {
			h.clearSession(ctx, userID)
		}

		return h.replyError(ctx, chatID, userID, lang, err)
	}

	h.clearSession(ctx, userID)

	if err := h.send(ctx, chatID, h.locales.Resolve(lang, localization.KeyListed)); err != nil {
		return err
	}

	return h.sendMainMenu(ctx, chatID, lang)
}

func (h *Handler) clearSession(ctx *th.Context, userID int64) {
	if err := h.sessions.Delete(ctx, userID); err != nil {
		logger(ctx).Error("failed to clear session", "user_id", userID, logx.Error(err))
	}
}

// isTerminalRejection отличает нарушение бизнес-правила от отказа
// коллаборатора: у первого есть известный код, и это не код отказа
// инфраструктуры.
func isTerminalRejection(err error) bool {
	code, ok := domain.GetCode(err)
	if !ok {
		return false
	}

	return code != errcodes.StoreUnavailable && code != errcodes.GatewayUnavailable
}

// replyError переводит доменную ошибку в одну локализованную реплику.
// Неожиданные ошибки логируются и показываются как internal_error.
func (h *Handler) replyError(ctx *th.Context, chatID, userID int64, lang string, err error) error {
	key, known := errorKey(err)
	if !known {
		logger(ctx).Error("unexpected error", "user_id", userID, logx.Error(err))
	}

	return h.send(ctx, chatID, h.locales.Resolve(lang, key))
}

func errorKey(err error) (string, bool) {
	code, ok := domain.GetCode(err)
	if !ok {
		return localization.KeyInternalError, false
	}

	switch code {
	case errcodes.InvalidPrice, errcodes.InvalidInput:
		return localization.KeyInvalidPrice, true
	case errcodes.NotOwner:
		return localization.KeyNotOwner, true
	case errcodes.AlreadyForSale:
		return localization.KeyAlreadyForSale, true
	case errcodes.NotAvailable:
		return localization.KeyNotAvailable, true
	case errcodes.SelfPurchase:
		return localization.KeySelfPurchase, true
	case errcodes.AlreadySold:
		return localization.KeyAlreadySold, true
	case errcodes.InsufficientFunds:
		return localization.KeyInsufficientFunds, true
	default:
		return localization.KeyInternalError, false
	}
}
