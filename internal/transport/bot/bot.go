package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gift_shop/internal/config"
	"gift_shop/internal/domain/service/market"
	"gift_shop/internal/domain/service/user"
	"gift_shop/internal/infrastructure/session"
	"gift_shop/internal/localization"
	"gift_shop/internal/transport/bot/handler"
	"gift_shop/pkg/contextx"
	"gift_shop/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot представляет собой Telegram-бота
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler

	handler *handler.Handler
}

// New создает новый экземпляр бота
func New(
	ctx context.Context,
	cfg config.Bot,
	marketSvc *market.Service,
	userSvc *user.Service,
	sessions session.Store,
	locales *localization.Bundle,
) (*Bot, error) {
	bot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	// Получаем обновления через long polling
	updates, err := bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: cfg.PollTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get updates: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot handler: %w", err)
	}

	h := handler.New(marketSvc, userSvc, sessions, locales)
	h.RegisterRoutes(botHandler)

	return &Bot{
		bot:        bot,
		botHandler: botHandler,
		handler:    h,
	}, nil
}

// Run запускает обработку обновлений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("failed to start bot handler", logx.Error(err))
		}
	}()

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		logger(ctx).Error("failed to stop bot handler", logx.Error(err))
	}

	return nil
}
