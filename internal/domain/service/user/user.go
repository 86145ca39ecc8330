package user

import (
	"context"
	"slices"

	"gift_shop/internal/domain"
	"gift_shop/internal/domain/entity"
	"gift_shop/pkg/contextx"
	"gift_shop/pkg/errcodes"
	"gift_shop/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	UpsertLang(ctx context.Context, id int64, lang string) error
}

// Service отвечает за язык пользователя. Пользователь заводится
// неявно, первым выбором языка; до этого момента у него язык по
// умолчанию.
type Service struct {
	users       Repository
	defaultLang string
	known       []string
}

func NewService(users Repository, defaultLang string, knownLangs []string) *Service {
	return &Service{
		users:       users,
		defaultLang: defaultLang,
		known:       knownLangs,
	}
}

// Lang возвращает язык пользователя либо язык по умолчанию, если
// пользователь неизвестен. Отказ хранилища тоже деградирует в язык
// по умолчанию: ответить хоть как-то важнее, чем ответить точно.
func (s *Service) Lang(ctx context.Context, id int64) string {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if code, ok := domain.GetCode(err); !ok || code != errcodes.NotFound {
			logger(ctx).Error("failed to get user lang", "user_id", id, logx.Error(err))
		}
		return s.defaultLang
	}

	if u.Lang == "" {
		return s.defaultLang
	}

	return u.Lang
}

// SetLang сохраняет выбор языка, создавая пользователя при первом
// обращении.
func (s *Service) SetLang(ctx context.Context, id int64, lang string) error {
	if !slices.Contains(s.known, lang) {
		return domain.NewError(errcodes.InvalidInput, "unsupported language")
	}

	return s.users.UpsertLang(ctx, id, lang)
}
