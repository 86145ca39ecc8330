package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gift_shop/internal/domain"
	"gift_shop/internal/domain/entity"
	"gift_shop/pkg/errcodes"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID возвращает пользователя. Для неизвестного id отдаёт ошибку
// NotFound, выбор языка по умолчанию — забота сервисного слоя.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT id, lang FROM users WHERE id = $1`

	var schema userSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.NotFound, "user not found")
		}
		return nil, domain.WrapError(err, errcodes.StoreUnavailable, "failed to get user")
	}

	return schema.toDomain(), nil
}

// UpsertLang создаёт пользователя при первом выборе языка либо меняет
// язык существующему.
func (r *UserRepository) UpsertLang(ctx context.Context, id int64, lang string) error {
	query := `
		INSERT INTO users (id, lang) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET lang = EXCLUDED.lang`

	if _, err := r.db.ExecContext(ctx, query, id, lang); err != nil {
		return domain.WrapError(err, errcodes.StoreUnavailable, "failed to upsert user lang")
	}

	return nil
}
