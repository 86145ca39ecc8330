package session

import (
	"context"

	"gift_shop/internal/domain/entity"
)

// Store хранит состояние визарда по id пользователя. Отсутствующая
// сессия — это пустая сессия: Get для незнакомого пользователя отдаёт
// нулевое значение, а не ошибку.
type Store interface {
	Get(ctx context.Context, userID int64) (entity.Session, error)
	Put(ctx context.Context, userID int64, s entity.Session) error
	Delete(ctx context.Context, userID int64) error
}
