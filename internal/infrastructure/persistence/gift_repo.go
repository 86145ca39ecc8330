package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gift_shop/internal/domain"
	"gift_shop/internal/domain/entity"
	"gift_shop/pkg/errcodes"
	"gift_shop/pkg/lox"
)

const giftColumns = `id, owner_id, name, description, rarity, price, is_for_sale, file_id, created_at`

type GiftRepository struct {
	db *sqlx.DB
}

// NewGiftRepository создаёт новый экземпляр репозитория.
func NewGiftRepository(db *sqlx.DB) *GiftRepository {
	return &GiftRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *GiftRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.StoreUnavailable, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.StoreUnavailable,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.StoreUnavailable, "failed to commit")
	}

	return nil
}

// Create сохраняет новый подарок. Подарок всегда создаётся не выставленным
// на продажу, id и created_at назначает база.
func (r *GiftRepository) Create(ctx context.Context, gift *entity.Gift) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO gifts (owner_id, name, description, rarity, is_for_sale, file_id)
			VALUES ($1, $2, $3, $4, FALSE, $5)
			RETURNING id, created_at`

		row := tx.QueryRowxContext(ctx, query,
			gift.OwnerID, gift.Name, gift.Description, gift.Rarity.String(), gift.FileID)

		if err := row.Scan(&gift.ID, &gift.CreatedAt); err != nil {
			return domain.WrapError(err, errcodes.StoreUnavailable, "failed to insert gift")
		}

		gift.IsForSale = false
		gift.Price = nil

		return nil
	})
}

// GetByID возвращает подарок по идентификатору.
func (r *GiftRepository) GetByID(ctx context.Context, id int64) (*entity.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts WHERE id = $1`

	var schema giftSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.GiftNotFound, "gift not found")
		}
		return nil, domain.WrapError(err, errcodes.StoreUnavailable, "failed to get gift")
	}

	return schema.toDomain(), nil
}

// ListForSale возвращает витрину: все подарки, выставленные на продажу.
func (r *GiftRepository) ListForSale(ctx context.Context) ([]entity.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts WHERE is_for_sale ORDER BY id ASC`

	var schemas []giftSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.StoreUnavailable, "failed to list gifts for sale")
	}

	return lox.Map(schemas, func(s giftSchema) entity.Gift { return *s.toDomain() }), nil
}

// ListByOwner возвращает инвентарь пользователя.
func (r *GiftRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts WHERE owner_id = $1 ORDER BY id ASC`

	var schemas []giftSchema
	if err := r.db.SelectContext(ctx, &schemas, query, ownerID); err != nil {
		return nil, domain.WrapError(err, errcodes.StoreUnavailable, "failed to list gifts by owner")
	}

	return lox.Map(schemas, func(s giftSchema) entity.Gift { return *s.toDomain() }), nil
}

// MarkForSale выставляет подарок на продажу одним условным UPDATE.
// Предикат владения и «ещё не на продаже» проверяется на момент записи,
// признак успеха — только число затронутых строк.
func (r *GiftRepository) MarkForSale(ctx context.Context, giftID, ownerID int64, price float64) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE gifts
			SET price = $1, is_for_sale = TRUE
			WHERE id = $2 AND owner_id = $3 AND NOT is_for_sale`

		rows, err := execRows(ctx, tx, query, price, giftID, ownerID)
		if err != nil {
			return err
		}
		if rows > 0 {
			return nil
		}

		return r.explainSaleRejection(ctx, tx, giftID, ownerID,
			domain.NewError(errcodes.AlreadyForSale, "gift is already for sale"))
	})
}

// Delist снимает подарок с продажи; цена очищается тем же UPDATE.
func (r *GiftRepository) Delist(ctx context.Context, giftID, ownerID int64) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE gifts
			SET price = NULL, is_for_sale = FALSE
			WHERE id = $1 AND owner_id = $2 AND is_for_sale`

		rows, err := execRows(ctx, tx, query, giftID, ownerID)
		if err != nil {
			return err
		}
		if rows > 0 {
			return nil
		}

		return r.explainSaleRejection(ctx, tx, giftID, ownerID,
			domain.NewError(errcodes.NotAvailable, "gift is not for sale"))
	})
}

// TransferToBuyer атомарно передаёт лот покупателю: смена владельца,
// снятие с продажи и очистка цены — один UPDATE, предикат is_for_sale
// проверяется на момент записи. Ноль строк у проигравшего гонку.
func (r *GiftRepository) TransferToBuyer(ctx context.Context, giftID, buyerID int64) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE gifts
			SET owner_id = $1, price = NULL, is_for_sale = FALSE
			WHERE id = $2 AND is_for_sale AND owner_id <> $1`

		rows, err := execRows(ctx, tx, query, buyerID, giftID)
		if err != nil {
			return err
		}
		if rows > 0 {
			return nil
		}

		var schema giftSchema
		err = tx.GetContext(ctx, &schema, `SELECT `+giftColumns+` FROM gifts WHERE id = $1`, giftID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return domain.NewError(errcodes.NotAvailable, "gift not found or not for sale")
		case err != nil:
			return domain.WrapError(err, errcodes.StoreUnavailable, "failed to check gift")
		case schema.OwnerID == buyerID && schema.IsForSale:
			return domain.NewError(errcodes.SelfPurchase, "gift already belongs to buyer")
		case schema.IsForSale:
			return domain.NewError(errcodes.NotAvailable, "gift not available")
		default:
			return domain.NewError(errcodes.AlreadySold, "gift was sold concurrently")
		}
	})
}

// explainSaleRejection уточняет причину нулевого апдейта для операций
// владельца: лота нет вовсе, им владеет кто-то другой, либо он в
// состоянии, которое не прошло предикат (fallback).
func (r *GiftRepository) explainSaleRejection(ctx context.Context, tx *sqlx.Tx, giftID, ownerID int64, fallback error) error {
	var schema giftSchema
	err := tx.GetContext(ctx, &schema, `SELECT `+giftColumns+` FROM gifts WHERE id = $1`, giftID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.NewError(errcodes.NotOwner, "gift not found")
	case err != nil:
		return domain.WrapError(err, errcodes.StoreUnavailable, "failed to check gift")
	case schema.OwnerID != ownerID:
		return domain.NewError(errcodes.NotOwner, "you don't own this gift")
	default:
		return fallback
	}
}

func execRows(ctx context.Context, tx *sqlx.Tx, query string, args ...any) (int64, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.StoreUnavailable, "failed to execute update")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, domain.WrapError(err, errcodes.StoreUnavailable, "failed to check affected rows")
	}

	return rows, nil
}
