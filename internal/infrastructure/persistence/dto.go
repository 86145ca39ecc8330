package persistence

import (
	"database/sql"
	"time"

	"gift_shop/internal/domain/entity"
	"gift_shop/internal/domain/value"
)

// giftSchema — внутренняя структура для маппинга строки БД.
type giftSchema struct {
	ID          int64           `db:"id"`
	OwnerID     int64           `db:"owner_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Rarity      string          `db:"rarity"`
	Price       sql.NullFloat64 `db:"price"`
	IsForSale   bool            `db:"is_for_sale"`
	FileID      string          `db:"file_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (s *giftSchema) toDomain() *entity.Gift {
	var price *float64
	if s.Price.Valid {
		p := s.Price.Float64
		price = &p
	}

	return &entity.Gift{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		Rarity:      value.Rarity(s.Rarity),
		Price:       price,
		IsForSale:   s.IsForSale,
		FileID:      s.FileID,
		CreatedAt:   s.CreatedAt,
	}
}

type userSchema struct {
	ID   int64  `db:"id"`
	Lang string `db:"lang"`
}

func (s *userSchema) toDomain() *entity.User {
	return &entity.User{
		ID:   s.ID,
		Lang: s.Lang,
	}
}
