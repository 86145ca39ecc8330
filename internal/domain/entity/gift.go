package entity

import (
	"gift_shop/internal/domain/value"
	"time"
)

type Gift struct {
	ID          int64        `json:"id" db:"id"`
	OwnerID     int64        `json:"owner_id" db:"owner_id"`
	Name        string       `json:"name" db:"name"`
	Description string       `json:"description" db:"description"`
	Rarity      value.Rarity `json:"rarity" db:"rarity"`
	Price       *float64     `json:"price,omitempty" db:"price"` // заполнена только пока IsForSale
	IsForSale   bool         `json:"is_for_sale" db:"is_for_sale"`
	FileID      string       `json:"file_id" db:"file_id"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
