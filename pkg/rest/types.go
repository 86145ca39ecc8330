// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

type Gift struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rarity      string    `json:"rarity"`
	Price       *float64  `json:"price,omitempty"`
	IsForSale   bool      `json:"isForSale"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateGiftRequest struct {
	OwnerID     int64  `json:"ownerId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Rarity      string `json:"rarity" validate:"required,oneof=common rare legendary"`
	FileID      string `json:"fileId"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
