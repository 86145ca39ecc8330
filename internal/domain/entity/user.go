package entity

type User struct {
	ID   int64  `json:"id" db:"id"`
	Lang string `json:"lang" db:"lang"`
}
