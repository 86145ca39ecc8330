package entity

// Step — текущий шаг диалогового визарда.
type Step string

const (
	StepNone                Step = ""
	StepAwaitingName        Step = "awaiting_name"
	StepAwaitingDescription Step = "awaiting_description"
	StepAwaitingRarity      Step = "awaiting_rarity"
	StepAwaitingPrice       Step = "awaiting_price"
)

// Session — эфемерное состояние визарда одного пользователя.
// Живёт только в сессионном сторе, в БД не попадает: частично
// заполненный черновик не должен быть виден как подарок.
type Session struct {
	Step Step `json:"step"`

	// Черновик создаваемого подарка
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	FileID      string `json:"file_id,omitempty"`

	// Подарок, над которым работает визард продажи
	TargetGiftID int64 `json:"target_gift_id,omitempty"`
}

func (s Session) Empty() bool {
	return s.Step == StepNone
}
