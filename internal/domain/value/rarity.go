package value

// Rarity — закрытый набор уровней редкости подарка.
// Значение фиксируется при создании и больше не меняется.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) String() string {
	return string(r)
}

func ParseRarity(s string) (Rarity, bool) {
	switch Rarity(s) {
	case RarityCommon, RarityRare, RarityLegendary:
		return Rarity(s), true
	default:
		return "", false
	}
}

func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityLegendary}
}
