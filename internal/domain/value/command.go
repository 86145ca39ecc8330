package value

import "strings"

// CommandVerb — глагол callback-команды из inline-клавиатуры.
type CommandVerb string

const (
	CommandBuy    CommandVerb = "buy"
	CommandSell   CommandVerb = "sell"
	CommandUnsell CommandVerb = "unsell"
	CommandRarity CommandVerb = "rarity"
	CommandLang   CommandVerb = "lang"
)

// Command — разобранный callback-токен вида "<verb>_<arg>".
// Токен разбирается один раз на границе транспорта, дальше по коду
// ходит уже типизированная команда.
type Command struct {
	Verb CommandVerb
	Arg  string
}

// ParseCommand разбирает токен по первому разделителю, аргументом
// считается весь остаток строки.
func ParseCommand(token string) (Command, bool) {
	verb, arg, found := strings.Cut(token, "_")
	if !found {
		return Command{}, false
	}

	switch CommandVerb(verb) {
	case CommandBuy, CommandSell, CommandUnsell, CommandRarity, CommandLang:
		return Command{Verb: CommandVerb(verb), Arg: arg}, true
	default:
		return Command{}, false
	}
}

func (c Command) Token() string {
	return string(c.Verb) + "_" + c.Arg
}
