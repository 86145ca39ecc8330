package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gift_shop/internal/domain/value"
)

func TestParseCommand(t *testing.T) {
	rq := require.New(t)

	cmd, ok := value.ParseCommand("buy_42")
	rq.True(ok)
	rq.Equal(value.CommandBuy, cmd.Verb)
	rq.Equal("42", cmd.Arg)

	cmd, ok = value.ParseCommand("lang_en")
	rq.True(ok)
	rq.Equal(value.CommandLang, cmd.Verb)
	rq.Equal("en", cmd.Arg)

	// Аргумент — весь остаток после первого разделителя
	cmd, ok = value.ParseCommand("rarity_very_rare")
	rq.True(ok)
	rq.Equal(value.CommandRarity, cmd.Verb)
	rq.Equal("very_rare", cmd.Arg)

	for _, token := range []string{"", "buy", "steal_42", "_42"} {
		_, ok := value.ParseCommand(token)
		rq.False(ok, "token %q", token)
	}
}

func TestCommandToken(t *testing.T) {
	rq := require.New(t)

	token := value.Command{Verb: value.CommandSell, Arg: "7"}.Token()
	rq.Equal("sell_7", token)

	cmd, ok := value.ParseCommand(token)
	rq.True(ok)
	rq.Equal(value.CommandSell, cmd.Verb)
	rq.Equal("7", cmd.Arg)
}

func TestParseRarity(t *testing.T) {
	rq := require.New(t)

	for _, rarity := range value.Rarities() {
		parsed, ok := value.ParseRarity(rarity.String())
		rq.True(ok)
		rq.Equal(rarity, parsed)
	}

	_, ok := value.ParseRarity("epic")
	rq.False(ok)

	_, ok = value.ParseRarity("")
	rq.False(ok)
}
