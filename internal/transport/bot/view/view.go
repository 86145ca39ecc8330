package view

import (
	"fmt"
	"strconv"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"gift_shop/internal/domain/entity"
	"gift_shop/internal/domain/value"
)

const (
	catalogItemTemplate   = "🎁 %s (%s)\n📃 %s\n💰 %s TON\n🆔 %d"
	inventoryItemTemplate = "🎁 %s (%s)\n📃 %s"
	inventorySaleSuffix   = "\n💰 %s TON (%s)"
)

// CatalogCaption — подпись лота на витрине.
func CatalogCaption(gift entity.Gift, rarityLabel string) string {
	return fmt.Sprintf(catalogItemTemplate,
		gift.Name, rarityLabel, gift.Description, FormatPrice(gift.Price), gift.ID)
}

// InventoryCaption — подпись подарка в инвентаре; для выставленных
// лотов добавляется цена с пометкой.
func InventoryCaption(gift entity.Gift, rarityLabel, onSaleLabel string) string {
	caption := fmt.Sprintf(inventoryItemTemplate, gift.Name, rarityLabel, gift.Description)
	if gift.IsForSale {
		caption += fmt.Sprintf(inventorySaleSuffix, FormatPrice(gift.Price), onSaleLabel)
	}

	return caption
}

func FormatPrice(price *float64) string {
	if price == nil {
		return "—"
	}

	return strconv.FormatFloat(*price, 'f', -1, 64)
}

// MainMenuKeyboard — постоянная reply-клавиатура главного меню.
func MainMenuKeyboard(catalogLabel, inventoryLabel, languageLabel string) *telego.ReplyKeyboardMarkup {
	return tu.Keyboard(
		tu.KeyboardRow(
			tu.KeyboardButton(catalogLabel),
			tu.KeyboardButton(inventoryLabel),
		),
		tu.KeyboardRow(
			tu.KeyboardButton(languageLabel),
		),
	).WithResizeKeyboard()
}

// RarityKeyboard — выбор редкости при создании подарка.
func RarityKeyboard(labels map[value.Rarity]string) *telego.InlineKeyboardMarkup {
	buttons := make([]telego.InlineKeyboardButton, 0, len(labels))
	for _, rarity := range value.Rarities() {
		buttons = append(buttons, tu.InlineKeyboardButton(labels[rarity]).
			WithCallbackData(value.Command{Verb: value.CommandRarity, Arg: rarity.String()}.Token()))
	}

	return tu.InlineKeyboard(tu.InlineKeyboardRow(buttons...))
}

// LangOption — пункт клавиатуры выбора языка.
type LangOption struct {
	Code  string
	Label string
}

func LanguageKeyboard(options []LangOption) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(options))
	for _, opt := range options {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(opt.Label).
				WithCallbackData(value.Command{Verb: value.CommandLang, Arg: opt.Code}.Token()),
		))
	}

	return &telego.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// BuyKeyboard — кнопка покупки под лотом на витрине.
func BuyKeyboard(giftID int64, label string) *telego.InlineKeyboardMarkup {
	return giftKeyboard(value.CommandBuy, giftID, label)
}

// InventoryKeyboard — продать либо снять с продажи, по состоянию лота.
func InventoryKeyboard(gift entity.Gift, sellLabel, unsellLabel string) *telego.InlineKeyboardMarkup {
	if gift.IsForSale {
		return giftKeyboard(value.CommandUnsell, gift.ID, unsellLabel)
	}

	return giftKeyboard(value.CommandSell, gift.ID, sellLabel)
}

func giftKeyboard(verb value.CommandVerb, giftID int64, label string) *telego.InlineKeyboardMarkup {
	token := value.Command{Verb: verb, Arg: strconv.FormatInt(giftID, 10)}.Token()

	return tu.InlineKeyboard(tu.InlineKeyboardRow(
		tu.InlineKeyboardButton(label).WithCallbackData(token),
	))
}
