package localization

// Ключи, без которых бот не может разговаривать. Проверяются на старте
// для языка по умолчанию.
var requiredKeys = []string{
	KeyStart,
	KeyMenu,
	KeyCatalog,
	KeyInventory,
	KeyNoGifts,
	KeyChooseLanguage,
	KeySuccess,
	KeyEnterName,
	KeyEnterDescription,
	KeyChooseRarity,
	KeyEnterPrice,
	KeyInvalidPrice,
	KeyAdded,
	KeyListed,
	KeyRemovedFromSale,
	KeyPurchaseSuccess,
	KeyInsufficientFunds,
	KeyAlreadyForSale,
	KeyNotAvailable,
	KeySelfPurchase,
	KeyAlreadySold,
	KeyNotOwner,
	KeyInternalError,
	KeyButtonCatalog,
	KeyButtonInventory,
	KeyButtonLanguage,
	KeyButtonBuy,
	KeyButtonSell,
	KeyButtonUnsell,
	KeyOnSale,
}

const (
	KeyStart             = "start"
	KeyMenu              = "menu"
	KeyCatalog           = "catalog"
	KeyInventory         = "inventory"
	KeyNoGifts           = "no_gifts"
	KeyChooseLanguage    = "choose_language"
	KeySuccess           = "success"
	KeyEnterName         = "enter_name"
	KeyEnterDescription  = "enter_description"
	KeyChooseRarity      = "choose_rarity"
	KeyEnterPrice        = "enter_price"
	KeyInvalidPrice      = "invalid_price"
	KeyAdded             = "added"
	KeyListed            = "listed"
	KeyRemovedFromSale   = "removed_from_sale"
	KeyPurchaseSuccess   = "purchase_success"
	KeyInsufficientFunds = "insufficient_funds"
	KeyAlreadyForSale    = "already_for_sale"
	KeyNotAvailable      = "not_available"
	KeySelfPurchase      = "self_purchase"
	KeyAlreadySold       = "already_sold"
	KeyNotOwner          = "not_owner"
	KeyInternalError     = "internal_error"
	KeyButtonCatalog     = "button_catalog"
	KeyButtonInventory   = "button_inventory"
	KeyButtonLanguage    = "button_language"
	KeyButtonBuy         = "button_buy"
	KeyButtonSell        = "button_sell"
	KeyButtonUnsell      = "button_unsell"
	KeyOnSale            = "on_sale"
	KeyRarityCommon      = "rarity_common"
	KeyRarityRare        = "rarity_rare"
	KeyRarityLegendary   = "rarity_legendary"
	KeyLangNameRu        = "lang_name_ru"
	KeyLangNameEn        = "lang_name_en"
)

func defaultLocales() map[string]map[string]string {
	return map[string]map[string]string{
		"ru": {
			KeyStart:             "👋 Добро пожаловать в магазин подарков!",
			KeyMenu:              "📋 Главное меню",
			KeyCatalog:           "🛍 Каталог подарков:",
			KeyInventory:         "🎒 Ваш инвентарь:",
			KeyNoGifts:           "Подарков пока нет.",
			KeyChooseLanguage:    "🌐 Выберите язык:",
			KeySuccess:           "✅ Успешно!",
			KeyEnterName:         "📝 Введите название подарка:",
			KeyEnterDescription:  "📃 Введите описание подарка:",
			KeyChooseRarity:      "🌟 Выберите редкость подарка:",
			KeyEnterPrice:        "💰 Введите цену для выставления на продажу:",
			KeyInvalidPrice:      "❌ Неверный формат цены.",
			KeyAdded:             "🎁 Подарок добавлен!",
			KeyListed:            "📦 Подарок выставлен на продажу!",
			KeyRemovedFromSale:   "❌ Подарок снят с продажи",
			KeyPurchaseSuccess:   "✅ Покупка завершена!",
			KeyInsufficientFunds: "❌ Недостаточно средств для покупки.",
			KeyAlreadyForSale:    "❌ Этот подарок уже выставлен на продажу.",
			KeyNotAvailable:      "❌ Подарок не найден или не продается.",
			KeySelfPurchase:      "❌ Это ваш подарок.",
			KeyAlreadySold:       "❌ Подарок уже купили.",
			KeyNotOwner:          "❌ Это не ваш подарок.",
			KeyInternalError:     "❌ Что-то пошло не так, попробуйте ещё раз.",
			KeyButtonCatalog:     "🛍 Каталог",
			KeyButtonInventory:   "🎒 Инвентарь",
			KeyButtonLanguage:    "🌐 Язык",
			KeyButtonBuy:         "Купить",
			KeyButtonSell:        "📤 Продать",
			KeyButtonUnsell:      "🔽 Снять с продажи",
			KeyOnSale:            "на продаже",
			KeyRarityCommon:      "⭐️ Обычный",
			KeyRarityRare:        "🌟 Редкий",
			KeyRarityLegendary:   "💎 Легендарный",
			KeyLangNameRu:        "Русский",
			KeyLangNameEn:        "English",
		},
		"en": {
			KeyStart:             "👋 Welcome to the gift shop!",
			KeyMenu:              "📋 Main menu",
			KeyCatalog:           "🛍 Gift catalog:",
			KeyInventory:         "🎒 Your inventory:",
			KeyNoGifts:           "No gifts yet.",
			KeyChooseLanguage:    "🌐 Choose a language:",
			KeySuccess:           "✅ Done!",
			KeyEnterName:         "📝 Enter the gift name:",
			KeyEnterDescription:  "📃 Enter the gift description:",
			KeyChooseRarity:      "🌟 Choose the gift rarity:",
			KeyEnterPrice:        "💰 Enter the sale price:",
			KeyInvalidPrice:      "❌ Invalid price format.",
			KeyAdded:             "🎁 Gift added!",
			KeyListed:            "📦 Gift is now for sale!",
			KeyRemovedFromSale:   "❌ Gift removed from sale",
			KeyPurchaseSuccess:   "✅ Purchase complete!",
			KeyInsufficientFunds: "❌ Not enough funds for this purchase.",
			KeyAlreadyForSale:    "❌ This gift is already for sale.",
			KeyNotAvailable:      "❌ Gift not found or not for sale.",
			KeySelfPurchase:      "❌ This is your own gift.",
			KeyAlreadySold:       "❌ Gift has already been bought.",
			KeyNotOwner:          "❌ This is not your gift.",
			KeyInternalError:     "❌ Something went wrong, please try again.",
			KeyButtonCatalog:     "🛍 Catalog",
			KeyButtonInventory:   "🎒 Inventory",
			KeyButtonLanguage:    "🌐 Language",
			KeyButtonBuy:         "Buy",
			KeyButtonSell:        "📤 Sell",
			KeyButtonUnsell:      "🔽 Remove from sale",
			KeyOnSale:            "on sale",
			KeyRarityCommon:      "⭐️ Common",
			KeyRarityRare:        "🌟 Rare",
			KeyRarityLegendary:   "💎 Legendary",
			KeyLangNameRu:        "Русский",
			KeyLangNameEn:        "English",
		},
	}
}
