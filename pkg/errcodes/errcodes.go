package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Коды модуля Gift
	GiftNotFound       failure.ErrorCode = "GiftNotFound"       // ID пришёл, но в базе нет
	InvalidGiftID      failure.ErrorCode = "InvalidGiftID"      // Мусор вместо ID
	InvalidInput       failure.ErrorCode = "InvalidInput"       // Пустое имя/описание, неверная редкость
	InvalidPrice       failure.ErrorCode = "InvalidPrice"       // Цена не число или <= 0
	NotOwner           failure.ErrorCode = "NotOwner"           // Операция не от владельца
	AlreadyForSale     failure.ErrorCode = "AlreadyForSale"     // Повторное выставление
	NotAvailable       failure.ErrorCode = "NotAvailable"       // Нет в продаже или не существует
	SelfPurchase       failure.ErrorCode = "SelfPurchase"       // Покупка собственного подарка
	InsufficientFunds  failure.ErrorCode = "InsufficientFunds"  // Баланс меньше цены
	AlreadySold        failure.ErrorCode = "AlreadySold"        // Проигранная гонка за лот
	StoreUnavailable   failure.ErrorCode = "StoreUnavailable"   // Отказ хранилища
	GatewayUnavailable failure.ErrorCode = "GatewayUnavailable" // Отказ мессенджера
)
