package market

import (
	"context"
	"math"
	"strconv"
	"strings"

	"gift_shop/internal/domain"
	"gift_shop/internal/domain/entity"
	"gift_shop/internal/domain/value"
	"gift_shop/pkg/contextx"
	"gift_shop/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const nanotonsPerTon = 1e9

type GiftRepository interface {
	Create(ctx context.Context, gift *entity.Gift) error
	GetByID(ctx context.Context, id int64) (*entity.Gift, error)
	ListForSale(ctx context.Context) ([]entity.Gift, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Gift, error)
	MarkForSale(ctx context.Context, giftID, ownerID int64, price float64) error
	Delist(ctx context.Context, giftID, ownerID int64) error
	TransferToBuyer(ctx context.Context, giftID, buyerID int64) error
}

// Ledger отдаёт доступный баланс счёта покупателя в нанотонах.
type Ledger interface {
	Balance(ctx context.Context, userID int64) (int64, error)
}

// Service — торговая логика: создание, выставление, снятие и покупка
// подарков. Все мутации идут через условные записи репозитория, так
// что гонка двух покупателей решается на стороне хранилища.
type Service struct {
	gifts  GiftRepository
	ledger Ledger
}

func NewService(gifts GiftRepository, ledger Ledger) *Service {
	return &Service{
		gifts:  gifts,
		ledger: ledger,
	}
}

// Create добавляет новый подарок владельцу. Подарок появляется в базе
// только целиком: либо вставка со всеми полями, либо ничего.
func (s *Service) Create(
	ctx context.Context,
	ownerID int64,
	name, description string,
	rarity value.Rarity,
	fileID string,
) (*entity.Gift, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" || description == "" {
		return nil, domain.NewError(errcodes.InvalidInput, "name and description are required")
	}

	if _, ok := value.ParseRarity(rarity.String()); !ok {
		return nil, domain.NewError(errcodes.InvalidInput, "unknown rarity")
	}

	gift := &entity.Gift{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Rarity:      rarity,
		FileID:      fileID,
	}

	if err := s.gifts.Create(ctx, gift); err != nil {
		return nil, err
	}

	logger(ctx).Info("gift created", "gift_id", gift.ID, "owner_id", ownerID, "rarity", rarity)

	return gift, nil
}

// ParsePrice разбирает цену из текста визарда. Правила одни на всех:
// конечное положительное число, иначе InvalidPrice.
func ParsePrice(text string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InvalidPrice, "price is not a number")
	}

	if err := validatePrice(price); err != nil {
		return 0, err
	}

	return price, nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return domain.NewError(errcodes.InvalidPrice, "price must be a positive number")
	}

	return nil
}

// ListForSale выставляет подарок на продажу от имени владельца.
func (s *Service) ListForSale(ctx context.Context, giftID, ownerID int64, price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}

	if err := s.gifts.MarkForSale(ctx, giftID, ownerID, price); err != nil {
		return err
	}

	logger(ctx).Info("gift listed", "gift_id", giftID, "owner_id", ownerID, "price", price)

	return nil
}

// Delist снимает подарок владельца с продажи.
func (s *Service) Delist(ctx context.Context, giftID, ownerID int64) error {
	if err := s.gifts.Delist(ctx, giftID, ownerID); err != nil {
		return err
	}

	logger(ctx).Info("gift delisted", "gift_id", giftID, "owner_id", ownerID)

	return nil
}

// Purchase покупает лот. Порядок отказов: лота нет или он не на
// продаже, покупка своего, нехватка баланса, проигранная гонка.
// Сам перевод TON бот не выполняет: баланс только проверяется, деньги
// двигает внешний кошелёк.
func (s *Service) Purchase(ctx context.Context, giftID, buyerID int64) error {
	gift, err := s.gifts.GetByID(ctx, giftID)
	if err != nil {
		if code, ok := domain.GetCode(err); ok && code == errcodes.GiftNotFound {
			return domain.NewError(errcodes.NotAvailable, "gift not found or not for sale")
		}
		return err
	}

	if !gift.IsForSale || gift.Price == nil {
		return domain.NewError(errcodes.NotAvailable, "gift not found or not for sale")
	}

	if gift.OwnerID == buyerID {
		return domain.NewError(errcodes.SelfPurchase, "buyer already owns this gift")
	}

	required := int64(math.Round(*gift.Price * nanotonsPerTon))

	balance, err := s.ledger.Balance(ctx, buyerID)
	if err != nil {
		return domain.WrapError(err, errcodes.GatewayUnavailable, "failed to check balance")
	}

	if balance < required {
		return domain.NewError(errcodes.InsufficientFunds, "balance is below the gift price")
	}

	if err := s.gifts.TransferToBuyer(ctx, giftID, buyerID); err != nil {
		return err
	}

	logger(ctx).Info("gift purchased",
		"gift_id", giftID, "buyer_id", buyerID, "seller_id", gift.OwnerID, "price", *gift.Price)

	return nil
}

// Catalog — все лоты на витрине.
func (s *Service) Catalog(ctx context.Context) ([]entity.Gift, error) {
	return s.gifts.ListForSale(ctx)
}

// Inventory — все подарки пользователя.
func (s *Service) Inventory(ctx context.Context, ownerID int64) ([]entity.Gift, error) {
	return s.gifts.ListByOwner(ctx, ownerID)
}
