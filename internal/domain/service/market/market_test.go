package market_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"gift_shop/internal/domain"
	"gift_shop/internal/domain/entity"
	"gift_shop/internal/domain/service/market"
	"gift_shop/internal/domain/value"
	"gift_shop/pkg/errcodes"
	"gift_shop/pkg/tests"
)

// fakeGiftRepository повторяет контракт условных записей: предикат
// проверяется под мьютексом, отказ различается так же, как в SQL.
type fakeGiftRepository struct {
	mu     sync.Mutex
	nextID int64
	gifts  map[int64]entity.Gift
}

func newFakeGiftRepository() *fakeGiftRepository {
	return &fakeGiftRepository{
		nextID: 1,
		gifts:  map[int64]entity.Gift{},
	}
}

func (r *fakeGiftRepository) Create(_ context.Context, gift *entity.Gift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gift.ID = r.nextID
	r.nextID++
	r.gifts[gift.ID] = *gift

	return nil
}

func (r *fakeGiftRepository) GetByID(_ context.Context, id int64) (*entity.Gift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gift, ok := r.gifts[id]
	if !ok {
		return nil, domain.NewError(errcodes.GiftNotFound, "gift not found")
	}

	return &gift, nil
}

func (r *fakeGiftRepository) ListForSale(_ context.Context) ([]entity.Gift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []entity.Gift
	for _, gift := range r.gifts {
		if gift.IsForSale {
			result = append(result, gift)
		}
	}

	return result, nil
}

func (r *fakeGiftRepository) ListByOwner(_ context.Context, ownerID int64) ([]entity.Gift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []entity.Gift
	for _, gift := range r.gifts {
		if gift.OwnerID == ownerID {
			result = append(result, gift)
		}
	}

	return result, nil
}

func (r *fakeGiftRepository) MarkForSale(_ context.Context, giftID, ownerID int64, price float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gift, ok := r.gifts[giftID]
	switch {
	case !ok:
		return domain.NewError(errcodes.GiftNotFound, "gift not found")
	case gift.OwnerID != ownerID:
		return domain.NewError(errcodes.NotOwner, "gift belongs to another user")
	case gift.IsForSale:
		return domain.NewError(errcodes.AlreadyForSale, "gift is already for sale")
	}

	gift.IsForSale = true
	gift.Price = &price
	r.gifts[giftID] = gift

	return nil
}

func (r *fakeGiftRepository) Delist(_ context.Context, giftID, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gift, ok := r.gifts[giftID]
	switch {
	case !ok:
		return domain.NewError(errcodes.GiftNotFound, "gift not found")
	case gift.OwnerID != ownerID:
		return domain.NewError(errcodes.NotOwner, "gift belongs to another user")
	case !gift.IsForSale:
		return domain.NewError(errcodes.NotAvailable, "gift is not for sale")
	}

	gift.IsForSale = false
	gift.Price = nil
	r.gifts[giftID] = gift

	return nil
}

func (r *fakeGiftRepository) TransferToBuyer(_ context.Context, giftID, buyerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gift, ok := r.gifts[giftID]
	switch {
	case !ok:
		return domain.NewError(errcodes.NotAvailable, "gift not found or not for sale")
	case !gift.IsForSale:
		return domain.NewError(errcodes.AlreadySold, "gift has already been sold")
	case gift.OwnerID == buyerID:
		return domain.NewError(errcodes.SelfPurchase, "buyer already owns this gift")
	}

	gift.OwnerID = buyerID
	gift.IsForSale = false
	gift.Price = nil
	r.gifts[giftID] = gift

	return nil
}

type fakeLedger struct {
	balance int64
	err     error
}

func (l fakeLedger) Balance(context.Context, int64) (int64, error) {
	return l.balance, l.err
}

func requireCode(rq *require.Assertions, err error, want error) {
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)

	wantCode, ok := domain.GetCode(want)
	rq.True(ok)
	rq.Equal(wantCode, code)
}

func newService(balance int64) (*market.Service, *fakeGiftRepository) {
	repo := newFakeGiftRepository()
	return market.NewService(repo, fakeLedger{balance: balance}), repo
}

func createGift(t *testing.T, svc *market.Service, ownerID int64) *entity.Gift {
	t.Helper()

	gift, err := svc.Create(context.Background(), ownerID, "Cap", "Red cap", value.RarityRare, "file-1")
	require.NoError(t, err)

	return gift
}

func TestCreate(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(0)

	gift, err := svc.Create(ctx, 10, "  Cap  ", "Red cap", value.RarityCommon, "file-1")
	rq.NoError(err)
	rq.NotZero(gift.ID)
	rq.Equal("Cap", gift.Name)
	rq.False(gift.IsForSale)
	rq.Nil(gift.Price)

	inventory, err := svc.Inventory(ctx, 10)
	rq.NoError(err)
	rq.Len(inventory, 1)

	// Черновик без имени не попадает в базу
	_, err = svc.Create(ctx, 10, "   ", "desc", value.RarityCommon, "")
	requireCode(rq, err, domain.NewError(errcodes.InvalidInput, ""))

	_, err = svc.Create(ctx, 10, "Cap", "desc", value.Rarity("epic"), "")
	requireCode(rq, err, domain.NewError(errcodes.InvalidInput, ""))

	inventory, err = svc.Inventory(ctx, 10)
	rq.NoError(err)
	rq.Len(inventory, 1)
}

func TestParsePrice(t *testing.T) {
	rq := require.New(t)

	price, err := market.ParsePrice(" 1.5 ")
	rq.NoError(err)
	rq.InDelta(1.5, price, 1e-9)

	for _, text := range []string{"abc", "-5", "0", "NaN", "Inf", ""} {
		_, err := market.ParsePrice(text)
		requireCode(rq, err, domain.NewError(errcodes.InvalidPrice, ""))
	}
}

func TestListForSale(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(0)
	gift := createGift(t, svc, 10)

	price := 1 + tests.NewRandomizer().Float64()
	rq.NoError(svc.ListForSale(ctx, gift.ID, 10, price))

	catalog, err := svc.Catalog(ctx)
	rq.NoError(err)
	rq.Len(catalog, 1)
	rq.True(catalog[0].IsForSale)
	rq.InDelta(price, *catalog[0].Price, 1e-9)

	// Повторное выставление
	err = svc.ListForSale(ctx, gift.ID, 10, 3)
	requireCode(rq, err, domain.NewError(errcodes.AlreadyForSale, ""))

	// Чужой подарок: владение проверяется раньше состояния продажи
	err = svc.ListForSale(ctx, gift.ID, 11, 1)
	requireCode(rq, err, domain.NewError(errcodes.NotOwner, ""))

	catalog, err = svc.Catalog(ctx)
	rq.NoError(err)
	rq.InDelta(price, *catalog[0].Price, 1e-9)

	err = svc.ListForSale(ctx, gift.ID, 10, -1)
	requireCode(rq, err, domain.NewError(errcodes.InvalidPrice, ""))
}

func TestListForSaleNotOwner(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(0)
	gift := createGift(t, svc, 10)

	err := svc.ListForSale(ctx, gift.ID, 11, 1)
	requireCode(rq, err, domain.NewError(errcodes.NotOwner, ""))

	catalog, err := svc.Catalog(ctx)
	rq.NoError(err)
	rq.Empty(catalog)
}

func TestDelist(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(0)
	gift := createGift(t, svc, 10)

	rq.NoError(svc.ListForSale(ctx, gift.ID, 10, 2))

	err := svc.Delist(ctx, gift.ID, 11)
	requireCode(rq, err, domain.NewError(errcodes.NotOwner, ""))

	rq.NoError(svc.Delist(ctx, gift.ID, 10))

	catalog, err := svc.Catalog(ctx)
	rq.NoError(err)
	rq.Empty(catalog)

	// Снять уже снятое
	err = svc.Delist(ctx, gift.ID, 10)
	requireCode(rq, err, domain.NewError(errcodes.NotAvailable, ""))
}

func TestPurchase(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(5_000_000_000)
	gift := createGift(t, svc, 10)
	rq.NoError(svc.ListForSale(ctx, gift.ID, 10, 2))

	rq.NoError(svc.Purchase(ctx, gift.ID, 20))

	inventory, err := svc.Inventory(ctx, 20)
	rq.NoError(err)
	rq.Len(inventory, 1)
	rq.False(inventory[0].IsForSale)
	rq.Nil(inventory[0].Price)

	catalog, err := svc.Catalog(ctx)
	rq.NoError(err)
	rq.Empty(catalog)
}

func TestPurchaseRejections(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(5_000_000_000)
	gift := createGift(t, svc, 10)

	// Не выставлен
	err := svc.Purchase(ctx, gift.ID, 20)
	requireCode(rq, err, domain.NewError(errcodes.NotAvailable, ""))

	// Не существует
	err = svc.Purchase(ctx, 999, 20)
	requireCode(rq, err, domain.NewError(errcodes.NotAvailable, ""))

	rq.NoError(svc.ListForSale(ctx, gift.ID, 10, 2))

	// Свой лот
	err = svc.Purchase(ctx, gift.ID, 10)
	requireCode(rq, err, domain.NewError(errcodes.SelfPurchase, ""))
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	// 2 TON лот, на счету 1.5 TON
	svc, _ := newService(1_500_000_000)
	gift := createGift(t, svc, 10)
	rq.NoError(svc.ListForSale(ctx, gift.ID, 10, 2))

	err := svc.Purchase(ctx, gift.ID, 20)
	requireCode(rq, err, domain.NewError(errcodes.InsufficientFunds, ""))

	// Лот остаётся на витрине
	catalog, err := svc.Catalog(ctx)
	rq.NoError(err)
	rq.Len(catalog, 1)
}

func TestPurchaseLedgerDown(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := newFakeGiftRepository()
	svc := market.NewService(repo, fakeLedger{err: context.DeadlineExceeded})

	gift := createGift(t, svc, 10)
	rq.NoError(svc.ListForSale(ctx, gift.ID, 10, 2))

	err := svc.Purchase(ctx, gift.ID, 20)
	requireCode(rq, err, domain.NewError(errcodes.GatewayUnavailable, ""))
	rq.ErrorIs(err, context.DeadlineExceeded)
}

func TestPurchaseRace(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(5_000_000_000)
	gift := createGift(t, svc, 10)
	rq.NoError(svc.ListForSale(ctx, gift.ID, 10, 2))

	const buyers = 8

	var (
		mu        sync.Mutex
		succeeded []int64
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := range buyers {
		buyerID := int64(100 + i)

		g.Go(func() error {
			if err := svc.Purchase(ctx, gift.ID, buyerID); err == nil {
				mu.Lock()
				succeeded = append(succeeded, buyerID)
				mu.Unlock()
			}

			return nil
		})
	}

	rq.NoError(g.Wait())

	// Ровно один покупатель выигрывает гонку
	rq.Len(succeeded, 1)

	inventory, err := svc.Inventory(ctx, succeeded[0])
	rq.NoError(err)
	rq.Len(inventory, 1)
}
