package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

type saleFixture struct {
	svc          SaleService
	saleRepo     *stubSaleRepo
	productRepo  *stubProductRepo
	platformRepo *stubPlatformRepo
	movementRepo *stubMovementRepo
	accountID    uuid.UUID
	product      *model.Product
	variation    *model.ProductVariation
	platform     *model.Platform
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	f := &saleFixture{
		saleRepo:     newStubSaleRepo(),
		productRepo:  newStubProductRepo(),
		platformRepo: newStubPlatformRepo(),
		movementRepo: &stubMovementRepo{},
		accountID:    uuid.New(),
	}
	f.svc = NewSaleService(f.saleRepo, f.productRepo, f.platformRepo, f.movementRepo, nil)

	f.product = &model.Product{
		AccountID:     f.accountID,
		Name:          "Air Max 90",
		StandardCost:  dec("180.00"),
		StockQuantity: 10,
		MinStockLevel: 2,
	}
	require.NoError(t, f.productRepo.Create(context.Background(), f.product))

	f.variation = &model.ProductVariation{
		AccountID:     f.accountID,
		ProductID:     f.product.ID,
		Color:         "Preto",
		Size:          "42",
		StockQuantity: 4,
	}
	require.NoError(t, f.productRepo.CreateVariationTx(nil, f.variation))

	f.platform = &model.Platform{
		AccountID:  f.accountID,
		Name:       "Shopee",
		FeePercent: dec("14"),
		Color:      "#EA501F",
	}
	require.NoError(t, f.platformRepo.Create(context.Background(), f.platform))
	return f
}

func (f *saleFixture) request() dto.RecordSaleRequest {
	return dto.RecordSaleRequest{
		ProductID:           f.product.ID.String(),
		PlatformID:          f.platform.ID.String(),
		CostProductSnapshot: dec("9.50"),
		CostBox:             dec("1.50"),
		CostBag:             dec("0.50"),
		CostLabel:           dec("0.20"),
		CostOther:           decimal.Zero,
		ValueGross:          dec("58.10"),
		ValueReceived:       dec("50.00"),
	}
}

func TestRecordSaleComputesProfitFromSnapshot(t *testing.T) {
	f := newSaleFixture(t)

	resp, err := f.svc.RecordSale(context.Background(), f.accountID, f.request())
	require.NoError(t, err)

	// 50.00 - (9.50 + 1.50 + 0.50 + 0.20) = 38.30
	assert.True(t, dec("38.30").Equal(resp.ProfitFinal), "got %s", resp.ProfitFinal)
	assert.Equal(t, model.SaleStatusPending, resp.Status)
	assert.Equal(t, "Air Max 90", resp.ProductName)
	assert.Equal(t, "Shopee", resp.PlatformName)
	assert.Equal(t, "#EA501F", resp.PlatformColor)
}

func TestRecordSaleDecrementsProductAndVariation(t *testing.T) {
	f := newSaleFixture(t)

	req := f.request()
	vid := f.variation.ID.String()
	req.VariationID = &vid

	resp, err := f.svc.RecordSale(context.Background(), f.accountID, req)
	require.NoError(t, err)

	assert.Equal(t, 9, f.product.StockQuantity)
	assert.Equal(t, 3, f.variation.StockQuantity)
	require.NotNil(t, resp.Color)
	assert.Equal(t, "Preto", *resp.Color)
	require.NotNil(t, resp.Size)
	assert.Equal(t, "42", *resp.Size)

	// Two ledger rows under the same sale: variation first, then aggregate.
	require.Len(t, f.movementRepo.movements, 2)
	for _, m := range f.movementRepo.movements {
		assert.Equal(t, model.MovementSale, m.Type)
		assert.Equal(t, -1, m.Quantity)
		require.NotNil(t, m.SaleID)
		assert.Equal(t, resp.ID, m.SaleID.String())
	}
}

func TestRecordSaleClampsStockAtZero(t *testing.T) {
	f := newSaleFixture(t)
	f.product.StockQuantity = 1

	_, err := f.svc.RecordSale(context.Background(), f.accountID, f.request())
	require.NoError(t, err)
	assert.Equal(t, 0, f.product.StockQuantity)

	// A second sale of the same product still succeeds; stock stays at zero.
	_, err = f.svc.RecordSale(context.Background(), f.accountID, f.request())
	require.NoError(t, err)
	assert.Equal(t, 0, f.product.StockQuantity)

	last := f.movementRepo.movements[len(f.movementRepo.movements)-1]
	assert.Equal(t, 0, last.StockBefore)
	assert.Equal(t, 0, last.StockAfter)
	assert.Equal(t, 0, last.Quantity)
}

func TestRecordSaleRequiresSession(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.RecordSale(context.Background(), uuid.Nil, f.request())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	f := newSaleFixture(t)

	req := f.request()
	req.ProductID = uuid.NewString()
	_, err := f.svc.RecordSale(context.Background(), f.accountID, req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordSaleVariationOfOtherProduct(t *testing.T) {
	f := newSaleFixture(t)

	other := &model.Product{AccountID: f.accountID, Name: "Dunk Low", StockQuantity: 5}
	require.NoError(t, f.productRepo.Create(context.Background(), other))
	strange := &model.ProductVariation{
		AccountID: f.accountID,
		ProductID: other.ID,
		Color:     "Branco",
		Size:      "40",
	}
	require.NoError(t, f.productRepo.CreateVariationTx(nil, strange))

	req := f.request()
	vid := strange.ID.String()
	req.VariationID = &vid

	_, err := f.svc.RecordSale(context.Background(), f.accountID, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	f := newSaleFixture(t)

	req := f.request()
	vid := f.variation.ID.String()
	req.VariationID = &vid

	resp, err := f.svc.RecordSale(context.Background(), f.accountID, req)
	require.NoError(t, err)
	assert.Equal(t, 9, f.product.StockQuantity)
	assert.Equal(t, 3, f.variation.StockQuantity)

	saleID := uuid.MustParse(resp.ID)
	require.NoError(t, f.svc.DeleteSale(context.Background(), f.accountID, saleID))

	assert.Equal(t, 10, f.product.StockQuantity)
	assert.Equal(t, 4, f.variation.StockQuantity)
	_, err = f.saleRepo.FindByID(context.Background(), f.accountID, saleID)
	assert.Error(t, err)

	// 2 sale rows + 2 restore rows
	require.Len(t, f.movementRepo.movements, 4)
	assert.Equal(t, model.MovementRestore, f.movementRepo.movements[2].Type)
	assert.Equal(t, model.MovementRestore, f.movementRepo.movements[3].Type)
}

func TestDeleteSaleUnknown(t *testing.T) {
	f := newSaleFixture(t)
	err := f.svc.DeleteSale(context.Background(), f.accountID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	f := newSaleFixture(t)

	resp, err := f.svc.RecordSale(context.Background(), f.accountID, f.request())
	require.NoError(t, err)

	saleID := uuid.MustParse(resp.ID)
	require.NoError(t, f.svc.UpdateStatus(context.Background(), f.accountID, saleID, model.SaleStatusShipped))

	sale, err := f.saleRepo.FindByID(context.Background(), f.accountID, saleID)
	require.NoError(t, err)
	assert.Equal(t, model.SaleStatusShipped, sale.Status)
}

func TestListSalesDecoratesDeletedPlatform(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.RecordSale(context.Background(), f.accountID, f.request())
	require.NoError(t, err)

	// Platform gone — the listing degrades to the sentinel labels.
	delete(f.platformRepo.platforms, f.platform.ID)

	sales, err := f.svc.ListSales(context.Background(), f.accountID, dto.SaleFilter{})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, model.UnknownLabel, sales[0].PlatformName)
	assert.Equal(t, model.UnknownColor, sales[0].PlatformColor)
	assert.Equal(t, "Air Max 90", sales[0].ProductName)
}

func TestListSalesScopedToAccount(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.RecordSale(context.Background(), f.accountID, f.request())
	require.NoError(t, err)

	sales, err := f.svc.ListSales(context.Background(), uuid.New(), dto.SaleFilter{})
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestRecordSaleRejectsBadDate(t *testing.T) {
	f := newSaleFixture(t)

	req := f.request()
	req.DateSale = "31/12/2025"
	_, err := f.svc.RecordSale(context.Background(), f.accountID, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
