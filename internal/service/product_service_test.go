package service

import (
	"context"
	"testing"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	svc          ProductService
	productRepo  *stubProductRepo
	supplierRepo *stubSupplierRepo
	movementRepo *stubMovementRepo
	accountID    uuid.UUID
}

func newProductFixture() *productFixture {
	f := &productFixture{
		productRepo:  newStubProductRepo(),
		supplierRepo: newStubSupplierRepo(),
		movementRepo: &stubMovementRepo{},
		accountID:    uuid.New(),
	}
	f.svc = NewProductService(f.productRepo, f.supplierRepo, f.movementRepo, nil)
	return f
}

func TestCreateProductWithEstimates(t *testing.T) {
	f := newProductFixture()

	price := dec("299.90")
	resp, err := f.svc.Create(context.Background(), f.accountID, dto.ProductRequest{
		Name:           "Air Force 1",
		StandardCost:   dec("150.00"),
		CostBox:        dec("1.50"),
		CostBag:        dec("0.50"),
		CostLabel:      dec("0.20"),
		SuggestedPrice: &price,
		StockQuantity:  8,
		MinStockLevel:  3,
	})
	require.NoError(t, err)

	// 299.90 - 152.20 = 147.70
	assert.True(t, dec("147.70").Equal(resp.EstimatedProfit), "got %s", resp.EstimatedProfit)
	assert.True(t, dec("49.25").Equal(resp.EstimatedMargin), "got %s", resp.EstimatedMargin)
	assert.Equal(t, model.UnknownSupplierLabel, resp.SupplierName)
}

func TestCreateProductWithSupplier(t *testing.T) {
	f := newProductFixture()

	supplier := &model.Supplier{AccountID: f.accountID, Name: "Atacado SP"}
	require.NoError(t, f.supplierRepo.Create(context.Background(), supplier))

	sid := supplier.ID.String()
	resp, err := f.svc.Create(context.Background(), f.accountID, dto.ProductRequest{
		Name:       "Dunk Low",
		SupplierID: &sid,
	})
	require.NoError(t, err)
	assert.Equal(t, "Atacado SP", resp.SupplierName)
}

func TestCreateProductUnknownSupplier(t *testing.T) {
	f := newProductFixture()

	sid := uuid.NewString()
	_, err := f.svc.Create(context.Background(), f.accountID, dto.ProductRequest{
		Name:       "Dunk Low",
		SupplierID: &sid,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateVariationRaisesAggregate(t *testing.T) {
	f := newProductFixture()

	resp, err := f.svc.Create(context.Background(), f.accountID, dto.ProductRequest{
		Name:          "Air Max 95",
		StockQuantity: 2,
	})
	require.NoError(t, err)
	productID := uuid.MustParse(resp.ID)

	v, err := f.svc.CreateVariation(context.Background(), f.accountID, productID, dto.VariationRequest{
		Color:         "Verde",
		Size:          "41",
		StockQuantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, v.StockQuantity)

	product, err := f.productRepo.FindByID(context.Background(), f.accountID, productID)
	require.NoError(t, err)
	assert.Equal(t, 5, product.StockQuantity)

	require.Len(t, f.movementRepo.movements, 1)
	assert.Equal(t, model.MovementVariation, f.movementRepo.movements[0].Type)
	assert.Equal(t, 3, f.movementRepo.movements[0].Quantity)
}

func TestDeleteVariationLowersAggregate(t *testing.T) {
	f := newProductFixture()

	resp, err := f.svc.Create(context.Background(), f.accountID, dto.ProductRequest{Name: "Air Max 95"})
	require.NoError(t, err)
	productID := uuid.MustParse(resp.ID)

	v, err := f.svc.CreateVariation(context.Background(), f.accountID, productID, dto.VariationRequest{
		Color:         "Azul",
		Size:          "39",
		StockQuantity: 4,
	})
	require.NoError(t, err)

	err = f.svc.DeleteVariation(context.Background(), f.accountID, productID, uuid.MustParse(v.ID))
	require.NoError(t, err)

	product, err := f.productRepo.FindByID(context.Background(), f.accountID, productID)
	require.NoError(t, err)
	assert.Equal(t, 0, product.StockQuantity)
}

func TestStockEntryAndWithdrawal(t *testing.T) {
	f := newProductFixture()

	resp, err := f.svc.Create(context.Background(), f.accountID, dto.ProductRequest{
		Name:          "Jordan 1",
		StandardCost:  dec("200.00"),
		StockQuantity: 1,
	})
	require.NoError(t, err)
	productID := uuid.MustParse(resp.ID)

	cost := dec("185.00")
	entry, err := f.svc.StockEntry(context.Background(), f.accountID, productID, dto.StockEntryRequest{
		Type:     model.MovementEntry,
		Quantity: 5,
		UnitCost: &cost,
		Reason:   "Compra no atacado",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, entry.StockQuantity)
	assert.True(t, cost.Equal(entry.StandardCost))

	out, err := f.svc.StockEntry(context.Background(), f.accountID, productID, dto.StockEntryRequest{
		Type:     model.MovementWithdrawal,
		Quantity: 10,
		Reason:   "Perda",
	})
	require.NoError(t, err)
	// Withdrawals clamp at zero.
	assert.Equal(t, 0, out.StockQuantity)

	movements, err := f.svc.ListMovements(context.Background(), f.accountID, productID, 0)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, model.MovementEntry, movements[0].Type)
	assert.Equal(t, model.MovementWithdrawal, movements[1].Type)
}

func TestListProductsResolvesSupplierNames(t *testing.T) {
	f := newProductFixture()

	supplier := &model.Supplier{AccountID: f.accountID, Name: "Importadora XYZ"}
	require.NoError(t, f.supplierRepo.Create(context.Background(), supplier))

	sid := supplier.ID.String()
	_, err := f.svc.Create(context.Background(), f.accountID, dto.ProductRequest{Name: "A", SupplierID: &sid})
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), f.accountID, dto.ProductRequest{Name: "B"})
	require.NoError(t, err)

	list, err := f.svc.List(context.Background(), f.accountID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Importadora XYZ", list[0].SupplierName)
	assert.Equal(t, model.UnknownSupplierLabel, list[1].SupplierName)
}

func TestUpdateProductKeepsStock(t *testing.T) {
	f := newProductFixture()

	resp, err := f.svc.Create(context.Background(), f.accountID, dto.ProductRequest{
		Name:          "Samba",
		StockQuantity: 7,
	})
	require.NoError(t, err)
	productID := uuid.MustParse(resp.ID)

	updated, err := f.svc.Update(context.Background(), f.accountID, productID, dto.ProductRequest{
		Name:          "Samba OG",
		StockQuantity: 99, // ignored; only entries move stock
		MinStockLevel: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Samba OG", updated.Name)
	assert.Equal(t, 7, updated.StockQuantity)
	assert.Equal(t, 4, updated.MinStockLevel)
}
