package service

import (
	"context"
	"errors"
	"sort"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository stubs shared by the service tests. DB() returns nil so
// runTx calls the callback directly, without a real transaction.

// ── Product repository stub ───────────────────────────────────────────────────

type stubProductRepo struct {
	products   map[uuid.UUID]*model.Product
	variations map[uuid.UUID]*model.ProductVariation
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:   make(map[uuid.UUID]*model.Product),
		variations: make(map[uuid.UUID]*model.ProductVariation),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, accountID, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.AccountID != accountID {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context, accountID uuid.UUID) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.AccountID == accountID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) UpdateImageURL(_ context.Context, _, id uuid.UUID, url *string) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("not found")
	}
	p.ImageURL = url
	return nil
}

func (r *stubProductRepo) CreateVariationTx(_ *gorm.DB, v *model.ProductVariation) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.variations[v.ID] = v
	return nil
}

func (r *stubProductRepo) FindVariationByID(_ context.Context, accountID, id uuid.UUID) (*model.ProductVariation, error) {
	v, ok := r.variations[id]
	if !ok || v.AccountID != accountID {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (r *stubProductRepo) ListVariations(_ context.Context, accountID, productID uuid.UUID) ([]model.ProductVariation, error) {
	var out []model.ProductVariation
	for _, v := range r.variations {
		if v.AccountID == accountID && v.ProductID == productID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubProductRepo) DeleteVariationTx(_ *gorm.DB, _, id uuid.UUID) error {
	delete(r.variations, id)
	return nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, accountID, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(context.Background(), accountID, id)
}

func (r *stubProductRepo) FindVariationByIDTx(_ *gorm.DB, accountID, id uuid.UUID) (*model.ProductVariation, error) {
	return r.FindVariationByID(context.Background(), accountID, id)
}

func (r *stubProductRepo) AdjustStockTx(_ *gorm.DB, accountID, id uuid.UUID, delta int) error {
	p, err := r.FindByID(context.Background(), accountID, id)
	if err != nil {
		return err
	}
	p.StockQuantity += delta
	if p.StockQuantity < 0 {
		p.StockQuantity = 0
	}
	return nil
}

func (r *stubProductRepo) AdjustVariationStockTx(_ *gorm.DB, accountID, id uuid.UUID, delta int) error {
	v, err := r.FindVariationByID(context.Background(), accountID, id)
	if err != nil {
		return err
	}
	v.StockQuantity += delta
	if v.StockQuantity < 0 {
		v.StockQuantity = 0
	}
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Sale repository stub ──────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) DeleteTx(_ *gorm.DB, _, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, accountID, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok || s.AccountID != accountID {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSaleRepo) List(_ context.Context, accountID uuid.UUID, filter dto.SaleFilter) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if s.AccountID != accountID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateSale.After(out[j].DateSale) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *stubSaleRepo) UpdateStatus(_ context.Context, _, id uuid.UUID, status string) error {
	s, ok := r.sales[id]
	if !ok {
		return errors.New("not found")
	}
	s.Status = status
	return nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── Platform repository stub ──────────────────────────────────────────────────

type stubPlatformRepo struct {
	platforms map[uuid.UUID]*model.Platform
}

func newStubPlatformRepo() *stubPlatformRepo {
	return &stubPlatformRepo{platforms: make(map[uuid.UUID]*model.Platform)}
}

func (r *stubPlatformRepo) Create(_ context.Context, p *model.Platform) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.platforms[p.ID] = p
	return nil
}

func (r *stubPlatformRepo) FindByID(_ context.Context, accountID, id uuid.UUID) (*model.Platform, error) {
	p, ok := r.platforms[id]
	if !ok || p.AccountID != accountID {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubPlatformRepo) List(_ context.Context, accountID uuid.UUID) ([]model.Platform, error) {
	var out []model.Platform
	for _, p := range r.platforms {
		if p.AccountID == accountID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubPlatformRepo) CountByAccount(_ context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.platforms {
		if p.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

func (r *stubPlatformRepo) SeedDefaults(_ context.Context, platforms []model.Platform) error {
	for i := range platforms {
		p := platforms[i]
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.platforms[p.ID] = &p
	}
	return nil
}

var _ repository.PlatformRepository = (*stubPlatformRepo)(nil)

// ── Stock movement repository stub ────────────────────────────────────────────

type stubMovementRepo struct {
	movements []model.StockMovement
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) ListByProduct(_ context.Context, accountID, productID uuid.UUID, limit int) ([]model.StockMovement, error) {
	var out []model.StockMovement
	for _, m := range r.movements {
		if m.AccountID == accountID && m.ProductID == productID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// ── Supplier repository stub ──────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, accountID, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok || s.AccountID != accountID {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context, accountID uuid.UUID) ([]model.Supplier, error) {
	var out []model.Supplier
	for _, s := range r.suppliers {
		if s.AccountID == accountID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Account repository stub ───────────────────────────────────────────────────

type stubAccountRepo struct {
	accounts map[uuid.UUID]*model.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[uuid.UUID]*model.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, a *model.Account) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.accounts[a.ID] = a
	return nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*model.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email && a.Active {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

var _ repository.AccountRepository = (*stubAccountRepo)(nil)
