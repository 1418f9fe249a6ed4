package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/repository"

	"github.com/google/uuid"
)

// SupplierService owns sourcing contacts and their price catalogs. The
// catalog is only ever a hint: deleting a supplier never touches products or
// past sales, references just degrade to the sentinel label.
type SupplierService interface {
	Create(ctx context.Context, accountID uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, accountID, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context, accountID uuid.UUID) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, accountID, id uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
	// CostHint looks a product name up across every supplier catalog and
	// returns the best price match, or ErrNotFound when nothing matches.
	CostHint(ctx context.Context, accountID uuid.UUID, productName string) (*dto.CostHintResponse, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, accountID uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	supplier := &model.Supplier{
		AccountID:   accountID,
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Catalog:     catalogFromRequest(req.Catalog),
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, WriteFailed("criação do fornecedor", err)
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) Get(ctx context.Context, accountID, id uuid.UUID) (*dto.SupplierResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	supplier, err := s.repo.FindByID(ctx, accountID, id)
	if err != nil {
		return nil, fmt.Errorf("fornecedor %s: %w", id, ErrNotFound)
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context, accountID uuid.UUID) ([]dto.SupplierResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	suppliers, err := s.repo.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		resp = append(resp, *supplierToResponse(&suppliers[i]))
	}
	return resp, nil
}

func (s *supplierService) Update(ctx context.Context, accountID, id uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	supplier, err := s.repo.FindByID(ctx, accountID, id)
	if err != nil {
		return nil, fmt.Errorf("fornecedor %s: %w", id, ErrNotFound)
	}

	supplier.Name = req.Name
	supplier.ContactName = req.ContactName
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.Address = req.Address
	supplier.Catalog = catalogFromRequest(req.Catalog)
	for i := range supplier.Catalog {
		supplier.Catalog[i].SupplierID = supplier.ID
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, WriteFailed("atualização do fornecedor", err)
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	if accountID == uuid.Nil {
		return ErrUnauthenticated
	}
	if _, err := s.repo.FindByID(ctx, accountID, id); err != nil {
		return fmt.Errorf("fornecedor %s: %w", id, ErrNotFound)
	}
	if err := s.repo.Delete(ctx, accountID, id); err != nil {
		return WriteFailed("exclusão do fornecedor", err)
	}
	return nil
}

func (s *supplierService) CostHint(ctx context.Context, accountID uuid.UUID, productName string) (*dto.CostHintResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	name := normalizeModel(productName)
	if name == "" {
		return nil, validationf("nome do produto é obrigatório")
	}

	suppliers, err := s.repo.List(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Exact match beats a partial one; the first partial found wins among
	// partials, following catalog order.
	var partial *dto.CostHintResponse
	for i := range suppliers {
		sup := &suppliers[i]
		for _, item := range sup.Catalog {
			itemName := normalizeModel(item.Model)
			if itemName == name {
				return &dto.CostHintResponse{
					SupplierID:   sup.ID.String(),
					SupplierName: sup.Name,
					Model:        item.Model,
					Price:        item.Price,
				}, nil
			}
			if partial == nil && (strings.Contains(itemName, name) || strings.Contains(name, itemName)) {
				partial = &dto.CostHintResponse{
					SupplierID:   sup.ID.String(),
					SupplierName: sup.Name,
					Model:        item.Model,
					Price:        item.Price,
				}
			}
		}
	}
	if partial != nil {
		return partial, nil
	}
	return nil, fmt.Errorf("preço para %q: %w", productName, ErrNotFound)
}

func normalizeModel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func catalogFromRequest(items []dto.CatalogItemRequest) []model.SupplierCatalogItem {
	catalog := make([]model.SupplierCatalogItem, 0, len(items))
	for i, item := range items {
		catalog = append(catalog, model.SupplierCatalogItem{
			Model:    item.Model,
			Price:    item.Price,
			Position: i,
		})
	}
	return catalog
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	catalog := make([]dto.CatalogItemRequest, 0, len(s.Catalog))
	for _, item := range s.Catalog {
		catalog = append(catalog, dto.CatalogItemRequest{Model: item.Model, Price: item.Price})
	}
	return &dto.SupplierResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		Catalog:     catalog,
	}
}
