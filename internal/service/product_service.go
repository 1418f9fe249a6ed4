package service

import (
	"context"
	"fmt"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// imageRemover deletes a stored product image by its public URL. Satisfied by
// infra.ImageStore; nil in unit tests.
type imageRemover interface {
	RemoveByURL(url string)
}

// ProductService owns the catalog: products, their variations, and manual
// stock entries. Variation and stock mutations run in a transaction together
// with the parent aggregate and a ledger row, mirroring the sale path.
type ProductService interface {
	Create(ctx context.Context, accountID uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, accountID, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, accountID uuid.UUID) ([]dto.ProductResponse, error)
	Update(ctx context.Context, accountID, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error

	CreateVariation(ctx context.Context, accountID, productID uuid.UUID, req dto.VariationRequest) (*dto.VariationResponse, error)
	DeleteVariation(ctx context.Context, accountID, productID, variationID uuid.UUID) error

	StockEntry(ctx context.Context, accountID, productID uuid.UUID, req dto.StockEntryRequest) (*dto.ProductResponse, error)
	ListMovements(ctx context.Context, accountID, productID uuid.UUID, limit int) ([]model.StockMovement, error)
}

type productService struct {
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
	movementRepo repository.StockMovementRepository
	images       imageRemover
}

func NewProductService(
	repo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	movementRepo repository.StockMovementRepository,
	images imageRemover,
) ProductService {
	return &productService{
		repo:         repo,
		supplierRepo: supplierRepo,
		movementRepo: movementRepo,
		images:       images,
	}
}

func (s *productService) Create(ctx context.Context, accountID uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	supplierID, err := s.resolveSupplier(ctx, accountID, req.SupplierID)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		AccountID:      accountID,
		Name:           req.Name,
		StandardCost:   req.StandardCost,
		CostBox:        req.CostBox,
		CostBag:        req.CostBag,
		CostLabel:      req.CostLabel,
		SuggestedPrice: req.SuggestedPrice,
		StockQuantity:  req.StockQuantity,
		MinStockLevel:  req.MinStockLevel,
		SupplierID:     supplierID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, WriteFailed("criação do produto", err)
	}
	return s.toResponse(ctx, accountID, product), nil
}

func (s *productService) Get(ctx context.Context, accountID, id uuid.UUID) (*dto.ProductResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	product, err := s.repo.FindByID(ctx, accountID, id)
	if err != nil {
		return nil, fmt.Errorf("produto %s: %w", id, ErrNotFound)
	}
	return s.toResponse(ctx, accountID, product), nil
}

func (s *productService) List(ctx context.Context, accountID uuid.UUID) ([]dto.ProductResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	products, err := s.repo.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	supplierNames := s.supplierNames(ctx, accountID)

	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, *productToResponse(&products[i], supplierNames))
	}
	return resp, nil
}

func (s *productService) Update(ctx context.Context, accountID, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	product, err := s.repo.FindByID(ctx, accountID, id)
	if err != nil {
		return nil, fmt.Errorf("produto %s: %w", id, ErrNotFound)
	}
	supplierID, err := s.resolveSupplier(ctx, accountID, req.SupplierID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.StandardCost = req.StandardCost
	product.CostBox = req.CostBox
	product.CostBag = req.CostBag
	product.CostLabel = req.CostLabel
	product.SuggestedPrice = req.SuggestedPrice
	product.MinStockLevel = req.MinStockLevel
	product.SupplierID = supplierID
	// StockQuantity is never edited directly here; entries and variations own it.

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, WriteFailed("atualização do produto", err)
	}
	return s.toResponse(ctx, accountID, product), nil
}

func (s *productService) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	if accountID == uuid.Nil {
		return ErrUnauthenticated
	}
	product, err := s.repo.FindByID(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("produto %s: %w", id, ErrNotFound)
	}
	if err := s.repo.Delete(ctx, accountID, id); err != nil {
		return WriteFailed("exclusão do produto", err)
	}
	if product.ImageURL != nil && s.images != nil {
		s.images.RemoveByURL(*product.ImageURL)
	}
	return nil
}

func (s *productService) CreateVariation(ctx context.Context, accountID, productID uuid.UUID, req dto.VariationRequest) (*dto.VariationResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	var variation model.ProductVariation
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		product, err := s.repo.FindByIDTx(tx, accountID, productID)
		if err != nil {
			return fmt.Errorf("produto %s: %w", productID, ErrNotFound)
		}

		variation = model.ProductVariation{
			AccountID:     accountID,
			ProductID:     productID,
			Color:         req.Color,
			Size:          req.Size,
			StockQuantity: req.StockQuantity,
		}
		if err := s.repo.CreateVariationTx(tx, &variation); err != nil {
			return WriteFailed("criação da variação", err)
		}
		if req.StockQuantity == 0 {
			return nil
		}

		// The aggregate absorbs the variation's opening stock.
		before := product.StockQuantity
		if err := s.repo.AdjustStockTx(tx, accountID, productID, req.StockQuantity); err != nil {
			return WriteFailed("ajuste de estoque do produto", err)
		}
		mov := &model.StockMovement{
			AccountID:   accountID,
			ProductID:   productID,
			VariationID: &variation.ID,
			Type:        model.MovementVariation,
			Quantity:    req.StockQuantity,
			StockBefore: before,
			StockAfter:  before + req.StockQuantity,
			Reason:      fmt.Sprintf("Nova variação %s - %s", req.Color, req.Size),
		}
		return s.movementRepo.CreateTx(tx, mov)
	})
	if err != nil {
		return nil, err
	}
	return variationToResponse(&variation), nil
}

func (s *productService) DeleteVariation(ctx context.Context, accountID, productID, variationID uuid.UUID) error {
	if accountID == uuid.Nil {
		return ErrUnauthenticated
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		variation, err := s.repo.FindVariationByIDTx(tx, accountID, variationID)
		if err != nil {
			return fmt.Errorf("variação %s: %w", variationID, ErrNotFound)
		}
		if variation.ProductID != productID {
			return validationf("variação não pertence ao produto informado")
		}
		product, err := s.repo.FindByIDTx(tx, accountID, productID)
		if err != nil {
			return fmt.Errorf("produto %s: %w", productID, ErrNotFound)
		}

		if err := s.repo.DeleteVariationTx(tx, accountID, variationID); err != nil {
			return WriteFailed("exclusão da variação", err)
		}
		if variation.StockQuantity == 0 {
			return nil
		}

		before := product.StockQuantity
		after := before - variation.StockQuantity
		if after < 0 {
			after = 0
		}
		if err := s.repo.AdjustStockTx(tx, accountID, productID, -variation.StockQuantity); err != nil {
			return WriteFailed("ajuste de estoque do produto", err)
		}
		mov := &model.StockMovement{
			AccountID:   accountID,
			ProductID:   productID,
			VariationID: &variationID,
			Type:        model.MovementVariation,
			Quantity:    after - before,
			StockBefore: before,
			StockAfter:  after,
			Reason:      fmt.Sprintf("Exclusão da variação %s - %s", variation.Color, variation.Size),
		}
		return s.movementRepo.CreateTx(tx, mov)
	})
}

func (s *productService) StockEntry(ctx context.Context, accountID, productID uuid.UUID, req dto.StockEntryRequest) (*dto.ProductResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	supplierID, err := s.resolveSupplier(ctx, accountID, req.SupplierID)
	if err != nil {
		return nil, err
	}

	var product *model.Product
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		product, err = s.repo.FindByIDTx(tx, accountID, productID)
		if err != nil {
			return fmt.Errorf("produto %s: %w", productID, ErrNotFound)
		}

		delta := req.Quantity
		movType := model.MovementEntry
		if req.Type == model.MovementWithdrawal {
			delta = -req.Quantity
			movType = model.MovementWithdrawal
		}

		before := product.StockQuantity
		after := before + delta
		if after < 0 {
			after = 0
		}
		if err := s.repo.AdjustStockTx(tx, accountID, productID, delta); err != nil {
			return WriteFailed("ajuste de estoque", err)
		}
		product.StockQuantity = after

		// An entry may also refresh the cost hint and the sourcing supplier.
		if movType == model.MovementEntry {
			updates := map[string]interface{}{}
			if req.UnitCost != nil {
				updates["standard_cost"] = *req.UnitCost
				product.StandardCost = *req.UnitCost
			}
			if supplierID != nil {
				updates["supplier_id"] = *supplierID
				product.SupplierID = supplierID
			}
			if len(updates) > 0 && tx != nil {
				if err := tx.Model(&model.Product{}).
					Where("account_id = ? AND id = ?", accountID, productID).
					Updates(updates).Error; err != nil {
					return WriteFailed("atualização de custo do produto", err)
				}
			}
		}

		mov := &model.StockMovement{
			AccountID:   accountID,
			ProductID:   productID,
			Type:        movType,
			Quantity:    after - before,
			StockBefore: before,
			StockAfter:  after,
			Reason:      req.Reason,
		}
		return s.movementRepo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.toResponse(ctx, accountID, product), nil
}

func (s *productService) ListMovements(ctx context.Context, accountID, productID uuid.UUID, limit int) ([]model.StockMovement, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	return s.movementRepo.ListByProduct(ctx, accountID, productID, limit)
}

// resolveSupplier parses and verifies an optional supplier reference.
func (s *productService) resolveSupplier(ctx context.Context, accountID uuid.UUID, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, validationf("supplier_id inválido")
	}
	if _, err := s.supplierRepo.FindByID(ctx, accountID, id); err != nil {
		return nil, fmt.Errorf("fornecedor %s: %w", id, ErrNotFound)
	}
	return &id, nil
}

// supplierNames builds the lookup map used by product decoration. A lookup
// failure degrades to the sentinel label, never fails the listing.
func (s *productService) supplierNames(ctx context.Context, accountID uuid.UUID) map[uuid.UUID]string {
	names := map[uuid.UUID]string{}
	suppliers, err := s.supplierRepo.List(ctx, accountID)
	if err != nil {
		return names
	}
	for _, sup := range suppliers {
		names[sup.ID] = sup.Name
	}
	return names
}

func (s *productService) toResponse(ctx context.Context, accountID uuid.UUID, p *model.Product) *dto.ProductResponse {
	return productToResponse(p, s.supplierNames(ctx, accountID))
}

func productToResponse(p *model.Product, supplierNames map[uuid.UUID]string) *dto.ProductResponse {
	d := model.DecorateProduct(*p, supplierNames)

	var supplierID *string
	if p.SupplierID != nil {
		v := p.SupplierID.String()
		supplierID = &v
	}
	variations := make([]dto.VariationResponse, 0, len(p.Variations))
	for i := range p.Variations {
		variations = append(variations, *variationToResponse(&p.Variations[i]))
	}
	return &dto.ProductResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		StandardCost:    p.StandardCost,
		CostBox:         p.CostBox,
		CostBag:         p.CostBag,
		CostLabel:       p.CostLabel,
		SuggestedPrice:  p.SuggestedPrice,
		ImageURL:        p.ImageURL,
		StockQuantity:   p.StockQuantity,
		MinStockLevel:   p.MinStockLevel,
		SupplierID:      supplierID,
		SupplierName:    d.SupplierName,
		EstimatedProfit: model.EstimatedProfit(p),
		EstimatedMargin: model.EstimatedMargin(p),
		Variations:      variations,
	}
}

func variationToResponse(v *model.ProductVariation) *dto.VariationResponse {
	return &dto.VariationResponse{
		ID:            v.ID.String(),
		ProductID:     v.ProductID.String(),
		Color:         v.Color,
		Size:          v.Size,
		StockQuantity: v.StockQuantity,
	}
}
