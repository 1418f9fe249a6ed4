package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/repository"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleService owns the sale lifecycle and its stock reconciliation. Recording
// a sale decrements one unit from the chosen variation (if any) and one unit
// from the product's aggregate; deleting a sale restores both. All mutations
// of one lifecycle event happen in a single transaction together with their
// stock-movement ledger rows, so a failed adjustment rolls the sale back and
// there is never a half-applied state to compensate.
type SaleService interface {
	RecordSale(ctx context.Context, accountID uuid.UUID, req dto.RecordSaleRequest) (*dto.SaleResponse, error)
	DeleteSale(ctx context.Context, accountID, id uuid.UUID) error
	UpdateStatus(ctx context.Context, accountID, id uuid.UUID, status string) error
	ListSales(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) ([]dto.SaleResponse, error)
	// SalesWithDetails returns decorated sales for the dashboard and the
	// insight snapshot.
	SalesWithDetails(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) ([]model.SaleWithDetails, error)
}

type saleService struct {
	repo         repository.SaleRepository
	productRepo  repository.ProductRepository
	platformRepo repository.PlatformRepository
	movementRepo repository.StockMovementRepository
	dispatcher   *worker.Dispatcher
}

func NewSaleService(
	repo repository.SaleRepository,
	productRepo repository.ProductRepository,
	platformRepo repository.PlatformRepository,
	movementRepo repository.StockMovementRepository,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{
		repo:         repo,
		productRepo:  productRepo,
		platformRepo: platformRepo,
		movementRepo: movementRepo,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// clampDecrement returns the stock value after removing one unit, never
// negative.
func clampDecrement(stock int) int {
	if stock <= 0 {
		return 0
	}
	return stock - 1
}

func (s *saleService) RecordSale(ctx context.Context, accountID uuid.UUID, req dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, validationf("product_id inválido")
	}
	platformID, err := uuid.Parse(req.PlatformID)
	if err != nil {
		return nil, validationf("platform_id inválido")
	}
	var variationID *uuid.UUID
	if req.VariationID != nil && *req.VariationID != "" {
		vid, err := uuid.Parse(*req.VariationID)
		if err != nil {
			return nil, validationf("variation_id inválido")
		}
		variationID = &vid
	}

	dateSale := time.Now()
	if req.DateSale != "" {
		parsed, err := time.Parse(time.RFC3339, req.DateSale)
		if err != nil {
			return nil, validationf("date_sale deve estar em RFC 3339")
		}
		dateSale = parsed
	}
	status := req.Status
	if status == "" {
		status = model.SaleStatusPending
	}

	// Profit comes from the snapshot and value_received — a caller-supplied
	// profit is never trusted.
	costs := model.CostBreakdown{
		Product: req.CostProductSnapshot,
		Box:     req.CostBox,
		Bag:     req.CostBag,
		Label:   req.CostLabel,
		Other:   req.CostOther,
	}
	profit := model.Profit(req.ValueReceived, costs)

	var sale model.Sale
	var productAfter, productMin int
	var productName string

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDTx(tx, accountID, productID)
		if err != nil {
			return fmt.Errorf("produto %s: %w", req.ProductID, ErrNotFound)
		}
		productName = product.Name
		productMin = product.MinStockLevel

		var variation *model.ProductVariation
		if variationID != nil {
			variation, err = s.productRepo.FindVariationByIDTx(tx, accountID, *variationID)
			if err != nil {
				return fmt.Errorf("variação %s: %w", variationID, ErrNotFound)
			}
			if variation.ProductID != product.ID {
				return validationf("variação não pertence ao produto informado")
			}
		}

		sale = model.Sale{
			AccountID:           accountID,
			ProductID:           productID,
			PlatformID:          platformID,
			VariationID:         variationID,
			CostProductSnapshot: req.CostProductSnapshot,
			CostBox:             req.CostBox,
			CostBag:             req.CostBag,
			CostLabel:           req.CostLabel,
			CostOther:           req.CostOther,
			ValueGross:          req.ValueGross,
			ValueReceived:       req.ValueReceived,
			ProfitFinal:         profit,
			DateSale:            dateSale,
			Status:              status,
		}
		if variation != nil {
			sale.Color = &variation.Color
			sale.Size = &variation.Size
		}

		if err := s.repo.CreateTx(tx, &sale); err != nil {
			return WriteFailed("registro da venda", err)
		}

		// Variation unit first, then the parent aggregate. Both clamp at
		// zero; both leave a ledger row tied to the sale.
		if variation != nil {
			before := variation.StockQuantity
			after := clampDecrement(before)
			if err := s.productRepo.AdjustVariationStockTx(tx, accountID, variation.ID, -1); err != nil {
				return WriteFailed("baixa de estoque da variação", err)
			}
			mov := &model.StockMovement{
				AccountID:   accountID,
				ProductID:   product.ID,
				VariationID: &variation.ID,
				Type:        model.MovementSale,
				Quantity:    after - before,
				StockBefore: before,
				StockAfter:  after,
				Reason:      fmt.Sprintf("Venda %s (%s - %s)", sale.ID, variation.Color, variation.Size),
				SaleID:      &sale.ID,
			}
			if err := s.movementRepo.CreateTx(tx, mov); err != nil {
				return WriteFailed("registro de movimentação", err)
			}
		}

		before := product.StockQuantity
		productAfter = clampDecrement(before)
		if err := s.productRepo.AdjustStockTx(tx, accountID, product.ID, -1); err != nil {
			return WriteFailed("baixa de estoque do produto", err)
		}
		mov := &model.StockMovement{
			AccountID:   accountID,
			ProductID:   product.ID,
			Type:        model.MovementSale,
			Quantity:    productAfter - before,
			StockBefore: before,
			StockAfter:  productAfter,
			Reason:      fmt.Sprintf("Venda %s", sale.ID),
			SaleID:      &sale.ID,
		}
		return s.movementRepo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Low-stock alert — best-effort, after commit, never blocks the sale.
	if s.dispatcher != nil && productAfter <= productMin {
		_ = s.dispatcher.EnqueueLowStockAlert(ctx, worker.LowStockAlertPayload{
			ProductID:     productID.String(),
			ProductName:   productName,
			StockQuantity: productAfter,
			MinStockLevel: productMin,
		})
	}

	resp := s.toResponse(ctx, accountID, &sale)
	return resp, nil
}

func (s *saleService) DeleteSale(ctx context.Context, accountID, id uuid.UUID) error {
	if accountID == uuid.Nil {
		return ErrUnauthenticated
	}

	sale, err := s.repo.FindByID(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("venda %s: %w", id, ErrNotFound)
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Exact inverse of RecordSale. A variation or product deleted since
		// the sale simply has nothing to restore.
		if sale.VariationID != nil {
			if variation, err := s.productRepo.FindVariationByIDTx(tx, accountID, *sale.VariationID); err == nil {
				before := variation.StockQuantity
				if err := s.productRepo.AdjustVariationStockTx(tx, accountID, variation.ID, 1); err != nil {
					return WriteFailed("estorno de estoque da variação", err)
				}
				mov := &model.StockMovement{
					AccountID:   accountID,
					ProductID:   sale.ProductID,
					VariationID: sale.VariationID,
					Type:        model.MovementRestore,
					Quantity:    1,
					StockBefore: before,
					StockAfter:  before + 1,
					Reason:      fmt.Sprintf("Exclusão da venda %s", sale.ID),
					SaleID:      &sale.ID,
				}
				if err := s.movementRepo.CreateTx(tx, mov); err != nil {
					return WriteFailed("registro de movimentação", err)
				}
			}
		}

		if product, err := s.productRepo.FindByIDTx(tx, accountID, sale.ProductID); err == nil {
			before := product.StockQuantity
			if err := s.productRepo.AdjustStockTx(tx, accountID, product.ID, 1); err != nil {
				return WriteFailed("estorno de estoque do produto", err)
			}
			mov := &model.StockMovement{
				AccountID:   accountID,
				ProductID:   product.ID,
				Type:        model.MovementRestore,
				Quantity:    1,
				StockBefore: before,
				StockAfter:  before + 1,
				Reason:      fmt.Sprintf("Exclusão da venda %s", sale.ID),
				SaleID:      &sale.ID,
			}
			if err := s.movementRepo.CreateTx(tx, mov); err != nil {
				return WriteFailed("registro de movimentação", err)
			}
		}

		if err := s.repo.DeleteTx(tx, accountID, sale.ID); err != nil {
			return WriteFailed("exclusão da venda", err)
		}
		return nil
	})
}

func (s *saleService) UpdateStatus(ctx context.Context, accountID, id uuid.UUID, status string) error {
	if accountID == uuid.Nil {
		return ErrUnauthenticated
	}
	if _, err := s.repo.FindByID(ctx, accountID, id); err != nil {
		return fmt.Errorf("venda %s: %w", id, ErrNotFound)
	}
	if err := s.repo.UpdateStatus(ctx, accountID, id, status); err != nil {
		return WriteFailed("atualização de status", err)
	}
	return nil
}

func (s *saleService) ListSales(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) ([]dto.SaleResponse, error) {
	details, err := s.SalesWithDetails(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, 0, len(details))
	for i := range details {
		resp = append(resp, *saleToResponse(&details[i]))
	}
	return resp, nil
}

func (s *saleService) SalesWithDetails(ctx context.Context, accountID uuid.UUID, filter dto.SaleFilter) ([]model.SaleWithDetails, error) {
	sales, err := s.repo.List(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	platforms, err := s.platformRepo.List(ctx, accountID)
	if err != nil {
		return nil, err
	}

	productNames := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	platformMap := make(map[uuid.UUID]model.Platform, len(platforms))
	for _, pl := range platforms {
		platformMap[pl.ID] = pl
	}

	details := make([]model.SaleWithDetails, 0, len(sales))
	for _, sale := range sales {
		details = append(details, model.DecorateSale(sale, productNames, platformMap))
	}
	return details, nil
}

// toResponse decorates a freshly recorded sale. Lookup failures degrade to
// the sentinel labels instead of failing the already-committed sale.
func (s *saleService) toResponse(ctx context.Context, accountID uuid.UUID, sale *model.Sale) *dto.SaleResponse {
	productNames := map[uuid.UUID]string{}
	platformMap := map[uuid.UUID]model.Platform{}
	if p, err := s.productRepo.FindByID(ctx, accountID, sale.ProductID); err == nil {
		productNames[p.ID] = p.Name
	}
	if pl, err := s.platformRepo.FindByID(ctx, accountID, sale.PlatformID); err == nil {
		platformMap[pl.ID] = *pl
	}
	d := model.DecorateSale(*sale, productNames, platformMap)
	return saleToResponse(&d)
}

func saleToResponse(d *model.SaleWithDetails) *dto.SaleResponse {
	var variationID *string
	if d.VariationID != nil {
		v := d.VariationID.String()
		variationID = &v
	}
	return &dto.SaleResponse{
		ID:                  d.ID.String(),
		ProductID:           d.ProductID.String(),
		PlatformID:          d.PlatformID.String(),
		VariationID:         variationID,
		Color:               d.Color,
		Size:                d.Size,
		CostProductSnapshot: d.CostProductSnapshot,
		CostBox:             d.CostBox,
		CostBag:             d.CostBag,
		CostLabel:           d.CostLabel,
		CostOther:           d.CostOther,
		ValueGross:          d.ValueGross,
		ValueReceived:       d.ValueReceived,
		ProfitFinal:         d.ProfitFinal,
		DateSale:            d.DateSale.Format(time.RFC3339),
		Status:              d.Status,
		ProductName:         d.ProductName,
		PlatformName:        d.PlatformName,
		PlatformColor:       d.PlatformColor,
	}
}
