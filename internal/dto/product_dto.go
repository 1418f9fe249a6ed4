package dto

import "github.com/shopspring/decimal"

// ProductRequest creates or fully updates a product.
type ProductRequest struct {
	Name           string           `json:"name" validate:"required"`
	StandardCost   decimal.Decimal  `json:"standard_cost" validate:"min=0"`
	CostBox        decimal.Decimal  `json:"cost_box" validate:"min=0"`
	CostBag        decimal.Decimal  `json:"cost_bag" validate:"min=0"`
	CostLabel      decimal.Decimal  `json:"cost_label" validate:"min=0"`
	SuggestedPrice *decimal.Decimal `json:"suggested_price"`
	StockQuantity  int              `json:"stock_quantity" validate:"min=0"`
	MinStockLevel  int              `json:"min_stock_level" validate:"min=0"`
	SupplierID     *string          `json:"supplier_id"`
}

// VariationRequest creates a color/size variation under a product.
type VariationRequest struct {
	Color         string `json:"color" validate:"required"`
	Size          string `json:"size" validate:"required"`
	StockQuantity int    `json:"stock_quantity" validate:"min=0"`
}

// StockEntryRequest records a manual stock entry or withdrawal. Quantity is
// always positive; Type selects the direction. Cost and supplier are the
// optional catalog hints applied together with an entry.
type StockEntryRequest struct {
	Type       string           `json:"type" validate:"required,oneof=entrada retirada"`
	Quantity   int              `json:"quantity" validate:"required,gt=0"`
	UnitCost   *decimal.Decimal `json:"unit_cost"`
	SupplierID *string          `json:"supplier_id"`
	Reason     string           `json:"reason"`
}

// VariationResponse mirrors a ProductVariation row.
type VariationResponse struct {
	ID            string `json:"id"`
	ProductID     string `json:"product_id"`
	Color         string `json:"color"`
	Size          string `json:"size"`
	StockQuantity int    `json:"stock_quantity"`
}

// ProductResponse is the decorated product view used by every catalog screen.
type ProductResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	StandardCost    decimal.Decimal     `json:"standard_cost"`
	CostBox         decimal.Decimal     `json:"cost_box"`
	CostBag         decimal.Decimal     `json:"cost_bag"`
	CostLabel       decimal.Decimal     `json:"cost_label"`
	SuggestedPrice  *decimal.Decimal    `json:"suggested_price,omitempty"`
	ImageURL        *string             `json:"image_url,omitempty"`
	StockQuantity   int                 `json:"stock_quantity"`
	MinStockLevel   int                 `json:"min_stock_level"`
	SupplierID      *string             `json:"supplier_id,omitempty"`
	SupplierName    string              `json:"supplier_name"`
	EstimatedProfit decimal.Decimal     `json:"estimated_profit"`
	EstimatedMargin decimal.Decimal     `json:"estimated_margin"`
	Variations      []VariationResponse `json:"variations"`
}

// UploadImageResponse returns the public URL of a stored product image.
type UploadImageResponse struct {
	URL string `json:"url"`
}
