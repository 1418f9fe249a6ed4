package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDecorateProduct(t *testing.T) {
	supplierID := uuid.New()
	names := map[uuid.UUID]string{supplierID: "Atacado SP"}

	withSupplier := Product{Name: "Air Max 90", SupplierID: &supplierID}
	assert.Equal(t, "Atacado SP", DecorateProduct(withSupplier, names).SupplierName)

	orphanID := uuid.New()
	orphan := Product{Name: "Dunk Low", SupplierID: &orphanID}
	assert.Equal(t, UnknownSupplierLabel, DecorateProduct(orphan, names).SupplierName)

	none := Product{Name: "Samba"}
	assert.Equal(t, UnknownSupplierLabel, DecorateProduct(none, names).SupplierName)
}

func TestDecorateSale(t *testing.T) {
	productID := uuid.New()
	platformID := uuid.New()
	products := map[uuid.UUID]string{productID: "Air Max 90"}
	platforms := map[uuid.UUID]Platform{
		platformID: {ID: platformID, Name: "Shopee", Color: "#EA501F"},
	}

	sale := Sale{ProductID: productID, PlatformID: platformID}
	d := DecorateSale(sale, products, platforms)
	assert.Equal(t, "Air Max 90", d.ProductName)
	assert.Equal(t, "Shopee", d.PlatformName)
	assert.Equal(t, "#EA501F", d.PlatformColor)

	orphan := Sale{ProductID: uuid.New(), PlatformID: uuid.New()}
	d = DecorateSale(orphan, products, platforms)
	assert.Equal(t, UnknownLabel, d.ProductName)
	assert.Equal(t, UnknownLabel, d.PlatformName)
	assert.Equal(t, UnknownColor, d.PlatformColor)
}

func TestSnapshotCosts(t *testing.T) {
	sale := Sale{
		CostProductSnapshot: dec("9.50"),
		CostBox:             dec("1.50"),
		CostBag:             dec("0.50"),
		CostLabel:           dec("0.20"),
		CostOther:           dec("3.00"),
	}
	assert.True(t, dec("14.70").Equal(sale.SnapshotCosts().Total()))
}
