package interfaces

import (
	"context"

	"tagshop_variants/internal/domain/entities"
)

// IVariantGateway abstracts the external commerce platform's variant
// collection (Shopify Admin REST API in production).
//
// Every call may fail with a network error or a non-2xx response; the caller
// decides which failures are fatal and which are best-effort. No method
// retries internally.
type IVariantGateway interface {
	// ListVariants fetches up to limit variants of a product. The listing is
	// a prefix of the collection, not an exhaustive pagination.
	ListVariants(ctx context.Context, productID string, limit int) ([]entities.VariantRecord, error)
	// CreateVariant creates a variant with the derived title and a
	// fixed-point price.
	CreateVariant(ctx context.Context, productID, title string, price float64) (entities.VariantRecord, error)
	// DeleteVariant removes a single variant from the product.
	DeleteVariant(ctx context.Context, productID string, variantID int64) error
	// AttachPriceMetafield annotates a variant with the computed price for
	// auditing.
	AttachPriceMetafield(ctx context.Context, variantID int64, price float64) error
}
