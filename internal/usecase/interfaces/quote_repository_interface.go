package interfaces

import (
	"context"

	"tagshop_variants/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for PricedQuote audit
// records.
//
// The service must be able to:
//   - append a quote record after every upsert (best-effort)
//   - list the quote history of a product for auditing

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.PricedQuote) (entities.PricedQuote, error)
	ListByProductID(ctx context.Context, productID string) ([]entities.PricedQuote, error)
}
