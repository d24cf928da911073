package entities

import "time"

// VariantRecord is a variant resource owned by the Shopify Admin API.
//
// Lifecycle:
//   - created on the first request for a given derived title
//   - reused, never mutated, on subsequent identical requests
//   - evicted (oldest first by CreatedAt) when the per-product variant cap
//     is reached
//
// The ID is opaque and assigned upstream; Title is the deterministic lookup
// key derived from a Configuration.

type VariantRecord struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// PricedQuote is the audit record the service keeps for every upsert.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (product_id-index): product_id
//
// Reused reports whether the upsert resolved to an existing variant instead
// of creating one; Price is the total computed for the request, which for a
// reused variant may differ from the (stale) upstream variant price.

type PricedQuote struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	VariantID int64     `json:"variant_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Reused    bool      `json:"reused"`
	CreatedAt time.Time `json:"created_at"`
}
