package response

import (
	"tagshop_variants/internal/domain/entities"
)

// CreateVariantResponse mirrors the payload the storefront has always
// consumed: success flag, the upstream variant id, and the computed price
// echoed back for client-side debugging.
type CreateVariantResponse struct {
	Success   bool    `json:"success"`
	VariantID int64   `json:"variant_id"`
	Price     float64 `json:"price"`
}

func FromVariant(v entities.VariantRecord, price float64) CreateVariantResponse {
	return CreateVariantResponse{
		Success:   true,
		VariantID: v.ID,
		Price:     price,
	}
}

// TestResponse is the /test liveness payload.
type TestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
