package response

import (
	"time"

	"tagshop_variants/internal/domain/entities"
)

type QuoteResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	VariantID int64     `json:"variant_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Reused    bool      `json:"reused"`
	CreatedAt time.Time `json:"created_at"`
}

type QuoteListResponse struct {
	Success bool            `json:"success"`
	Quotes  []QuoteResponse `json:"quotes"`
}

func FromQuotes(quotes []entities.PricedQuote) QuoteListResponse {
	out := QuoteListResponse{Success: true, Quotes: make([]QuoteResponse, 0, len(quotes))}
	for _, q := range quotes {
		out.Quotes = append(out.Quotes, QuoteResponse{
			ID:        q.ID,
			ProductID: q.ProductID,
			VariantID: q.VariantID,
			Title:     q.Title,
			Price:     q.Price,
			Reused:    q.Reused,
			CreatedAt: q.CreatedAt,
		})
	}
	return out
}
