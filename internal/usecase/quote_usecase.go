package usecase

import (
	"context"
	"errors"
	"strings"

	"tagshop_variants/internal/domain/entities"
	"tagshop_variants/internal/usecase/interfaces"
)

var ErrInvalidQuoteProductID = errors.New("invalid quote product_id")

// IQuoteUseCase exposes the quote audit trail kept alongside each upsert.

type IQuoteUseCase interface {
	ListByProductID(ctx context.Context, productID string) ([]entities.PricedQuote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) ListByProductID(ctx context.Context, productID string) ([]entities.PricedQuote, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrInvalidQuoteProductID
	}
	return u.repo.ListByProductID(ctx, productID)
}
