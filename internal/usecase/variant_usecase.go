package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tagshop_variants/internal/domain/entities"
	"tagshop_variants/internal/domain/pricing"
	"tagshop_variants/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductID    = errors.New("invalid product_id")
	ErrVariantCreateFailed = errors.New("failed to create/find variant")
)

const (
	// variantCap is the per-product variant budget we keep under Shopify's
	// hard limit of 100. Conservative end of the band so a racing eviction
	// never pushes the collection past the platform limit.
	variantCap = 95

	// listLimit bounds the lookup fetch. A prefix of the collection is
	// enough: the cap keeps the whole collection inside one page.
	listLimit = 100
)

// IVariantUseCase exposes the find-or-create variant workflow.
//
// CreateOrReuseVariant is idempotent with respect to the title derived from
// the configuration: repeated identical calls resolve to the same upstream
// variant without creating duplicates.

type IVariantUseCase interface {
	CreateOrReuseVariant(ctx context.Context, productID string, cfg entities.Configuration) (entities.VariantRecord, float64, error)
}

type VariantUseCase struct {
	gateway interfaces.IVariantGateway
	quotes  interfaces.IQuoteRepository

	// spawn runs the eviction task without blocking the request. Replaced in
	// tests to make the fire-and-forget step synchronous.
	spawn func(task func())
}

var _ IVariantUseCase = (*VariantUseCase)(nil)

func NewVariantUseCase(gateway interfaces.IVariantGateway, quotes interfaces.IQuoteRepository) *VariantUseCase {
	return &VariantUseCase{
		gateway: gateway,
		quotes:  quotes,
		spawn:   func(task func()) { go task() },
	}
}

// CreateOrReuseVariant prices the configuration and upserts the matching
// variant on the parent product.
//
// Flow: price -> lookup by derived title -> hit returns the found record
// unchanged (its stored price may be stale; accepted tradeoff) -> miss
// enforces the variant cap by evicting the oldest record (fire-and-forget,
// the collection may transiently hold cap+1) -> create -> best-effort price
// metafield and audit record.
//
// Only a failed create is fatal. A failed lookup counts as "not found"; a
// failed eviction, metafield attach, or audit write is logged and swallowed.
func (u *VariantUseCase) CreateOrReuseVariant(ctx context.Context, productID string, cfg entities.Configuration) (entities.VariantRecord, float64, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.VariantRecord{}, 0, ErrInvalidProductID
	}
	if u.gateway == nil {
		log.Printf("[variant][usecase] variant gateway not configured product_id=%s", productID)
		return entities.VariantRecord{}, 0, errors.New("variant gateway not configured")
	}

	cfg = cfg.Normalize()
	quote := pricing.Quote(cfg)
	price := quote.Total
	title := cfg.VariantTitle()

	log.Printf("[variant][usecase] upsert start product_id=%s title=%q qty=%d area_cm2=%.2f unit=%.4f disc=%.2f total=%.2f",
		productID, title, cfg.Quantity, quote.AreaCm2, quote.UnitPrice, quote.DiscountFactor, price)

	variants, err := u.gateway.ListVariants(ctx, productID, listLimit)
	if err != nil {
		// A failed lookup is a cache miss, not an error.
		log.Printf("[variant][usecase] lookup failed product_id=%s err=%v", productID, err)
		variants = nil
	}

	for _, v := range variants {
		if v.Title == title {
			log.Printf("[variant][usecase] reusing variant product_id=%s variant_id=%d", productID, v.ID)
			u.audit(ctx, productID, v.ID, title, price, true)
			return v, price, nil
		}
	}

	if len(variants) >= variantCap {
		u.evictOldest(ctx, productID, variants)
	}

	created, err := u.gateway.CreateVariant(ctx, productID, title, price)
	if err != nil {
		log.Printf("[variant][usecase] create failed product_id=%s title=%q err=%v", productID, title, err)
		return entities.VariantRecord{}, 0, ErrVariantCreateFailed
	}
	log.Printf("[variant][usecase] variant created product_id=%s variant_id=%d", productID, created.ID)

	if err := u.gateway.AttachPriceMetafield(ctx, created.ID, price); err != nil {
		log.Printf("[variant][usecase] metafield attach failed variant_id=%d err=%v", created.ID, err)
	}

	u.audit(ctx, productID, created.ID, title, price, false)
	return created, price, nil
}

// evictOldest deletes the variant with the lowest creation timestamp. List
// position is not trusted as an ordering guarantee; created_at is. The
// deletion is started but not awaited, detached from the request context so
// a client disconnect cannot cancel it mid-flight.
func (u *VariantUseCase) evictOldest(ctx context.Context, productID string, variants []entities.VariantRecord) {
	oldest := variants[0]
	for _, v := range variants[1:] {
		if v.CreatedAt.Before(oldest.CreatedAt) {
			oldest = v
		}
	}

	log.Printf("[variant][usecase] variant cap reached product_id=%s count=%d evicting variant_id=%d", productID, len(variants), oldest.ID)

	bg := context.WithoutCancel(ctx)
	u.spawn(func() {
		if err := u.gateway.DeleteVariant(bg, productID, oldest.ID); err != nil {
			log.Printf("[variant][usecase] eviction failed product_id=%s variant_id=%d err=%v", productID, oldest.ID, err)
			return
		}
		log.Printf("[variant][usecase] evicted variant product_id=%s variant_id=%d", productID, oldest.ID)
	})
}

func (u *VariantUseCase) audit(ctx context.Context, productID string, variantID int64, title string, price float64, reused bool) {
	if u.quotes == nil {
		return
	}
	q := entities.PricedQuote{
		ID:        uuid.NewString(),
		ProductID: productID,
		VariantID: variantID,
		Title:     title,
		Price:     price,
		Reused:    reused,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.quotes.Create(ctx, q); err != nil {
		log.Printf("[variant][usecase] quote audit write failed product_id=%s variant_id=%d err=%v", productID, variantID, err)
	}
}
