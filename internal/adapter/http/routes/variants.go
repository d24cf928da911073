package routes

import (
	"tagshop_variants/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreateVariant = "/create-variant"
	PathTest          = "/test"
	PathQuotes        = "/quotes/:product_id"
)

func addVariantRoutes(r *gin.Engine, variantHandler *handlers.VariantHandler, quoteHandler *handlers.QuoteHandler) {
	// Endpoints consumed by the tagshop storefront.
	r.POST(PathCreateVariant, variantHandler.CreateVariant)
	r.GET(PathTest, variantHandler.Test)

	// Audit trail of priced upserts.
	r.GET(PathQuotes, quoteHandler.ListByProductID)
}
