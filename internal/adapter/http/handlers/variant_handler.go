package handlers

import (
	"errors"
	"net/http"

	request "tagshop_variants/internal/adapter/http/dto/request"
	response "tagshop_variants/internal/adapter/http/dto/response"
	"tagshop_variants/internal/usecase"
	"tagshop_variants/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVariantPayload = pkg.NewDomainErrorSimple("INVALID_VARIANT_INPUT", "Invalid request payload", http.StatusBadRequest)
	errMissingVariantFields  = pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Missing width/height/product_id", http.StatusBadRequest)
)

// VariantHandler handles the storefront-facing variant endpoints.

type VariantHandler struct {
	usecase usecase.IVariantUseCase
}

func NewVariantHandler(uc usecase.IVariantUseCase) *VariantHandler {
	return &VariantHandler{usecase: uc}
}

// CreateVariant prices the submitted tag configuration and finds-or-creates
// the matching Shopify variant. Accepts both the flat legacy payload and the
// nested config payload.
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	var payload request.CreateVariantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVariantPayload.HTTPStatus, errInvalidVariantPayload.ToHTTPError())
		return
	}

	productID := payload.ResolveProductID()
	if productID == "" || !payload.HasDimensions() {
		c.JSON(errMissingVariantFields.HTTPStatus, errMissingVariantFields.ToHTTPError())
		return
	}

	variant, price, err := h.usecase.CreateOrReuseVariant(c.Request.Context(), productID, payload.ResolveConfiguration())
	if err != nil {
		appErr := mapVariantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVariant(variant, price))
}

// Test is the liveness/CORS probe used by the storefront.
func (h *VariantHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, response.TestResponse{Success: true, Message: "CORS OK"})
}

func mapVariantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return errMissingVariantFields
	case errors.Is(err, usecase.ErrVariantCreateFailed):
		return pkg.NewDomainErrorSimple("UPSTREAM_CREATE_FAILED", "Failed to create/find variant", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal Server Error", err, http.StatusInternalServerError)
	}
}
