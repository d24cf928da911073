package handlers

import (
	"errors"
	"net/http"

	response "tagshop_variants/internal/adapter/http/dto/response"
	"tagshop_variants/internal/usecase"
	"tagshop_variants/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler exposes the quote audit trail recorded for each upsert.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) ListByProductID(c *gin.Context) {
	quotes, err := h.usecase.ListByProductID(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
