package handler

import (
	"errors"
	"net/http"

	"grainmarket-be/internal/catalog"
	"grainmarket-be/internal/exchange"
	"grainmarket-be/internal/user"

	"github.com/gin-gonic/gin"
)

// statusFor maps the ledger error taxonomy onto HTTP status codes:
// validation 400, missing identity 401, ownership 403, unknown entity 404,
// wrong status for the requested transition 409.
func statusFor(err error) int {
	switch {
	case errors.Is(err, exchange.ErrInvalidQuantity),
		errors.Is(err, exchange.ErrInvalidPrice),
		errors.Is(err, exchange.ErrOfferOrderMismatch),
		errors.Is(err, catalog.ErrInvalidProductType),
		errors.Is(err, catalog.ErrInvalidQuantity),
		errors.Is(err, catalog.ErrInsufficientStock),
		errors.Is(err, catalog.ErrUnknownTransaction),
		errors.Is(err, user.ErrInvalidRole):
		return http.StatusBadRequest

	case errors.Is(err, exchange.ErrUnauthenticated),
		errors.Is(err, catalog.ErrUnauthenticated),
		errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, exchange.ErrNotOrderOwner),
		errors.Is(err, exchange.ErrNotOfferOwner),
		errors.Is(err, catalog.ErrNotProductOwner):
		return http.StatusForbidden

	case errors.Is(err, exchange.ErrOrderNotFound),
		errors.Is(err, exchange.ErrOfferNotFound),
		errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrSaleNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, exchange.ErrOrderNotInProgress),
		errors.Is(err, exchange.ErrOfferNotInProgress),
		errors.Is(err, catalog.ErrProductExists),
		errors.Is(err, catalog.ErrSaleAlreadyComplete),
		errors.Is(err, user.ErrEmailExists):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
