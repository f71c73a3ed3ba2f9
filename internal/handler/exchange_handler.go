package handler

import (
	"net/http"
	"strconv"

	"grainmarket-be/internal/validation"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	id, err := h.ExchangeSvc.CreateOrder(c.Request.Context(), req.QuantityKg)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.OrdersCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"order_id": id})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.ExchangeSvc.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	orderID, err := h.ExchangeSvc.CancelOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.OrdersCancelled.Inc()
	c.JSON(http.StatusOK, gin.H{"order_id": orderID})
}

func (h *Handler) CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	id, err := h.ExchangeSvc.CreateOffer(c.Request.Context(), req.OrderID, req.HarvestDate, req.PricePerKg, req.Origin)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.OffersCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"offer_id": id})
}

func (h *Handler) CancelOffer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	offerID, err := h.ExchangeSvc.CancelOffer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.OffersCancelled.Inc()
	c.JSON(http.StatusOK, gin.H{"offer_id": offerID})
}

func (h *Handler) ListActiveOffers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	offers, err := h.ExchangeSvc.ListActiveOffers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": toOfferResponses(offers)})
}

func (h *Handler) AcceptOffer(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AcceptOfferRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	txID, err := h.ExchangeSvc.AcceptOffer(c.Request.Context(), orderID, req.OfferID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.OffersAccepted.Inc()
	c.JSON(http.StatusOK, gin.H{"transaction_id": txID})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	txs, err := h.ExchangeSvc.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": toTransactionResponses(txs)})
}
