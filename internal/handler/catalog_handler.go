package handler

import (
	"net/http"
	"strconv"

	"grainmarket-be/internal/catalog"
	"grainmarket-be/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	err := h.CatalogSvc.CreateProduct(c.Request.Context(), catalog.CreateProductInput{
		ProductType: req.ProductType,
		WheatType:   req.WheatType,
		Brand:       req.Brand,
		Origin:      req.Origin,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.ProductsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"product_type": req.ProductType})
}

// GetProducts serves both query shapes: ?type=N for a single product,
// ?type=0 (or no parameter) for every existing product.
func (h *Handler) GetProducts(c *gin.Context) {
	var productType uint64
	if raw := c.Query("type"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_type"})
			return
		}
		productType = parsed
	}

	products, err := h.CatalogSvc.GetProducts(c.Request.Context(), productType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	productType, ok := pathID(c, "type")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	err := h.CatalogSvc.UpdateProduct(c.Request.Context(), productType, toProductUpdate(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product_type": productType})
}

func (h *Handler) RemoveProduct(c *gin.Context) {
	productType, ok := pathID(c, "type")
	if !ok {
		return
	}

	if err := h.CatalogSvc.RemoveProduct(c.Request.Context(), productType); err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.ProductsRemoved.Inc()
	c.JSON(http.StatusOK, gin.H{"product_type": productType})
}

func (h *Handler) Purchase(c *gin.Context) {
	productType, ok := pathID(c, "type")
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	saleID, err := h.CatalogSvc.Purchase(c.Request.Context(), productType, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.Purchases.Inc()
	c.JSON(http.StatusCreated, gin.H{"sale_id": saleID})
}

func (h *Handler) Reconcile(c *gin.Context) {
	h.reconcile(c, false)
}

func (h *Handler) ReconcileVerified(c *gin.Context) {
	h.reconcile(c, true)
}

func (h *Handler) reconcile(c *gin.Context, verified bool) {
	saleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ReconcileRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	var err error
	if verified {
		err = h.CatalogSvc.ReconcileVerified(c.Request.Context(), saleID, req.TransactionIDs)
	} else {
		err = h.CatalogSvc.Reconcile(c.Request.Context(), saleID, req.TransactionIDs)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	h.Metrics.Reconciliations.Inc()
	c.JSON(http.StatusOK, gin.H{"sale_id": saleID})
}

func (h *Handler) ListSales(c *gin.Context) {
	sales, err := h.CatalogSvc.ListSales(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sales": toSaleResponses(sales)})
}

// toProductUpdate keeps the zero-means-unchanged sentinel of the public API:
// a field explicitly supplied as "" or 0 is treated the same as an omitted one.
func toProductUpdate(req UpdateProductRequest) catalog.ProductUpdate {
	var upd catalog.ProductUpdate
	if req.WheatType != nil && *req.WheatType != "" {
		upd.WheatType = req.WheatType
	}
	if req.Brand != nil && *req.Brand != "" {
		upd.Brand = req.Brand
	}
	if req.Origin != nil && *req.Origin != "" {
		upd.Origin = req.Origin
	}
	if req.Description != nil && *req.Description != "" {
		upd.Description = req.Description
	}
	if req.Price != nil && *req.Price != 0 {
		upd.Price = req.Price
	}
	if req.Stock != nil && *req.Stock != 0 {
		upd.Stock = req.Stock
	}
	return upd
}
