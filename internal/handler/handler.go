package handler

import (
	"grainmarket-be/internal/catalog"
	"grainmarket-be/internal/exchange"
	"grainmarket-be/internal/metrics"
	"grainmarket-be/internal/middleware"
	"grainmarket-be/internal/readings"
	"grainmarket-be/internal/user"
	"grainmarket-be/internal/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// Handler groups the service dependencies behind the HTTP API.
type Handler struct {
	ExchangeSvc exchange.Service
	CatalogSvc  catalog.Service
	ReadingsSvc readings.Service
	UserSvc     user.Service
	Metrics     *metrics.Registry

	validate *validatorv10.Validate
}

func New(exchangeSvc exchange.Service, catalogSvc catalog.Service, readingsSvc readings.Service, userSvc user.Service, reg *metrics.Registry) *Handler {
	return &Handler{
		ExchangeSvc: exchangeSvc,
		CatalogSvc:  catalogSvc,
		ReadingsSvc: readingsSvc,
		UserSvc:     userSvc,
		Metrics:     reg,
		validate:    validation.New(),
	}
}

// RegisterRoutes wires every ledger operation onto the router. Reading-store
// writes are deliberately not ownership-gated, so they sit outside the auth
// requirement along with the read-only endpoints.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	r.PUT("/readings/:subject", h.WriteReading)
	r.GET("/readings/:subject", h.ReadReading)
	r.GET("/stats", h.Stats)

	authed := r.Group("/", middleware.RequireAuth())

	authed.GET("/me", h.Me)

	authed.POST("/orders", h.CreateOrder)
	authed.GET("/orders/:id", h.GetOrder)
	authed.POST("/orders/:id/cancel", h.CancelOrder)
	authed.GET("/orders/:id/offers", h.ListActiveOffers)
	authed.POST("/orders/:id/accept", h.AcceptOffer)
	authed.POST("/offers", h.CreateOffer)
	authed.POST("/offers/:id/cancel", h.CancelOffer)
	authed.GET("/transactions", h.ListTransactions)

	authed.POST("/products", h.CreateProduct)
	authed.GET("/products", h.GetProducts)
	authed.PATCH("/products/:type", h.UpdateProduct)
	authed.DELETE("/products/:type", h.RemoveProduct)
	authed.POST("/products/:type/purchase", h.Purchase)
	authed.POST("/sales/:id/reconcile", h.Reconcile)
	authed.POST("/sales/:id/reconcile-verified", h.ReconcileVerified)
	authed.GET("/sales", h.ListSales)
}
