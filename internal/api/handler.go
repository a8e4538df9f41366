package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pos-service/internal/service"
	"pos-service/internal/store"
	"pos-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	orders       *service.OrderService
	inventory    *service.InventoryService
	staff        *service.StaffService
	menu         *service.MenuService
	reports      *service.ReportService
	translations *service.TranslationService
	chat         *service.ChatService
	store        *store.Store
}

// NewHandler creates a new HTTP handler
func NewHandler(
	orders *service.OrderService,
	inventory *service.InventoryService,
	staff *service.StaffService,
	menu *service.MenuService,
	reports *service.ReportService,
	translations *service.TranslationService,
	chat *service.ChatService,
	store *store.Store,
) *Handler {
	return &Handler{
		orders:       orders,
		inventory:    inventory,
		staff:        staff,
		menu:         menu,
		reports:      reports,
		translations: translations,
		chat:         chat,
		store:        store,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/", h.welcome)
	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/db-connect", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/submit-order", h.submitOrder)
	router.GET("/orders", h.getOrders)
	router.GET("/orders/:id/details", h.getOrderDetails)

	router.GET("/inventory", h.getInventory)
	router.POST("/inventory", h.addInventory)
	router.PUT("/inventory/:name", h.updateInventory)
	router.DELETE("/inventory/:name", h.deleteInventory)
	router.GET("/inventory-restock-info", h.getRestockInfo)
	router.POST("/mass-inventory-update", h.massInventoryUpdate)

	router.GET("/menu-items", h.getMenuItems)
	router.POST("/add-menu-item", h.addMenuItem)
	router.GET("/view-prices", h.viewPrices)
	router.PUT("/modify-prices", h.modifyPrices)
	router.GET("/get-customer-prices", h.getCustomerPrices)

	router.GET("/get-sales-trends", h.getSalesTrends)
	router.GET("/get-x-report", h.getHourlyReport)
	router.GET("/get-z-report", h.getHourlyReport)
	router.GET("/get-productusage", h.getProductUsage)

	router.POST("/get-translation", h.getTranslation)
	router.POST("/chat", h.chatRelay)

	router.POST("/verify-login", h.verifyLogin)
	router.POST("/google-login", h.googleLogin)
	router.GET("/employees", h.getEmployees)
	router.POST("/employees", h.addEmployee)
	router.PUT("/employees/:id", h.updateEmployee)
	router.DELETE("/employees/:id", h.deleteEmployee)
}

func (h *Handler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the point of sale"})
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck verifies database connectivity
func (h *Handler) readinessCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database connection successful"})
}

// respondError maps domain errors to HTTP responses. Everything unexpected
// collapses to a generic 500; internals never leak past the handler.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var missingErr *service.MissingIngredientError
	var stockErr *service.InsufficientStockError
	var totalErr *service.TotalMismatchError
	var tokenErr *service.ErrInvalidGoogleToken

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":    "Validation failed",
			"violations": validationErr.Violations,
		})
	case errors.As(err, &missingErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Ingredient '" + missingErr.Ingredient + "' not found in inventory.",
		})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{"message": stockErr.Error()})
	case errors.As(err, &totalErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": totalErr.Error()})
	case errors.As(err, &tokenErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
	case errors.Is(err, store.ErrDuplicateIngredient):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, store.ErrIngredientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
