package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"pos-service/config"
	"pos-service/internal/broker"
	"pos-service/internal/models"
	"pos-service/internal/store"
	"pos-service/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// OrderService is the order submission entry point. It owns the transaction
// that persists the order, its meals and items, and applies the aggregated
// ingredient decrements to inventory.
type OrderService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	business       config.BusinessConfig
	logger         *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store *store.Store, eventPublisher *broker.EventPublisher, business config.BusinessConfig) *OrderService {
	return &OrderService{
		store:          store,
		eventPublisher: eventPublisher,
		business:       business,
		logger:         util.GetLogger(),
	}
}

// SubmitOrderRequest represents an order rung up at the register.
// Pointer fields distinguish absent from zero for validation.
type SubmitOrderRequest struct {
	CustomerName string        `json:"customer_name"`
	OrderDate    string        `json:"order_date"`
	EmployeeID   *int64        `json:"employee_id,omitempty"`
	TotalPrice   *float64      `json:"total_price"`
	Items        []MealRequest `json:"items"`
}

// MealRequest is one meal grouping in a submission.
type MealRequest struct {
	MealType  string            `json:"meal_type"`
	MealItems []MealItemRequest `json:"meal_items"`
}

// MealItemRequest is one menu item placed inside a meal.
type MealItemRequest struct {
	ItemName string `json:"item_name"`
}

// SubmitOrderResponse is returned after a successful submission.
type SubmitOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// orderDateLayouts are the timestamp formats accepted from registers.
var orderDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Validate checks presence and shape of every field and reports all
// violations together.
func (req *SubmitOrderRequest) Validate() error {
	violations := []string{}

	if req.CustomerName == "" {
		violations = append(violations, "customer_name is required")
	}
	if req.OrderDate == "" {
		violations = append(violations, "order_date is required")
	} else if _, err := parseOrderDate(req.OrderDate); err != nil {
		violations = append(violations, "order_date must be a timestamp like '2006-01-02 15:04:05'")
	}
	if req.TotalPrice == nil {
		violations = append(violations, "total_price is required")
	} else if *req.TotalPrice < 0 {
		violations = append(violations, "total_price must not be negative")
	}
	if len(req.Items) == 0 {
		violations = append(violations, "items must contain at least one meal")
	}
	for i, meal := range req.Items {
		if meal.MealType == "" {
			violations = append(violations, fmt.Sprintf("items[%d].meal_type is required", i))
		}
		for j, item := range meal.MealItems {
			if item.ItemName == "" {
				violations = append(violations, fmt.Sprintf("items[%d].meal_items[%d].item_name is required", i, j))
			}
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func parseOrderDate(value string) (time.Time, error) {
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized order date: %s", value)
}

// IngredientUsage accumulates the total quantity of each ingredient an
// order consumes, summed across repeated items and recipes.
type IngredientUsage map[string]float64

// Add accumulates one recipe contribution.
func (u IngredientUsage) Add(ingredient string, quantity float64) {
	u[ingredient] += quantity
}

// SortedNames returns ingredient names in ascending order. Decrements are
// applied in this order so concurrent submissions touching overlapping
// ingredient sets lock rows in the same sequence.
func (u IngredientUsage) SortedNames() []string {
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SubmitOrder persists an order with its meals and items and decrements
// inventory by the aggregated recipe requirements, all in one transaction.
// Either the fully-formed order with updated inventory commits, or nothing
// changes.
func (s *OrderService) SubmitOrder(ctx context.Context, req *SubmitOrderRequest) (*SubmitOrderResponse, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.SubmitOrder")
	defer span.End()

	start := time.Now()
	defer func() {
		util.OrderSubmitLatency.Observe(time.Since(start).Seconds())
	}()

	if err := req.Validate(); err != nil {
		util.OrdersFailedTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	orderDate, err := parseOrderDate(req.OrderDate)
	if err != nil {
		util.OrdersFailedTotal.WithLabelValues("validation").Inc()
		return nil, &ValidationError{Violations: []string{err.Error()}}
	}

	if s.business.VerifyOrderTotal {
		if err := s.verifyTotal(ctx, req); err != nil {
			util.OrdersFailedTotal.WithLabelValues("total_mismatch").Inc()
			return nil, err
		}
	}

	tx, err := s.store.BeginTxx(ctx)
	if err != nil {
		util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	order := &models.Order{
		CustomerName: req.CustomerName,
		OrderDate:    orderDate,
		EmployeeID:   req.EmployeeID,
		TotalPrice:   *req.TotalPrice,
	}
	if err := s.store.InsertOrderTx(ctx, tx, order); err != nil {
		util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	usage := IngredientUsage{}
	mealData := make([]models.MealData, 0, len(req.Items))

	for _, mealReq := range req.Items {
		meal := &models.Meal{OrderID: order.ID, MealType: mealReq.MealType}
		if err := s.store.InsertMealTx(ctx, tx, meal); err != nil {
			util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
			return nil, fmt.Errorf("failed to insert meal: %w", err)
		}

		itemNames := make([]string, 0, len(mealReq.MealItems))
		for _, itemReq := range mealReq.MealItems {
			item := &models.MealItem{MealID: meal.ID, ItemName: itemReq.ItemName}
			if err := s.store.InsertMealItemTx(ctx, tx, item); err != nil {
				util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
				return nil, fmt.Errorf("failed to insert meal item: %w", err)
			}
			itemNames = append(itemNames, itemReq.ItemName)

			// An item with no recipe consumes nothing; that is valid.
			recipe, err := s.store.GetRecipeTx(ctx, tx, itemReq.ItemName)
			if err != nil {
				util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
				return nil, fmt.Errorf("failed to look up recipe for %s: %w", itemReq.ItemName, err)
			}
			for _, ing := range recipe {
				usage.Add(ing.IngredientName, ing.QuantityNeeded)
			}
		}

		mealData = append(mealData, models.MealData{MealType: mealReq.MealType, Items: itemNames})
	}

	if err := s.applyUsage(ctx, tx, usage); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	util.OrdersSubmittedTotal.Inc()
	s.logger.Info("Order submitted",
		zap.Int64("order_id", order.ID),
		zap.String("customer", order.CustomerName),
		zap.Int("meals", len(req.Items)),
		zap.Int("ingredients", len(usage)))

	s.publishOrderSubmitted(ctx, order, mealData, usage)

	return &SubmitOrderResponse{
		Message: "Order submitted successfully and inventory updated",
		OrderID: order.ID,
	}, nil
}

// applyUsage decrements each accumulated ingredient inside the order
// transaction. A missing ingredient or, under the reject policy, an
// insufficient one aborts the whole submission.
func (s *OrderService) applyUsage(ctx context.Context, tx *sqlx.Tx, usage IngredientUsage) error {
	for _, name := range usage.SortedNames() {
		needed := usage[name]
		if needed == 0 {
			continue
		}

		available, err := s.store.GetIngredientQuantityTx(ctx, tx, name)
		if errors.Is(err, sql.ErrNoRows) {
			util.OrdersFailedTotal.WithLabelValues("missing_ingredient").Inc()
			s.logger.Warn("Order references unstocked ingredient", zap.String("ingredient", name))
			return &MissingIngredientError{Ingredient: name}
		}
		if err != nil {
			util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
			return fmt.Errorf("failed to read inventory for %s: %w", name, err)
		}

		if s.business.NegativeStockPolicy == config.NegativeStockReject && available < needed {
			util.OrdersFailedTotal.WithLabelValues("insufficient_stock").Inc()
			return &InsufficientStockError{Ingredient: name, Required: needed, Available: available}
		}

		if available < needed {
			s.logger.Warn("Overselling ingredient",
				zap.String("ingredient", name),
				zap.Float64("required", needed),
				zap.Float64("available", available))
		}

		if err := s.store.DecrementIngredientTx(ctx, tx, name, needed); err != nil {
			util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
			return err
		}
	}
	return nil
}

// verifyTotal recomputes the order total from the base meal prices and
// compares it against the client-supplied value. Per-item upcharges are not
// stored on meals, so only base meal prices participate.
func (s *OrderService) verifyTotal(ctx context.Context, req *SubmitOrderRequest) error {
	prices, err := s.store.GetPrices(ctx)
	if err != nil {
		return fmt.Errorf("failed to load prices: %w", err)
	}

	priceMap := make(map[string]float64, len(prices))
	for _, p := range prices {
		priceMap[p.Name] = p.Price
	}

	computed := computeOrderTotal(req.Items, priceMap)
	if math.Abs(computed-*req.TotalPrice) > s.business.TotalTolerance {
		return &TotalMismatchError{Supplied: *req.TotalPrice, Computed: computed}
	}
	return nil
}

// computeOrderTotal sums the base price of each meal, resolved as
// "base_<meal type>" with spaces folded to underscores. Unknown meal types
// contribute nothing.
func computeOrderTotal(items []MealRequest, prices map[string]float64) float64 {
	var total float64
	for _, meal := range items {
		key := "base_" + strings.ReplaceAll(strings.ToLower(meal.MealType), " ", "_")
		total += prices[key]
	}
	return total
}

// publishOrderSubmitted emits the post-commit event. Publishing is
// best-effort: the order is already durable, so a broker failure only logs.
func (s *OrderService) publishOrderSubmitted(ctx context.Context, order *models.Order, meals []models.MealData, usage IngredientUsage) {
	if s.eventPublisher == nil {
		return
	}

	event := &models.OrderSubmittedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderSubmitted,
			Timestamp: time.Now(),
		},
		OrderID:         order.ID,
		CustomerName:    order.CustomerName,
		EmployeeID:      order.EmployeeID,
		TotalPrice:      order.TotalPrice,
		Meals:           meals,
		IngredientUsage: usage,
	}

	if err := s.eventPublisher.PublishOrderSubmitted(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderSubmitted event",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
	}
}

// GetOrders lists orders with pagination and filters.
func (s *OrderService) GetOrders(ctx context.Context, filter store.OrderFilter) ([]models.OrderSummary, error) {
	return s.store.GetOrders(ctx, filter)
}

// GetOrderDetails returns the meals and items of one order.
func (s *OrderService) GetOrderDetails(ctx context.Context, orderID int64) ([]models.MealDetail, error) {
	return s.store.GetOrderDetails(ctx, orderID)
}
