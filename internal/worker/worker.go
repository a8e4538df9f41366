package worker

import (
	"context"
	"log"
	"time"

	"pos-service/internal/broker"
	"pos-service/internal/models"
	"pos-service/internal/service"
	"pos-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockAlertWorker consumes OrderSubmitted events and raises low-stock
// alerts for ingredients whose restock priority crossed the threshold.
// Alerting off the event stream keeps the check out of the order
// transaction's critical path.
type StockAlertWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	inventory    *service.InventoryService
	publisher    *broker.EventPublisher
	threshold    float64
	logger       *zap.Logger
}

// NewStockAlertWorker creates a new stock alert worker
func NewStockAlertWorker(
	consumer *broker.Consumer,
	inventory *service.InventoryService,
	publisher *broker.EventPublisher,
	threshold float64,
) *StockAlertWorker {
	w := &StockAlertWorker{
		consumer:  consumer,
		inventory: inventory,
		publisher: publisher,
		threshold: threshold,
		logger:    util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnOrderSubmitted(w.handleOrderSubmitted)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *StockAlertWorker) Start(ctx context.Context) error {
	log.Println("Starting stock alert worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *StockAlertWorker) Stop() error {
	log.Println("Stopping stock alert worker...")
	return w.consumer.Close()
}

func (w *StockAlertWorker) handleOrderSubmitted(ctx context.Context, event *models.OrderSubmittedEvent) error {
	rows, err := w.inventory.GetRestockInfo(ctx)
	if err != nil {
		return err
	}

	for _, alert := range SelectAlerts(rows, event.IngredientUsage, w.threshold) {
		util.LowStockAlertsTotal.WithLabelValues(alert.IngredientName).Inc()
		w.logger.Warn("Low stock alert",
			zap.String("ingredient", alert.IngredientName),
			zap.Float64("quantity", alert.CurrentQuantity),
			zap.Float64("needed", alert.TotalQuantityNeeded),
			zap.Float64("score", alert.PriorityScore),
			zap.Int64("triggered_by_order", event.OrderID))

		if w.publisher != nil {
			lowStock := &models.LowStockEvent{
				BaseEvent: models.BaseEvent{
					EventID:   uuid.New().String(),
					EventType: models.EventTypeLowStock,
					Timestamp: time.Now(),
				},
				IngredientName: alert.IngredientName,
				Quantity:       alert.CurrentQuantity,
				QuantityNeeded: alert.TotalQuantityNeeded,
				PriorityScore:  alert.PriorityScore,
			}
			if err := w.publisher.PublishLowStock(ctx, lowStock); err != nil {
				w.logger.Error("Failed to publish LowStock event", zap.Error(err))
			}
		}
	}

	return nil
}

// SelectAlerts filters restock rows down to the ingredients this order
// actually consumed whose priority score is at or above the threshold.
func SelectAlerts(rows []models.RestockInfo, usage map[string]float64, threshold float64) []models.RestockInfo {
	alerts := []models.RestockInfo{}
	for _, row := range rows {
		if _, touched := usage[row.IngredientName]; !touched {
			continue
		}
		if row.PriorityScore >= threshold {
			alerts = append(alerts, row)
		}
	}
	return alerts
}
