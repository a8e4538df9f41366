package service

import (
	"context"
	"sort"

	"pos-service/internal/models"
	"pos-service/internal/store"
	"pos-service/internal/util"

	"go.uber.org/zap"
)

// InventoryService is the inventory ledger facade. All stock mutation goes
// through the store's single-statement operations; this layer adds no
// locking of its own.
type InventoryService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(store *store.Store) *InventoryService {
	return &InventoryService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// GetAll lists every ingredient sorted by name.
func (s *InventoryService) GetAll(ctx context.Context) ([]models.Ingredient, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.GetAll")
	defer span.End()

	return s.store.GetInventory(ctx)
}

// Add inserts a new ingredient row.
func (s *InventoryService) Add(ctx context.Context, ing *models.Ingredient) error {
	ctx, span := util.StartSpan(ctx, "InventoryService.Add")
	defer span.End()

	if err := s.store.AddIngredient(ctx, ing); err != nil {
		return err
	}
	s.logger.Info("Ingredient added",
		zap.String("name", ing.Name),
		zap.Float64("quantity", ing.Quantity),
		zap.String("unit", ing.Unit))
	return nil
}

// SetQuantity overwrites an ingredient's quantity and unit (restock or
// manual correction).
func (s *InventoryService) SetQuantity(ctx context.Context, name string, quantity float64, unit string) error {
	ctx, span := util.StartSpan(ctx, "InventoryService.SetQuantity")
	defer span.End()

	if err := s.store.SetIngredientQuantity(ctx, name, quantity, unit); err != nil {
		return err
	}
	s.logger.Info("Ingredient restocked", zap.String("name", name), zap.Float64("quantity", quantity))
	return nil
}

// Remove deletes an ingredient row.
func (s *InventoryService) Remove(ctx context.Context, name string) error {
	ctx, span := util.StartSpan(ctx, "InventoryService.Remove")
	defer span.End()

	return s.store.DeleteIngredient(ctx, name)
}

// MassUpdate applies a batch of absolute quantity updates in one transaction.
func (s *InventoryService) MassUpdate(ctx context.Context, updates []models.Ingredient) error {
	ctx, span := util.StartSpan(ctx, "InventoryService.MassUpdate")
	defer span.End()

	if err := s.store.MassUpdateInventory(ctx, updates); err != nil {
		return err
	}
	s.logger.Info("Mass inventory update applied", zap.Int("count", len(updates)))
	return nil
}

// GetRestockInfo scores every ingredient's restock urgency and returns the
// rows ordered by score descending.
func (s *InventoryService) GetRestockInfo(ctx context.Context) ([]models.RestockInfo, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.GetRestockInfo")
	defer span.End()

	rows, err := s.store.GetRestockRows(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].PriorityScore = PriorityScore(rows[i].CurrentQuantity, rows[i].TotalQuantityNeeded)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PriorityScore > rows[j].PriorityScore
	})
	return rows, nil
}

// PriorityScore rates how urgently an ingredient needs restocking.
// When stock is at or below total recipe demand the score is 1 - stock/need
// (approaches 1 as stock runs out); with surplus stock it is need/stock
// (shrinks as the surplus grows). Zero denominators score 0: a zero-need,
// zero-stock ingredient is not urgent.
func PriorityScore(quantity, neededTotal float64) float64 {
	if quantity <= neededTotal {
		if neededTotal == 0 {
			return 0
		}
		return 1 - quantity/neededTotal
	}
	// quantity > neededTotal >= 0, so the divisor is positive.
	return neededTotal / quantity
}
