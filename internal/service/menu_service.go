package service

import (
	"context"

	"pos-service/internal/models"
	"pos-service/internal/store"
	"pos-service/internal/util"

	"go.uber.org/zap"
)

// MenuService handles menu items and prices.
type MenuService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(store *store.Store) *MenuService {
	return &MenuService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// GetMenuItems lists all menu items.
func (s *MenuService) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.GetMenuItems(ctx)
}

// AddMenuItem creates a new menu item.
func (s *MenuService) AddMenuItem(ctx context.Context, item *models.MenuItem) error {
	if item.Name == "" || item.Type == "" {
		violations := []string{}
		if item.Name == "" {
			violations = append(violations, "name is required")
		}
		if item.Type == "" {
			violations = append(violations, "type is required")
		}
		return &ValidationError{Violations: violations}
	}

	if err := s.store.AddMenuItem(ctx, item); err != nil {
		return err
	}
	s.logger.Info("Menu item added", zap.String("name", item.Name), zap.String("type", item.Type))
	return nil
}

// GetPrices lists all price rows.
func (s *MenuService) GetPrices(ctx context.Context) ([]models.Price, error) {
	return s.store.GetPrices(ctx)
}

// PriceUpdate is one entry of a batch price change. Price is a pointer so
// an entry that omits it is skipped instead of zeroing the row.
type PriceUpdate struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// UpdatePrices applies a batch of price changes, skipping entries that lack
// a name or price the way the register UI sends them.
func (s *MenuService) UpdatePrices(ctx context.Context, changes []PriceUpdate) error {
	valid := filterPriceUpdates(changes)
	if err := s.store.UpdatePrices(ctx, valid); err != nil {
		return err
	}
	s.logger.Info("Prices updated", zap.Int("count", len(valid)))
	return nil
}

// filterPriceUpdates drops entries missing a name or a price.
func filterPriceUpdates(changes []PriceUpdate) []models.Price {
	valid := make([]models.Price, 0, len(changes))
	for _, c := range changes {
		if c.Name == "" || c.Price == nil {
			continue
		}
		valid = append(valid, models.Price{Name: c.Name, Price: *c.Price})
	}
	return valid
}

// CustomerPrices is the nested price structure the customer-facing menu
// expects, assembled from named price rows.
type CustomerPrices struct {
	Combo      ComboPrices        `json:"Combo"`
	ALaCarte   ALaCartePrices     `json:"A la Carte"`
	Appetizers map[string]float64 `json:"Appetizers"`
	Drinks     map[string]float64 `json:"Drinks"`
}

type ComboPrices struct {
	Bowl            float64 `json:"Bowl"`
	Plate           float64 `json:"Plate"`
	BiggerPlate     float64 `json:"Bigger Plate"`
	PremiumUpcharge float64 `json:"premiumUpcharge"`
}

type ALaCartePrices struct {
	Regular map[string]float64 `json:"regular"`
	Premium map[string]float64 `json:"premium"`
}

// GetCustomerPrices maps named price rows into the nested structure.
// Unknown rows are ignored; missing rows leave zeros.
func (s *MenuService) GetCustomerPrices(ctx context.Context) (*CustomerPrices, error) {
	rows, err := s.store.GetPrices(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCustomerPrices(rows), nil
}

// BuildCustomerPrices assembles the customer price structure from raw rows.
func BuildCustomerPrices(rows []models.Price) *CustomerPrices {
	prices := &CustomerPrices{
		Combo:      ComboPrices{PremiumUpcharge: 1.50},
		ALaCarte:   ALaCartePrices{Regular: map[string]float64{"Small": 0, "Medium": 0, "Large": 0}, Premium: map[string]float64{"Small": 0, "Medium": 0, "Large": 0}},
		Appetizers: map[string]float64{"Small": 0, "Large": 0},
		Drinks:     map[string]float64{"Small": 0, "Medium": 0, "Large": 0},
	}

	for _, row := range rows {
		switch row.Name {
		case "base_bowl":
			prices.Combo.Bowl = row.Price
		case "base_plate":
			prices.Combo.Plate = row.Price
		case "base_bigger_plate":
			prices.Combo.BiggerPlate = row.Price
		case "premium_upcharge":
			prices.Combo.PremiumUpcharge = row.Price
		case "ala s reg":
			prices.ALaCarte.Regular["Small"] = row.Price
		case "ala m reg":
			prices.ALaCarte.Regular["Medium"] = row.Price
		case "ala l reg":
			prices.ALaCarte.Regular["Large"] = row.Price
		case "ala s prem":
			prices.ALaCarte.Premium["Small"] = row.Price
		case "ala m prem":
			prices.ALaCarte.Premium["Medium"] = row.Price
		case "ala l prem":
			prices.ALaCarte.Premium["Large"] = row.Price
		case "appetizer s":
			prices.Appetizers["Small"] = row.Price
		case "appetizer l":
			prices.Appetizers["Large"] = row.Price
		case "ftn drk s":
			prices.Drinks["Small"] = row.Price
		case "ftn drk m":
			prices.Drinks["Medium"] = row.Price
		case "ftn drk l":
			prices.Drinks["Large"] = row.Price
		}
	}
	return prices
}
