package service

import (
	"context"
	"sort"

	"pos-service/internal/models"
	"pos-service/internal/store"
	"pos-service/internal/util"

	"go.uber.org/zap"
)

// ReportService runs the read-only sales aggregation queries.
type ReportService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(store *store.Store) *ReportService {
	return &ReportService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// GetSalesTrends returns per-day order counts per item over a date range.
func (s *ReportService) GetSalesTrends(ctx context.Context, startDate, endDate, itemName string) (map[string][]models.SalesTrendPoint, error) {
	ctx, span := util.StartSpan(ctx, "ReportService.GetSalesTrends")
	defer span.End()

	return s.store.GetSalesTrends(ctx, startDate, endDate, itemName)
}

// GetHourlySales aggregates order count and revenue per hour for one day,
// up to (excluding) the cutoff hour. Both the X and Z reports are views of
// this aggregation.
func (s *ReportService) GetHourlySales(ctx context.Context, reportDate string, upToHour int) ([]models.HourlySales, error) {
	ctx, span := util.StartSpan(ctx, "ReportService.GetHourlySales")
	defer span.End()

	orders, err := s.store.GetOrdersByHour(ctx, reportDate, upToHour)
	if err != nil {
		return nil, err
	}
	return AggregateHourlySales(orders), nil
}

// AggregateHourlySales buckets orders by the hour they were rung up,
// returning buckets sorted by hour.
func AggregateHourlySales(orders []models.Order) []models.HourlySales {
	byHour := map[int]*models.HourlySales{}
	for _, order := range orders {
		hour := order.OrderDate.Hour()
		bucket, ok := byHour[hour]
		if !ok {
			bucket = &models.HourlySales{Hour: hour}
			byHour[hour] = bucket
		}
		bucket.TotalOrders++
		bucket.OrderValue += order.TotalPrice
	}

	hours := make([]int, 0, len(byHour))
	for hour := range byHour {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	result := make([]models.HourlySales, 0, len(hours))
	for _, hour := range hours {
		result = append(result, *byHour[hour])
	}
	return result
}

// GetProductUsage returns total ingredient consumption over a date range.
func (s *ReportService) GetProductUsage(ctx context.Context, startDate, endDate string) ([]models.ProductUsage, error) {
	ctx, span := util.StartSpan(ctx, "ReportService.GetProductUsage")
	defer span.End()

	return s.store.GetProductUsage(ctx, startDate+" 00:00:00", endDate+" 00:00:00")
}
