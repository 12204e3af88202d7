package services

import (
	"fmt"
	"time"

	"github.com/cleaningmadeasy/laundry-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Report period tags
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

const reportDateLayout = "2006-01-02"

// Report aggregates orders created inside a reporting bucket.
type Report struct {
	Period       string          `json:"period"`
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ReportService computes revenue reports over stored orders.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a report service backed by the given database
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Generate aggregates order count and revenue for the requested period.
// Daily reports take a single date; weekly, monthly and yearly reports take
// an inclusive start/end date range. Unrecognized period tags and
// unparseable dates are validation errors.
func (s *ReportService) Generate(period, startDate, endDate string) (*Report, error) {
	start, err := time.Parse(reportDateLayout, startDate)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid start date: %q", startDate)}
	}

	var from, to time.Time
	var label string
	switch period {
	case PeriodDaily:
		from = start
		to = start.AddDate(0, 0, 1)
		label = startDate
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		if endDate == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("%s reports require an end date", period)}
		}
		end, err := time.Parse(reportDateLayout, endDate)
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid end date: %q", endDate)}
		}
		if end.Before(start) {
			return nil, &ValidationError{Message: "end date must not be before start date"}
		}
		from = start
		to = end.AddDate(0, 0, 1)
		label = fmt.Sprintf("%s to %s", startDate, endDate)
	default:
		return nil, &ValidationError{Message: fmt.Sprintf("invalid report type: %q", period)}
	}

	var result struct {
		TotalOrders  int64
		TotalRevenue decimal.NullDecimal
	}
	err = s.db.Model(&models.Order{}).
		Select("COUNT(*) AS total_orders, SUM(total_amount) AS total_revenue").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	revenue := decimal.Zero
	if result.TotalRevenue.Valid {
		revenue = result.TotalRevenue.Decimal
	}

	return &Report{
		Period:       label,
		TotalOrders:  result.TotalOrders,
		TotalRevenue: revenue,
	}, nil
}
