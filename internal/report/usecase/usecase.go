package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/internal/report"
	"github.com/salamtec/inventory-service/internal/report/dto"
	"github.com/salamtec/inventory-service/pkg/logger"
)

type reportUseCase struct {
	products report.ProductSource
	logger   logger.ZapLogger
}

func NewReportUseCase(products report.ProductSource, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		products: products,
		logger:   log,
	}
}

// DashboardTotals selects products having any event in range, then sums In
// and Out quantities over the in-range events of those products.
//
// TotalRemaining intentionally sums the products' CURRENT quantities rather
// than reconstructing quantities as of the range end. Membership in the
// result is range-filtered, the remaining figure is present-state. Existing
// consumers depend on this, so it is kept, not "fixed".
func (uc *reportUseCase) DashboardTotals(ctx context.Context, from, to time.Time) (*dto.Dashboard, error) {
	col, err := uc.products.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.Dashboard{Products: []dto.ProductRow{}}
	for _, p := range col.Products {
		selected := false
		for _, ev := range p.History {
			if !inRange(ev.Date, from, to) {
				continue
			}
			selected = true
			switch ev.Action {
			case model.ActionIn:
				out.TotalIn += ev.Quantity
			case model.ActionOut:
				out.TotalOut += ev.Quantity
			}
		}
		if selected {
			out.TotalRemaining += p.Quantity
			out.Products = append(out.Products, dto.ProductRow{
				ProductName:  p.Name,
				RemainingQty: p.Quantity,
				SerialCount:  len(p.Serials),
				DateAdded:    p.DateAdded,
			})
		}
	}
	return out, nil
}

func (uc *reportUseCase) HistoryReport(ctx context.Context, from, to time.Time, viewer model.Actor) ([]dto.HistoryRow, error) {
	col, err := uc.products.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := []dto.HistoryRow{}
	for _, p := range col.Products {
		for _, ev := range p.History {
			if !inRange(ev.Date, from, to) {
				continue
			}
			row := dto.HistoryRow{
				Product:      p.Name,
				Action:       ev.Action,
				Quantity:     ev.Quantity,
				Serials:      strings.Join(ev.Serials, ", "),
				Date:         ev.Date,
				RemainingQty: p.Quantity,
			}
			if viewer.IsAdmin() {
				actor := ev.Actor
				if actor == "" {
					actor = "N/A"
				}
				row.Actor = &actor
			}
			rows = append(rows, row)
		}
	}

	// Newest first. Stable keeps same-timestamp rows in source order, which
	// was chronological.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date.Time)
	})
	return rows, nil
}

// inRange compares at day granularity, both endpoints inclusive.
func inRange(ts model.Timestamp, from, to time.Time) bool {
	day := ts.Day()
	return !day.Before(from) && !day.After(to)
}
