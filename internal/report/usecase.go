package report

import (
	"context"
	"time"

	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/internal/report/dto"
)

type UseCase interface {
	// DashboardTotals aggregates over products that have at least one
	// history event inside [from, to] (day granularity, inclusive).
	DashboardTotals(ctx context.Context, from, to time.Time) (*dto.Dashboard, error)

	// HistoryReport flattens every history event inside the range, newest
	// first. Rows carry the actor only for admin viewers.
	HistoryReport(ctx context.Context, from, to time.Time, viewer model.Actor) ([]dto.HistoryRow, error)
}

// ProductSource is the read-only view the query engine works from.
// Satisfied by the ledger repository.
type ProductSource interface {
	LoadAll(ctx context.Context) (*model.ProductCollection, error)
}
