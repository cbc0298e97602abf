package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salamtec/inventory-service/internal/ledger"
	"github.com/salamtec/inventory-service/internal/ledger/dto"
	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/pkg/logger"
)

type ledgerUseCase struct {
	repo     ledger.Repository
	notifier ledger.Notifier
	logger   logger.ZapLogger
}

func NewLedgerUseCase(repo ledger.Repository, notifier ledger.Notifier, log logger.ZapLogger) ledger.UseCase {
	return &ledgerUseCase{
		repo:     repo,
		notifier: notifier,
		logger:   log,
	}
}

func (uc *ledgerUseCase) AddStock(ctx context.Context, input *dto.AddStockInput) (*model.Product, error) {
	if input.ProductName == "" || input.Quantity < 1 {
		return nil, model.ErrInvalidInput
	}
	if len(input.Serials) > 0 && len(input.Serials) != input.Quantity {
		return nil, model.ErrInvalidInput
	}

	var snapshot *model.Product
	err := uc.repo.Mutate(ctx, func(col *model.ProductCollection) error {
		now := model.Now()
		ev := model.HistoryEvent{
			ID:       uuid.New().String(),
			Action:   model.ActionIn,
			Quantity: input.Quantity,
			Serials:  nonNil(input.Serials),
			Date:     now,
			Actor:    input.Actor.Username,
		}

		p := col.Find(input.ProductName)
		if p == nil {
			p = &model.Product{
				Name:      input.ProductName,
				Serials:   []string{},
				DateAdded: now,
			}
			if err := p.ApplyIn(ev); err != nil {
				return err
			}
			col.Products = append(col.Products, p)
		} else if err := p.ApplyIn(ev); err != nil {
			return err
		}
		snapshot = cloneProduct(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, fmt.Sprintf("%s added %d x %s", input.Actor.Username, input.Quantity, input.ProductName))
	return snapshot, nil
}

func (uc *ledgerUseCase) RemoveStock(ctx context.Context, input *dto.RemoveStockInput) (*model.Product, error) {
	if input.ProductName == "" {
		return nil, model.ErrInvalidInput
	}
	quantity := input.Quantity
	if len(input.Serials) > 0 {
		quantity = len(input.Serials)
	}
	if quantity < 1 {
		return nil, model.ErrInvalidInput
	}

	var snapshot *model.Product
	err := uc.repo.Mutate(ctx, func(col *model.ProductCollection) error {
		p := col.Find(input.ProductName)
		if p == nil {
			return model.ErrNotFound
		}
		ev := model.HistoryEvent{
			ID:       uuid.New().String(),
			Action:   model.ActionOut,
			Quantity: quantity,
			Serials:  nonNil(input.Serials),
			Date:     model.Now(),
			Actor:    input.Actor.Username,
		}
		if err := p.ApplyOut(ev); err != nil {
			return err
		}
		snapshot = cloneProduct(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, fmt.Sprintf("%s removed %d x %s", input.Actor.Username, quantity, input.ProductName))
	return snapshot, nil
}

func (uc *ledgerUseCase) GetProduct(ctx context.Context, name string) (*model.Product, error) {
	col, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	p := col.Find(name)
	if p == nil {
		return nil, model.ErrNotFound
	}
	return p, nil
}

func (uc *ledgerUseCase) ListProducts(ctx context.Context) ([]*model.Product, error) {
	col, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return col.Products, nil
}

// notify pushes the audit message for a mutation that already persisted.
// The push is a side effect outside the product transaction; a failure is
// logged, not surfaced, so a notification outage cannot void bookings.
func (uc *ledgerUseCase) notify(ctx context.Context, message string) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Push(ctx, message); err != nil {
		uc.logger.Error("failed to push notification", zap.String("message", message), zap.Error(err))
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func cloneProduct(p *model.Product) *model.Product {
	c := *p
	c.Serials = append([]string{}, p.Serials...)
	c.History = append([]model.HistoryEvent{}, p.History...)
	return &c
}
