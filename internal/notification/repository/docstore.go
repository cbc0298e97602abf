package repository

import (
	"context"

	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/internal/storage"
)

type DocRepository struct {
	store storage.Store
}

func NewDocRepository(store storage.Store) *DocRepository {
	return &DocRepository{store: store}
}

func (r *DocRepository) Append(ctx context.Context, n model.Notification) error {
	return r.store.Update(ctx, storage.CollectionNotifications, func(ctx context.Context) error {
		col := &model.NotificationCollection{Notifications: []model.Notification{}}
		if err := r.store.Load(ctx, storage.CollectionNotifications, col); err != nil {
			return err
		}
		col.Notifications = append(col.Notifications, n)
		return r.store.Save(ctx, storage.CollectionNotifications, col)
	})
}

func (r *DocRepository) LoadAll(ctx context.Context) ([]model.Notification, error) {
	col := &model.NotificationCollection{Notifications: []model.Notification{}}
	if err := r.store.Load(ctx, storage.CollectionNotifications, col); err != nil {
		return nil, err
	}
	return col.Notifications, nil
}

func (r *DocRepository) Clear(ctx context.Context) error {
	return r.store.Update(ctx, storage.CollectionNotifications, func(ctx context.Context) error {
		return r.store.Save(ctx, storage.CollectionNotifications, &model.NotificationCollection{
			Notifications: []model.Notification{},
		})
	})
}
