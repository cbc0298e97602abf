package repository

import (
	"context"

	"github.com/salamtec/inventory-service/internal/auth"
	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/internal/storage"
)

type DocRepository struct {
	store storage.Store
}

func NewDocRepository(store storage.Store) *DocRepository {
	return &DocRepository{store: store}
}

func (r *DocRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	col := &model.UserCollection{Users: []model.User{}}
	if err := r.store.Load(ctx, storage.CollectionUsers, col); err != nil {
		return nil, err
	}
	u := col.Find(username)
	if u == nil {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *DocRepository) Create(ctx context.Context, user model.User) error {
	return r.store.Update(ctx, storage.CollectionUsers, func(ctx context.Context) error {
		col := &model.UserCollection{Users: []model.User{}}
		if err := r.store.Load(ctx, storage.CollectionUsers, col); err != nil {
			return err
		}
		if col.Find(user.Username) != nil {
			return auth.ErrUsernameTaken
		}
		col.Users = append(col.Users, user)
		return r.store.Save(ctx, storage.CollectionUsers, col)
	})
}
