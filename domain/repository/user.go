package repository

import (
	"context"

	"clipstream/domain/model"
)

type IUser interface {
	GetById(ctx context.Context, id int64) (model.User, error)
	GetByUserName(ctx context.Context, userName string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) error
	// UpsertByEmail creates or refreshes an OAuth-provisioned user and
	// returns the stored row.
	UpsertByEmail(ctx context.Context, user model.User) (model.User, error)
}
