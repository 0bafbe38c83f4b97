package persistence

import (
	"context"
	"database/sql"

	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/logger"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.IUser {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetById(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	stmt, err := r.db.PrepareContext(ctx, `SELECT u.id, u.name, u.user_name, u.email, u.password, u.provider, u.created_at, u.updated_at
	FROM public.user AS u
	WHERE u.id = $1`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while preparing statement")
		return user, err
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, id)
	if err := row.Scan(&user.ID, &user.Name, &user.UserName, &user.Email, &user.Password, &user.Provider, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	var user model.User
	stmt, err := r.db.PrepareContext(ctx, `SELECT u.id, u.name, u.user_name, u.email, u.password, u.provider, u.created_at, u.updated_at
	FROM public.user AS u
	WHERE u.user_name = $1`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while preparing statement")
		return user, err
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, userName)
	if err := row.Scan(&user.ID, &user.Name, &user.UserName, &user.Email, &user.Password, &user.Provider, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user model.User) error {
	stmt, err := r.db.PrepareContext(ctx, `INSERT INTO public.user (name, user_name, email, password, provider) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while preparing statement")
		return err
	}
	defer stmt.Close()

	provider := user.Provider
	if provider == "" {
		provider = "local"
	}
	if _, err := stmt.ExecContext(ctx, user.Name, user.UserName, user.Email, user.Password, provider); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		return err
	}
	return nil
}

// UpsertByEmail inserts an OAuth-provisioned user or refreshes the stored
// name, and returns the current row.
func (r *UserRepository) UpsertByEmail(ctx context.Context, user model.User) (model.User, error) {
	stmt, err := r.db.PrepareContext(ctx, `INSERT INTO public.user (name, user_name, email, password, provider) VALUES ($1, $2, $3, '', $4)
	ON CONFLICT (user_name) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
	RETURNING id, name, user_name, email, password, provider, created_at, updated_at`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while preparing statement")
		return model.User{}, err
	}
	defer stmt.Close()

	var out model.User
	row := stmt.QueryRowContext(ctx, user.Name, user.UserName, user.Email, user.Provider)
	if err := row.Scan(&out.ID, &out.Name, &out.UserName, &out.Email, &out.Password, &out.Provider, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.User{}, err
	}
	return out, nil
}
