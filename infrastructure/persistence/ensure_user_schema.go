package persistence

import (
	"database/sql"
)

// EnsureUserSchema creates the user table when it does not exist yet.
func EnsureUserSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS public.user (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			user_name VARCHAR(128) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL DEFAULT '',
			password VARCHAR(64) NOT NULL DEFAULT '',
			provider VARCHAR(32) NOT NULL DEFAULT 'local',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_user_email ON public.user (email) WHERE email <> ''`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
