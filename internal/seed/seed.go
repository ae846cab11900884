// Package seed creates initial data after migrations.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/eduface/eduface/internal/pkg/auth"
)

// CreateDefaultData provisions the bootstrap admin account when
// EDUFACE_ADMIN_EMAIL and EDUFACE_ADMIN_PASSWORD are set. Without them the
// first admin must be created through the register endpoint.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	email := os.Getenv("EDUFACE_ADMIN_EMAIL")
	password := os.Getenv("EDUFACE_ADMIN_PASSWORD")
	if email == "" || password == "" {
		lgr.Debug().Msg("Admin seed variables not set, skipping default admin")
		return nil
	}

	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Default admin already exists")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := os.Getenv("EDUFACE_ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, 'admin')`,
		name, email, hash)
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
