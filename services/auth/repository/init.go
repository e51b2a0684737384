package repository

import (
	"github.com/jmoiron/sqlx"
)

// AuthRepo implements the auth.AuthRepo interface on Postgres
type AuthRepo struct {
	db *sqlx.DB
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		db: db,
	}
}
