package auth

import (
	"context"

	"lensycam/internal/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
