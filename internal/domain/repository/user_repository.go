package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository is the credential store. Create must enforce email
// uniqueness itself and report a conflict as ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
