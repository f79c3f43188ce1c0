package service

import (
	"context"

	"kanbanTracker/internal/models/user"

	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateUser(ctx context.Context, u *user.User) error
	UpdateSetting(ctx context.Context, userID uuid.UUID, setting user.Setting) error
}
