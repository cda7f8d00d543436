package auth

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

type TokenIssuer interface {
	GenerateToken(userID, role string) (string, error)
}

// Clock is swapped in tests for lockout timing.
type Clock func() time.Time
