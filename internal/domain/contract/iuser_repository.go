package contract

import (
	"context"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// IUserRepository defines the interface for user data persistence.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}
