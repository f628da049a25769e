package usecase

import (
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateToken(id string, kind entity.PrincipalKind) (string, error)
	ParseToken(token string) (*entity.Claims, error)
}
