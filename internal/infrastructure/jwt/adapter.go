package jwt

import (
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	"github.com/mihretgelan/TasteReel/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateToken issues the auth-cookie token for a principal.
func (a *JWTServiceAdapter) GenerateToken(id string, kind entity.PrincipalKind) (string, error) {
	return a.mgr.Generate(id, kind)
}

// ParseToken validates an auth-cookie token and returns its claims.
func (a *JWTServiceAdapter) ParseToken(tokenStr string) (*entity.Claims, error) {
	return a.mgr.Verify(tokenStr)
}
