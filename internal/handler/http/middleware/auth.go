package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	"github.com/mihretgelan/TasteReel/internal/handler/http/dto"
	"github.com/mihretgelan/TasteReel/internal/usecase"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// TokenCookieName is the cookie carrying the signed auth token.
const TokenCookieName = "token"

// Context keys set by the auth middlewares.
const (
	ContextUserIDKey    = "userID"
	ContextPartnerIDKey = "partnerID"
)

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "please login first"})
}

// tokenFromRequest reads the auth token from the cookie, falling back to a
// bearer Authorization header for non-browser clients.
func tokenFromRequest(c *gin.Context) (string, bool) {
	if token, err := c.Cookie(TokenCookieName); err == nil && token != "" {
		return token, true
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer "), true
	}
	return "", false
}

// AuthUser requires a valid viewer token and a live account behind it.
func AuthUser(jwtService usecase.JWTService, authUsecase usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromRequest(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		claims, err := jwtService.ParseToken(token)
		if err != nil || claims.Kind != entity.PrincipalUser {
			abortUnauthenticated(c)
			return
		}
		user, err := authUsecase.GetUserByID(c.Request.Context(), claims.ID)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// AuthFoodPartner requires a valid partner token and a live account behind it.
func AuthFoodPartner(jwtService usecase.JWTService, authUsecase usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromRequest(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		claims, err := jwtService.ParseToken(token)
		if err != nil || claims.Kind != entity.PrincipalFoodPartner {
			abortUnauthenticated(c)
			return
		}
		partner, err := authUsecase.GetFoodPartnerByID(c.Request.Context(), claims.ID)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		c.Set(ContextPartnerIDKey, partner.ID)
		c.Next()
	}
}
