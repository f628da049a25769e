package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	"github.com/mihretgelan/TasteReel/internal/handler/http/middleware"
	"github.com/mihretgelan/TasteReel/internal/handler/http/mocks"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestJWT() (*jwt.JWTManager, func(id string, kind entity.PrincipalKind) string) {
	mgr := jwt.NewJWTManager("test-secret", time.Hour)
	sign := func(id string, kind entity.PrincipalKind) string {
		token, _ := mgr.Generate(id, kind)
		return token
	}
	return mgr, sign
}

func protectedRouter(authed gin.HandlerFunc, ctxKey string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", authed, func(c *gin.Context) {
		id, _ := c.Get(ctxKey)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func getWithCookie(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthUser_ValidCookie(t *testing.T) {
	mgr, sign := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	r := protectedRouter(middleware.AuthUser(jwt.NewJWTService(mgr), mockAuth), middleware.ContextUserIDKey)

	w := getWithCookie(r, sign(mockAuth.MockUser.ID, entity.PrincipalUser))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), mockAuth.MockUser.ID)
}

func TestAuthUser_BearerFallback(t *testing.T) {
	mgr, sign := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	r := protectedRouter(middleware.AuthUser(jwt.NewJWTService(mgr), mockAuth), middleware.ContextUserIDKey)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+sign(mockAuth.MockUser.ID, entity.PrincipalUser))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthUser_MissingToken(t *testing.T) {
	mgr, _ := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	r := protectedRouter(middleware.AuthUser(jwt.NewJWTService(mgr), mockAuth), middleware.ContextUserIDKey)

	w := getWithCookie(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "please login first")
}

func TestAuthUser_GarbageToken(t *testing.T) {
	mgr, _ := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	r := protectedRouter(middleware.AuthUser(jwt.NewJWTService(mgr), mockAuth), middleware.ContextUserIDKey)

	w := getWithCookie(r, "not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthUser_WrongSecret(t *testing.T) {
	other := jwt.NewJWTManager("some-other-secret", time.Hour)
	forged, err := other.Generate("mock-user-id", entity.PrincipalUser)
	assert.NoError(t, err)

	mgr, _ := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	r := protectedRouter(middleware.AuthUser(jwt.NewJWTService(mgr), mockAuth), middleware.ContextUserIDKey)

	w := getWithCookie(r, forged)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthUser_RejectsPartnerToken(t *testing.T) {
	mgr, sign := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	r := protectedRouter(middleware.AuthUser(jwt.NewJWTService(mgr), mockAuth), middleware.ContextUserIDKey)

	w := getWithCookie(r, sign(mockAuth.MockPartner.ID, entity.PrincipalFoodPartner))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthUser_AccountGone(t *testing.T) {
	mgr, sign := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	mockAuth.ShouldFailGetByID = true
	r := protectedRouter(middleware.AuthUser(jwt.NewJWTService(mgr), mockAuth), middleware.ContextUserIDKey)

	w := getWithCookie(r, sign(mockAuth.MockUser.ID, entity.PrincipalUser))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthUser_ExpiredToken(t *testing.T) {
	expired := jwt.NewJWTManager("test-secret", -time.Minute)
	token, err := expired.Generate("mock-user-id", entity.PrincipalUser)
	assert.NoError(t, err)

	mgr, _ := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	r := protectedRouter(middleware.AuthUser(jwt.NewJWTService(mgr), mockAuth), middleware.ContextUserIDKey)

	w := getWithCookie(r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthFoodPartner_ValidCookie(t *testing.T) {
	mgr, sign := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	r := protectedRouter(middleware.AuthFoodPartner(jwt.NewJWTService(mgr), mockAuth), middleware.ContextPartnerIDKey)

	w := getWithCookie(r, sign(mockAuth.MockPartner.ID, entity.PrincipalFoodPartner))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), mockAuth.MockPartner.ID)
}

func TestAuthFoodPartner_RejectsUserToken(t *testing.T) {
	mgr, sign := newTestJWT()
	mockAuth := mocks.NewMockAuthUsecase()
	r := protectedRouter(middleware.AuthFoodPartner(jwt.NewJWTService(mgr), mockAuth), middleware.ContextPartnerIDKey)

	w := getWithCookie(r, sign(mockAuth.MockUser.ID, entity.PrincipalUser))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
