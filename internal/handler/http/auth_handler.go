package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/handler/http/dto"
	"github.com/mihretgelan/TasteReel/internal/handler/http/middleware"
	"github.com/mihretgelan/TasteReel/internal/usecase"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	RegisterUser(*gin.Context)
	LoginUser(*gin.Context)
	LogoutUser(*gin.Context)
	RegisterFoodPartner(*gin.Context)
	LoginFoodPartner(*gin.Context)
	LogoutFoodPartner(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase  usecasecontract.IAuthUseCase
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase, cfg usecasecontract.IConfigProvider) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		cookieMaxAge: int(cfg.GetTokenExpiry().Seconds()),
	}
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.TokenCookieName, token, h.cookieMaxAge, "/", "", h.cookieSecure, true)
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.cookieSecure, true)
}

// RegisterUser handles viewer registration.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.authUsecase.RegisterUser(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, contract.ErrEmailTaken) {
			ErrorHandler(c, http.StatusBadRequest, "User already exists")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	h.setAuthCookie(c, token)
	SuccessHandler(c, http.StatusCreated, dto.AuthUserResponse{
		Message: "User registered successfully",
		User:    dto.ToUserResponse(user),
	})
}

// LoginUser handles viewer authentication.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.authUsecase.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			ErrorHandler(c, http.StatusBadRequest, "Invalid email or password")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.setAuthCookie(c, token)
	SuccessHandler(c, http.StatusOK, dto.AuthUserResponse{
		Message: "User logged in successfully",
		User:    dto.ToUserResponse(user),
	})
}

// LogoutUser clears the auth cookie.
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	h.clearAuthCookie(c)
	MessageHandler(c, http.StatusOK, "User logged out successfully")
}

// RegisterFoodPartner handles partner registration.
func (h *AuthHandler) RegisterFoodPartner(c *gin.Context) {
	var req dto.RegisterPartnerRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	partner, token, err := h.authUsecase.RegisterFoodPartner(c.Request.Context(), req.FullName, req.Email, req.Password, req.Phone, req.City)
	if err != nil {
		if errors.Is(err, contract.ErrEmailTaken) {
			ErrorHandler(c, http.StatusBadRequest, "Food Partner already exists")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	h.setAuthCookie(c, token)
	SuccessHandler(c, http.StatusCreated, dto.AuthPartnerResponse{
		Message:     "Food Partner registered successfully",
		FoodPartner: dto.ToPartnerResponse(partner),
	})
}

// LoginFoodPartner handles partner authentication.
func (h *AuthHandler) LoginFoodPartner(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	partner, token, err := h.authUsecase.LoginFoodPartner(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			ErrorHandler(c, http.StatusBadRequest, "Invalid email or password")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.setAuthCookie(c, token)
	SuccessHandler(c, http.StatusOK, dto.AuthPartnerResponse{
		Message:     "Food Partner logged in successfully",
		FoodPartner: dto.ToPartnerResponse(partner),
	})
}

// LogoutFoodPartner clears the auth cookie.
func (h *AuthHandler) LogoutFoodPartner(c *gin.Context) {
	h.clearAuthCookie(c)
	MessageHandler(c, http.StatusOK, "Food Partner logged out successfully")
}
