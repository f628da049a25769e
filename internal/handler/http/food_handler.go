package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/handler/http/dto"
	"github.com/mihretgelan/TasteReel/internal/handler/http/middleware"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// FoodHandlerInterface defines the methods for the food handler to allow
// interface-based dependency injection (for testing/mocking)
type FoodHandlerInterface interface {
	CreateFood(*gin.Context)
	GetFeed(*gin.Context)
	GetPartnerProfile(*gin.Context)
}

var _ FoodHandlerInterface = (*FoodHandler)(nil)

type FoodHandler struct {
	foodUsecase usecasecontract.IFoodUseCase
}

func NewFoodHandler(foodUsecase usecasecontract.IFoodUseCase) *FoodHandler {
	return &FoodHandler{foodUsecase: foodUsecase}
}

// CreateFood handles a partner publishing a food video. The request is
// multipart: a "video" file plus "name" and "description" fields.
func (h *FoodHandler) CreateFood(c *gin.Context) {
	partnerID, exists := c.Get(middleware.ContextPartnerIDKey)
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "please login first")
		return
	}

	name := c.PostForm("name")
	if name == "" {
		ErrorHandler(c, http.StatusBadRequest, "name is required")
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "video file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "failed to read video file")
		return
	}
	defer file.Close()

	food, err := h.foodUsecase.CreateFood(c.Request.Context(), usecasecontract.CreateFoodInput{
		Name:        name,
		Description: c.PostForm("description"),
		PartnerID:   partnerID.(string),
		Video:       file,
		VideoSize:   fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.CreateFoodResponse{
		Message:  "Food item created",
		FoodItem: dto.ToFoodResponse(food),
	})
}

// GetFeed returns every food item for the scrolling feed.
func (h *FoodHandler) GetFeed(c *gin.Context) {
	foods, err := h.foodUsecase.ListFeed(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.FeedResponse{
		Message:   "Food items fetched successfully",
		FoodItems: dto.ToFoodResponses(foods),
	})
}

// GetPartnerProfile returns a partner with their uploaded items.
func (h *FoodHandler) GetPartnerProfile(c *gin.Context) {
	partnerID := c.Param("id")
	partner, foods, err := h.foodUsecase.GetPartnerProfile(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, contract.ErrPartnerNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Food Partner not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.PartnerProfileResponse{
		Message: "Food Partner fetched successfully",
		FoodPartner: dto.PartnerWithListings{
			PartnerResponse: dto.ToPartnerResponse(partner),
			FoodItems:       dto.ToFoodResponses(foods),
		},
	})
}
