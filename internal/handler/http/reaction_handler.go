package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	"github.com/mihretgelan/TasteReel/internal/handler/http/dto"
	"github.com/mihretgelan/TasteReel/internal/handler/http/middleware"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// ReactionHandlerInterface defines the methods for the reaction handler to
// allow interface-based dependency injection (for testing/mocking)
type ReactionHandlerInterface interface {
	ToggleLike(*gin.Context)
	ToggleSave(*gin.Context)
	GetSavedFoods(*gin.Context)
}

var _ ReactionHandlerInterface = (*ReactionHandler)(nil)

type ReactionHandler struct {
	reactionUsecase usecasecontract.IReactionUseCase
	logger          usecasecontract.IAppLogger
}

func NewReactionHandler(reactionUsecase usecasecontract.IReactionUseCase, logger usecasecontract.IAppLogger) *ReactionHandler {
	return &ReactionHandler{
		reactionUsecase: reactionUsecase,
		logger:          logger,
	}
}

// toggle runs the shared toggle flow and hands the result to respond. The
// duplicate-insert race never reaches this layer; the usecase reports it as a
// successful toggle-ON.
func (h *ReactionHandler) toggle(c *gin.Context, kind entity.ReactionKind, respond func(*gin.Context, *usecasecontract.ToggleResult)) {
	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "please login first")
		return
	}

	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FoodID == "" {
		ErrorHandler(c, http.StatusBadRequest, "foodId is required")
		return
	}

	result, err := h.reactionUsecase.Toggle(c.Request.Context(), kind, userID.(string), req.FoodID)
	if err != nil {
		if errors.Is(err, contract.ErrFoodNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Food not found")
			return
		}
		h.logger.Errorf("%s toggle failed for user=%s food=%s: %v", kind, userID, req.FoodID, err)
		ErrorHandler(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	respond(c, result)
}

// ToggleLike flips the caller's like on a food item.
func (h *ReactionHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, entity.ReactionKindLike, func(c *gin.Context, result *usecasecontract.ToggleResult) {
		if result.Active {
			SuccessHandler(c, http.StatusCreated, dto.LikeToggleResponse{
				Message:   "Food item liked successfully",
				Like:      true,
				LikeCount: result.Count,
			})
			return
		}
		SuccessHandler(c, http.StatusOK, dto.LikeToggleResponse{
			Message:   "Food item unliked successfully",
			Like:      false,
			LikeCount: result.Count,
		})
	})
}

// ToggleSave flips the caller's save on a food item.
func (h *ReactionHandler) ToggleSave(c *gin.Context) {
	h.toggle(c, entity.ReactionKindSave, func(c *gin.Context, result *usecasecontract.ToggleResult) {
		if result.Active {
			SuccessHandler(c, http.StatusCreated, dto.SaveToggleResponse{
				Message:   "Food item saved successfully",
				Saved:     true,
				SaveCount: result.Count,
			})
			return
		}
		SuccessHandler(c, http.StatusOK, dto.SaveToggleResponse{
			Message:   "Food item unsaved successfully",
			Saved:     false,
			SaveCount: result.Count,
		})
	})
}

// GetSavedFoods lists the caller's saved items, each marked isSaved.
func (h *ReactionHandler) GetSavedFoods(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "please login first")
		return
	}

	foods, err := h.reactionUsecase.ListSavedFoods(c.Request.Context(), userID.(string))
	if err != nil {
		h.logger.Errorf("saved listing failed for user=%s: %v", userID, err)
		ErrorHandler(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	items := dto.ToFoodResponses(foods)
	for i := range items {
		items[i].IsSaved = true
	}
	SuccessHandler(c, http.StatusOK, dto.SavedItemsResponse{SavedItems: items})
}
