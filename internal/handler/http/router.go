package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mihretgelan/TasteReel/internal/handler/http/middleware"
	"github.com/mihretgelan/TasteReel/internal/usecase"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	authHandler     *AuthHandler
	foodHandler     *FoodHandler
	reactionHandler *ReactionHandler
	authUsecase     usecasecontract.IAuthUseCase
	jwtService      usecase.JWTService
	config          usecasecontract.IConfigProvider
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	foodUsecase usecasecontract.IFoodUseCase,
	reactionUsecase usecasecontract.IReactionUseCase,
	jwtService usecase.JWTService,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		authHandler:     NewAuthHandler(authUsecase, config),
		foodHandler:     NewFoodHandler(foodUsecase),
		reactionHandler: NewReactionHandler(reactionUsecase, logger),
		authUsecase:     authUsecase,
		jwtService:      jwtService,
		config:          config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	// The SPA sends the auth cookie cross-origin, so credentials must be on
	// and the origin list explicit.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetCORSAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/user/register", r.authHandler.RegisterUser)
		auth.POST("/user/login", r.authHandler.LoginUser)
		auth.GET("/user/logout", r.authHandler.LogoutUser)

		auth.POST("/food-partner/register", r.authHandler.RegisterFoodPartner)
		auth.POST("/food-partner/login", r.authHandler.LoginFoodPartner)
		auth.GET("/food-partner/logout", r.authHandler.LogoutFoodPartner)
	}

	authUser := middleware.AuthUser(r.jwtService, r.authUsecase)
	authPartner := middleware.AuthFoodPartner(r.jwtService, r.authUsecase)

	food := api.Group("/food")
	{
		food.POST("", authPartner, r.foodHandler.CreateFood)
		food.GET("", authUser, r.foodHandler.GetFeed)

		food.POST("/like", authUser, r.reactionHandler.ToggleLike)
		food.POST("/save", authUser, r.reactionHandler.ToggleSave)
		food.GET("/saved", authUser, r.reactionHandler.GetSavedFoods)
	}

	api.GET("/food-partner/:id", authUser, r.foodHandler.GetPartnerProfile)
}
