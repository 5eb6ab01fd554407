package routes

import (
	"net/http"

	"lokalin/config"
	"lokalin/controllers"
	"lokalin/handler"
	"lokalin/libs"
	"lokalin/middleware"
	"lokalin/repositories"
	"lokalin/services"
	"lokalin/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	if err := utils.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("Failed to register validators")
	}

	cfg := config.AppConfig

	profileRepo := repositories.NewProfileRepository(config.DB)
	businessRepo := repositories.NewBusinessRepository(config.DB)
	favoriteRepo := repositories.NewFavoriteRepository(config.DB)
	reviewRepo := repositories.NewReviewRepository(config.DB)
	applicationRepo := repositories.NewSellerApplicationRepository(config.DB)
	businessCache := repositories.NewBusinessCache(config.RedisClient, cfg.ListingCacheTTL)
	cartRepo := repositories.NewCartRepository(config.RedisClient, cfg.CartTTL)
	denylist := repositories.NewTokenDenylist(config.RedisClient)

	var uploader services.ImageUploader
	if storage, err := libs.NewImageStorage(cfg); err != nil {
		log.Warn().Err(err).Msg("Image uploads disabled")
	} else {
		uploader = storage
	}

	var notifier services.Notifier
	if mailer, err := libs.NewMailer(cfg); err != nil {
		log.Warn().Err(err).Msg("Decision e-mails disabled")
	} else {
		notifier = mailer
	}

	mediaService := services.NewMediaService(uploader)
	authService := services.NewAuthService(profileRepo, denylist)
	profileService := services.NewProfileService(profileRepo, applicationRepo, mediaService)
	businessService := services.NewBusinessService(businessRepo, businessCache, profileRepo, reviewRepo, favoriteRepo, mediaService)
	favoriteService := services.NewFavoriteService(favoriteRepo, businessService)
	reviewService := services.NewReviewService(reviewRepo, profileRepo, businessService)
	applicationService := services.NewSellerApplicationService(applicationRepo, profileRepo, notifier)
	orderService := services.NewOrderService(cartRepo, businessService)

	authCtrl := controllers.NewAuthController(authService, profileService)
	profileCtrl := controllers.NewProfileController(profileService)
	businessCtrl := controllers.NewBusinessController(businessService)
	favoriteCtrl := controllers.NewFavoriteController(favoriteService)
	reviewCtrl := controllers.NewReviewController(reviewService)
	applicationCtrl := controllers.NewSellerApplicationController(applicationService)
	orderCtrl := controllers.NewOrderController(orderService)

	router.GET("/", gin.WrapF(handler.Handler))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", businessCtrl.GetCategories)
	router.GET("/businesses", businessCtrl.GetAllBusinesses)
	router.GET("/businesses/:id", middleware.OptionalAuth(authService), businessCtrl.GetBusinessByID)
	router.GET("/businesses/:id/share", businessCtrl.ShareBusiness)
	router.GET("/businesses/:id/reviews", reviewCtrl.GetReviews)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(authService))
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.GET("/auth/session", authCtrl.Session)

		auth.GET("/profile", profileCtrl.GetProfile)
		auth.PATCH("/profile", profileCtrl.UpdateProfile)
		auth.POST("/profile/avatar", profileCtrl.UploadAvatar)

		auth.GET("/businesses/mine", businessCtrl.GetMyBusinesses)
		auth.POST("/businesses", businessCtrl.CreateBusiness)
		auth.POST("/businesses/images", businessCtrl.UploadImages)
		auth.PATCH("/businesses/:id", businessCtrl.UpdateBusiness)
		auth.DELETE("/businesses/:id", businessCtrl.DeleteBusiness)
		auth.POST("/businesses/:id/reviews", reviewCtrl.CreateReview)

		auth.GET("/businesses/:id/cart", orderCtrl.GetCart)
		auth.POST("/businesses/:id/cart/items", orderCtrl.AddItem)
		auth.DELETE("/businesses/:id/cart/items", orderCtrl.RemoveItem)
		auth.DELETE("/businesses/:id/cart", orderCtrl.ClearCart)
		auth.POST("/businesses/:id/checkout", orderCtrl.Checkout)

		auth.GET("/favorites", favoriteCtrl.GetFavorites)
		auth.GET("/favorites/:business_id", favoriteCtrl.CheckFavorite)
		auth.POST("/favorites/:business_id/toggle", favoriteCtrl.ToggleFavorite)

		auth.POST("/seller-applications", applicationCtrl.Apply)
		auth.GET("/seller-applications/me", applicationCtrl.GetMine)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService), middleware.AdminMiddleware())
	{
		admin.GET("/seller-applications", applicationCtrl.GetAll)
		admin.PATCH("/seller-applications/:id", applicationCtrl.Decide)
	}
}
