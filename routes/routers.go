package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"storeratings/config"
	"storeratings/controllers"
	middlewares "storeratings/middleware"
	"storeratings/models"
	"storeratings/services"
	"storeratings/services/logger"
)

// SetupRoutes wires services, controllers and the role-gated route table.
// Every gated route requires exactly one role; the auth-only routes pass no
// role and accept any authenticated caller.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cfg *config.Config) {
	log := logger.NewDefaultLogger(logger.InfoLevel)

	tokens := services.NewTokenService(cfg.SecretKey, cfg.TokenTTLMinutes)
	authService := services.NewAuthService(services.AuthServiceOptions{
		DB:             db,
		Tokens:         tokens,
		Logger:         log,
		GoogleClientID: cfg.GoogleClientID,
	})
	userService := services.NewUserService(services.UserServiceOptions{DB: db, Logger: log})
	storeService := services.NewStoreService(services.StoreServiceOptions{DB: db, Logger: log})
	ratingService := services.NewRatingService(services.RatingServiceOptions{DB: db, Logger: log})

	authController := controllers.NewAuthController(db, authService, tokens, redisCli)
	userController := controllers.NewUserController(userService)
	storeController := controllers.NewStoreController(storeService)
	ratingController := controllers.NewRatingController(ratingService)
	dashboardController := controllers.NewDashboardController(db, ratingService)

	authed := func(roles ...models.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(tokens, redisCli, roles...)
	}

	v1 := router.Group("/api/v1")

	v1.POST("/auth/signup", authController.Signup)
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/google", authController.AuthGoogle)
	v1.DELETE("/auth/logout", authed(), authController.Logout)
	v1.PATCH("/auth/update-password", authed(), authController.UpdatePassword)
	v1.GET("/profile", authed(), authController.GetProfile)

	v1.GET("/admin/dashboard", authed(models.RoleAdmin), dashboardController.AdminDashboard)
	v1.POST("/admin/users", authed(models.RoleAdmin), userController.CreateUser)
	v1.GET("/admin/users", authed(models.RoleAdmin), userController.GetUsers)
	v1.GET("/admin/users/:id", authed(models.RoleAdmin), userController.GetUserByID)
	v1.GET("/admin/stores", authed(models.RoleAdmin), storeController.GetStores)
	v1.POST("/admin/stores", authed(models.RoleAdmin), storeController.CreateStore)

	v1.GET("/user/stores", authed(models.RoleUser), storeController.GetUserStores)
	v1.GET("/user/stores/suggest", authed(models.RoleUser), storeController.SuggestStores)
	v1.POST("/user/ratings", authed(models.RoleUser), ratingController.SubmitRating)
	v1.PATCH("/user/ratings/:storeId", authed(models.RoleUser), ratingController.ModifyRating)

	v1.GET("/owner/dashboard", authed(models.RoleOwner), dashboardController.OwnerDashboard)
}
