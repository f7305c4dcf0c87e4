package routes

import (
	"vaultpay/controllers"
	"vaultpay/middleware"
	"vaultpay/models"
	"vaultpay/services"
	"vaultpay/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires every endpoint. Admin routes sit behind the admin role,
// user routes behind the user role; /notification and /partners are public.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, m *melody.Melody) {
	userService := services.NewUserService(services.UserServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})

	authController := controllers.NewAuthController(db, userService)
	userController := controllers.NewUserController(db, redisClient)
	depositController := controllers.NewDepositController(db, m)
	withdrawalController := controllers.NewWithdrawalController(db, m)

	// Public
	router.GET("/notification", controllers.GetNotification)
	router.GET("/partners", controllers.GetPartners)
	router.GET("/testimonials", controllers.GetTestimonials)
	router.GET("/social-media", controllers.GetSocialMediaLinks)

	admin := router.Group("/admin")
	{
		admin.POST("/login", authController.AdminLogin)

		protected := admin.Group("", middleware.RequireAuth(models.RoleAdmin))
		{
			protected.GET("/users", userController.GetUsers)
			protected.POST("/users", userController.CreateUser)
			protected.GET("/users/:id", userController.GetUserByID)
			protected.PUT("/users/:id", userController.UpdateUser)
			protected.DELETE("/users/:id", userController.DeleteUser)
			protected.PUT("/users/:id/status", userController.ChangeUserStatus)
			protected.PUT("/users/:id/balances", userController.UpdateUserBalances)

			protected.GET("/deposit-requests", depositController.GetDepositRequests)
			protected.GET("/deposit-requests/stats", depositController.GetDepositStats)
			protected.GET("/deposit-requests/:id", depositController.GetDepositRequestByID)
			protected.PUT("/deposit-requests/:id", depositController.ProcessDepositRequest)

			protected.GET("/withdrawal-requests", withdrawalController.GetWithdrawalRequests)
			protected.GET("/withdrawal-requests/stats", withdrawalController.GetWithdrawalStats)
			protected.GET("/withdrawal-requests/:id", withdrawalController.GetWithdrawalRequestByID)
			protected.PUT("/withdrawal-requests/:id", withdrawalController.ProcessWithdrawalRequest)

			protected.GET("/payment-methods", controllers.GetPaymentMethods)
			protected.POST("/payment-methods", controllers.CreatePaymentMethod)
			protected.GET("/payment-methods/:id", controllers.GetPaymentMethodByID)
			protected.PUT("/payment-methods/:id", controllers.UpdatePaymentMethod)
			protected.DELETE("/payment-methods/:id", controllers.DeletePaymentMethod)
			protected.PUT("/payment-methods/:id/status", controllers.ChangePaymentMethodStatus)

			protected.GET("/testimonials", controllers.GetTestimonials)
			protected.POST("/testimonials", controllers.CreateTestimonial)
			protected.PUT("/testimonials/:id", controllers.UpdateTestimonial)
			protected.DELETE("/testimonials/:id", controllers.DeleteTestimonial)
			protected.PUT("/testimonials/:id/status", controllers.ChangeTestimonialStatus)

			protected.GET("/social-media", controllers.GetSocialMediaLinks)
			protected.POST("/social-media", controllers.CreateSocialMediaLink)
			protected.PUT("/social-media/:id", controllers.UpdateSocialMediaLink)
			protected.DELETE("/social-media/:id", controllers.DeleteSocialMediaLink)
			protected.PUT("/social-media/:id/status", controllers.ChangeSocialMediaLinkStatus)
			protected.PUT("/social-media/:id/priority", controllers.ChangeSocialMediaLinkPriority)

			protected.GET("/bonus-settings", controllers.GetBonusSettings)
			protected.PUT("/bonus-settings", controllers.UpdateBonusSettings)

			protected.GET("/referrals", controllers.GetReferralSettings)
			protected.PUT("/referrals/settings", controllers.UpdateReferralSettings)

			protected.GET("/notifications", controllers.GetAllNotifications)
			protected.POST("/notifications", controllers.CreateNotification)
			protected.PUT("/notifications/:id", controllers.UpdateNotification)
			protected.DELETE("/notifications/:id", controllers.DeleteNotification)

			protected.GET("/partners", controllers.GetAllPartners)
			protected.POST("/partners", controllers.CreatePartner)
			protected.PUT("/partners/:id", controllers.UpdatePartner)
			protected.DELETE("/partners/:id", controllers.DeletePartner)
		}
	}

	user := router.Group("/user")
	{
		user.POST("/login", authController.UserLogin)
		user.POST("/register", authController.Register)
		user.POST("/auth/google", authController.AuthGoogle)

		protected := user.Group("", middleware.RequireAuth(models.RoleUser))
		{
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/profile", controllers.UpdateProfile)
			protected.POST("/update-profile-photo", controllers.UpdateProfilePhoto)

			protected.GET("/referral-code", controllers.GetReferralCode)
			protected.GET("/referral-history", controllers.GetReferralHistory)

			protected.GET("/deposit-requests", depositController.GetMyDepositRequests)
			protected.POST("/deposit-requests", depositController.CreateDepositRequest)
			protected.GET("/withdrawal-requests", withdrawalController.GetMyWithdrawalRequests)
			protected.POST("/withdrawal-requests", withdrawalController.CreateWithdrawalRequest)

			protected.GET("/bet-history", controllers.GetBetHistory)
			protected.GET("/payment-methods", controllers.GetPaymentMethods)
		}
	}
}
