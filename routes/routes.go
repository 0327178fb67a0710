package routes

import (
	"github.com/Sorin-PSP/EatWise-sub000/controllers"
	"github.com/Sorin-PSP/EatWise-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Foods     *controllers.FoodController
	Logs      *controllers.LogController
	Profile   *controllers.ProfileController
	Water     *controllers.WaterController
	Analytics *controllers.AnalyticsController
	Admin     *controllers.AdminController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers, jwtSecret []byte) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/forgot", ctrl.Auth.ForgotPassword)
		auth.POST("/reset", ctrl.Auth.ResetPassword)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		authed.GET("/auth/session", ctrl.Auth.Session)
		authed.POST("/auth/logout", ctrl.Auth.Logout)

		foods := authed.Group("/foods")
		{
			foods.GET("", ctrl.Foods.List)
			foods.POST("", ctrl.Foods.Create)
			foods.PUT("/:id", ctrl.Foods.Update)
			foods.DELETE("/:id", ctrl.Foods.Delete)
			foods.POST("/:id/image", ctrl.Foods.UploadImage)
		}

		log := authed.Group("/log")
		{
			log.GET("", ctrl.Logs.List)
			log.POST("", ctrl.Logs.Add)
			log.DELETE("/:id", ctrl.Logs.Delete)
			log.GET("/totals", ctrl.Logs.Totals)
		}

		authed.GET("/profile", ctrl.Profile.Get)
		authed.PUT("/profile", ctrl.Profile.Update)
		authed.GET("/profile/suggest-goals", ctrl.Profile.SuggestGoals)

		authed.GET("/water", ctrl.Water.Get)
		authed.PUT("/water", ctrl.Water.Set)

		authed.GET("/analytics/progress", ctrl.Analytics.Progress)
		authed.GET("/analytics/summary", ctrl.Analytics.Summary)

		authed.GET("/realtime/ws", ctrl.Realtime.ChangesWS)

		admin := authed.Group("/admin")
		admin.Use(middlewares.RequireAdmin())
		{
			admin.GET("/users", ctrl.Admin.ListUsers)
			admin.PATCH("/users/:id", ctrl.Admin.SetUserDisabled)
			admin.GET("/foods/pending", ctrl.Admin.PendingFoods)
			admin.POST("/foods/:id/approve", ctrl.Admin.ApproveFood)
			admin.GET("/payments", ctrl.Admin.ListPayments)
			admin.POST("/payments", ctrl.Admin.RecordPayment)
			admin.PATCH("/payments/:id", ctrl.Admin.UpdatePaymentStatus)
		}
	}

	return r
}
