package api

import (
	"net/http"

	"imf-gadget-backend/internal/auth/delivery"
	authUsecase "imf-gadget-backend/internal/auth/usecase"
	gadgetDelivery "imf-gadget-backend/internal/gadget/delivery"
	gadgetUsecase "imf-gadget-backend/internal/gadget/usecase"
	"imf-gadget-backend/pkg/config"
	"imf-gadget-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, gadgetUc gadgetUsecase.GadgetUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc, cfg)
	gadgetHandler := gadgetDelivery.NewGadgetHandler(gadgetUc)

	authRequired := delivery.AuthMiddleware(authUc)
	guarded := gadgetDelivery.GadgetGuard(gadgetUc)

	api := r.Group("/api")
	{
		// Health check (no auth required), also the keep-alive target
		api.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"data": gin.H{"message": "Server is running"},
			})
		})

		// User routes
		user := api.Group("/user")
		{
			user.POST("/register", authHandler.Register)
			user.POST("/login", authHandler.Login)
			user.GET("/details/:id", authRequired, authHandler.Details)
			user.POST("/logout/:id", authRequired, authHandler.Logout)
			user.DELETE("/logout/:id", authRequired, authHandler.Logout)
			user.PATCH("/update/:id", authRequired, authHandler.Update)
			user.DELETE("/delete/:id", authRequired, authHandler.Delete)
		}

		// Gadget routes
		gadget := api.Group("/gadget")
		gadget.Use(authRequired)
		{
			gadget.POST("/:id/create", gadgetHandler.Create)
			gadget.GET("/:id/get", gadgetHandler.Get)
			gadget.GET("/:id/get/:gadgetId", gadgetHandler.Get)
			gadget.POST("/:id/self-destruct/:gadgetId", guarded, gadgetHandler.SelfDestruct)
			gadget.PATCH("/:id/update/:gadgetId", guarded, gadgetHandler.Update)
			gadget.DELETE("/:id/delete/:gadgetId", guarded, gadgetHandler.Delete)
		}
	}

	// Uniform envelope for unknown routes
	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, response.NotFound("Route not found!"))
	})
}
