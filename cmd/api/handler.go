package api

import (
	authUsecase "imf-gadget-backend/internal/auth/usecase"
	gadgetUsecase "imf-gadget-backend/internal/gadget/usecase"
	"imf-gadget-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase   authUsecase.AuthUsecase
	gadgetUsecase gadgetUsecase.GadgetUsecase
	config        *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, gadgetUc gadgetUsecase.GadgetUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:   authUc,
		gadgetUsecase: gadgetUc,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.gadgetUsecase, h.config)

	return r.Run(addr)
}
