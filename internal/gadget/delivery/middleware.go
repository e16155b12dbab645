package delivery

import (
	authdelivery "imf-gadget-backend/internal/auth/delivery"
	gadgetdomain "imf-gadget-backend/internal/gadget/domain"
	"imf-gadget-backend/internal/gadget/usecase"
	"imf-gadget-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const gadgetContextKey = "gadget"

// GadgetGuard runs after AuthMiddleware on every gadget-mutating route. It
// validates ownership and lifecycle state and attaches the vetted gadget for
// the handler.
func GadgetGuard(gadgetUsecase usecase.GadgetUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		gadgetID := c.Param("gadgetId")
		if gadgetID == "" {
			response.AbortWith(c, response.BadRequest("Provide gadget ID"))
			return
		}

		user := authdelivery.CurrentUser(c)
		if user == nil {
			response.AbortWith(c, response.Unauthorized("Please log in first!"))
			return
		}

		gadget, err := gadgetUsecase.ValidateAccess(user.ID, gadgetID)
		if err != nil {
			response.AbortWith(c, err)
			return
		}

		c.Set(gadgetContextKey, gadget)
		c.Next()
	}
}

// GadgetFromContext returns the gadget attached by GadgetGuard.
func GadgetFromContext(c *gin.Context) *gadgetdomain.Gadget {
	if v, ok := c.Get(gadgetContextKey); ok {
		if gadget, ok := v.(*gadgetdomain.Gadget); ok {
			return gadget
		}
	}
	return nil
}
