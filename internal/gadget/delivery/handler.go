package delivery

import (
	"fmt"

	authdelivery "imf-gadget-backend/internal/auth/delivery"
	gadgetdto "imf-gadget-backend/internal/gadget/dto"
	"imf-gadget-backend/internal/gadget/usecase"
	"imf-gadget-backend/pkg/codename"
	"imf-gadget-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type GadgetHandler struct {
	gadgetUsecase usecase.GadgetUsecase
}

func NewGadgetHandler(gadgetUsecase usecase.GadgetUsecase) *GadgetHandler {
	return &GadgetHandler{
		gadgetUsecase: gadgetUsecase,
	}
}

func (h *GadgetHandler) Create(c *gin.Context) {
	var req gadgetdto.CreateGadgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BadRequest("Provide Gadget NAME"))
		return
	}

	gadget, err := h.gadgetUsecase.Create(authdelivery.CurrentUser(c).ID, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, "Created!", gadget)
}

// Get serves three mutually exclusive modes: point lookup by gadgetId, full
// list, or list filtered by status and/or name. Combining gadgetId with
// query filters is a caller error rejected before the store is touched.
func (h *GadgetHandler) Get(c *gin.Context) {
	gadgetID := c.Param("gadgetId")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")

	if gadgetID != "" && (nameFilter != "" || statusFilter != "") {
		response.Fail(c, response.BadRequest("Please either use Gadget ID or Query Params, both are not allowed!"))
		return
	}

	user := authdelivery.CurrentUser(c)

	if gadgetID != "" {
		gadget, err := h.gadgetUsecase.GetByID(user.ID, gadgetID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Gadget details fetched!", gadget)
		return
	}

	gadgets, err := h.gadgetUsecase.List(user.ID, statusFilter, nameFilter)
	if err != nil {
		response.Fail(c, err)
		return
	}

	withOdds := make([]gadgetdto.GadgetWithOdds, 0, len(gadgets))
	for _, g := range gadgets {
		withOdds = append(withOdds, gadgetdto.GadgetWithOdds{
			Gadget:                    g,
			MissionSuccessProbability: codename.SuccessProbability(),
		})
	}

	message := "All Gadgets fetched!"
	if nameFilter != "" || statusFilter != "" {
		message = "Fetched gadgets"
	}
	response.OK(c, message, withOdds)
}

func (h *GadgetHandler) SelfDestruct(c *gin.Context) {
	gadget, err := h.gadgetUsecase.SelfDestruct(GadgetFromContext(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("%s Destroyed!", gadget.Name), gadget)
}

func (h *GadgetHandler) Update(c *gin.Context) {
	var req gadgetdto.UpdateGadgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BadRequest("No data"))
		return
	}

	updated, err := h.gadgetUsecase.Update(GadgetFromContext(c), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Gadget Updated Successfully!", updated)
}

func (h *GadgetHandler) Delete(c *gin.Context) {
	decommissioned, err := h.gadgetUsecase.Decommission(GadgetFromContext(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	payload := gadgetdto.DecommissionedGadget{
		Gadget:           *decommissioned,
		ConfirmationCode: codename.ConfirmationCode(),
	}
	response.OK(c, fmt.Sprintf("%s %s Successfully! You no longer can use it!", decommissioned.Name, decommissioned.Status), payload)
}
