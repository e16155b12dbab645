package dto

import gadgetdomain "imf-gadget-backend/internal/gadget/domain"

type CreateGadgetRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateGadgetRequest carries a partial update: a new name and/or an action
// ("Deploy" or "Withdraw"). At least one must be supplied.
type UpdateGadgetRequest struct {
	Name   string `json:"name"`
	Action string `json:"action"`
}

// GadgetWithOdds decorates a gadget with its cosmetic mission success
// probability for read responses.
type GadgetWithOdds struct {
	gadgetdomain.Gadget
	MissionSuccessProbability string `json:"mission_success_probability"`
}

// DecommissionedGadget is the delete response payload: the final record plus
// a generated confirmation code.
type DecommissionedGadget struct {
	gadgetdomain.Gadget
	ConfirmationCode int `json:"confirmation_code"`
}
