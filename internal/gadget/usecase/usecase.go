package usecase

import (
	gadgetdomain "imf-gadget-backend/internal/gadget/domain"
	gadgetdto "imf-gadget-backend/internal/gadget/dto"
)

// GadgetUsecase covers gadget CRUD, the filtered query modes and the access
// guard that gates every mutating action.
type GadgetUsecase interface {
	Create(ownerID string, req *gadgetdto.CreateGadgetRequest) (*gadgetdomain.Gadget, error)
	GetByID(ownerID, gadgetID string) (*gadgetdomain.Gadget, error)
	// List returns the owner's gadgets, optionally filtered by status
	// (validated here) and/or name substring.
	List(ownerID, statusFilter, nameFilter string) ([]gadgetdomain.Gadget, error)
	// ValidateAccess runs the ordered guard checks and returns the gadget a
	// mutating action may proceed against. Ownership is checked before any
	// lifecycle state so an unauthorized caller learns nothing about it.
	ValidateAccess(ownerID, gadgetID string) (*gadgetdomain.Gadget, error)
	// Update renames and/or applies a Deploy/Withdraw action to a gadget
	// that already passed ValidateAccess.
	Update(gadget *gadgetdomain.Gadget, req *gadgetdto.UpdateGadgetRequest) (*gadgetdomain.Gadget, error)
	SelfDestruct(gadget *gadgetdomain.Gadget) (*gadgetdomain.Gadget, error)
	Decommission(gadget *gadgetdomain.Gadget) (*gadgetdomain.Gadget, error)
}
