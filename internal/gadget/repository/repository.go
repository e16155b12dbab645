package repository

import (
	"time"

	gadgetdomain "imf-gadget-backend/internal/gadget/domain"
)

// GadgetRepository persists gadgets. Point lookups that miss return
// (nil, nil). Every user-supplied value is bound as a parameter; only the
// clause skeleton varies with which filters are present.
type GadgetRepository interface {
	// Create assigns id, codename and the Available status.
	Create(gadget *gadgetdomain.Gadget) error
	// FindByIDForOwner is the ownership-scoped point lookup: a gadget owned
	// by someone else is indistinguishable from a missing one.
	FindByIDForOwner(gadgetID, ownerID string) (*gadgetdomain.Gadget, error)
	// FindByOwner lists an owner's gadgets, optionally narrowed by exact
	// status and/or case-insensitive name substring (AND-combined).
	FindByOwner(ownerID string, status gadgetdomain.Status, name string) ([]gadgetdomain.Gadget, error)
	// Update applies only the supplied columns plus updated_at, returning
	// the post-write record or (nil, nil) if the id is unknown.
	Update(gadgetID string, fields map[string]interface{}) (*gadgetdomain.Gadget, error)
	// ChangeStatus sets the status; when updateDecommission is true and the
	// target is Decommissioned it also stamps decommission_at. No other
	// path writes decommission_at.
	ChangeStatus(gadgetID string, status gadgetdomain.Status, updateDecommission bool) (*gadgetdomain.Gadget, error)
	// MarkOverdueDecommissioned flips gadgets whose decommission_at has
	// passed but whose status lags behind. Used by the sweeper.
	MarkOverdueDecommissioned(now time.Time) (int64, error)
}
