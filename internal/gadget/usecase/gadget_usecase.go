package usecase

import (
	"errors"
	"fmt"
	"time"

	gadgetdomain "imf-gadget-backend/internal/gadget/domain"
	gadgetdto "imf-gadget-backend/internal/gadget/dto"
	"imf-gadget-backend/internal/gadget/repository"
	"imf-gadget-backend/pkg/response"

	"gorm.io/gorm"
)

// gadgetUsecase implements GadgetUsecase
type gadgetUsecase struct {
	gadgetRepo repository.GadgetRepository
	now        func() time.Time
}

// NewGadgetUsecase creates a new instance of gadgetUsecase
func NewGadgetUsecase(gadgetRepo repository.GadgetRepository) GadgetUsecase {
	return &gadgetUsecase{
		gadgetRepo: gadgetRepo,
		now:        time.Now,
	}
}

func (u *gadgetUsecase) Create(ownerID string, req *gadgetdto.CreateGadgetRequest) (*gadgetdomain.Gadget, error) {
	gadget := &gadgetdomain.Gadget{
		Name:      req.Name,
		CreatedBy: ownerID,
	}

	if err := u.gadgetRepo.Create(gadget); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("A gadget with this name already exists!")
		}
		return nil, err
	}

	return gadget, nil
}

func (u *gadgetUsecase) GetByID(ownerID, gadgetID string) (*gadgetdomain.Gadget, error) {
	gadget, err := u.gadgetRepo.FindByIDForOwner(gadgetID, ownerID)
	if err != nil {
		return nil, err
	}
	if gadget == nil {
		return nil, response.NotFound("No gadget found!")
	}
	return gadget, nil
}

func (u *gadgetUsecase) List(ownerID, statusFilter, nameFilter string) ([]gadgetdomain.Gadget, error) {
	var status gadgetdomain.Status
	if statusFilter != "" {
		parsed, ok := gadgetdomain.ParseStatus(statusFilter)
		if !ok {
			return nil, response.BadRequest("Invalid Status, please enter a valid status!")
		}
		status = parsed
	}

	return u.gadgetRepo.FindByOwner(ownerID, status, nameFilter)
}

// ValidateAccess short-circuits on the first failed check, in this order:
// missing, foreign-owned, decommissioned, overdue-decommission (self-heal),
// destroyed.
func (u *gadgetUsecase) ValidateAccess(ownerID, gadgetID string) (*gadgetdomain.Gadget, error) {
	gadget, err := u.gadgetRepo.FindByIDForOwner(gadgetID, ownerID)
	if err != nil {
		return nil, err
	}
	if gadget == nil {
		return nil, response.NotFound("Gadget doesn't exist!")
	}

	// The lookup above is already ownership-scoped; this guards against
	// that ever changing.
	if gadget.CreatedBy != ownerID {
		return nil, response.Forbidden("You are not authorized to change the status!")
	}

	if gadget.Status == gadgetdomain.StatusDecommissioned {
		return nil, response.BadRequest(fmt.Sprintf("This Gadget Decommissioned At : %s", gadget.DecommissionAt))
	}

	// A gadget can be past its decommission time while the background
	// reconciliation lags. Heal the record, but still reject this request.
	if gadget.DecommissionAt != nil && gadget.DecommissionAt.Before(u.now()) {
		if _, err := u.gadgetRepo.Update(gadget.ID, map[string]interface{}{
			"status": gadgetdomain.StatusDecommissioned,
		}); err != nil {
			return nil, err
		}
		return nil, response.BadRequest("Gadget is Decommissioned!")
	}

	if gadget.Status == gadgetdomain.StatusDestroyed {
		return nil, response.BadRequest("This Gadget is Destroyed")
	}

	return gadget, nil
}

func (u *gadgetUsecase) Update(gadget *gadgetdomain.Gadget, req *gadgetdto.UpdateGadgetRequest) (*gadgetdomain.Gadget, error) {
	fields := map[string]interface{}{}

	if req.Name != "" {
		fields["name"] = req.Name
	}

	if req.Action != "" {
		status, ok := gadgetdomain.ParseAction(req.Action)
		if !ok {
			return nil, response.BadRequest("Wrong Action! Only 'Deploy' & 'Withdraw' is accepted.")
		}
		fields["status"] = status
	}

	if len(fields) == 0 {
		return nil, response.BadRequest("No data")
	}

	updated, err := u.gadgetRepo.Update(gadget.ID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("A gadget with this name already exists!")
		}
		return nil, err
	}
	if updated == nil {
		return nil, response.NotFound("Gadget doesn't exist!")
	}

	return updated, nil
}

func (u *gadgetUsecase) SelfDestruct(gadget *gadgetdomain.Gadget) (*gadgetdomain.Gadget, error) {
	destroyed, err := u.gadgetRepo.ChangeStatus(gadget.ID, gadgetdomain.StatusDestroyed, false)
	if err != nil {
		return nil, err
	}
	if destroyed == nil {
		return nil, response.NotFound("Gadget doesn't exist!")
	}
	return destroyed, nil
}

func (u *gadgetUsecase) Decommission(gadget *gadgetdomain.Gadget) (*gadgetdomain.Gadget, error) {
	decommissioned, err := u.gadgetRepo.ChangeStatus(gadget.ID, gadgetdomain.StatusDecommissioned, true)
	if err != nil {
		return nil, err
	}
	if decommissioned == nil {
		return nil, response.NotFound("Gadget doesn't exist!")
	}
	return decommissioned, nil
}
