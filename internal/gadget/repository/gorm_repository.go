package repository

import (
	"errors"
	"time"

	gadgetdomain "imf-gadget-backend/internal/gadget/domain"
	"imf-gadget-backend/pkg/codename"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormGadgetRepository implements GadgetRepository using GORM
type gormGadgetRepository struct {
	db *gorm.DB
}

// NewGormGadgetRepository creates a new GORM-based GadgetRepository
func NewGormGadgetRepository(db *gorm.DB) GadgetRepository {
	return &gormGadgetRepository{db: db}
}

func (r *gormGadgetRepository) Create(gadget *gadgetdomain.Gadget) error {
	gadget.ID = uuid.New().String()
	gadget.Codename = codename.Generate()
	gadget.Status = gadgetdomain.StatusAvailable
	gadget.CreatedAt = time.Now()
	gadget.UpdatedAt = time.Now()
	return r.db.Create(gadget).Error
}

func (r *gormGadgetRepository) FindByIDForOwner(gadgetID, ownerID string) (*gadgetdomain.Gadget, error) {
	var gadget gadgetdomain.Gadget
	err := r.db.Where("id = ? AND created_by = ?", gadgetID, ownerID).First(&gadget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gadget, nil
}

func (r *gormGadgetRepository) FindByOwner(ownerID string, status gadgetdomain.Status, name string) ([]gadgetdomain.Gadget, error) {
	query := r.db.Where("created_by = ?", ownerID)

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	var gadgets []gadgetdomain.Gadget
	if err := query.Find(&gadgets).Error; err != nil {
		return nil, err
	}
	return gadgets, nil
}

func (r *gormGadgetRepository) Update(gadgetID string, fields map[string]interface{}) (*gadgetdomain.Gadget, error) {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&gadgetdomain.Gadget{}).Where("id = ?", gadgetID).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var gadget gadgetdomain.Gadget
	if err := r.db.Where("id = ?", gadgetID).First(&gadget).Error; err != nil {
		return nil, err
	}
	return &gadget, nil
}

func (r *gormGadgetRepository) ChangeStatus(gadgetID string, status gadgetdomain.Status, updateDecommission bool) (*gadgetdomain.Gadget, error) {
	fields := map[string]interface{}{
		"status": status,
	}
	if updateDecommission && status == gadgetdomain.StatusDecommissioned {
		fields["decommission_at"] = time.Now()
	}
	return r.Update(gadgetID, fields)
}

func (r *gormGadgetRepository) MarkOverdueDecommissioned(now time.Time) (int64, error) {
	result := r.db.Model(&gadgetdomain.Gadget{}).
		Where("decommission_at IS NOT NULL AND decommission_at < ? AND status <> ?", now, gadgetdomain.StatusDecommissioned).
		Updates(map[string]interface{}{
			"status":     gadgetdomain.StatusDecommissioned,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
