package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	gadgetdomain "imf-gadget-backend/internal/gadget/domain"
	gadgetdto "imf-gadget-backend/internal/gadget/dto"
	"imf-gadget-backend/pkg/codename"
	"imf-gadget-backend/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGadgetRepo struct {
	gadgets map[string]*gadgetdomain.Gadget
	seq     int
}

func newFakeGadgetRepo() *fakeGadgetRepo {
	return &fakeGadgetRepo{gadgets: map[string]*gadgetdomain.Gadget{}}
}

func (r *fakeGadgetRepo) Create(gadget *gadgetdomain.Gadget) error {
	for _, g := range r.gadgets {
		if g.Name == gadget.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	gadget.ID = fmt.Sprintf("gadget-%d", r.seq)
	gadget.Codename = codename.Generate()
	gadget.Status = gadgetdomain.StatusAvailable
	gadget.CreatedAt = time.Now()
	gadget.UpdatedAt = time.Now()
	cp := *gadget
	r.gadgets[gadget.ID] = &cp
	return nil
}

func (r *fakeGadgetRepo) FindByIDForOwner(gadgetID, ownerID string) (*gadgetdomain.Gadget, error) {
	g, ok := r.gadgets[gadgetID]
	if !ok || g.CreatedBy != ownerID {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGadgetRepo) FindByOwner(ownerID string, status gadgetdomain.Status, name string) ([]gadgetdomain.Gadget, error) {
	var out []gadgetdomain.Gadget
	for _, g := range r.gadgets {
		if g.CreatedBy != ownerID {
			continue
		}
		if status != "" && g.Status != status {
			continue
		}
		// Mirror the ILIKE substring semantics of the real repository.
		if name != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(name)) {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (r *fakeGadgetRepo) Update(gadgetID string, fields map[string]interface{}) (*gadgetdomain.Gadget, error) {
	g, ok := r.gadgets[gadgetID]
	if !ok {
		return nil, nil
	}
	if name, ok := fields["name"].(string); ok {
		for _, other := range r.gadgets {
			if other.ID != gadgetID && other.Name == name {
				return nil, gorm.ErrDuplicatedKey
			}
		}
		g.Name = name
	}
	if status, ok := fields["status"].(gadgetdomain.Status); ok {
		g.Status = status
	}
	if at, ok := fields["decommission_at"].(time.Time); ok {
		g.DecommissionAt = &at
	}
	g.UpdatedAt = time.Now()
	cp := *g
	return &cp, nil
}

func (r *fakeGadgetRepo) ChangeStatus(gadgetID string, status gadgetdomain.Status, updateDecommission bool) (*gadgetdomain.Gadget, error) {
	fields := map[string]interface{}{"status": status}
	if updateDecommission && status == gadgetdomain.StatusDecommissioned {
		fields["decommission_at"] = time.Now()
	}
	return r.Update(gadgetID, fields)
}

func (r *fakeGadgetRepo) MarkOverdueDecommissioned(now time.Time) (int64, error) {
	var n int64
	for _, g := range r.gadgets {
		if g.DecommissionAt != nil && g.DecommissionAt.Before(now) && g.Status != gadgetdomain.StatusDecommissioned {
			g.Status = gadgetdomain.StatusDecommissioned
			g.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var appErr *response.Error
	require.True(t, errors.As(err, &appErr), "expected taxonomy error, got %v", err)
	require.Equal(t, status, appErr.Status)
}

func seed(t *testing.T, uc GadgetUsecase, owner, name string) *gadgetdomain.Gadget {
	t.Helper()
	g, err := uc.Create(owner, &gadgetdto.CreateGadgetRequest{Name: name})
	require.NoError(t, err)
	return g
}

func TestCreate_AssignsCodenameAndStatus(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())

	g := seed(t, uc, "bruce", "Grapple Gun")
	assert.Equal(t, gadgetdomain.StatusAvailable, g.Status)
	assert.True(t, codename.Valid(g.Codename), "codename %q not generated", g.Codename)
	assert.Equal(t, "bruce", g.CreatedBy)
}

func TestCreate_DuplicateName(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())

	seed(t, uc, "bruce", "Grapple Gun")
	_, err := uc.Create("alfred", &gadgetdto.CreateGadgetRequest{Name: "Grapple Gun"})
	requireStatus(t, err, http.StatusConflict)
}

func TestGetByID_ScopedToOwner(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())
	g := seed(t, uc, "bruce", "Grapple Gun")

	got, err := uc.GetByID("bruce", g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)

	// Someone else's gadget is indistinguishable from a missing one.
	_, err = uc.GetByID("alfred", g.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestList_InvalidStatusRejected(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())

	_, err := uc.List("bruce", "Broken", "")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestList_StatusFilterNormalized(t *testing.T) {
	t.Parallel()

	repo := newFakeGadgetRepo()
	uc := NewGadgetUsecase(repo)

	g := seed(t, uc, "bruce", "Grapple Gun")
	seed(t, uc, "bruce", "Batarang")
	_, err := repo.ChangeStatus(g.ID, gadgetdomain.StatusDeployed, false)
	require.NoError(t, err)

	deployed, err := uc.List("bruce", "deployed", "")
	require.NoError(t, err)
	require.Len(t, deployed, 1)
	assert.Equal(t, g.ID, deployed[0].ID)
}

func TestList_NameFilter(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())

	grapple := seed(t, uc, "bruce", "Grapple Gun")
	seed(t, uc, "bruce", "Batarang")
	seed(t, uc, "alfred", "Glue Gun")

	// Case-insensitive substring match, scoped to the owner.
	matched, err := uc.List("bruce", "", "gUn")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, grapple.ID, matched[0].ID)

	none, err := uc.List("bruce", "", "launcher")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestList_StatusAndNameFiltersCombine(t *testing.T) {
	t.Parallel()

	repo := newFakeGadgetRepo()
	uc := NewGadgetUsecase(repo)

	grapple := seed(t, uc, "bruce", "Grapple Gun")
	seed(t, uc, "bruce", "Glue Gun")
	seed(t, uc, "bruce", "Batarang")
	_, err := repo.ChangeStatus(grapple.ID, gadgetdomain.StatusDeployed, false)
	require.NoError(t, err)

	// Both filters apply as a conjunction.
	deployed, err := uc.List("bruce", "deployed", "gun")
	require.NoError(t, err)
	require.Len(t, deployed, 1)
	assert.Equal(t, grapple.ID, deployed[0].ID)

	available, err := uc.List("bruce", "available", "gun")
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Glue Gun", available[0].Name)
}

func TestValidateAccess_NotFound(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())

	_, err := uc.ValidateAccess("bruce", "missing")
	requireStatus(t, err, http.StatusNotFound)
}

func TestValidateAccess_ForeignOwnerSeesNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeGadgetRepo()
	uc := NewGadgetUsecase(repo)
	g := seed(t, uc, "bruce", "Grapple Gun")

	// Ownership fails before any lifecycle check, so the caller learns
	// nothing about the gadget's state.
	_, err := uc.ValidateAccess("alfred", g.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestValidateAccess_Decommissioned(t *testing.T) {
	t.Parallel()

	repo := newFakeGadgetRepo()
	uc := NewGadgetUsecase(repo)
	g := seed(t, uc, "bruce", "Grapple Gun")

	_, err := repo.ChangeStatus(g.ID, gadgetdomain.StatusDecommissioned, true)
	require.NoError(t, err)

	_, err = uc.ValidateAccess("bruce", g.ID)
	requireStatus(t, err, http.StatusBadRequest)
	assert.Contains(t, err.Error(), "Decommissioned At")
}

func TestValidateAccess_OverdueDecommissionSelfHeals(t *testing.T) {
	t.Parallel()

	repo := newFakeGadgetRepo()
	uc := NewGadgetUsecase(repo)
	g := seed(t, uc, "bruce", "Grapple Gun")

	past := time.Now().Add(-time.Hour)
	repo.gadgets[g.ID].DecommissionAt = &past

	_, err := uc.ValidateAccess("bruce", g.ID)
	requireStatus(t, err, http.StatusBadRequest)

	// The request is rejected, but the record must be healed.
	healed := repo.gadgets[g.ID]
	assert.Equal(t, gadgetdomain.StatusDecommissioned, healed.Status)
	assert.Equal(t, past, *healed.DecommissionAt, "decommission_at must not be re-stamped")
}

func TestValidateAccess_Destroyed(t *testing.T) {
	t.Parallel()

	repo := newFakeGadgetRepo()
	uc := NewGadgetUsecase(repo)
	g := seed(t, uc, "bruce", "Grapple Gun")

	_, err := repo.ChangeStatus(g.ID, gadgetdomain.StatusDestroyed, false)
	require.NoError(t, err)

	_, err = uc.ValidateAccess("bruce", g.ID)
	requireStatus(t, err, http.StatusBadRequest)
	assert.Contains(t, err.Error(), "Destroyed")
}

func TestValidateAccess_Allows(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())
	g := seed(t, uc, "bruce", "Grapple Gun")

	got, err := uc.ValidateAccess("bruce", g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)
}

func TestUpdate_NoFields(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())
	g := seed(t, uc, "bruce", "Grapple Gun")

	_, err := uc.Update(g, &gadgetdto.UpdateGadgetRequest{})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestUpdate_UnknownAction(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())
	g := seed(t, uc, "bruce", "Grapple Gun")

	_, err := uc.Update(g, &gadgetdto.UpdateGadgetRequest{Action: "Explode"})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestUpdate_DeployAndWithdraw(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())
	g := seed(t, uc, "bruce", "Grapple Gun")

	deployed, err := uc.Update(g, &gadgetdto.UpdateGadgetRequest{Action: "Deploy"})
	require.NoError(t, err)
	assert.Equal(t, gadgetdomain.StatusDeployed, deployed.Status)

	withdrawn, err := uc.Update(g, &gadgetdto.UpdateGadgetRequest{Action: "Withdraw"})
	require.NoError(t, err)
	assert.Equal(t, gadgetdomain.StatusAvailable, withdrawn.Status)
}

func TestUpdate_RenameRefreshesUpdatedAt(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())
	g := seed(t, uc, "bruce", "Grapple Gun")
	before := g.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	renamed, err := uc.Update(g, &gadgetdto.UpdateGadgetRequest{Name: "Grapple Gun Mk II"})
	require.NoError(t, err)
	assert.Equal(t, "Grapple Gun Mk II", renamed.Name)
	assert.True(t, renamed.UpdatedAt.After(before), "updated_at must be refreshed")

	got, err := uc.GetByID("bruce", g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grapple Gun Mk II", got.Name)
}

func TestSelfDestruct(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())
	g := seed(t, uc, "bruce", "Grapple Gun")

	destroyed, err := uc.SelfDestruct(g)
	require.NoError(t, err)
	assert.Equal(t, gadgetdomain.StatusDestroyed, destroyed.Status)
	assert.Nil(t, destroyed.DecommissionAt, "self-destruct must not stamp decommission_at")
}

func TestDecommission_StampsTimestamp(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())
	g := seed(t, uc, "bruce", "Grapple Gun")

	decommissioned, err := uc.Decommission(g)
	require.NoError(t, err)
	assert.Equal(t, gadgetdomain.StatusDecommissioned, decommissioned.Status)
	require.NotNil(t, decommissioned.DecommissionAt)
}

func TestDestroyedThenWithdrawFlow(t *testing.T) {
	t.Parallel()

	uc := NewGadgetUsecase(newFakeGadgetRepo())
	g := seed(t, uc, "bruce", "Grapple Gun")

	deployed, err := uc.Update(g, &gadgetdto.UpdateGadgetRequest{Action: "Deploy"})
	require.NoError(t, err)
	assert.Equal(t, gadgetdomain.StatusDeployed, deployed.Status)

	vetted, err := uc.ValidateAccess("bruce", g.ID)
	require.NoError(t, err)

	destroyed, err := uc.SelfDestruct(vetted)
	require.NoError(t, err)
	assert.Equal(t, gadgetdomain.StatusDestroyed, destroyed.Status)

	// A further Withdraw must be stopped by the guard.
	_, err = uc.ValidateAccess("bruce", g.ID)
	requireStatus(t, err, http.StatusBadRequest)
	assert.Contains(t, err.Error(), "Destroyed")
}
