package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

var ErrModuleNotFound = errors.New("module not found")

// UserGrant is one module's capabilities for a user, presented
// left-join style: callers always see every module, with all-false
// defaults where no grant row exists yet.
type UserGrant struct {
	ModuleID  uint   `json:"module_id"`
	Key       string `json:"key"`
	Name      string `json:"name"`
	CanView   bool   `json:"can_view"`
	CanCreate bool   `json:"can_create"`
	CanUpdate bool   `json:"can_update"`
	CanDelete bool   `json:"can_delete"`
}

// GrantInput is one entry of a batch upsert.
type GrantInput struct {
	ModuleID  uint
	CanView   bool
	CanCreate bool
	CanUpdate bool
	CanDelete bool
}

// ListModules returns the static module catalogue.
func ListModules() ([]models.Module, error) {
	var modules []models.Module
	if err := database.DB.Order("id").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

// HasPermission is the gate predicate: looks up the grant row for
// (user, module key) and maps the action onto its capability column.
// A missing row is an ordinary deny, not an error.
func HasPermission(userID uint, moduleKey string, action models.Action) (bool, error) {
	var module models.Module
	if err := database.DB.Where("key = ?", moduleKey).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown key means the module table was never seeded for
			// this route; nothing can have been granted against it.
			return false, nil
		}
		return false, err
	}

	var perm models.Permission
	err := database.DB.Where("user_id = ? AND module_id = ?", userID, module.ID).First(&perm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return perm.Allows(action), nil
}

// GetUserGrants returns one entry per existing module for the user.
func GetUserGrants(userID uint) ([]UserGrant, error) {
	modules, err := ListModules()
	if err != nil {
		return nil, err
	}

	var perms []models.Permission
	if err := database.DB.Where("user_id = ?", userID).Find(&perms).Error; err != nil {
		return nil, err
	}

	byModule := make(map[uint]models.Permission, len(perms))
	for _, p := range perms {
		byModule[p.ModuleID] = p
	}

	grants := make([]UserGrant, 0, len(modules))
	for _, m := range modules {
		g := UserGrant{ModuleID: m.ID, Key: m.Key, Name: m.Name}
		if p, ok := byModule[m.ID]; ok {
			g.CanView = p.CanView
			g.CanCreate = p.CanCreate
			g.CanUpdate = p.CanUpdate
			g.CanDelete = p.CanDelete
		}
		grants = append(grants, g)
	}
	return grants, nil
}

// UpsertGrants applies a batch of grants for one user, one upsert per
// module. Modules absent from the batch are left untouched, and a
// fully revoked grant keeps its row so future re-grants stay
// update-in-place.
func UpsertGrants(userID uint, inputs []GrantInput) ([]UserGrant, error) {
	if _, err := FindUserByID(userID); err != nil {
		return nil, err
	}

	for _, in := range inputs {
		var module models.Module
		if err := database.DB.First(&module, in.ModuleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrModuleNotFound
			}
			return nil, err
		}

		perm := models.Permission{
			UserID:    userID,
			ModuleID:  in.ModuleID,
			CanView:   in.CanView,
			CanCreate: in.CanCreate,
			CanUpdate: in.CanUpdate,
			CanDelete: in.CanDelete,
		}

		err := database.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"can_view", "can_create", "can_update", "can_delete", "updated_at",
			}),
		}).Create(&perm).Error
		if err != nil {
			return nil, err
		}
	}

	return GetUserGrants(userID)
}
