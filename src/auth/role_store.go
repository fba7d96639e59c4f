package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/src/model"
)

// RoleStore is the persistent role registry of the host. All operations are
// idempotent: creating an existing role, deleting an absent one or granting
// an already-held capability are no-ops.
type RoleStore interface {
	Get(name string) (*model.Role, error)
	Create(name, displayName string) error
	Delete(name string) error
	GrantCapability(roleName, capability string) error
	RevokeCapability(roleName, capability string) error
}

// ErrRoleNotFound is returned by Get when no role row exists.
var ErrRoleNotFound = errors.New("role not found")

type gormRoleStore struct {
	db *gorm.DB
}

func NewRoleStore(db *gorm.DB) RoleStore {
	return &gormRoleStore{db: db}
}

func (s *gormRoleStore) Get(name string) (*model.Role, error) {
	var role model.Role
	err := s.db.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *gormRoleStore) Create(name, displayName string) error {
	role := model.Role{Name: name, DisplayName: displayName}
	return s.db.Where(model.Role{Name: name}).FirstOrCreate(&role).Error
}

func (s *gormRoleStore) Delete(name string) error {
	return s.db.Where("name = ? AND builtin = ?", name, false).Delete(&model.Role{}).Error
}

func (s *gormRoleStore) GrantCapability(roleName, capability string) error {
	role, err := s.Get(roleName)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return nil
		}
		return err
	}

	if role.HasCapability(capability) {
		return nil
	}

	role.SetCapabilityList(append(role.CapabilityList(), capability))
	return s.db.Model(&model.Role{}).Where("id = ?", role.ID).
		Update("capabilities", role.Capabilities).Error
}

func (s *gormRoleStore) RevokeCapability(roleName, capability string) error {
	role, err := s.Get(roleName)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return nil
		}
		return err
	}

	if !role.HasCapability(capability) {
		return nil
	}

	kept := make([]string, 0, len(role.CapabilityList()))
	for _, c := range role.CapabilityList() {
		if c != capability {
			kept = append(kept, c)
		}
	}

	role.SetCapabilityList(kept)
	return s.db.Model(&model.Role{}).Where("id = ?", role.ID).
		Update("capabilities", role.Capabilities).Error
}
