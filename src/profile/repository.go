package profile

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/src/auth"
	"github.com/edmundcwm/nerbcrmwp/src/model"
)

// Company-profile attributes live in user meta under the crm_user_ prefix.
const (
	metaKeyShareholders = "crm_user_shareholders"
	metaKeyCompanyName  = "crm_user_company_name"
	metaKeyDesignation  = "crm_user_designation"
)

type ProfileRepository interface {
	ListCustomers() ([]model.User, error)
	GetUser(userID uint) (*model.User, error)
	GetUserMeta(userID uint, key string, out interface{}) (bool, error)
	SetUserMeta(userID uint, key string, value interface{}) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// ListCustomers returns every user holding the portal_customer role. Roles
// are stored as a JSON array of names, so containment is a pattern match on
// the quoted name.
func (r *profileRepository) ListCustomers() ([]model.User, error) {
	var users []model.User
	result := r.db.
		Where("roles LIKE ?", `%"`+auth.RolePortalCustomer+`"%`).
		Order("id ASC").
		Find(&users)
	return users, result.Error
}

func (r *profileRepository) GetUser(userID uint) (*model.User, error) {
	var user model.User
	result := r.db.First(&user, userID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *profileRepository) GetUserMeta(userID uint, key string, out interface{}) (bool, error) {
	var meta model.UserMeta
	result := r.db.Where("user_id = ? AND meta_key = ?", userID, key).First(&meta)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if result.Error != nil {
		return false, result.Error
	}

	if err := json.Unmarshal([]byte(meta.MetaValue), out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *profileRepository) SetUserMeta(userID uint, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	meta := model.UserMeta{UserID: userID, MetaKey: key}
	result := r.db.
		Where("user_id = ? AND meta_key = ?", userID, key).
		Assign(model.UserMeta{MetaValue: string(encoded)}).
		FirstOrCreate(&meta)
	return result.Error
}
