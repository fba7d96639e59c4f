package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/src/model"
)

// IdentityResolver maps a bearer token to an Identity. Token issuance and
// rotation belong to the external session layer; this only resolves.
type IdentityResolver interface {
	Resolve(token string) (Identity, error)
}

var ErrUnknownToken = errors.New("unknown api token")

type gormIdentityResolver struct {
	db *gorm.DB
}

func NewIdentityResolver(db *gorm.DB) IdentityResolver {
	return &gormIdentityResolver{db: db}
}

func (r *gormIdentityResolver) Resolve(token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnknownToken
	}

	var user model.User
	err := r.db.Where("api_token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, ErrUnknownToken
	}
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		ID:    user.ID,
		Email: user.Email,
		Roles: user.RoleNames(),
	}, nil
}
