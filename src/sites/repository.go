package sites

import (
	"errors"

	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/src/model"
)

type SiteRepository interface {
	ListSites() ([]model.LinkedSite, error)
	GetSite(siteID uint) (*model.LinkedSite, error)
	UpdateURL(siteID uint, url string) error
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) ListSites() ([]model.LinkedSite, error) {
	var sites []model.LinkedSite
	result := r.db.Order("id ASC").Find(&sites)
	return sites, result.Error
}

func (r *siteRepository) GetSite(siteID uint) (*model.LinkedSite, error) {
	var site model.LinkedSite
	result := r.db.First(&site, siteID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &site, nil
}

func (r *siteRepository) UpdateURL(siteID uint, url string) error {
	result := r.db.Model(&model.LinkedSite{}).Where("id = ?", siteID).Update("url", url)
	return result.Error
}
