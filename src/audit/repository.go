package audit

import (
	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/src/model"
)

type ActivityRepository interface {
	CreateEntry(entry model.ActivityEntry) error
	GetEntries(limit, offset int) ([]model.ActivityEntry, error)
	GetEntriesByActor(actor string, limit, offset int) ([]model.ActivityEntry, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateEntry(entry model.ActivityEntry) error {
	result := r.db.Create(&entry)
	return result.Error
}

func (r *activityRepository) GetEntries(limit, offset int) ([]model.ActivityEntry, error) {
	var entries []model.ActivityEntry
	result := r.db.Order("timestamp DESC").Limit(limit).Offset(offset).Find(&entries)
	return entries, result.Error
}

func (r *activityRepository) GetEntriesByActor(actor string, limit, offset int) ([]model.ActivityEntry, error) {
	var entries []model.ActivityEntry
	result := r.db.Where("actor = ?", actor).Order("timestamp DESC").Limit(limit).Offset(offset).Find(&entries)
	return entries, result.Error
}
