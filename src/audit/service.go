package audit

import (
	"time"

	"github.com/edmundcwm/nerbcrmwp/src/model"
)

type ActivityService interface {
	ProcessMessage(message ActivityMessage) error
	GetEntries(limit, offset int) ([]model.ActivityEntry, error)
	GetEntriesByActor(actor string, limit, offset int) ([]model.ActivityEntry, error)
}

type activityService struct {
	repository ActivityRepository
}

func NewActivityService(repository ActivityRepository) ActivityService {
	return &activityService{repository: repository}
}

func (s *activityService) ProcessMessage(message ActivityMessage) error {
	entry := model.ActivityEntry{
		Actor:     message.Actor,
		Action:    message.Action,
		Resource:  message.Resource,
		Timestamp: time.Unix(message.Timestamp.T, 0).UTC(),
	}

	return s.repository.CreateEntry(entry)
}

func (s *activityService) GetEntries(limit, offset int) ([]model.ActivityEntry, error) {
	return s.repository.GetEntries(limit, offset)
}

func (s *activityService) GetEntriesByActor(actor string, limit, offset int) ([]model.ActivityEntry, error) {
	return s.repository.GetEntriesByActor(actor, limit, offset)
}
