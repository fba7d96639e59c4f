package outbox

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/src/model"
)

// Events past maxRetries are marked processed so the worker stops retrying;
// the rows stay in the table for manual inspection.
const maxRetries = 5

type OutboxRepository interface {
	NewEvent(orderID uint, payload string) error
	GetEvent(eventID uuid.UUID) (model.OutboxEvent, error)
	GetUnprocessedEvents() ([]model.OutboxEvent, error)
	MarkEventAsProcessed(eventID uuid.UUID) error
	UpdateRetryValue(eventID uuid.UUID) error
}

type outboxRepository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (or *outboxRepository) NewEvent(orderID uint, payload string) error {
	eventID, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	result := or.db.Create(&model.OutboxEvent{
		EventID: eventID.String(),
		OrderID: orderID,
		Payload: payload,
	})
	return result.Error
}

func (or *outboxRepository) GetEvent(eventID uuid.UUID) (model.OutboxEvent, error) {
	var event model.OutboxEvent
	result := or.db.First(&event, "event_id = ?", eventID.String())
	return event, result.Error
}

func (or *outboxRepository) GetUnprocessedEvents() ([]model.OutboxEvent, error) {
	var events []model.OutboxEvent
	result := or.db.Where("processed = ?", false).Order("id ASC").Find(&events)
	return events, result.Error
}

func (or *outboxRepository) MarkEventAsProcessed(eventID uuid.UUID) error {
	return or.db.Model(&model.OutboxEvent{}).
		Where("event_id = ?", eventID.String()).
		Update("processed", true).Error
}

func (or *outboxRepository) UpdateRetryValue(eventID uuid.UUID) error {
	event, err := or.GetEvent(eventID)
	if err != nil {
		return err
	}

	err = or.db.Model(&model.OutboxEvent{}).
		Where("event_id = ?", eventID.String()).
		Update("retry", event.Retry+1).Error
	if err != nil {
		return err
	}

	if event.Retry+1 >= maxRetries {
		// exhausted; park the event for manual inspection
		return or.MarkEventAsProcessed(eventID)
	}
	return nil
}
