package outbox

import (
	"github.com/google/uuid"
	"github.com/robfig/cron"

	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
	"github.com/edmundcwm/nerbcrmwp/pkg/rabbitmq"
	"github.com/edmundcwm/nerbcrmwp/pkg/utilities"
	"github.com/edmundcwm/nerbcrmwp/src/model"
)

const outboxWorkerName = "OrderOutboxWorker"

const OrderEventsPublisherAlias rabbitmq.PublisherAlias = "OrderEventsPublisher"

// OrderEventMessage is the wire form of a drained outbox row.
type OrderEventMessage struct {
	EventID string `json:"event_id"`
	OrderID uint   `json:"order_id"`
	Payload string `json:"payload"`
}

func (m OrderEventMessage) Serialize() ([]byte, error) {
	return utilities.Serialize[OrderEventMessage](m)
}

// OutboxWorker drains unprocessed order events to the broker on a schedule.
type OutboxWorker struct {
	publisher  rabbitmq.IRabbitmqPublisher
	repository OutboxRepository
	cron       *cron.Cron
}

func NewOutboxWorker(repository OutboxRepository) rabbitmq.WorkerService {
	return &OutboxWorker{
		publisher:  rabbitmq.GetPublisher(OrderEventsPublisherAlias),
		repository: repository,
		cron:       cron.New(),
	}
}

func (ow *OutboxWorker) GetServiceName() string {
	return outboxWorkerName
}

func (ow *OutboxWorker) StartService() {
	err := ow.cron.AddFunc("@every 1m", func() { ow.processOutboxEvents() })
	if err != nil {
		logger.Default().Errorf(err, "Could not add function to %s", outboxWorkerName)
	}

	ow.cron.Start()
}

func (ow *OutboxWorker) processOutboxEvents() {
	outboxLogger := logger.Default()

	events, err := ow.repository.GetUnprocessedEvents()
	if err != nil {
		outboxLogger.Error(err, "Could not read outbox events from database")
		return
	}

	for _, event := range events {
		ow.processEvent(event)
	}
}

func (ow *OutboxWorker) processEvent(event model.OutboxEvent) {
	outboxLogger := logger.Default()

	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		outboxLogger.Errorf(err, "Outbox event %s carries a malformed id", event.EventID)
		return
	}

	message := OrderEventMessage{
		EventID: event.EventID,
		OrderID: event.OrderID,
		Payload: event.Payload,
	}
	if err := ow.publisher.Publish(message); err != nil {
		outboxLogger.Error(err, "Could not publish order event")
		if err := ow.repository.UpdateRetryValue(eventID); err != nil {
			outboxLogger.Error(err, "Could not update outbox retry counter")
		}
		return
	}

	if err := ow.repository.MarkEventAsProcessed(eventID); err != nil {
		outboxLogger.Error(err, "Could not mark outbox event as processed")
	}
}
