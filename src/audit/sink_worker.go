package audit

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
	"github.com/edmundcwm/nerbcrmwp/pkg/rabbitmq"
)

const ActivityConsumerAlias rabbitmq.ConsumerAlias = "AuditConsumer"

// ActivitySinkWorker drains the audit queue and persists entries.
type ActivitySinkWorker struct {
	service ActivityService
}

func NewActivitySinkWorker(service ActivityService) *ActivitySinkWorker {
	return &ActivitySinkWorker{service: service}
}

func (w *ActivitySinkWorker) GetServiceName() string {
	return "ActivitySinkWorker"
}

func (w *ActivitySinkWorker) StartService() {
	consumer := rabbitmq.GetConsumer(ActivityConsumerAlias)
	consumer.StartConsuming(w.handleDelivery)
}

func (w *ActivitySinkWorker) handleDelivery(delivery amqp.Delivery) {
	var message ActivityMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		logger.Default().Errorf(err, "Failed to decode activity message")
		return
	}

	if err := w.service.ProcessMessage(message); err != nil {
		logger.Default().Errorf(err, "Failed to persist activity entry")
	}
}
