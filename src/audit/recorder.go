package audit

import (
	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
	"github.com/edmundcwm/nerbcrmwp/pkg/rabbitmq"
	"github.com/edmundcwm/nerbcrmwp/pkg/utilities/timeutil"
)

const ActivityPublisherAlias rabbitmq.PublisherAlias = "AuditPublisher"

// Recorder is the write side of the audit trail used by the resource
// services. Recording is fire-and-forget: a failed audit write never fails
// the request that triggered it.
type Recorder interface {
	Record(actor, action, resource string)
}

// PublisherRecorder ships activity messages through the broker; the sink
// worker persists them.
type PublisherRecorder struct {
	Publisher rabbitmq.IRabbitmqPublisher
}

func NewPublisherRecorder(publisher rabbitmq.IRabbitmqPublisher) *PublisherRecorder {
	return &PublisherRecorder{Publisher: publisher}
}

func (r *PublisherRecorder) Record(actor, action, resource string) {
	message := ActivityMessage{
		Actor:     actor,
		Action:    action,
		Resource:  resource,
		Timestamp: timeutil.NowUTC(),
	}
	if err := r.Publisher.Publish(message); err != nil {
		logger.Default().Errorf(err, "Failed to publish activity message")
	}
}

// StoreRecorder writes entries straight to the database. Used when no broker
// is configured.
type StoreRecorder struct {
	Service ActivityService
}

func NewStoreRecorder(service ActivityService) *StoreRecorder {
	return &StoreRecorder{Service: service}
}

func (r *StoreRecorder) Record(actor, action, resource string) {
	message := ActivityMessage{
		Actor:     actor,
		Action:    action,
		Resource:  resource,
		Timestamp: timeutil.NowUTC(),
	}
	if err := r.Service.ProcessMessage(message); err != nil {
		logger.Default().Errorf(err, "Failed to save activity message")
	}
}

// NopRecorder drops everything. Handy in tests.
type NopRecorder struct{}

func (NopRecorder) Record(actor, action, resource string) {}
