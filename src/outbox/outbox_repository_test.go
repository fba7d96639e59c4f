package outbox

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/edmundcwm/nerbcrmwp/src/database"
)

func TestNewEventAndDrainCycle(t *testing.T) {
	db := database.SetupTestDB(t)
	repository := NewRepo(db)

	assert.NoError(t, repository.NewEvent(7, `{"order_id":7}`))
	assert.NoError(t, repository.NewEvent(8, `{"order_id":8}`))

	events, err := repository.GetUnprocessedEvents()
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, uint(7), events[0].OrderID)
	assert.NotEmpty(t, events[0].EventID)

	eventID, err := uuid.Parse(events[0].EventID)
	assert.NoError(t, err)
	assert.NoError(t, repository.MarkEventAsProcessed(eventID))

	remaining, err := repository.GetUnprocessedEvents()
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, uint(8), remaining[0].OrderID)
}

func TestUpdateRetryValueParksExhaustedEvents(t *testing.T) {
	db := database.SetupTestDB(t)
	repository := NewRepo(db)

	assert.NoError(t, repository.NewEvent(9, `{"order_id":9}`))
	events, err := repository.GetUnprocessedEvents()
	assert.NoError(t, err)
	eventID, err := uuid.Parse(events[0].EventID)
	assert.NoError(t, err)

	for i := 0; i < maxRetries-1; i++ {
		assert.NoError(t, repository.UpdateRetryValue(eventID))
		pending, err := repository.GetUnprocessedEvents()
		assert.NoError(t, err)
		assert.Len(t, pending, 1, "event must stay pending until retries are exhausted")
	}

	// The final retry parks the event.
	assert.NoError(t, repository.UpdateRetryValue(eventID))
	pending, err := repository.GetUnprocessedEvents()
	assert.NoError(t, err)
	assert.Empty(t, pending)

	// The row is kept for inspection.
	event, err := repository.GetEvent(eventID)
	assert.NoError(t, err)
	assert.True(t, event.Processed)
	assert.Equal(t, maxRetries, event.Retry)
}
