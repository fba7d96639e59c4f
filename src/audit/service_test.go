package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edmundcwm/nerbcrmwp/pkg/utilities/timeutil"
	"github.com/edmundcwm/nerbcrmwp/src/database"
)

func setupActivityService(t *testing.T) ActivityService {
	t.Helper()
	db := database.SetupTestDB(t)
	return NewActivityService(NewActivityRepository(db))
}

func TestProcessMessagePersistsEntry(t *testing.T) {
	service := setupActivityService(t)

	message := ActivityMessage{
		Actor:     "m@portal.test",
		Action:    "order.create",
		Resource:  "order:1",
		Timestamp: timeutil.NowUTC(),
	}
	assert.NoError(t, service.ProcessMessage(message))

	entries, err := service.GetEntries(10, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "m@portal.test", entries[0].Actor)
	assert.Equal(t, "order.create", entries[0].Action)
	assert.Equal(t, "order:1", entries[0].Resource)
}

func TestGetEntriesByActor(t *testing.T) {
	service := setupActivityService(t)

	for _, actor := range []string{"a@portal.test", "b@portal.test", "a@portal.test"} {
		assert.NoError(t, service.ProcessMessage(ActivityMessage{
			Actor:     actor,
			Action:    "profile.update",
			Resource:  "user:1",
			Timestamp: timeutil.NowUTC(),
		}))
	}

	entries, err := service.GetEntriesByActor("a@portal.test", 10, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = service.GetEntriesByActor("nobody@portal.test", 10, 0)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreRecorderWritesThroughService(t *testing.T) {
	service := setupActivityService(t)
	recorder := NewStoreRecorder(service)

	recorder.Record("m@portal.test", "site.update_url", "site:1")

	entries, err := service.GetEntries(10, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "site.update_url", entries[0].Action)
}
