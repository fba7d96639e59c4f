package audit

import (
	"github.com/edmundcwm/nerbcrmwp/pkg/utilities"
	"github.com/edmundcwm/nerbcrmwp/pkg/utilities/timeutil"
)

// ActivityMessage is the wire form of an audit record published to the
// activity queue and persisted by the sink worker.
type ActivityMessage struct {
	Actor     string           `json:"actor"`
	Action    string           `json:"action"`
	Resource  string           `json:"resource"`
	Timestamp timeutil.TimeUTC `json:"timestamp"`
}

func (am ActivityMessage) Serialize() ([]byte, error) {
	return utilities.Serialize[ActivityMessage](am)
}
