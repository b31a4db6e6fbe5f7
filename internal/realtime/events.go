package realtime

import (
	"encoding/json"

	"github.com/jobportel/job-board-api/internal/core/domain"
)

const eventNewJob = "NEW_JOB"

// connectedMessage is pushed to a subscriber right after it registers, and to
// that subscriber only.
type connectedMessage struct {
	Message string `json:"message"`
}

// jobEvent is the fan-out payload for a newly created posting.
type jobEvent struct {
	Event string      `json:"event"`
	Job   *domain.Job `json:"job"`
}

func connectedPayload() []byte {
	b, _ := json.Marshal(connectedMessage{Message: "Connected to job updates"})
	return b
}

func newJobPayload(job *domain.Job) ([]byte, error) {
	return json.Marshal(jobEvent{Event: eventNewJob, Job: job})
}
