package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants shared between the queue producer and consumer.
const (
	TypeReminderScan = "reminder:scan"
)

// ReminderScanPayload carries the parameters for one follow-up scan pass.
type ReminderScanPayload struct {
	CorrelationID string `json:"correlation_id"`
}

// NewReminderScanTask builds a task that scans for stale applications.
func NewReminderScanTask(correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ReminderScanPayload{
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReminderScan, payload), nil
}
