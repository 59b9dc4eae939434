package tasks

import (
	"encoding/json"

	"feastly/models"

	"github.com/hibiken/asynq"
)

const TypeInvoiceSnapshot = "invoice:snapshot"

// NewInvoiceSnapshotTask wraps a flattened invoice snapshot as an asynq task.
// Snapshot persistence runs off the request path so a slow write never
// blocks the booking flow.
func NewInvoiceSnapshotTask(snap models.InvoiceSnapshot) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeInvoiceSnapshot, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}
