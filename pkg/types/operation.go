// Package types defines the shared configuration and record types used
// across the docsmart operations.
package types

import "time"

// OpStatus is the terminal state of a recorded operation.
type OpStatus string

const (
	StatusOK     OpStatus = "ok"
	StatusFailed OpStatus = "failed"
)

// Operation is one recorded CLI invocation: which operation ran, on what,
// and how it ended. Records are appended to the history store after each
// run; they have no identity beyond the store's rowid.
type Operation struct {
	ID        int64         `json:"id" yaml:"id"`
	Op        string        `json:"op" yaml:"op"`
	Input     string        `json:"input" yaml:"input"`
	Output    string        `json:"output" yaml:"output"`
	Status    OpStatus      `json:"status" yaml:"status"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// Failed reports whether the operation ended in failure.
func (o Operation) Failed() bool {
	return o.Status == StatusFailed
}
