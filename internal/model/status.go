package model

import "fmt"

// JobStatus tracks how far a job application has progressed. The numeric
// order matters: moving to a lower value is a backward transition.
type JobStatus int

const (
	StatusNotApplied JobStatus = iota
	StatusApplied
	StatusInProgress
	StatusWaitingResponse
	StatusWaitingJobOffer
	StatusAccepted
	StatusDenied
	StatusFailed
)

var statusNames = map[JobStatus]string{
	StatusNotApplied:      "Not Applied",
	StatusApplied:         "Applied",
	StatusInProgress:      "In Progress",
	StatusWaitingResponse: "Waiting Response",
	StatusWaitingJobOffer: "Waiting Job Offer",
	StatusAccepted:        "Accepted",
	StatusDenied:          "Denied",
	StatusFailed:          "Failed",
}

// String returns the human readable label used by the dashboard.
func (s JobStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("JobStatus(%d)", int(s))
}

// Valid reports whether s is one of the defined statuses.
func (s JobStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// BadgeClass maps the status to the bootstrap badge class rendered by the
// dashboard frontend.
func (s JobStatus) BadgeClass() string {
	switch s {
	case StatusApplied:
		return "badge bg-primary"
	case StatusInProgress:
		return "badge bg-info"
	case StatusWaitingResponse, StatusWaitingJobOffer:
		return "badge bg-warning"
	case StatusAccepted:
		return "badge bg-success"
	case StatusDenied, StatusFailed:
		return "badge bg-danger"
	default:
		return "badge bg-secondary"
	}
}

// CanTransitionTo reports whether the status may move to next. Backward
// moves are rejected unless the current status is InProgress, which may
// transition anywhere.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if !next.Valid() {
		return false
	}
	return next >= s || s == StatusInProgress
}
