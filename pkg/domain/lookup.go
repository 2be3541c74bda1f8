package domain

import (
	"time"

	"github.com/google/uuid"
)

// LookupID uniquely identifies a lookup.
// It wraps uuid.UUID to provide type safety at the domain layer.
type LookupID uuid.UUID

// LookupStatus represents the lifecycle state of an asynchronous lookup.
type LookupStatus string

const (
	// LookupStatusPending indicates the lookup has been enqueued but not processed yet.
	LookupStatusPending LookupStatus = "PENDING"
	// LookupStatusCompleted indicates the lookup finished and a result is available.
	LookupStatusCompleted LookupStatus = "COMPLETED"
	// LookupStatusFailed indicates the lookup ended with an error; see LastError and Attempts.
	LookupStatusFailed LookupStatus = "FAILED"
)

// Lookup represents a single asynchronous email lookup and its current state.
type Lookup struct {
	// ID is the unique identifier of the lookup.
	ID LookupID `json:"id"`
	// UserID is the identifier of the user who requested the lookup.
	UserID UserID `json:"userId"`

	// Key identifies equivalent queries so that concurrent requests for the
	// same person share one background job.
	Key string `json:"-"`
	// Query is the person being looked up.
	Query PersonQuery `json:"query"`
	// Status is the current lifecycle state of the lookup.
	Status LookupStatus `json:"status"`
	// Result contains the ranked addresses once the lookup completed.
	Result FindResult `json:"result"`

	// Attempts is the number of times the system has tried to process this lookup.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent processing error, if any.
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the lookup was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
