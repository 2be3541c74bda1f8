package lookup

import (
	"time"

	"emailfinder/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs are the arguments of a find job. Only Key takes part in uniqueness
// so equivalent queries collapse into a single job.
type JobArgs struct {
	Key   string             `json:"key"   river:"unique"`
	Query domain.PersonQuery `json:"query"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the worker.
func (args JobArgs) Kind() string { return "FindEmailsJob" }

// InsertOpts limits retries and keeps one job per key in any live state, and
// for the cache period after completion.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
