package pipeline

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a pipeline run submitted to River.
// The struct is used as the unique key for jobs so that multiple teams
// tracking the same website share a single run.
type JobArgs struct {
	// URL is the normalized website address to process. It is marked as unique
	// so River can enforce one job per URL according to InsertOpts.UniqueOpts.
	URL string `json:"url" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
	// reuseCompleted adds completed jobs to the dedup states so that fresh
	// results within the lookback window are reused instead of recomputed.
	// Explicit refreshes leave this off to force a new run.
	reuseCompleted bool
}

// Kind returns the River job kind used to register and dispatch the pipeline worker.
func (args JobArgs) Kind() string { return "PipelineRunJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate jobs for the same URL across multiple job states.
func (args JobArgs) InsertOpts() river.InsertOpts {
	// make sure we only have one job per URL in any in-flight state
	states := []rivertype.JobState{
		rivertype.JobStateAvailable,
		rivertype.JobStatePending,
		rivertype.JobStateRunning,
		rivertype.JobStateRetryable,
		rivertype.JobStateScheduled,
	}
	if args.reuseCompleted {
		states = append(states, rivertype.JobStateCompleted)
	}

	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState:  states,
		},
	}
}
