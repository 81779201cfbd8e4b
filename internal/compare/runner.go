package compare

import (
	"context"

	"l10nlint/internal/worker"
)

// Runner executes independent file-pair jobs across a worker pool and
// replays the results to the observer in job-submission order, so output
// stays deterministic no matter how the pool schedules.
type Runner struct {
	// Workers is the pool size; values below 1 run sequentially.
	Workers int
	// Observer receives diagnostics, per-file summaries, and the final
	// total. Nil means results are only aggregated.
	Observer Observer
}

// Run compares all jobs and returns the global total. Summary aggregation
// is a field-wise addition, so job completion order cannot affect it.
func (r *Runner) Run(ctx context.Context, jobs []Job) Summary {
	obs := r.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	pool := worker.NewPool(r.Workers, func(_ context.Context, job Job) (Result, error) {
		return Compare(job), nil
	})
	tasks := pool.Execute(ctx, jobs)

	var total Counts
	for _, t := range tasks {
		// Jobs never scheduled because of cancellation have no summary to
		// report.
		if !t.Ran {
			continue
		}
		for _, d := range t.Result.Diagnostics {
			obs.Diagnostic(d)
		}
		obs.FileSummary(t.Result.Summary)
		total = total.Add(t.Result.Summary.Counts)
	}

	grand := Summary{Counts: total}
	obs.Total(grand)
	return grand
}
