package model

// CheckRun represents an individual check run from the GitHub Checks API.
type CheckRun struct {
	ID         int64  // GitHub check run ID; for Actions runs it is also the job ID.
	Name       string // Check run name (e.g., "approve").
	Status     string // queued, in_progress, completed, waiting, requested, pending.
	Conclusion string // success, failure, neutral, canceled, skipped, timed_out, action_required.
}

// FindCheckRun returns the first check run with exactly the given name.
func FindCheckRun(runs []CheckRun, name string) (CheckRun, bool) {
	for _, cr := range runs {
		if cr.Name == name {
			return cr, true
		}
	}
	return CheckRun{}, false
}

// Job is a GitHub Actions workflow job.
type Job struct {
	ID         int64
	Status     string
	Conclusion string
}

// Completed reports whether the job has finished.
func (j Job) Completed() bool {
	return j.Status == StatusCompleted
}

// Succeeded reports whether the job finished with a success conclusion.
func (j Job) Succeeded() bool {
	return j.Completed() && j.Conclusion == ConclusionSuccess
}
