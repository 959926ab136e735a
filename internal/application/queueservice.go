package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/approvegate/internal/domain/model"
	"github.com/ericfisherdev/approvegate/internal/domain/port/driven"
	"github.com/ericfisherdev/approvegate/internal/poll"
)

// ErrCheckRunNotFound is returned when the approve check run never appears on
// the pull request head.
var ErrCheckRunNotFound = errors.New("check not found")

// QueueSettings bounds the two polling loops of the queue checker.
type QueueSettings struct {
	Discovery poll.Settings // Lookup of the approve check run.
	Job       poll.Settings // Wait for the check run's job to complete.
}

// DefaultQueueSettings: one lookup plus ten retries, then twenty job polls,
// one second apart.
func DefaultQueueSettings() QueueSettings {
	return QueueSettings{
		Discovery: poll.Settings{Attempts: 11, Interval: time.Second},
		Job:       poll.Settings{Attempts: 20, Interval: time.Second},
	}
}

// QueueResult reports what the queue checker observed.
type QueueResult struct {
	PRNumber  int
	JobID     int64
	Completed bool // False when the job was still running after the last poll.
	Succeeded bool
	Attempts  int // Job status polls made.
}

// QueueService waits, from a merge queue run, for the approve check of the
// queued pull request to finish.
type QueueService struct {
	ghClient driven.GitHubClient
	settings QueueSettings
	logf     func(format string, args ...any)
}

// NewQueueService creates a QueueService. logf receives progress lines; nil
// discards them.
func NewQueueService(ghClient driven.GitHubClient, settings QueueSettings, logf func(format string, args ...any)) *QueueService {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &QueueService{
		ghClient: ghClient,
		settings: settings,
		logf:     logf,
	}
}

// Wait locates the approve check run on the pull request encoded in ref and
// polls its job until completion. Only merge group events are accepted.
// Timeout is not an error: the result has Succeeded == false. Errors are fatal.
func (s *QueueService) Wait(ctx context.Context, event model.Event, ref string) (QueueResult, error) {
	prNumber, err := QueuePRNumber(event, ref)
	if err != nil {
		return QueueResult{}, err
	}

	check, err := s.findApproveCheck(ctx, event, prNumber)
	if err != nil {
		return QueueResult{}, err
	}

	result := QueueResult{PRNumber: prNumber, JobID: check.ID}

	attempts, err := poll.Until(ctx, s.settings.Job, func(ctx context.Context, attempt int) (bool, error) {
		job, err := s.ghClient.FetchJob(ctx, event.Owner, event.Repo, check.ID)
		if err != nil {
			return false, err
		}
		if job.Completed() {
			result.Completed = true
			result.Succeeded = job.Succeeded()
			return true, nil
		}
		slog.Debug("job not completed", "job_id", check.ID, "status", job.Status, "attempt", attempt)
		s.logf("Waiting for job #%d to complete...", check.ID)
		return false, nil
	})
	result.Attempts = attempts
	if err != nil && !errors.Is(err, poll.ErrExhausted) {
		return result, err
	}

	return result, nil
}

func (s *QueueService) findApproveCheck(ctx context.Context, event model.Event, prNumber int) (model.CheckRun, error) {
	headRef := fmt.Sprintf("refs/pull/%d/head", prNumber)

	var check model.CheckRun
	_, err := poll.Until(ctx, s.settings.Discovery, func(ctx context.Context, attempt int) (bool, error) {
		runs, err := s.ghClient.FetchCheckRuns(ctx, event.Owner, event.Repo, headRef)
		if err != nil {
			return false, err
		}
		var found bool
		check, found = model.FindCheckRun(runs, model.ApproveCheckName)
		if !found && attempt < s.settings.Discovery.Attempts {
			s.logf("Check not found, retrying...")
		}
		return found, nil
	})
	if errors.Is(err, poll.ErrExhausted) {
		return model.CheckRun{}, fmt.Errorf("%w: %q on %s", ErrCheckRunNotFound, model.ApproveCheckName, headRef)
	}
	if err != nil {
		return model.CheckRun{}, err
	}

	return check, nil
}
