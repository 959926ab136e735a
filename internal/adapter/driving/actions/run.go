package actions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	githubadapter "github.com/ericfisherdev/approvegate/internal/adapter/driven/github"
	"github.com/ericfisherdev/approvegate/internal/application"
	"github.com/ericfisherdev/approvegate/internal/config"
	"github.com/ericfisherdev/approvegate/internal/domain/model"
	"github.com/ericfisherdev/approvegate/internal/domain/port/driven"
)

// Process exit codes.
const (
	ExitOK   = 0
	ExitFail = 1
)

// ClientFactory builds the GitHub client once inputs are validated.
type ClientFactory func(cfg *config.Config) (driven.GitHubClient, error)

// Options carries the process environment into a run. Zero fields fall back
// to the real process environment.
type Options struct {
	Getenv    config.Getenv
	Stdout    io.Writer
	Stderr    io.Writer
	NewClient ClientFactory
	Queue     application.QueueSettings
}

func (o Options) withDefaults() Options {
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.NewClient == nil {
		o.NewClient = newGitHubClient
	}
	if o.Queue.Discovery.Attempts == 0 && o.Queue.Job.Attempts == 0 {
		o.Queue = application.DefaultQueueSettings()
	}
	return o
}

func newGitHubClient(cfg *config.Config) (driven.GitHubClient, error) {
	return githubadapter.NewClient(cfg.GitHubToken, cfg.APIURL)
}

// setup loads configuration, configures logging and creates the reporter.
func setup(opts Options) (*config.Config, *Reporter, error) {
	reporter := NewReporter(opts.Stdout, opts.Getenv)

	cfg, err := config.Load(opts.Getenv)
	if err != nil {
		return nil, reporter, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	return cfg, reporter, nil
}

// fail reports a fatal error and returns the failure exit code.
func fail(reporter *Reporter, err error) int {
	slog.Debug("fatal error", "error", err)
	reporter.Fail(err)
	return ExitFail
}

// gateInputs parses the event and checks that the pull request can be
// resolved, so that input errors surface before any API call.
func gateInputs(cfg *config.Config) (model.Event, error) {
	event, err := githubadapter.ParseEvent(cfg.Event)
	if err != nil {
		return model.Event{}, err
	}
	if _, err := application.ResolvePRNumber(event, cfg.Ref); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

// RunApprovalGate evaluates the review policy and exits non-zero unless the
// pull request is approved. Handles auto-merge and merge group events.
func RunApprovalGate(ctx context.Context, opts Options) int {
	opts = opts.withDefaults()

	cfg, reporter, err := setup(opts)
	if err != nil {
		return fail(reporter, err)
	}

	event, err := gateInputs(cfg)
	if err != nil {
		return fail(reporter, err)
	}

	decision, err := evaluate(ctx, opts, cfg, event)
	if err != nil {
		return fail(reporter, err)
	}

	reporter.Infof("%s", decision.Message())
	if !decision.Approved {
		return ExitFail
	}
	return ExitOK
}

// RunApprovalOutput evaluates the review policy for an auto-merge event and
// publishes the result as the approved step output. A rejected pull request
// still exits zero; only fatal errors fail the step.
func RunApprovalOutput(ctx context.Context, opts Options) int {
	opts = opts.withDefaults()

	cfg, reporter, err := setup(opts)
	if err != nil {
		return fail(reporter, err)
	}

	event, err := gateInputs(cfg)
	if err != nil {
		return fail(reporter, err)
	}
	if !event.IsAutoMerge() {
		return fail(reporter, fmt.Errorf("%w: expected %s", githubadapter.ErrUnsupportedEvent, model.EventAutoMergeEnabled))
	}

	decision, err := evaluate(ctx, opts, cfg, event)
	if err != nil {
		return fail(reporter, err)
	}

	reporter.Infof("%s", decision.Message())
	reporter.SetApproved(decision.Approved)
	return ExitOK
}

func evaluate(ctx context.Context, opts Options, cfg *config.Config, event model.Event) (application.Decision, error) {
	client, err := opts.NewClient(cfg)
	if err != nil {
		return application.Decision{}, err
	}

	decision, err := application.NewApprovalService(client).Evaluate(ctx, event, cfg.Ref)
	if err != nil {
		return application.Decision{}, err
	}

	slog.Info("approval decision",
		"repo", event.Owner+"/"+event.Repo,
		"pr_number", decision.PRNumber,
		"approved", decision.Approved,
		"reason", decision.Reason,
		"approvals", decision.Approvals,
	)
	return decision, nil
}

// RunGuestQueue waits for the approve check of the queued pull request and
// exits non-zero unless its job concluded successfully.
func RunGuestQueue(ctx context.Context, opts Options) int {
	opts = opts.withDefaults()

	cfg, reporter, err := setup(opts)
	if err != nil {
		return fail(reporter, err)
	}

	ref, err := cfg.RequireRef()
	if err != nil {
		return fail(reporter, err)
	}

	event, err := githubadapter.ParseEvent(cfg.Event)
	if err != nil {
		return fail(reporter, err)
	}
	if _, err := application.QueuePRNumber(event, ref); err != nil {
		return fail(reporter, err)
	}

	client, err := opts.NewClient(cfg)
	if err != nil {
		return fail(reporter, err)
	}

	result, err := application.NewQueueService(client, opts.Queue, reporter.Infof).Wait(ctx, event, ref)
	if err != nil {
		return fail(reporter, err)
	}

	slog.Info("approve check finished",
		"repo", event.Owner+"/"+event.Repo,
		"pr_number", result.PRNumber,
		"job_id", result.JobID,
		"completed", result.Completed,
		"succeeded", result.Succeeded,
		"polls", result.Attempts,
	)

	if !result.Succeeded {
		reporter.Infof("Approve check did not succeed")
		return ExitFail
	}

	reporter.Infof("Approve check succeeded")
	return ExitOK
}
