// Package actions is the GitHub Actions driving adapter: it reads the job
// inputs, runs a use case and reports the outcome as log lines, failure
// annotations, step outputs and an exit code.
package actions

import (
	"io"
	"strconv"

	"github.com/sethvargo/go-githubactions"

	"github.com/ericfisherdev/approvegate/internal/config"
)

// ApprovedOutput is the step output consumed by the downstream merge step.
const ApprovedOutput = "approved"

// Reporter writes workflow commands for the current step.
type Reporter struct {
	action *githubactions.Action
}

// NewReporter creates a Reporter writing to w. getenv resolves GITHUB_OUTPUT.
func NewReporter(w io.Writer, getenv config.Getenv) *Reporter {
	return &Reporter{
		action: githubactions.New(
			githubactions.WithWriter(w),
			githubactions.WithGetenv(githubactions.GetenvFunc(getenv)),
		),
	}
}

// Infof prints a plain status line.
func (r *Reporter) Infof(format string, args ...any) {
	r.action.Infof(format, args...)
}

// Fail emits an error annotation so the step shows as failed in the UI.
func (r *Reporter) Fail(err error) {
	r.action.Errorf("%v", err)
}

// SetApproved sets the approved step output to "true" or "false".
func (r *Reporter) SetApproved(approved bool) {
	r.action.SetOutput(ApprovedOutput, strconv.FormatBool(approved))
}
