// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"

	"github.com/ericfisherdev/approvegate/internal/domain/model"
)

// GitHubClient defines the driven port for the read-only GitHub API calls the
// gate and the queue checker make.
type GitHubClient interface {
	FetchReviews(ctx context.Context, owner, repo string, prNumber int) ([]model.Review, error)

	// FetchTeams returns every team of the organization.
	FetchTeams(ctx context.Context, org string) ([]model.Team, error)
	// FetchTeamMembers returns the logins of the members of the team.
	FetchTeamMembers(ctx context.Context, org, teamSlug string) ([]string, error)

	// FetchCheckRuns returns all check runs for the given ref (commit SHA or ref name).
	FetchCheckRuns(ctx context.Context, owner, repo, ref string) ([]model.CheckRun, error)
	// FetchJob returns the Actions job with the given ID.
	FetchJob(ctx context.Context, owner, repo string, jobID int64) (*model.Job, error)
}
