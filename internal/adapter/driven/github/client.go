// Package github implements the GitHubClient port using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/approvegate/internal/domain/model"
	"github.com/ericfisherdev/approvegate/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubClient = (*Client)(nil)

// Client implements the driven.GitHubClient port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching; unchanged resources
//     come back as 304s that do not count against the primary rate limit)
//  2. revalidateTransport (max-age=0 on every request, so httpcache never
//     answers from memory and each poll sees the current state)
//  3. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  4. go-github (GitHub REST API client with token auth)
//
// apiURL selects a GitHub Enterprise Server API root; empty means api.github.com.
func NewClient(token, apiURL string) (*Client, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(&revalidateTransport{next: cacheTransport})
	client := gh.NewClient(rateLimitClient).WithAuthToken(token)

	if apiURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(apiURL, apiURL)
		if err != nil {
			return nil, fmt.Errorf("configuring enterprise API URL %q: %w", apiURL, err)
		}
	}

	return &Client{gh: client}, nil
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// FetchReviews retrieves all reviews for a pull request.
// It handles pagination automatically and maps go-github types to domain model types.
func (c *Client) FetchReviews(ctx context.Context, owner, repo string, prNumber int) ([]model.Review, error) {
	opts := &gh.ListOptions{PerPage: 100}
	var allReviews []model.Review

	for {
		reviews, resp, err := c.gh.PullRequests.ListReviews(ctx, owner, repo, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("listing reviews for %s/%s#%d (page %d): %w", owner, repo, prNumber, opts.Page, err)
		}

		logRateLimit(resp, fmt.Sprintf("%s/%s#%d/reviews", owner, repo, prNumber), opts.Page, len(reviews))

		for _, r := range reviews {
			allReviews = append(allReviews, mapReview(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allReviews, nil
}

// FetchTeams retrieves every team visible to the token in the organization.
func (c *Client) FetchTeams(ctx context.Context, org string) ([]model.Team, error) {
	opts := &gh.ListOptions{PerPage: 100}
	var allTeams []model.Team

	for {
		teams, resp, err := c.gh.Teams.ListTeams(ctx, org, opts)
		if err != nil {
			return nil, fmt.Errorf("listing teams for %s (page %d): %w", org, opts.Page, err)
		}

		logRateLimit(resp, org+"/teams", opts.Page, len(teams))

		for _, t := range teams {
			allTeams = append(allTeams, model.Team{
				ID:   t.GetID(),
				Slug: t.GetSlug(),
				Name: t.GetName(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allTeams, nil
}

// FetchTeamMembers retrieves the logins of all members of a team.
func (c *Client) FetchTeamMembers(ctx context.Context, org, teamSlug string) ([]string, error) {
	opts := &gh.TeamListTeamMembersOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	var logins []string

	for {
		members, resp, err := c.gh.Teams.ListTeamMembersBySlug(ctx, org, teamSlug, opts)
		if err != nil {
			return nil, fmt.Errorf("listing members of %s/%s (page %d): %w", org, teamSlug, opts.Page, err)
		}

		logRateLimit(resp, org+"/teams/"+teamSlug+"/members", opts.Page, len(members))

		for _, m := range members {
			logins = append(logins, m.GetLogin())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return logins, nil
}

// FetchCheckRuns retrieves all check runs for the given ref (commit SHA or ref name).
// It handles pagination automatically and maps go-github types to domain model types.
func (c *Client) FetchCheckRuns(ctx context.Context, owner, repo, ref string) ([]model.CheckRun, error) {
	opts := &gh.ListCheckRunsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var allRuns []model.CheckRun

	for {
		result, resp, err := c.gh.Checks.ListCheckRunsForRef(ctx, owner, repo, ref, opts)
		if err != nil {
			return nil, fmt.Errorf("listing check runs for %s/%s@%s (page %d): %w", owner, repo, ref, opts.Page, err)
		}

		logRateLimit(resp, owner+"/"+repo+"/check-runs", opts.Page, len(result.CheckRuns))

		for _, cr := range result.CheckRuns {
			allRuns = append(allRuns, mapCheckRun(cr))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRuns, nil
}

// FetchJob returns a single Actions workflow job.
func (c *Client) FetchJob(ctx context.Context, owner, repo string, jobID int64) (*model.Job, error) {
	job, resp, err := c.gh.Actions.GetWorkflowJobByID(ctx, owner, repo, jobID)
	if err != nil {
		return nil, fmt.Errorf("fetching job %d for %s/%s: %w", jobID, owner, repo, err)
	}

	logRateLimit(resp, owner+"/"+repo+"/actions/jobs", 0, 1)

	return &model.Job{
		ID:         job.GetID(),
		Status:     job.GetStatus(),
		Conclusion: job.GetConclusion(),
	}, nil
}

// mapReview converts a go-github PullRequestReview to a domain model Review.
// A review whose author was deleted maps to an empty ReviewerLogin.
func mapReview(r *gh.PullRequestReview) model.Review {
	return model.Review{
		ID:            r.GetID(),
		ReviewerLogin: r.GetUser().GetLogin(),
		State:         model.ReviewState(r.GetState()),
	}
}

// mapCheckRun converts a go-github CheckRun to a domain model CheckRun.
func mapCheckRun(cr *gh.CheckRun) model.CheckRun {
	return model.CheckRun{
		ID:         cr.GetID(),
		Name:       cr.GetName(),
		Status:     cr.GetStatus(),
		Conclusion: cr.GetConclusion(),
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
