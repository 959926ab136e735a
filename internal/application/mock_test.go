package application_test

import (
	"context"

	"github.com/ericfisherdev/approvegate/internal/domain/model"
)

// --- Mock implementations ---

type mockGitHubClient struct {
	reviews   []model.Review
	teams     []model.Team
	members   map[string][]string
	checkRuns func(attempt int) []model.CheckRun
	job       func(attempt int) model.Job
	err       error

	reviewCalls   int
	teamCalls     int
	memberCalls   []string
	checkRunCalls int
	jobCalls      int
	lastRef       string
}

func (m *mockGitHubClient) FetchReviews(_ context.Context, _, _ string, _ int) ([]model.Review, error) {
	m.reviewCalls++
	return m.reviews, m.err
}

func (m *mockGitHubClient) FetchTeams(_ context.Context, _ string) ([]model.Team, error) {
	m.teamCalls++
	return m.teams, nil
}

func (m *mockGitHubClient) FetchTeamMembers(_ context.Context, _, teamSlug string) ([]string, error) {
	m.memberCalls = append(m.memberCalls, teamSlug)
	return m.members[teamSlug], nil
}

func (m *mockGitHubClient) FetchCheckRuns(_ context.Context, _, _, ref string) ([]model.CheckRun, error) {
	m.checkRunCalls++
	m.lastRef = ref
	if m.err != nil {
		return nil, m.err
	}
	if m.checkRuns == nil {
		return nil, nil
	}
	return m.checkRuns(m.checkRunCalls), nil
}

func (m *mockGitHubClient) FetchJob(_ context.Context, _, _ string, jobID int64) (*model.Job, error) {
	m.jobCalls++
	job := m.job(m.jobCalls)
	job.ID = jobID
	return &job, nil
}

// standardTeams returns both conventional teams.
func standardTeams() []model.Team {
	return []model.Team{
		{ID: 1, Slug: "maintainer", Name: "Maintainer"},
		{ID: 2, Slug: "reviewer", Name: "Reviewer"},
		{ID: 3, Slug: "docs", Name: "Docs"},
	}
}
