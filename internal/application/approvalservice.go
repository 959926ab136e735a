// Package application contains the gate and queue use cases.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ericfisherdev/approvegate/internal/domain/model"
	"github.com/ericfisherdev/approvegate/internal/domain/port/driven"
)

// RequiredApprovals is the number of reviewer-team approvals needed to pass.
const RequiredApprovals = 2

// ErrTeamNotFound is returned when the organization lacks one of the
// maintainer or reviewer teams.
var ErrTeamNotFound = errors.New("team not found")

// Reason explains how a Decision was reached.
type Reason string

const (
	ReasonMaintainerOverride    Reason = "maintainer_override"
	ReasonReviewerQuorum        Reason = "reviewer_quorum"
	ReasonInsufficientApprovals Reason = "insufficient_approvals"
)

// Decision is the outcome of evaluating a pull request against the review policy.
type Decision struct {
	Approved  bool
	Reason    Reason
	PRNumber  int
	Approvals int // Qualifying approvals counted; zero on the maintainer path.
}

// Message returns the status line for the decision.
func (d Decision) Message() string {
	switch d.Reason {
	case ReasonMaintainerOverride:
		return "Force approval: Maintainer requested auto-merge"
	case ReasonReviewerQuorum:
		return fmt.Sprintf("Approved by %d reviewers", d.Approvals)
	default:
		return "Not approved"
	}
}

// ApprovalService decides whether a pull request may be merged.
type ApprovalService struct {
	ghClient driven.GitHubClient
}

// NewApprovalService creates an ApprovalService.
func NewApprovalService(ghClient driven.GitHubClient) *ApprovalService {
	return &ApprovalService{ghClient: ghClient}
}

// Evaluate resolves the pull request for event and applies the policy: a
// maintainer sender passes outright, otherwise RequiredApprovals approvals
// from reviewer-team members are needed. A returned error is fatal; a
// rejected pull request is reported through Decision.Approved.
func (s *ApprovalService) Evaluate(ctx context.Context, event model.Event, ref string) (Decision, error) {
	prNumber, err := ResolvePRNumber(event, ref)
	if err != nil {
		return Decision{}, err
	}

	reviews, err := s.ghClient.FetchReviews(ctx, event.Owner, event.Repo, prNumber)
	if err != nil {
		return Decision{}, err
	}

	teams, err := s.ghClient.FetchTeams(ctx, event.Owner)
	if err != nil {
		return Decision{}, err
	}
	maintainerTeam, ok := model.FindTeam(teams, model.MaintainerTeamSlug)
	if !ok {
		return Decision{}, fmt.Errorf("maintainer %w", ErrTeamNotFound)
	}
	reviewerTeam, ok := model.FindTeam(teams, model.ReviewerTeamSlug)
	if !ok {
		return Decision{}, fmt.Errorf("reviewer %w", ErrTeamNotFound)
	}

	maintainers, err := s.ghClient.FetchTeamMembers(ctx, event.Owner, maintainerTeam.Slug)
	if err != nil {
		return Decision{}, err
	}
	reviewers, err := s.ghClient.FetchTeamMembers(ctx, event.Owner, reviewerTeam.Slug)
	if err != nil {
		return Decision{}, err
	}

	slog.Debug("evaluating approval policy",
		"repo", event.Owner+"/"+event.Repo,
		"pr_number", prNumber,
		"sender", event.SenderLogin,
		"reviews", len(reviews),
		"maintainers", len(maintainers),
		"reviewers", len(reviewers),
	)

	if event.SenderLogin != "" && slices.Contains(maintainers, event.SenderLogin) {
		return Decision{Approved: true, Reason: ReasonMaintainerOverride, PRNumber: prNumber}, nil
	}

	approvals := CountApprovals(reviews, reviewers)
	decision := Decision{
		Approved:  approvals >= RequiredApprovals,
		Reason:    ReasonInsufficientApprovals,
		PRNumber:  prNumber,
		Approvals: approvals,
	}
	if decision.Approved {
		decision.Reason = ReasonReviewerQuorum
	}
	return decision, nil
}

// CountApprovals counts APPROVED reviews whose author is in the reviewer roster.
// Reviews without an author never count.
func CountApprovals(reviews []model.Review, reviewers []string) int {
	count := 0
	for _, r := range reviews {
		if !r.IsApproval() || r.ReviewerLogin == "" {
			continue
		}
		if slices.Contains(reviewers, r.ReviewerLogin) {
			count++
		}
	}
	return count
}
