package application

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/ericfisherdev/approvegate/internal/config"
	"github.com/ericfisherdev/approvegate/internal/domain/model"
)

// ErrPRNumberNotFound is returned when a merge queue ref carries no PR number.
var ErrPRNumberNotFound = errors.New("PR number not found")

// ErrRefMismatch is returned when GH_REF and the merge group head ref name
// different pull requests.
var ErrRefMismatch = errors.New("merge group head ref does not match GH_REF")

// Merge queue refs look like
// refs/heads/gh-readonly-queue/main/pr-9-585e0bea0e4a1d10ce8ba48e5a6fa9615ee6553e.
var queueRefPattern = regexp.MustCompile(`pr-(\d+)-`)

// PRNumberFromRef extracts the pull request number from a merge queue ref.
func PRNumberFromRef(ref string) (int, error) {
	m := queueRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return 0, fmt.Errorf("%w in ref %q", ErrPRNumberNotFound, ref)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w in ref %q: %w", ErrPRNumberNotFound, ref, err)
	}
	return n, nil
}

// ResolvePRNumber returns the pull request the event refers to. Auto-merge
// events carry it directly; merge group events need the queue ref.
func ResolvePRNumber(event model.Event, ref string) (int, error) {
	if event.IsAutoMerge() {
		return event.PRNumber, nil
	}
	return QueuePRNumber(event, ref)
}

// QueuePRNumber resolves the pull request of a merge group event from ref.
// When the event carries its own head ref, both must name the same pull request.
func QueuePRNumber(event model.Event, ref string) (int, error) {
	if !event.IsMergeGroup() {
		return 0, fmt.Errorf("%w: expected merge group %s, got %q", model.ErrUnsupportedEvent, model.EventMergeGroupChecksRequested, event.Kind)
	}
	if ref == "" {
		return 0, config.ErrMissingRef
	}

	n, err := PRNumberFromRef(ref)
	if err != nil {
		return 0, err
	}

	if event.HeadRef != "" {
		headN, err := PRNumberFromRef(event.HeadRef)
		if err != nil || headN != n {
			return 0, fmt.Errorf("%w: %q vs %q", ErrRefMismatch, event.HeadRef, ref)
		}
	}
	return n, nil
}
