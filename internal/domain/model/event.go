package model

import "errors"

// ErrUnsupportedEvent is returned for webhook payloads of a kind the caller
// cannot handle.
var ErrUnsupportedEvent = errors.New("unsupported webhook event")

// Event is the subset of a webhook payload the gate needs. Kind selects which
// of the variant fields are meaningful.
type Event struct {
	Kind        EventKind
	Owner       string // Repository owner login; doubles as the organization.
	Repo        string
	SenderLogin string

	// PRNumber is set for EventAutoMergeEnabled.
	PRNumber int
	// HeadRef is set for EventMergeGroupChecksRequested, e.g.
	// "refs/heads/gh-readonly-queue/main/pr-9-585e0bea...".
	HeadRef string
}

// IsMergeGroup reports whether the event is a merge group checks request.
func (e Event) IsMergeGroup() bool {
	return e.Kind == EventMergeGroupChecksRequested
}

// IsAutoMerge reports whether the event is an auto-merge enablement.
func (e Event) IsAutoMerge() bool {
	return e.Kind == EventAutoMergeEnabled
}
