package model

// ReviewState represents the state of a review as reported by the GitHub API.
// Values are kept verbatim (upper case) so comparisons stay exact.
type ReviewState string

const (
	ReviewStateApproved         ReviewState = "APPROVED"
	ReviewStateChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewStateCommented        ReviewState = "COMMENTED"
	ReviewStatePending          ReviewState = "PENDING"
	ReviewStateDismissed        ReviewState = "DISMISSED"
)

// EventKind discriminates the webhook payloads the gate understands.
type EventKind string

const (
	EventAutoMergeEnabled          EventKind = "auto_merge_enabled"
	EventMergeGroupChecksRequested EventKind = "checks_requested"
)

// Conventional team slugs and check names.
const (
	MaintainerTeamSlug = "maintainer"
	ReviewerTeamSlug   = "reviewer"
	ApproveCheckName   = "approve"
)

// Job and check run status values.
const (
	StatusCompleted   = "completed"
	ConclusionSuccess = "success"
)
