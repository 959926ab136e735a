package github

import (
	"encoding/json"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v82/github"

	"github.com/ericfisherdev/approvegate/internal/domain/model"
)

// ErrUnsupportedEvent is returned for webhook payloads whose action is neither
// auto_merge_enabled nor a merge group checks_requested.
var ErrUnsupportedEvent = model.ErrUnsupportedEvent

// ParseEvent decodes a raw webhook payload. The action field selects the
// go-github event type used for decoding.
func ParseEvent(payload []byte) (model.Event, error) {
	var head struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		return model.Event{}, fmt.Errorf("decoding webhook payload: %w", err)
	}

	var (
		event model.Event
		repo  *gh.Repository
	)

	switch model.EventKind(head.Action) {
	case model.EventAutoMergeEnabled:
		var pe gh.PullRequestEvent
		if err := json.Unmarshal(payload, &pe); err != nil {
			return model.Event{}, fmt.Errorf("decoding pull_request event: %w", err)
		}
		number := pe.GetPullRequest().GetNumber()
		if number == 0 {
			number = pe.GetNumber()
		}
		if number == 0 {
			return model.Event{}, errors.New("pull_request event has no pull request number")
		}
		repo = pe.GetRepo()
		event = model.Event{
			Kind:        model.EventAutoMergeEnabled,
			SenderLogin: pe.GetSender().GetLogin(),
			PRNumber:    number,
		}

	case model.EventMergeGroupChecksRequested:
		var me gh.MergeGroupEvent
		if err := json.Unmarshal(payload, &me); err != nil {
			return model.Event{}, fmt.Errorf("decoding merge_group event: %w", err)
		}
		repo = me.GetRepo()
		event = model.Event{
			Kind:        model.EventMergeGroupChecksRequested,
			SenderLogin: me.GetSender().GetLogin(),
			HeadRef:     me.GetMergeGroup().GetHeadRef(),
		}

	default:
		return model.Event{}, fmt.Errorf("%w: action %q", ErrUnsupportedEvent, head.Action)
	}

	event.Owner = repo.GetOwner().GetLogin()
	event.Repo = repo.GetName()
	if event.Owner == "" || event.Repo == "" {
		return model.Event{}, errors.New("webhook payload has no repository owner or name")
	}

	return event, nil
}
