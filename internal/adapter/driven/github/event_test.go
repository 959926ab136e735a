package github_test

import (
	"testing"

	ghAdapter "github.com/ericfisherdev/approvegate/internal/adapter/driven/github"
	"github.com/ericfisherdev/approvegate/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const autoMergePayload = `{
	"action": "auto_merge_enabled",
	"number": 42,
	"pull_request": {"number": 42, "title": "Add feature"},
	"repository": {"name": "repo", "owner": {"login": "acme"}},
	"sender": {"login": "alice"}
}`

const mergeGroupPayload = `{
	"action": "checks_requested",
	"merge_group": {
		"head_sha": "585e0bea0e4a1d10ce8ba48e5a6fa9615ee6553e",
		"head_ref": "refs/heads/gh-readonly-queue/main/pr-9-585e0bea0e4a1d10ce8ba48e5a6fa9615ee6553e",
		"base_ref": "refs/heads/main"
	},
	"repository": {"name": "repo", "owner": {"login": "acme"}},
	"sender": {"login": "bob"}
}`

func TestParseEvent_AutoMergeEnabled(t *testing.T) {
	event, err := ghAdapter.ParseEvent([]byte(autoMergePayload))

	require.NoError(t, err)
	assert.Equal(t, model.EventAutoMergeEnabled, event.Kind)
	assert.True(t, event.IsAutoMerge())
	assert.Equal(t, 42, event.PRNumber)
	assert.Equal(t, "acme", event.Owner)
	assert.Equal(t, "repo", event.Repo)
	assert.Equal(t, "alice", event.SenderLogin)
	assert.Empty(t, event.HeadRef)
}

func TestParseEvent_MergeGroup(t *testing.T) {
	event, err := ghAdapter.ParseEvent([]byte(mergeGroupPayload))

	require.NoError(t, err)
	assert.Equal(t, model.EventMergeGroupChecksRequested, event.Kind)
	assert.False(t, event.IsAutoMerge())
	assert.Zero(t, event.PRNumber)
	assert.Equal(t, "refs/heads/gh-readonly-queue/main/pr-9-585e0bea0e4a1d10ce8ba48e5a6fa9615ee6553e", event.HeadRef)
	assert.Equal(t, "acme", event.Owner)
	assert.Equal(t, "bob", event.SenderLogin)
}

func TestParseEvent_UnsupportedAction(t *testing.T) {
	_, err := ghAdapter.ParseEvent([]byte(`{"action":"opened","repository":{"name":"repo","owner":{"login":"acme"}}}`))

	require.ErrorIs(t, err, ghAdapter.ErrUnsupportedEvent)
}

func TestParseEvent_MalformedJSON(t *testing.T) {
	_, err := ghAdapter.ParseEvent([]byte(`{not json`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding webhook payload")
}

func TestParseEvent_MissingRepository(t *testing.T) {
	_, err := ghAdapter.ParseEvent([]byte(`{"action":"auto_merge_enabled","pull_request":{"number":1}}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository owner or name")
}

func TestParseEvent_AutoMergeWithoutNumber(t *testing.T) {
	_, err := ghAdapter.ParseEvent([]byte(`{"action":"auto_merge_enabled","repository":{"name":"repo","owner":{"login":"acme"}}}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pull request number")
}
