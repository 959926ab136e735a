package actions

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_FailWritesErrorAnnotation(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, func(string) string { return "" })

	r.Fail(errors.New("Maintainer team not found"))

	assert.Contains(t, buf.String(), "::error::Maintainer team not found")
}

func TestReporter_Infof(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, func(string) string { return "" })

	r.Infof("Approved by %d reviewers", 2)

	assert.Equal(t, "Approved by 2 reviewers\n", buf.String())
}

func TestReporter_SetApprovedWritesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	var buf bytes.Buffer
	r := NewReporter(&buf, func(key string) string {
		if key == "GITHUB_OUTPUT" {
			return path
		}
		return ""
	})

	r.SetApproved(true)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), ApprovedOutput)
	assert.Contains(t, string(out), "true")
}
