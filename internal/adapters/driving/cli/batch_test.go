package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

func TestBatchCmd_Use(t *testing.T) {
	assert.Equal(t, "batch [file]", batchCmd.Use)
}

func TestBatchCmd_HasDryRunFlag(t *testing.T) {
	flag := batchCmd.Flags().Lookup("dry-run")
	require.NotNil(t, flag, "dry-run flag should exist")
}

func TestBatchCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"batch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestBatchCmd_PrintsReport(t *testing.T) {
	responderService = &fakeResponderService{report: &domain.BatchReport{
		ID:        "run-1",
		StartedAt: time.Now(),
		Rows: []domain.RowOutcome{
			{Line: 1, Email: "a@example.com", Intent: domain.IntentRefund, Status: domain.RowSent},
			{Line: 2, Email: "b@example.com", Status: domain.RowFailed, Err: "connection refused"},
		},
		Sent:   1,
		Failed: 1,
	}}
	defer func() { responderService = nil }()

	path := filepath.Join(t.TempDir(), "queries.csv")
	require.NoError(t, os.WriteFile(path, []byte("Customer Email,Query\n"), 0600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"batch", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "1 sent")
	assert.Contains(t, buf.String(), "1 failed")
	assert.Contains(t, buf.String(), "row 2 (b@example.com): failed - connection refused")
	assert.NotContains(t, buf.String(), "row 1")
}

func TestBatchCmd_MissingFile(t *testing.T) {
	responderService = &fakeResponderService{report: &domain.BatchReport{}}
	defer func() { responderService = nil }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"batch", filepath.Join(t.TempDir(), "missing.csv")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	assert.Error(t, err)
}
