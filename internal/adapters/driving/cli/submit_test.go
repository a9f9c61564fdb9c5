package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCmd_Use(t *testing.T) {
	assert.Equal(t, "submit [email] [message]", submitCmd.Use)
}

func TestSubmitCmd_RequiresEmailAndMessage(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"submit", "jo@example.com"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 2 arg(s)")
}

func TestSubmitCmd_ForwardsQuery(t *testing.T) {
	fake := &fakeSubmitService{}
	submitService = fake
	defer func() { submitService = nil }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"submit", "jo@example.com", "my", "order", "never", "arrived"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Equal(t, "jo@example.com", fake.email)
	assert.Equal(t, "my order never arrived", fake.message)
	assert.Contains(t, buf.String(), "submitted successfully")
}

func TestSubmitCmd_ServiceFailure(t *testing.T) {
	submitService = &fakeSubmitService{err: errors.New("smtp down")}
	defer func() { submitService = nil }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"submit", "jo@example.com", "hello"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
}

func TestSubmitCmd_NotConfigured(t *testing.T) {
	submitService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"submit", "jo@example.com", "hello"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
