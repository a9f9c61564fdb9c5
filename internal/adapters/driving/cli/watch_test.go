package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch [dir]", watchCmd.Use)
}

func TestWatchable(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"created csv", fsnotify.Event{Name: "drop/products.csv", Op: fsnotify.Create}, true},
		{"written xlsx", fsnotify.Event{Name: "drop/products.xlsx", Op: fsnotify.Write}, true},
		{"created pdf", fsnotify.Event{Name: "drop/catalog.pdf", Op: fsnotify.Create}, true},
		{"unsupported extension", fsnotify.Event{Name: "drop/notes.txt", Op: fsnotify.Create}, false},
		{"removed csv", fsnotify.Event{Name: "drop/products.csv", Op: fsnotify.Remove}, false},
		{"renamed csv", fsnotify.Event{Name: "drop/products.csv", Op: fsnotify.Rename}, false},
		{"chmod csv", fsnotify.Event{Name: "drop/products.csv", Op: fsnotify.Chmod}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, watchable(tt.event))
		})
	}
}

func TestIngestWatched_IngestsOnce(t *testing.T) {
	fake := &fakeIngestService{report: &domain.IngestReport{Kind: domain.FileKindCSV, Ingested: 2}}
	ingestService = fake
	defer func() { ingestService = nil }()

	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("model,price\n"), 0600))

	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	ingestWatched(context.Background(), cmd, path)

	require.Len(t, fake.files, 1)
	assert.Equal(t, "products.csv", fake.files[0])
	assert.Contains(t, buf.String(), "Ingested 2 documents from products.csv")
}

func TestIngestWatched_ReportsIngestFailure(t *testing.T) {
	fake := &fakeIngestService{err: errors.New("bad file")}
	ingestService = fake
	defer func() { ingestService = nil }()

	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("model,price\n"), 0600))

	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	ingestWatched(context.Background(), cmd, path)

	assert.Contains(t, buf.String(), "Failed to ingest")
}

func TestIngestWatched_UnreadableFileSkipped(t *testing.T) {
	fake := &fakeIngestService{}
	ingestService = fake
	defer func() { ingestService = nil }()

	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	ingestWatched(context.Background(), cmd, filepath.Join(t.TempDir(), "missing.csv"))

	assert.Empty(t, fake.files, "no ingest attempted for an unreadable file")
}
