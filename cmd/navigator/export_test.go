package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	navigator "github.com/glendon144/ai-navigator"
	main "github.com/glendon144/ai-navigator/cmd/navigator"
	"github.com/glendon144/ai-navigator/export"
	"github.com/glendon144/ai-navigator/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes the archive document and prints a summary", func(t *testing.T) {
		t.Parallel()

		archive := &mock.ArchiveService{
			ListPagesFn: func(ctx context.Context, filter navigator.ArchiveFilter) ([]*navigator.ArchivePage, error) {
				return []*navigator.ArchivePage{
					{ID: 1, Title: "One", URL: "https://example.com/1", CapturedAt: "2026-01-01T00:00:00Z"},
					{ID: 2, Title: "Two", URL: "https://example.com/2", CapturedAt: "2026-01-02T00:00:00Z"},
				}, nil
			},
		}
		outliner := &mock.Outliner{OutlineHTMLFn: func(html string) *navigator.Outline {
			return navigator.NewOutline("")
		}}

		out := filepath.Join(t.TempDir(), "archive.opml")
		stdout := &bytes.Buffer{}
		deps := testDeps(stdout, &bytes.Buffer{})
		deps.Exporter = export.NewExporter(archive, outliner)

		cmd := &main.ExportCmd{Out: out, Owner: "glendon"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Exported 2 pages to "+out)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "<title>AI Navigator Archive</title>")
		assert.Contains(t, content, "<ownerName>glendon</ownerName>")
		assert.Contains(t, content, `url="https://example.com/1"`)
	})

	t.Run("prints error on archive failure", func(t *testing.T) {
		t.Parallel()

		archive := &mock.ArchiveService{
			ListPagesFn: func(ctx context.Context, filter navigator.ArchiveFilter) ([]*navigator.ArchivePage, error) {
				return nil, navigator.Errorf(navigator.EINTERNAL, "database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := testDeps(&bytes.Buffer{}, stderr)
		deps.Exporter = export.NewExporter(archive, &mock.Outliner{})

		cmd := &main.ExportCmd{Out: filepath.Join(t.TempDir(), "x.opml")}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "database locked")
	})
}
