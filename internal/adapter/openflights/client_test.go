package openflights

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/air-traffic-analysis/internal/dataset"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixtureServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := files[filepath.Base(r.URL.Path)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, content) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func allFixtures() map[string]string {
	return map[string]string{
		dataset.AirlinesFile:  "Airline ID,Name\n24,American Airlines\n",
		dataset.AirplanesFile: "Name,IATA code\nBoeing 737-800,738\n",
		dataset.AirportsFile:  "Airport ID,Name\n3797,JFK\n",
		dataset.RoutesFile:    "Airline,Airline ID\nAA,24\n",
	}
}

func TestDownload(t *testing.T) {
	srv := fixtureServer(t, allFixtures())
	c := NewClient(srv.URL, 5*time.Second, discardLogger())
	dir := t.TempDir()

	require.NoError(t, c.Download(context.Background(), dataset.AirlinesFile, dir))

	content, err := os.ReadFile(filepath.Join(dir, dataset.AirlinesFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "American Airlines")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should remain")
}

func TestDownload_NotFound(t *testing.T) {
	srv := fixtureServer(t, map[string]string{})
	c := NewClient(srv.URL, 5*time.Second, discardLogger())

	err := c.Download(context.Background(), dataset.AirlinesFile, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestFetchAll(t *testing.T) {
	srv := fixtureServer(t, allFixtures())
	c := NewClient(srv.URL, 5*time.Second, discardLogger())
	dir := filepath.Join(t.TempDir(), "downloads")

	require.NoError(t, c.FetchAll(context.Background(), dir))

	for _, name := range dataset.RequiredFiles {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestFetchAll_StopsOnFirstFailure(t *testing.T) {
	files := allFixtures()
	delete(files, dataset.AirplanesFile)
	srv := fixtureServer(t, files)
	c := NewClient(srv.URL, 5*time.Second, discardLogger())
	dir := filepath.Join(t.TempDir(), "downloads")

	err := c.FetchAll(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), dataset.AirplanesFile)
}

func TestDownload_ContextCancelled(t *testing.T) {
	srv := fixtureServer(t, allFixtures())
	c := NewClient(srv.URL, 5*time.Second, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Download(ctx, dataset.AirlinesFile, t.TempDir())
	assert.Error(t, err)
}
