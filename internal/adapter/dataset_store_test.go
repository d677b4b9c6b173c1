package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDecodeDataset_YAML(t *testing.T) {
	doc := `
sites:
  - name: shop
    origin: https://shop.example
    responses:
      - browser: ie
        xfo: [DENY, WARN_NO_HEADER]
      - user_agent: agent
        csp: "'self'"
        content_security_policy: "default-src 'self'; frame-ancestors 'none'"
`

	dataset, err := DecodeDataset(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, dataset.Sites, 1)

	site := dataset.Sites[0]
	assert.Equal(t, "shop", site.Name)
	require.Len(t, site.Responses, 2)
	assert.Equal(t, m.HeaderList{m.Header("DENY"), m.Absent()}, site.Responses[0].XFO)
	assert.Equal(t, m.HeaderList{m.Header("'self'")}, site.Responses[1].CSP)
	assert.Len(t, site.Responses[1].Policies, 1)
}

func TestDecodeDataset_JSON(t *testing.T) {
	doc := `{"sites": [{"origin": "https://a.com", "responses": [{"browser": "firefox", "xfo": ["SAMEORIGIN"]}]}]}`

	dataset, err := DecodeDataset(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, dataset.Sites, 1)
	assert.Equal(t, m.HeaderList{m.Header("SAMEORIGIN")}, dataset.Sites[0].Responses[0].XFO)
}

func TestDecodeDataset_Errors(t *testing.T) {
	_, err := DecodeDataset(strings.NewReader("sites:\n  - name: no-origin\n"))
	require.ErrorContains(t, err, "missing origin")

	_, err = DecodeDataset(strings.NewReader("sites:\n  - origin: https://a.com\n    unknown: 1\n"))
	require.Error(t, err)

	dataset, err := DecodeDataset(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, dataset.Sites)
}

func TestLocalDatasetStore_ResolvePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), "sites: []\n")
	writeFile(t, filepath.Join(dir, "a.json"), "{}\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o750))

	store := NewLocalDatasetStore()

	files, err := store.ResolvePaths(context.Background(), []m.Path{m.Path(dir)})
	require.NoError(t, err)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(dir, "a.json")),
		m.Path(filepath.Join(dir, "b.yaml")),
	}, files)

	_, err = store.ResolvePaths(context.Background(), []m.Path{m.Path(filepath.Join(dir, "nested"))})
	require.ErrorIs(t, err, ErrNoDatasets)

	_, err = store.ResolvePaths(context.Background(), []m.Path{m.Path(filepath.Join(dir, "missing.yaml"))})
	require.Error(t, err)
}

func TestLocalDatasetStore_LoadSites(t *testing.T) {
	store := NewLocalDatasetStore()

	sites, err := store.LoadSites(context.Background(), []m.Path{"../../testdata/showcase.yaml"})
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, "https://example.com", sites[0].Origin)
	require.Len(t, sites[0].Responses, 2)
	assert.Equal(t, FirefoxUserAgent, sites[0].Responses[0].UserAgent)
	assert.Equal(t, m.HeaderList{m.Header("https://google.com")}, sites[0].Responses[1].XFO)
}

func TestLocalDatasetStore_LoadSites_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalDatasetStore().LoadSites(ctx, []m.Path{"../../testdata/showcase.yaml"})
	require.ErrorIs(t, err, context.Canceled)
}
