package tests

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashwright/dashwright/internal/cli"
	"github.com/dashwright/dashwright/internal/logging"
	"github.com/dashwright/dashwright/pkg/adapters/htmlgen"
	"github.com/dashwright/dashwright/pkg/adapters/httpserve"
	"github.com/dashwright/dashwright/pkg/adapters/redis"
	"github.com/dashwright/dashwright/pkg/persistence/middleware"
)

// generateSite runs the full pipeline: definition file, dashboard assembly,
// tree building, HTML generation.
func generateSite(t *testing.T, opts ...htmlgen.Option) string {
	t.Helper()

	def, err := cli.LoadDefinition(filepath.Join("fixtures", "dashboard.yaml"))
	require.NoError(t, err)

	board, err := cli.Assemble(def, logging.NewNop())
	require.NoError(t, err)

	outDir := t.TempDir()
	genOpts := opts
	for _, ds := range def.Datasets {
		src, ok := board.Source(ds.Name)
		require.True(t, ok)
		genOpts = append(genOpts, htmlgen.WithDataSource(src))
	}

	gen, err := htmlgen.New(outDir, genOpts...)
	require.NoError(t, err)
	require.NoError(t, board.Generate(context.Background(), gen))
	return outDir
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestFullPipeline(t *testing.T) {
	dir := generateSite(t)

	// The page break splits overview into two files; appendix gets its own.
	overview := readFile(t, dir, "overview.html")
	part2 := readFile(t, dir, "overview-2.html")
	appendix := readFile(t, dir, "appendix.html")

	assert.Contains(t, overview, "<h1>Survey results</h1>")
	assert.Contains(t, overview, `class="tabset"`)
	assert.Contains(t, overview, "Key Metrics", "collection labels apply to groups")
	assert.Contains(t, overview, "Part 1 of 2")

	assert.Contains(t, part2, "callout-warning")
	assert.NotContains(t, part2, "tabset")

	assert.Contains(t, appendix, "Methodology notes.")
}

func TestFullPipelineWithRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := middleware.Chain(
		redis.New(mr.Addr(), "", 0),
		middleware.NewCompressionMiddleware(gzip.BestSpeed),
	)

	// Two runs against the same cache; the second reuses rendered leaves.
	generateSite(t, htmlgen.WithCache(cache))
	dir := generateSite(t, htmlgen.WithCache(cache))

	assert.Contains(t, readFile(t, dir, "overview.html"), "histogram")
	assert.Greater(t, len(mr.Keys()), 0, "artifacts should be stored in redis")
}

func TestServeGeneratedSite(t *testing.T) {
	dir := generateSite(t)

	server := httpserve.New(dir, httpserve.WithLogger(logging.NewNop()))
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/overview.html")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	health, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}
