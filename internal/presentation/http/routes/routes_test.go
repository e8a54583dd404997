package routes

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitegen-go/internal/application/container"
	"github.com/AtRiskMedia/sitegen-go/internal/presentation/http/handlers"
)

const siteJSON = `{
  "id": "p1",
  "name": "Demo",
  "pages": [
    {"id": "home", "name": "Home", "path": "/", "components": [
      {"id": "h", "type": "heading", "props": {"text": "Welcome"}, "style": {}, "responsiveStyles": {}},
      {"id": "i", "type": "image", "props": {"src": "/uploads/cat.png"}, "style": {}, "responsiveStyles": {}}
    ]},
    {"id": "about", "name": "About", "path": "/about", "components": []}
  ]
}`

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	public := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(public, "uploads"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "uploads", "cat.png"), []byte("meow"), 0o644))

	c := container.NewContainer(nil, nil, container.Options{
		PublicDir:     public,
		BuildCacheMax: 5,
	})
	return SetupRoutes(c)
}

func do(r http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generate(t *testing.T, r http.Handler) handlers.GenerateResponse {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/sites/generate", "application/json", siteJSON)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp handlers.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGenerateSite(t *testing.T) {
	r := setup(t)
	resp := generate(t, r)

	assert.NotEmpty(t, resp.BuildID)
	assert.Len(t, resp.Digest, 64)
	assert.Equal(t, 5, resp.FileCount)
	assert.Equal(t, 2, resp.SkippedAssets, "font files are missing from the public dir")

	paths := make([]string, len(resp.Files))
	for i, f := range resp.Files {
		paths[i] = f.Path
	}
	assert.Equal(t, []string{
		"index.html", "about/index.html", "styles/components.css", "assets/images/cat.png", "styles/globals.css",
	}, paths)

	assert.True(t, strings.HasPrefix(resp.Files[0].ContentSnippet, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(resp.Files[0].ContentSnippet, "..."))
	assert.False(t, resp.Files[0].IsBinary)
	assert.True(t, resp.Files[3].IsBinary)
	assert.Equal(t, "Binary data (length: 4)", resp.Files[3].ContentSnippet)

	again := generate(t, r)
	assert.Equal(t, resp.Digest, again.Digest, "identical input yields identical output")
	assert.NotEqual(t, resp.BuildID, again.BuildID)
}

func TestGenerateSite_YAML(t *testing.T) {
	r := setup(t)
	body := "id: y\npages:\n  - id: home\n    path: /\n    components: []\n"
	w := do(r, http.MethodPost, "/api/v1/sites/generate", "application/yaml", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestGenerateSite_Rejections(t *testing.T) {
	r := setup(t)

	w := do(r, http.MethodPost, "/api/v1/sites/generate", "application/json", `{"pages": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/sites/generate", "application/json", `{"pages": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/sites/generate", "application/json",
		`{"pages": [{"id": "a", "path": "/x"}, {"id": "b", "path": "/x/"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodPost, "/api/v1/sites/generate", "application/json",
		`{"pages": [{"id": "a", "path": "/", "components": [
			{"id": "x", "type": "container", "parentId": "y"},
			{"id": "y", "type": "container", "parentId": "x"}]}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "cycle")
}

func TestBuildEndpoints(t *testing.T) {
	r := setup(t)
	resp := generate(t, r)
	base := "/api/v1/sites/builds/" + resp.BuildID

	w := do(r, http.MethodGet, base, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), resp.Digest)

	w = do(r, http.MethodGet, "/api/v1/sites/builds", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), resp.BuildID)

	w = do(r, http.MethodGet, base+"/files/about/", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<title>About</title>")

	w = do(r, http.MethodGet, base+"/files/styles/components.css", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, base+"/files/styles/components.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)

	w = do(r, http.MethodGet, base+"/files/missing.css", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, base+"/archive", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	assert.Len(t, zr.File, resp.FileCount)

	w = do(r, http.MethodGet, "/api/v1/sites/builds/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSystemEndpoints(t *testing.T) {
	r := setup(t)
	generate(t, r)

	w := do(r, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"builds":1`)

	w = do(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sitegen_generation_outcomes_total")

	w = do(r, http.MethodGet, "/api/v1/system/performance", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "generate:site")

	w = do(r, http.MethodPost, "/api/v1/system/logs/levels", "application/json", `{"channel":"assets","level":"debug"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/system/logs/levels", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var levels map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &levels))
	assert.Equal(t, "DEBUG", levels["assets"])

	w = do(r, http.MethodPost, "/api/v1/system/logs/levels", "application/json", `{"channel":"assets","level":"loud"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(r, http.MethodPost, "/api/v1/system/logs/levels", "application/json", `{"channel":"nope","level":"info"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
