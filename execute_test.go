package cloudofficeprint

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmitchellscott/cloudofficeprint/config"
	"github.com/rmitchellscott/cloudofficeprint/elements"
	"github.com/rmitchellscott/cloudofficeprint/internal/json"
	"github.com/rmitchellscott/cloudofficeprint/resource"
)

// fakeCOP is a minimal Cloud Office Print server.
type fakeCOP struct {
	mu       sync.Mutex
	payloads []map[string]any
	headers  []http.Header
	status   int
	body     string
	hash     string
	down     bool
}

func (f *fakeCOP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/marco":
		if f.down {
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, "polo")
	case "/version":
		_, _ = io.WriteString(w, "25.2.0\n")
	case "/soffice":
		_, _ = io.WriteString(w, "LibreOffice 7.6")
	case "/supported_output_mimetypes":
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"template":"`+r.URL.Query().Get("template")+`","pdf":"application/pdf"}`)
	case "/":
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)

		f.mu.Lock()
		f.payloads = append(f.payloads, payload)
		f.headers = append(f.headers, r.Header.Clone())
		f.mu.Unlock()

		if f.status != 0 && f.status != http.StatusOK {
			w.WriteHeader(f.status)
			_, _ = io.WriteString(w, f.body)
			return
		}
		if f.hash != "" {
			w.Header().Set(templateHashHeader, f.hash)
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, "%PDF-1.7 rendered")
	default:
		http.NotFound(w, r)
	}
}

func startFakeCOP(t *testing.T, f *fakeCOP) *Server {
	t.Helper()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	s, err := NewServer(ts.URL, WithHTTPClient(ts.Client()))
	require.NoError(t, err)
	return s
}

func TestExecute(t *testing.T) {
	fake := &fakeCOP{}
	server := startFakeCOP(t, fake)

	job := NewPrintJob(server, elements.NewProperty("title", "Hello"))
	job.Template = resource.TemplateFromBase64("x", "docx")

	resp, err := job.Execute(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", resp.MimeType)
	assert.Equal(t, "pdf", resp.FileType())
	assert.Equal(t, []byte("%PDF-1.7 rendered"), resp.Binary())

	require.Len(t, fake.payloads, 1)
	payload := fake.payloads[0]
	assert.Equal(t, "docx", payload["output"].(map[string]any)["output_type"])
	assert.Equal(t, "x", payload["template"].(map[string]any)["file"])

	h := fake.headers[0]
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Contains(t, h.Get("User-Agent"), "cloudofficeprint-go/")
	_, err = uuid.Parse(h.Get(requestIDHeader))
	assert.NoError(t, err)
}

func TestExecuteTemplateHashRoundTrip(t *testing.T) {
	fake := &fakeCOP{hash: "h-123"}
	server := startFakeCOP(t, fake)

	tmpl := resource.TemplateFromBase64("x", "docx")
	tmpl.ShouldHash = true
	job := NewPrintJob(server, elements.NewProperty("a", 1))
	job.Template = tmpl

	_, err := job.Execute(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "h-123", tmpl.Hash)
	assert.False(t, tmpl.ShouldHash)

	_, err = job.Execute(t.Context())
	require.NoError(t, err)

	require.Len(t, fake.payloads, 2)
	first := fake.payloads[0]["template"].(map[string]any)
	assert.Equal(t, true, first["should_hash"])
	assert.Equal(t, "x", first["file"])

	second := fake.payloads[1]["template"].(map[string]any)
	assert.Equal(t, map[string]any{"template_type": "docx", "template_hash": "h-123"}, second)
}

func TestExecuteRenderError(t *testing.T) {
	fake := &fakeCOP{
		status: http.StatusBadRequest,
		body:   "Tag {x} is not closed\nContact support@example.com\nABCDEF==\n",
	}
	server := startFakeCOP(t, fake)

	_, err := NewPrintJob(server, elements.NewProperty("a", 1)).Execute(t.Context())
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, http.StatusBadRequest, renderErr.StatusCode)
	assert.Equal(t, "Tag {x} is not closed", renderErr.UserMessage)
	assert.Equal(t, "Contact support@example.com", renderErr.ContactSupportMessage)
	assert.Equal(t, "ABCDEF==", renderErr.EncodedMessage)
	assert.Contains(t, err.Error(), "Tag {x} is not closed")
}

func TestExecuteUnreachable(t *testing.T) {
	fake := &fakeCOP{down: true}
	server := startFakeCOP(t, fake)

	_, err := NewPrintJob(server, elements.NewProperty("a", 1)).Execute(t.Context())
	assert.ErrorIs(t, err, ErrServerUnreachable)
	assert.Empty(t, fake.payloads, "no payload is sent")
}

func TestExecuteAsync(t *testing.T) {
	server := startFakeCOP(t, &fakeCOP{})

	select {
	case res := <-NewPrintJob(server, elements.NewProperty("a", 1)).ExecuteAsync(t.Context()):
		require.NoError(t, res.Err)
		assert.Equal(t, "pdf", res.Response.FileType())
	case <-time.After(5 * time.Second):
		t.Fatal("ExecuteAsync did not finish")
	}
}

func TestExecuteFullJSON(t *testing.T) {
	fake := &fakeCOP{}
	server := startFakeCOP(t, fake)

	raw := []byte(`{"tool":"custom","files":[{"data":{"a":1}}]}`)
	_, err := server.ExecuteFullJSON(t.Context(), raw)
	require.NoError(t, err)
	require.Len(t, fake.payloads, 1)
	assert.Equal(t, "custom", fake.payloads[0]["tool"])

	_, err = server.ExecuteFullJSON(t.Context(), []byte("{not json"))
	assert.Error(t, err)
}

func TestServerInfo(t *testing.T) {
	server := startFakeCOP(t, &fakeCOP{})

	assert.True(t, server.IsReachable(t.Context()))

	v, err := server.VersionCOP(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "25.2.0", v)

	v, err = server.VersionSoffice(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "LibreOffice 7.6", v)

	types, err := server.SupportedOutputMimetypes(t.Context(), "docx")
	require.NoError(t, err)
	assert.Equal(t, "docx", types["template"])

	_, err = server.VersionOfficeToPDF(t.Context())
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestNewServerRejectsInvalidURL(t *testing.T) {
	_, err := NewServer("localhost:8010")
	assert.Error(t, err)
	_, err = NewServer("ftp://localhost")
	assert.Error(t, err)
}

func TestServerProxyFollowsConfig(t *testing.T) {
	s, err := NewServer("http://localhost:8010", WithConfig(&config.ServerConfig{
		Proxies: map[string]string{"http": "http://old-proxy:3128"},
	}))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "http://localhost:8010/marco", nil)
	u, err := s.proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "old-proxy:3128", u.Host)

	s.Config = &config.ServerConfig{Proxies: map[string]string{"http": "http://new-proxy:3128"}}
	u, err = s.proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "new-proxy:3128", u.Host)

	s.Config = &config.ServerConfig{Proxies: map[string]string{"https": "http://tls-proxy:3128"}}
	u, err = s.proxy(req)
	require.NoError(t, err)
	assert.Nil(t, u, "no proxy for a scheme without entry")
}

func TestResponseText(t *testing.T) {
	r := &Response{MimeType: "text/plain; charset=utf-8", Body: []byte("hello")}
	s, err := r.Text()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Equal(t, "txt", r.FileType())

	r = &Response{MimeType: "application/pdf", Body: []byte{0xff, 0xfe, 0x00}}
	_, err = r.Text()
	assert.ErrorIs(t, err, ErrDecoding)
}

func TestResponseToFile(t *testing.T) {
	dir := t.TempDir()
	r := &Response{MimeType: "application/pdf", Body: []byte("%PDF")}

	path, err := r.ToFile(t.Context(), filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.pdf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)

	path, err = r.ToFile(t.Context(), filepath.Join(dir, "sub", "named.bin"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub", "named.bin"), path)
}

func TestLoadServer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"url: http://localhost:8010\napi_key: secret\ntimeout: 30s\nrate_limit: 2\nhttps_proxy: http://proxy:3128\n",
	), 0o644))

	s, err := LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8010/", s.URL())
	assert.Equal(t, "secret", s.Config.APIKey.Value())
	assert.Equal(t, map[string]string{"https": "http://proxy:3128"}, s.Config.Proxies)
	assert.Equal(t, 30*time.Second, s.client.Timeout)
	assert.NotNil(t, s.limiter)
}

func TestServerFromEnv(t *testing.T) {
	t.Setenv("TESTCOP_URL", "https://cop.example.com")
	t.Setenv("TESTCOP_REMOTE_DEBUG", "true")

	s, err := ServerFromEnv("TESTCOP_")
	require.NoError(t, err)
	assert.Equal(t, "https://cop.example.com/", s.URL())
	assert.True(t, s.Config.RemoteDebug)
	assert.False(t, s.Config.APIKey.Has())
}
