package cloudofficeprint

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rmitchellscott/cloudofficeprint/config"
	"github.com/rmitchellscott/cloudofficeprint/internal/json"
	"github.com/rmitchellscott/cloudofficeprint/internal/logging"
	"github.com/rmitchellscott/cloudofficeprint/internal/profile"
	"github.com/rmitchellscott/cloudofficeprint/internal/utils"
	"github.com/rmitchellscott/cloudofficeprint/internal/version"
	"github.com/rmitchellscott/cloudofficeprint/optional"
)

const defaultTimeout = 5 * time.Minute

// Server is a Cloud Office Print server. It is safe for concurrent use.
type Server struct {
	// Config is sent with every job. It must not be changed while jobs run.
	Config *config.ServerConfig

	base    *url.URL
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithConfig sets the server settings sent with every job. Proxies in the
// config are used by the default HTTP client.
func WithConfig(cfg *config.ServerConfig) Option {
	return func(s *Server) {
		s.Config = cfg
	}
}

// WithHTTPClient replaces the HTTP client. Timeout and proxies are then the
// responsibility of the given client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Server) {
		s.client = c
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.timeout = d
	}
}

// WithRateLimit limits the number of requests per second sent to the server.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(r, max(burst, 1))
	}
}

// NewServer returns a client for the server at rawURL.
func NewServer(rawURL string, opts ...Option) (*Server, error) {
	base, err := utils.BaseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("cloudofficeprint: server url: %w", err)
	}
	s := &Server{base: base, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	if s.Config != nil {
		if err := s.Config.Validate(); err != nil {
			return nil, err
		}
	}
	if s.client == nil {
		s.client = &http.Client{
			Timeout:   s.timeout,
			Transport: s.transport(),
		}
	}
	return s, nil
}

// LoadServer creates a server from a YAML, INI or dotenv profile. Options are
// applied after the profile settings.
func LoadServer(path string, opts ...Option) (*Server, error) {
	p, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	return serverFromProfile(p, opts)
}

// ServerFromEnv creates a server from <prefix>URL, <prefix>API_KEY and the
// other profile variables. An empty prefix means "COP_".
func ServerFromEnv(prefix string, opts ...Option) (*Server, error) {
	p, err := profile.FromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return serverFromProfile(p, opts)
}

func serverFromProfile(p *profile.Profile, opts []Option) (*Server, error) {
	timeout, err := p.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	cfg := &config.ServerConfig{
		APIKey:      optional.FromNonDefault(p.APIKey),
		Proxies:     p.Proxies(),
		RemoteDebug: p.RemoteDebug,
	}
	base := []Option{WithConfig(cfg)}
	if timeout > 0 {
		base = append(base, WithTimeout(timeout))
	}
	if p.RateLimit > 0 {
		base = append(base, WithRateLimit(rate.Limit(p.RateLimit), p.RateBurst))
	}
	logging.InfoWithComponent(logging.ComponentProfile, "Server profile loaded", "url", p.URL)
	return NewServer(p.URL, append(base, opts...)...)
}

// URL returns the server address.
func (s *Server) URL() string {
	return s.base.String()
}

func (s *Server) transport() http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.Proxy = s.proxy
	return t
}

// proxy picks the proxy for req from the current Config, so a Config
// replaced after NewServer still applies. Without configured proxies the
// environment decides.
func (s *Server) proxy(req *http.Request) (*url.URL, error) {
	if s.Config == nil || len(s.Config.Proxies) == 0 {
		return http.ProxyFromEnvironment(req)
	}
	p, ok := s.Config.Proxies[req.URL.Scheme]
	if !ok || p == "" {
		return nil, nil
	}
	return url.Parse(p)
}

func (s *Server) wait(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	return s.limiter.Wait(ctx)
}

func (s *Server) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("cloudofficeprint: creating request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	return req, nil
}

// get fetches an info endpoint and returns the body.
func (s *Server) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	target := utils.EndpointURL(s.base, endpoint, query)
	req, err := s.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudofficeprint: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cloudofficeprint: reading %s: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newRenderError(resp.StatusCode, body)
	}
	return body, nil
}

func (s *Server) getString(ctx context.Context, endpoint string) (string, error) {
	body, err := s.get(ctx, endpoint, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func (s *Server) getJSON(ctx context.Context, endpoint string, query url.Values) (map[string]any, error) {
	body, err := s.get(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("cloudofficeprint: decoding %s: %w", endpoint, err)
	}
	return result, nil
}

// IsReachable reports whether the server answers "polo" to /marco.
func (s *Server) IsReachable(ctx context.Context) bool {
	body, err := s.getString(ctx, "marco")
	if err != nil {
		logging.WarnWithComponent(logging.ComponentServer, "Server not reachable", "url", s.URL(), "error", err)
		return false
	}
	return body == "polo"
}

// VersionSoffice returns the LibreOffice version installed on the server.
func (s *Server) VersionSoffice(ctx context.Context) (string, error) {
	return s.getString(ctx, "soffice")
}

// VersionOfficeToPDF returns the OfficeToPDF version installed on the server.
func (s *Server) VersionOfficeToPDF(ctx context.Context) (string, error) {
	return s.getString(ctx, "officetopdf")
}

// VersionCOP returns the Cloud Office Print version of the server.
func (s *Server) VersionCOP(ctx context.Context) (string, error) {
	return s.getString(ctx, "version")
}

func (s *Server) SupportedTemplateMimetypes(ctx context.Context) (map[string]any, error) {
	return s.getJSON(ctx, "supported_template_mimetypes", nil)
}

// SupportedOutputMimetypes lists the outputs a template of the given type
// (e.g. "docx") can be rendered to.
func (s *Server) SupportedOutputMimetypes(ctx context.Context, templateType string) (map[string]any, error) {
	return s.getJSON(ctx, "supported_output_mimetypes", url.Values{"template": {templateType}})
}

func (s *Server) SupportedPrependMimetypes(ctx context.Context) (map[string]any, error) {
	return s.getJSON(ctx, "supported_prepend_mimetypes", nil)
}

func (s *Server) SupportedAppendMimetypes(ctx context.Context) (map[string]any, error) {
	return s.getJSON(ctx, "supported_append_mimetypes", nil)
}
