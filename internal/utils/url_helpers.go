package utils

import (
	"net/url"
	"strings"
)

// BaseURL parses a server address and guarantees a trailing slash, so
// endpoint names can be resolved relative to it.
func BaseURL(raw string) (*url.URL, error) {
	if err := ValidateURL(raw); err != nil {
		return nil, err
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// EndpointURL resolves an endpoint name against the base URL and attaches the query.
func EndpointURL(base *url.URL, endpoint string, query url.Values) string {
	u := base.ResolveReference(&url.URL{Path: strings.TrimPrefix(endpoint, "/")})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}
