package cloudofficeprint

import (
	"strings"

	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// Datasource lets the server fetch the data of a job itself.
type Datasource interface {
	AsDict() map[string]any
}

// Header is one HTTP header the server sends to a datasource.
type Header struct {
	Name  string
	Value string
}

func headerList(headers []Header) []map[string]string {
	result := make([]map[string]string, 0, len(headers))
	for _, h := range headers {
		result = append(result, map[string]string{h.Name: h.Value})
	}
	return result
}

type sourceCommon struct {
	Filename optional.Option[string]
	Endpoint string
	Headers  []Header
	// Auth is sent as-is, e.g. "user:password".
	Auth optional.Option[string]
}

func (c *sourceCommon) dict(kind string) map[string]any {
	result := map[string]any{
		"datasource": kind,
		"endpoint":   c.Endpoint,
	}
	if c.Filename.Has() {
		result["filename"] = c.Filename.Value()
	}
	if len(c.Headers) > 0 {
		result["headers"] = headerList(c.Headers)
	}
	if c.Auth.Has() {
		result["auth"] = c.Auth.Value()
	}
	return result
}

// RESTSource is a REST endpoint returning the data as JSON.
type RESTSource struct {
	sourceCommon
	Method optional.Option[string]
	Body   optional.Option[string]
}

// NewRESTSource returns a GET source for endpoint.
func NewRESTSource(endpoint string) *RESTSource {
	return &RESTSource{sourceCommon: sourceCommon{Endpoint: endpoint}}
}

func (r *RESTSource) AsDict() map[string]any {
	result := r.dict("rest")
	if r.Method.Has() {
		result["method"] = strings.ToUpper(r.Method.Value())
	}
	if r.Body.Has() {
		result["body"] = r.Body.Value()
	}
	return result
}

// GraphQLSource is a GraphQL endpoint queried by the server.
type GraphQLSource struct {
	sourceCommon
	Query string
}

func NewGraphQLSource(endpoint, query string) *GraphQLSource {
	return &GraphQLSource{sourceCommon: sourceCommon{Endpoint: endpoint}, Query: query}
}

func (g *GraphQLSource) AsDict() map[string]any {
	result := g.dict("graphql")
	result["query"] = g.Query
	return result
}
