package cloudofficeprint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rmitchellscott/cloudofficeprint/internal/json"
	"github.com/rmitchellscott/cloudofficeprint/internal/logging"
)

const (
	templateHashHeader = "Template-Hash"
	requestIDHeader    = "X-Request-Id"
)

var errNoServer = errors.New("cloudofficeprint: print job has no server")

// Execute sends the job and waits for the rendered output.
//
// When the template asked for hashing, the hash returned by the server is
// stored in the template so later requests send only the hash.
func (j *PrintJob) Execute(ctx context.Context) (*Response, error) {
	if j.Server == nil {
		return nil, errNoServer
	}
	if !j.Server.IsReachable(ctx) {
		return nil, fmt.Errorf("%w: %s", ErrServerUnreachable, j.Server.URL())
	}
	if j.Output != nil {
		if err := j.Output.Validate(); err != nil {
			return nil, err
		}
	}

	wantHash := j.Template != nil && j.Template.ShouldHash
	payload, err := j.JSON()
	if err != nil {
		return nil, fmt.Errorf("cloudofficeprint: encoding payload: %w", err)
	}

	resp, header, err := j.Server.post(ctx, payload)
	if err != nil {
		return nil, err
	}
	if wantHash {
		j.Template.UpdateHash(header.Get(templateHashHeader))
	}
	return resp, nil
}

// Result is the outcome of ExecuteAsync.
type Result struct {
	Response *Response
	Err      error
}

// ExecuteAsync runs Execute in a goroutine. The channel receives exactly one
// result and is then closed. Cancel ctx to abandon the request.
func (j *PrintJob) ExecuteAsync(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		resp, err := j.Execute(ctx)
		ch <- Result{Response: resp, Err: err}
	}()
	return ch
}

// ExecuteFullJSON posts a payload built by the caller without touching it.
func (s *Server) ExecuteFullJSON(ctx context.Context, payload []byte) (*Response, error) {
	if !json.Valid(payload) {
		return nil, errors.New("cloudofficeprint: payload is not valid JSON")
	}
	if !s.IsReachable(ctx) {
		return nil, fmt.Errorf("%w: %s", ErrServerUnreachable, s.URL())
	}
	resp, _, err := s.post(ctx, payload)
	return resp, err
}

func (s *Server) post(ctx context.Context, payload []byte) (*Response, http.Header, error) {
	req, err := s.newRequest(ctx, http.MethodPost, s.URL(), bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	logging.DebugWithComponent(logging.ComponentTransport, "Sending print job",
		"request_id", requestID, "url", s.URL(), "bytes", len(payload))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("cloudofficeprint: sending print job: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("cloudofficeprint: reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		renderErr := newRenderError(resp.StatusCode, body)
		logging.ErrorWithComponent(logging.ComponentTransport, "Print job failed",
			"request_id", requestID, "status", resp.StatusCode, "message", renderErr.UserMessage)
		return nil, nil, renderErr
	}

	logging.InfoWithComponent(logging.ComponentTransport, "Print job rendered",
		"request_id", requestID, "content_type", resp.Header.Get("Content-Type"),
		"bytes", len(body), "duration", time.Since(start))
	return &Response{MimeType: resp.Header.Get("Content-Type"), Body: body}, resp.Header, nil
}
