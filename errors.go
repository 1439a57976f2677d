package cloudofficeprint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrServerUnreachable is returned by Execute when the server does not
	// answer the reachability check. No payload has been sent.
	ErrServerUnreachable = errors.New("cloudofficeprint: server unreachable")
	// ErrDecoding is returned by Response.Text for output that is not UTF-8.
	ErrDecoding = errors.New("cloudofficeprint: response is not valid UTF-8")
	// ErrInvalidTransformation is returned for an empty transformation function.
	ErrInvalidTransformation = errors.New("cloudofficeprint: invalid transformation function")
	// ErrInvalidFilename is returned for transformation files given as a path.
	ErrInvalidFilename = errors.New("cloudofficeprint: filename must not contain a path")
)

// RenderError is returned when the server fails to render a job.
//
// The server answers with three lines: a message for the user, a line on how
// to contact support, and an encoded message support can decode.
type RenderError struct {
	StatusCode            int
	UserMessage           string
	ContactSupportMessage string
	EncodedMessage        string
}

func newRenderError(status int, body []byte) *RenderError {
	parts := strings.SplitN(strings.TrimRight(string(body), "\r\n"), "\n", 3)
	e := &RenderError{StatusCode: status}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		switch i {
		case 0:
			e.UserMessage = part
		case 1:
			e.ContactSupportMessage = part
		case 2:
			e.EncodedMessage = part
		}
	}
	return e
}

func (e *RenderError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cloudofficeprint: server returned status %d", e.StatusCode)
	if e.UserMessage != "" {
		b.WriteString(": ")
		b.WriteString(e.UserMessage)
	}
	if e.ContactSupportMessage != "" {
		b.WriteString("\n")
		b.WriteString(e.ContactSupportMessage)
	}
	if e.EncodedMessage != "" {
		b.WriteString("\n")
		b.WriteString(e.EncodedMessage)
	}
	return b.String()
}
