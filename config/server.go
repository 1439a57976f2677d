package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"

	"github.com/OpenPrinting/goipp"

	"github.com/rmitchellscott/cloudofficeprint/internal/logging"
	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// ServerConfig holds the settings of a server that are sent with every job.
type ServerConfig struct {
	APIKey optional.Option[string]
	// Logging is passed through to the server's request log.
	Logging map[string]any
	// Proxies maps "http" and "https" to a proxy URL. They configure the HTTP
	// client and are never sent to the server.
	Proxies     map[string]string
	Printer     *Printer
	Commands    *Commands
	RemoteDebug bool
}

// Validate checks the printer descriptor.
func (s *ServerConfig) Validate() error {
	if s.Printer != nil {
		return s.Printer.Validate()
	}
	return nil
}

func (s *ServerConfig) AsDict() map[string]any {
	result := map[string]any{}
	if s.APIKey.Has() {
		result["api_key"] = s.APIKey.Value()
	}
	if len(s.Logging) > 0 {
		result["logging"] = maps.Clone(s.Logging)
	}
	if s.Printer != nil {
		result["ipp"] = s.Printer.AsDict()
	}
	if s.Commands != nil {
		maps.Copy(result, s.Commands.AsDict())
	}
	if s.RemoteDebug {
		result["aop_remote_debug"] = "Yes"
	}
	return result
}

// Command is a command the server runs around a render step.
type Command struct {
	Command    string
	Parameters map[string]any
}

func (c *Command) AsDict() map[string]any {
	return c.dictWithPrefix("")
}

func (c *Command) dictWithPrefix(prefix string) map[string]any {
	result := map[string]any{prefix + "command": c.Command}
	if len(c.Parameters) > 0 {
		result[prefix+"command_parameters"] = maps.Clone(c.Parameters)
	}
	return result
}

// PostProcessCommand runs after the output is rendered.
type PostProcessCommand struct {
	Command
	ReturnOutput optional.Option[bool]
	// DeleteDelay is the number of milliseconds before the output is removed.
	DeleteDelay optional.Option[int]
}

func (c *PostProcessCommand) AsDict() map[string]any {
	result := c.Command.AsDict()
	put(result, []entry{
		{"return_output", c.ReturnOutput},
		{"delete_delay", c.DeleteDelay},
	})
	return result
}

// Commands bundles the command hooks of a server.
type Commands struct {
	PostProcess    *PostProcessCommand
	PreConversion  *Command
	PostConversion *Command
	PreMerge       *Command
	PostMerge      *Command
}

func (c *Commands) AsDict() map[string]any {
	result := map[string]any{}
	if c.PostProcess != nil {
		result["post_process"] = c.PostProcess.AsDict()
	}
	if m := prefixed(c.PreConversion, c.PostConversion); len(m) > 0 {
		result["conversion"] = m
	}
	if m := prefixed(c.PreMerge, c.PostMerge); len(m) > 0 {
		result["merge"] = m
	}
	return result
}

func prefixed(pre, post *Command) map[string]any {
	result := map[string]any{}
	if pre != nil {
		maps.Copy(result, pre.dictWithPrefix("pre_"))
	}
	if post != nil {
		maps.Copy(result, post.dictWithPrefix("post_"))
	}
	return result
}

const defaultRequester = "CloudOfficePrint"

// Printer is an IPP printer the server prints the output on.
type Printer struct {
	// Location is the IPP URL of the printer.
	Location  string `validate:"required,url"`
	Version   string `validate:"required"`
	Requester string
	JobName   string
}

// NewPrinter returns a printer with the default requester and job name.
func NewPrinter(location, version string) *Printer {
	return &Printer{
		Location:  location,
		Version:   version,
		Requester: defaultRequester,
		JobName:   defaultRequester,
	}
}

func (p *Printer) Validate() error {
	if err := validate.Struct(p); err != nil {
		return validationError(err)
	}
	return nil
}

func (p *Printer) AsDict() map[string]any {
	return map[string]any{
		"location":  p.Location,
		"version":   p.Version,
		"requester": p.Requester,
		"job_name":  p.JobName,
	}
}

// PrinterStatus is what a printer reports about itself.
type PrinterStatus struct {
	MakeAndModel string
	Info         string
	State        string
}

// Probe sends an IPP Get-Printer-Attributes request to the printer. It
// fails when the printer is unreachable or answers with an error status.
func (p *Printer) Probe(ctx context.Context, client *http.Client) (*PrinterStatus, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}

	msg := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetPrinterAttributes, 1)
	msg.Operation.Add(goipp.MakeAttribute("attributes-charset",
		goipp.TagCharset, goipp.String("utf-8")))
	msg.Operation.Add(goipp.MakeAttribute("attributes-natural-language",
		goipp.TagLanguage, goipp.String("en-US")))
	msg.Operation.Add(goipp.MakeAttribute("printer-uri",
		goipp.TagURI, goipp.String(p.Location)))
	msg.Operation.Add(goipp.MakeAttribute("requesting-user-name",
		goipp.TagName, goipp.String(p.Requester)))
	msg.Operation.Add(goipp.MakeAttribute("requested-attributes",
		goipp.TagKeyword, goipp.String("printer-description")))

	body, err := msg.EncodeBytes()
	if err != nil {
		return nil, fmt.Errorf("printer: encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Location, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("printer: creating request: %w", err)
	}
	req.Header.Set("Content-Type", goipp.ContentType)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("printer: %s unreachable: %w", p.Location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("printer: %s returned HTTP %d", p.Location, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("printer: reading response: %w", err)
	}

	var reply goipp.Message
	if err := reply.DecodeBytes(data); err != nil {
		return nil, fmt.Errorf("printer: decoding response: %w", err)
	}
	if status := goipp.Status(reply.Code); status != goipp.StatusOk {
		return nil, fmt.Errorf("printer: %s answered %s", p.Location, status)
	}

	status := &PrinterStatus{}
	for _, attr := range reply.Printer {
		if len(attr.Values) == 0 {
			continue
		}
		v := attr.Values[0].V.String()
		switch attr.Name {
		case "printer-make-and-model":
			status.MakeAndModel = v
		case "printer-info":
			status.Info = v
		case "printer-state":
			status.State = v
		}
	}
	logging.DebugWithComponent(logging.ComponentPrinter, "Printer probed",
		"location", p.Location, "model", status.MakeAndModel, "state", status.State)
	return status, nil
}
