package cloudofficeprint

import (
	"maps"
	"slices"

	"github.com/rmitchellscott/cloudofficeprint/config"
	"github.com/rmitchellscott/cloudofficeprint/elements"
	"github.com/rmitchellscott/cloudofficeprint/internal/json"
	"github.com/rmitchellscott/cloudofficeprint/internal/logging"
	"github.com/rmitchellscott/cloudofficeprint/internal/version"
	"github.com/rmitchellscott/cloudofficeprint/resource"
)

const defaultOutputType = "docx"

// PrintJob is one render request.
//
// The data is taken from the first of Datasource, Files and Data that is
// set. Data renders one output; Files renders one output per file name.
type PrintJob struct {
	Server   *Server
	Template *resource.Template
	Output   *config.OutputConfig

	Data       elements.Element
	Files      map[string]elements.Element
	Datasource Datasource

	// Subtemplates are referenced from the template by name.
	Subtemplates map[string]*resource.Resource
	PrependFiles []*resource.Resource
	AppendFiles  []*resource.Resource
	Attachments  []*resource.Resource

	Transformation *TransformationFunction

	// Verbose logs the payload of every request.
	Verbose bool
}

// NewPrintJob returns a job rendering data on server. Without a template the
// output is a docx document.
func NewPrintJob(server *Server, data elements.Element) *PrintJob {
	return &PrintJob{
		Server: server,
		Data:   data,
		Output: &config.OutputConfig{},
	}
}

// AsDict builds the request payload.
func (j *PrintJob) AsDict() map[string]any {
	result := version.Identification()
	if j.Server != nil && j.Server.Config != nil {
		maps.Copy(result, j.Server.Config.AsDict())
	}

	output := j.Output
	if output == nil {
		output = &config.OutputConfig{}
	}
	outputDict := output.AsDict()
	if _, ok := outputDict["output_type"]; !ok {
		if j.Template != nil {
			outputDict["output_type"] = j.Template.FileType()
		} else {
			outputDict["output_type"] = defaultOutputType
		}
	}
	result["output"] = outputDict

	if j.Template != nil {
		result["template"] = j.Template.TemplateDict()
	}
	result["files"] = j.files()

	if files := secondaryFiles(j.PrependFiles); len(files) > 0 {
		result["prepend_files"] = files
	}
	if files := secondaryFiles(j.AppendFiles); len(files) > 0 {
		result["append_files"] = files
	}
	if files := secondaryFiles(j.Attachments); len(files) > 0 {
		result["attachments"] = files
	}
	if len(j.Subtemplates) > 0 {
		templates := make([]map[string]any, 0, len(j.Subtemplates))
		for _, name := range slices.Sorted(maps.Keys(j.Subtemplates)) {
			entry := j.Subtemplates[name].SecondaryFileDict()
			entry["name"] = name
			templates = append(templates, entry)
		}
		result["templates"] = templates
	}
	if j.Transformation != nil {
		result["transformation_function"] = j.Transformation.AsDict()
	}

	if j.Verbose {
		if payload, err := json.MarshalIndent(result, "", "  "); err == nil {
			logging.InfoWithComponent(logging.ComponentPrintJob, "Print job payload", "payload", string(payload))
		}
	}
	return result
}

// JSON returns the payload as sent to the server.
func (j *PrintJob) JSON() ([]byte, error) {
	return json.Marshal(j.AsDict())
}

func (j *PrintJob) files() []map[string]any {
	switch {
	case j.Datasource != nil:
		return []map[string]any{j.Datasource.AsDict()}
	case j.Files != nil:
		files := make([]map[string]any, 0, len(j.Files))
		for _, name := range slices.Sorted(maps.Keys(j.Files)) {
			files = append(files, map[string]any{
				"filename": name,
				"data":     j.Files[name].AsDict(),
			})
		}
		return files
	case j.Data != nil:
		return []map[string]any{{"data": j.Data.AsDict()}}
	default:
		return []map[string]any{}
	}
}

func secondaryFiles(resources []*resource.Resource) []map[string]any {
	result := make([]map[string]any, 0, len(resources))
	for _, r := range resources {
		result = append(result, r.SecondaryFileDict())
	}
	return result
}
