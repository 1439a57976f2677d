// Package cloudofficeprint is a client for Cloud Office Print servers.
//
// A PrintJob combines a template, the data to merge into it and the output
// settings into the JSON request the server expects. The data is a tree of
// render elements from the elements package; templates and attached files
// come from the resource package and the option bags from the config package.
//
//	server, err := cloudofficeprint.NewServer("http://localhost:8010")
//	if err != nil {
//		return err
//	}
//	data := elements.NewElementCollection("",
//		elements.NewProperty("customer", "John Doe"),
//	)
//	tmpl, err := resource.TemplateFromLocalFile("invoice.docx")
//	if err != nil {
//		return err
//	}
//	job := cloudofficeprint.NewPrintJob(server, data)
//	job.Template = tmpl
//	resp, err := job.Execute(ctx)
//	if err != nil {
//		return err
//	}
//	_, err = resp.ToFile(ctx, "invoice")
//
// The builder does no I/O. Only Execute, ExecuteAsync and the Server info
// methods talk to the server.
package cloudofficeprint

import (
	"log/slog"

	"github.com/rmitchellscott/cloudofficeprint/internal/logging"
)

// SetLogger replaces the logger used by the client.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// SetLogLevel changes the minimum level of the default logger.
func SetLogLevel(l slog.Level) {
	logging.SetLevel(l)
}
