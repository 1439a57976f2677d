package logging

// Component constants for structured logging
const (
	ComponentTransport = "transport"
	ComponentPrintJob  = "printjob"
	ComponentTemplate  = "template"
	ComponentServer    = "server"
	ComponentProfile   = "profile"
	ComponentPrinter   = "printer"
)
